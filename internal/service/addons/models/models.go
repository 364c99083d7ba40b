package models

import (
	"github.com/staysuite/pricing-service/internal/domain"
)

// AddonResponse ответ с данными дополнительной услуги
type AddonResponse struct {
	ID          int64   `json:"id"`
	RoomID      *int64  `json:"roomId,omitempty"` // nil - услуга доступна для всего объекта
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Price       float64 `json:"price"`
	PricingType string  `json:"pricingType"`
	MaxQuantity int     `json:"maxQuantity"`
}

// AddonListResponse ответ со списком дополнительных услуг
type AddonListResponse struct {
	Addons []AddonResponse `json:"addons"`
}

// FromDomainAddon конвертирует domain модель в DTO
func FromDomainAddon(addon *domain.Addon) *AddonResponse {
	if addon == nil {
		return nil
	}

	return &AddonResponse{
		ID:          addon.ID,
		RoomID:      addon.RoomID,
		Name:        addon.Name,
		Description: addon.Description,
		ImageURL:    addon.ImageURL,
		Price:       addon.Price,
		PricingType: string(addon.PricingType),
		MaxQuantity: addon.MaxQuantity,
	}
}

// FromDomainAddonList конвертирует список domain моделей в DTO
func FromDomainAddonList(addons []*domain.Addon) *AddonListResponse {
	resp := &AddonListResponse{
		Addons: make([]AddonResponse, 0, len(addons)),
	}

	for _, addon := range addons {
		if addonResp := FromDomainAddon(addon); addonResp != nil {
			resp.Addons = append(resp.Addons, *addonResp)
		}
	}

	return resp
}
