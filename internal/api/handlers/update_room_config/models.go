package update_room_config

import (
	"github.com/staysuite/pricing-service/internal/service/rooms/models"
)

// UpdatePricingConfigRequest HTTP request model.
// PUT заменяет конфигурацию целиком, пропущенные опциональные поля сбрасываются.
type UpdatePricingConfigRequest struct {
	PricingMode          string   `json:"pricingMode"`
	BasePricePerNight    float64  `json:"basePricePerNight"`
	AdditionalPersonRate *float64 `json:"additionalPersonRate,omitempty"`
	ChildPricePerNight   *float64 `json:"childPricePerNight,omitempty"`
	ChildFreeUntilAge    *int     `json:"childFreeUntilAge,omitempty"`
	ChildAgeLimit        *int     `json:"childAgeLimit,omitempty"`
	MaxGuests            int      `json:"maxGuests"`
	IsActive             *bool    `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdatePricingConfigRequest) ToServiceRequest(userID int64) *models.UpdatePricingConfigRequest {
	return &models.UpdatePricingConfigRequest{
		UserID:               userID,
		PricingMode:          r.PricingMode,
		BasePricePerNight:    r.BasePricePerNight,
		AdditionalPersonRate: r.AdditionalPersonRate,
		ChildPricePerNight:   r.ChildPricePerNight,
		ChildFreeUntilAge:    r.ChildFreeUntilAge,
		ChildAgeLimit:        r.ChildAgeLimit,
		MaxGuests:            r.MaxGuests,
		IsActive:             r.IsActive,
	}
}
