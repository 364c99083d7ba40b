package models

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
)

// Request модели

// UpdatePricingConfigRequest запрос на замену ценовой конфигурации комнаты.
// Запрос описывает конфигурацию целиком: отсутствующие опциональные поля
// сбрасываются в NULL, а не остаются прежними.
type UpdatePricingConfigRequest struct {
	UserID               int64    `json:"userId"`
	PricingMode          string   `json:"pricingMode"`
	BasePricePerNight    float64  `json:"basePricePerNight"`
	AdditionalPersonRate *float64 `json:"additionalPersonRate,omitempty"`
	ChildPricePerNight   *float64 `json:"childPricePerNight,omitempty"`
	ChildFreeUntilAge    *int     `json:"childFreeUntilAge,omitempty"`
	ChildAgeLimit        *int     `json:"childAgeLimit,omitempty"`
	MaxGuests            int      `json:"maxGuests"`
	IsActive             *bool    `json:"isActive,omitempty"`
}

// ApplyToRoom применяет запрос к доменной модели комнаты.
// IsActive меняется только если поле указано в запросе.
func (r *UpdatePricingConfigRequest) ApplyToRoom(room *domain.Room) {
	room.PricingMode = domain.PricingMode(r.PricingMode)
	room.BasePricePerNight = r.BasePricePerNight
	room.AdditionalPersonRate = r.AdditionalPersonRate
	room.ChildPricePerNight = r.ChildPricePerNight
	room.ChildFreeUntilAge = r.ChildFreeUntilAge
	room.MaxGuests = r.MaxGuests

	if r.ChildAgeLimit != nil {
		room.ChildAgeLimit = *r.ChildAgeLimit
	} else {
		room.ChildAgeLimit = domain.DefaultChildAgeLimit
	}

	if r.IsActive != nil {
		room.IsActive = *r.IsActive
	}
}

// Response модели

// PricingConfigResponse ответ с ценовой конфигурацией комнаты
type PricingConfigResponse struct {
	RoomID               int64    `json:"roomId"`
	TenantID             int64    `json:"tenantId"`
	PropertyID           int64    `json:"propertyId"`
	Name                 string   `json:"name"`
	Currency             string   `json:"currency"`
	PricingMode          string   `json:"pricingMode"`
	BasePricePerNight    float64  `json:"basePricePerNight"`
	AdditionalPersonRate *float64 `json:"additionalPersonRate,omitempty"`
	ChildPricePerNight   *float64 `json:"childPricePerNight,omitempty"`
	ChildFreeUntilAge    *int     `json:"childFreeUntilAge,omitempty"`
	ChildAgeLimit        int      `json:"childAgeLimit"`
	MaxGuests            int      `json:"maxGuests"`
	IsActive             bool     `json:"isActive"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainRoom конвертирует domain модель в DTO
func FromDomainRoom(room *domain.Room) *PricingConfigResponse {
	if room == nil {
		return nil
	}

	return &PricingConfigResponse{
		RoomID:               room.ID,
		TenantID:             room.TenantID,
		PropertyID:           room.PropertyID,
		Name:                 room.Name,
		Currency:             room.Currency,
		PricingMode:          string(room.PricingMode),
		BasePricePerNight:    room.BasePricePerNight,
		AdditionalPersonRate: room.AdditionalPersonRate,
		ChildPricePerNight:   room.ChildPricePerNight,
		ChildFreeUntilAge:    room.ChildFreeUntilAge,
		ChildAgeLimit:        room.ChildAgeLimit,
		MaxGuests:            room.MaxGuests,
		IsActive:             room.IsActive,
		CreatedAt:            room.CreatedAt,
		UpdatedAt:            room.UpdatedAt,
	}
}
