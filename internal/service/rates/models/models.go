package models

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
)

// Request модели

// CreateRateRequest запрос на создание сезонной ставки
type CreateRateRequest struct {
	UserID        int64     `json:"userId"`
	Name          string    `json:"name"`
	StartDate     time.Time `json:"startDate"`
	EndDate       time.Time `json:"endDate"`
	PricePerNight float64   `json:"pricePerNight"`
	Priority      int       `json:"priority"`
}

// ToDomainRate конвертирует request в domain модель
func (r *CreateRateRequest) ToDomainRate(roomID int64) *domain.SeasonalRate {
	return &domain.SeasonalRate{
		RoomID:        roomID,
		Name:          r.Name,
		StartDate:     domain.DateOnly(r.StartDate),
		EndDate:       domain.DateOnly(r.EndDate),
		PricePerNight: r.PricePerNight,
		Priority:      r.Priority,
	}
}

// UpdateRateRequest запрос на обновление сезонной ставки
// Поддерживает частичное обновление - обновляются только указанные поля
type UpdateRateRequest struct {
	UserID        int64      `json:"userId"`
	Name          *string    `json:"name,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty"`
	PricePerNight *float64   `json:"pricePerNight,omitempty"`
	Priority      *int       `json:"priority,omitempty"`
}

// ApplyToRate применяет указанные поля запроса к доменной модели
func (r *UpdateRateRequest) ApplyToRate(rate *domain.SeasonalRate) {
	if r.Name != nil {
		rate.Name = *r.Name
	}
	if r.StartDate != nil {
		rate.StartDate = domain.DateOnly(*r.StartDate)
	}
	if r.EndDate != nil {
		rate.EndDate = domain.DateOnly(*r.EndDate)
	}
	if r.PricePerNight != nil {
		rate.PricePerNight = *r.PricePerNight
	}
	if r.Priority != nil {
		rate.Priority = *r.Priority
	}
}

// Response модели

// RateResponse ответ с данными сезонной ставки
type RateResponse struct {
	ID            int64   `json:"id"`
	RoomID        int64   `json:"roomId"`
	Name          string  `json:"name"`
	StartDate     string  `json:"startDate"` // "2026-06-01"
	EndDate       string  `json:"endDate"`   // "2026-08-31"
	PricePerNight float64 `json:"pricePerNight"`
	Priority      int     `json:"priority"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// RateListResponse ответ со списком сезонных ставок
type RateListResponse struct {
	Rates []RateResponse `json:"rates"`
}

// Методы конвертации

// FromDomainRate конвертирует domain модель в DTO
func FromDomainRate(rate *domain.SeasonalRate) *RateResponse {
	if rate == nil {
		return nil
	}

	return &RateResponse{
		ID:            rate.ID,
		RoomID:        rate.RoomID,
		Name:          rate.Name,
		StartDate:     rate.StartDate.Format(domain.DateFormat),
		EndDate:       rate.EndDate.Format(domain.DateFormat),
		PricePerNight: rate.PricePerNight,
		Priority:      rate.Priority,
		CreatedAt:     rate.CreatedAt,
		UpdatedAt:     rate.UpdatedAt,
	}
}

// FromDomainRateList конвертирует список domain моделей в DTO
func FromDomainRateList(rates []*domain.SeasonalRate) *RateListResponse {
	resp := &RateListResponse{
		Rates: make([]RateResponse, 0, len(rates)),
	}

	for _, rate := range rates {
		if rateResp := FromDomainRate(rate); rateResp != nil {
			resp.Rates = append(resp.Rates, *rateResp)
		}
	}

	return resp
}
