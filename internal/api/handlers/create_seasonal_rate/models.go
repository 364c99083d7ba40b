package create_seasonal_rate

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/service/rates/models"
)

// CreateSeasonalRateRequest HTTP request model
type CreateSeasonalRateRequest struct {
	Name          string  `json:"name"`
	StartDate     string  `json:"startDate"` // "2026-06-01"
	EndDate       string  `json:"endDate"`   // "2026-08-31"
	PricePerNight float64 `json:"pricePerNight"`
	Priority      int     `json:"priority"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса (с парсингом дат)
func (r *CreateSeasonalRateRequest) ToServiceRequest(userID int64) (*models.CreateRateRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &models.CreateRateRequest{
		UserID:        userID,
		Name:          r.Name,
		StartDate:     startDate,
		EndDate:       endDate,
		PricePerNight: r.PricePerNight,
		Priority:      r.Priority,
	}, nil
}
