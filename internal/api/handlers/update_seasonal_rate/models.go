package update_seasonal_rate

import (
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/service/rates/models"
)

// UpdateSeasonalRateRequest HTTP request model.
// Обновляются только указанные поля.
type UpdateSeasonalRateRequest struct {
	Name          *string  `json:"name,omitempty"`
	StartDate     *string  `json:"startDate,omitempty"` // "2026-06-01"
	EndDate       *string  `json:"endDate,omitempty"`   // "2026-08-31"
	PricePerNight *float64 `json:"pricePerNight,omitempty"`
	Priority      *int     `json:"priority,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса (с парсингом дат)
func (r *UpdateSeasonalRateRequest) ToServiceRequest(userID int64) (*models.UpdateRateRequest, error) {
	req := &models.UpdateRateRequest{
		UserID:        userID,
		Name:          r.Name,
		PricePerNight: r.PricePerNight,
		Priority:      r.Priority,
	}

	if r.StartDate != nil {
		startDate, err := time.Parse(domain.DateFormat, *r.StartDate)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if r.EndDate != nil {
		endDate, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &endDate
	}

	return req, nil
}
