package update_seasonal_rate

import (
	"context"

	"github.com/staysuite/pricing-service/internal/service/rates/models"
)

type RateService interface {
	Update(ctx context.Context, roomID, rateID int64, req *models.UpdateRateRequest) (*models.RateResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
