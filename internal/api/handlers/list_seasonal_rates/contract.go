package list_seasonal_rates

import (
	"context"

	"github.com/staysuite/pricing-service/internal/service/rates/models"
)

type RateService interface {
	ListByRoom(ctx context.Context, roomID int64, userID int64) (*models.RateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
