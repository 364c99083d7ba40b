package update_room_config

import (
	"context"

	"github.com/staysuite/pricing-service/internal/service/rooms/models"
)

type RoomService interface {
	UpdatePricingConfig(ctx context.Context, roomID int64, req *models.UpdatePricingConfigRequest) (*models.PricingConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
