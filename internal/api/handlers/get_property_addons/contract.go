package get_property_addons

import (
	"context"

	"github.com/staysuite/pricing-service/internal/service/addons/models"
)

type AddonService interface {
	GetByProperty(ctx context.Context, propertyID int64) (*models.AddonListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
