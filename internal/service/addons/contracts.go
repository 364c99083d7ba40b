package addons

import (
	"context"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/integrations/propertyservice"
)

// AddonRepository интерфейс репозитория дополнительных услуг
type AddonRepository interface {
	GetActiveByPropertyID(ctx context.Context, propertyID int64) ([]*domain.Addon, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetPropertyWithGracefulDegradation(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
