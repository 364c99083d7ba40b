package rates

import (
	"context"
	"time"

	"github.com/staysuite/pricing-service/internal/domain"
	"github.com/staysuite/pricing-service/internal/integrations/propertyservice"
)

// RateRepository интерфейс репозитория сезонных ставок
type RateRepository interface {
	GetByRoomID(ctx context.Context, roomID int64) ([]*domain.SeasonalRate, error)
	GetByID(ctx context.Context, id int64) (*domain.SeasonalRate, error)
	GetOverlapping(ctx context.Context, roomID int64, start, end time.Time, priority int, excludeID *int64) ([]*domain.SeasonalRate, error)
	Create(ctx context.Context, rate *domain.SeasonalRate) (*domain.SeasonalRate, error)
	Update(ctx context.Context, rate *domain.SeasonalRate) error
	Delete(ctx context.Context, roomID, id int64) error
}

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// PropertyServiceClient интерфейс клиента для PropertyService
type PropertyServiceClient interface {
	GetProperty(ctx context.Context, propertyID int64) (*propertyservice.Property, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
