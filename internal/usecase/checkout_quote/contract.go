package checkout_quote

import (
	"context"

	"github.com/staysuite/pricing-service/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Room, error)
}

// RateRepository интерфейс репозитория сезонных ставок
type RateRepository interface {
	GetByRoomID(ctx context.Context, roomID int64) ([]*domain.SeasonalRate, error)
}

// AddonRepository интерфейс репозитория дополнительных услуг
type AddonRepository interface {
	GetByIDs(ctx context.Context, ids []int64) ([]*domain.Addon, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
