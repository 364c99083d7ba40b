package create_booking

import (
	"context"
	"time"

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

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
