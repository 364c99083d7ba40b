package get_stay_quote

import (
	"context"

	"github.com/staysuite/pricing-service/internal/domain"
)

// RoomRepository интерфейс репозитория комнат
type RoomRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Room, error)
}

// RateRepository интерфейс репозитория сезонных ставок
type RateRepository interface {
	GetByRoomID(ctx context.Context, roomID int64) ([]*domain.SeasonalRate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
