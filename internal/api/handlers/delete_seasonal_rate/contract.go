package delete_seasonal_rate

import (
	"context"
)

type RateService interface {
	Delete(ctx context.Context, roomID, rateID int64, userID int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
