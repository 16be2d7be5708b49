package cancel_booking

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ScheduleStore хранилище расписания
type ScheduleStore interface {
	Config() domain.ShopConfig
	Count(date, slotLabel string) int
	Cancel(date, slotLabel string, bookingID int64) error
}

// ConfirmationPolicy решает, подтверждена ли отмена
type ConfirmationPolicy interface {
	Confirm(ctx context.Context, req *Request) bool
}

// MetricsRecorder учет отмен
type MetricsRecorder interface {
	RecordCancellation(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
