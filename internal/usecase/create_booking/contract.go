package create_booking

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// ScheduleStore хранилище расписания
type ScheduleStore interface {
	Config() domain.ShopConfig
	HasSlot(slotLabel string) bool
	Count(date, slotLabel string) int
	Book(date, slotLabel, customerName, rawContact string) (domain.Booking, error)
}

// MetricsRecorder учет попыток бронирования
type MetricsRecorder interface {
	RecordBooking(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
