package get_day_bookings

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

// ScheduleReader чтение расписания магазина
type ScheduleReader interface {
	Config() domain.ShopConfig
	Slots() []domain.Slot
	Day(date string) domain.DaySchedule
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
