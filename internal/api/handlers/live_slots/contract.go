package live_slots

import "github.com/m04kA/SMC-BarberBooking/internal/domain"

type AvailabilityReader interface {
	Availability(date string) []domain.SlotAvailability
}

type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
