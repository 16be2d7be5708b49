package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ScheduleReader чтение занятости слотов
type ScheduleReader interface {
	Availability(date string) []domain.SlotAvailability
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
