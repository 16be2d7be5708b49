package digest

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ScheduleReader чтение расписания магазина
type ScheduleReader interface {
	Config() domain.ShopConfig
	Availability(date string) []domain.SlotAvailability
	Day(date string) domain.DaySchedule
}

// OwnerNotifier отправляет сообщение владельцу
type OwnerNotifier interface {
	NotifyOwner(ctx context.Context, body string) error
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
