package schedule

import (
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// EventPublisher принимает события об изменении расписания
// Публикация не должна блокировать и не может отменить уже выполненную мутацию
type EventPublisher interface {
	Publish(event domain.BookingEvent)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
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

type noopPublisher struct{}

func (noopPublisher) Publish(domain.BookingEvent) {}
