package events

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Listener обработчик событий расписания
// Вызывается из единственной горутины шины, в порядке публикации
type Listener interface {
	Name() string
	Handle(ctx context.Context, event domain.BookingEvent)
}

// ListenerFunc адаптер функции к Listener
type ListenerFunc struct {
	ListenerName string
	Fn           func(ctx context.Context, event domain.BookingEvent)
}

// Name возвращает имя обработчика для логов
func (f ListenerFunc) Name() string {
	return f.ListenerName
}

// Handle вызывает функцию
func (f ListenerFunc) Handle(ctx context.Context, event domain.BookingEvent) {
	f.Fn(ctx, event)
}

// MetricsRecorder учет потерянных событий
type MetricsRecorder interface {
	RecordEventDropped()
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
