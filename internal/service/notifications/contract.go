package notifications

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/integrations/whatsapp"
)

// Sender канал доставки сообщений
type Sender interface {
	Send(ctx context.Context, msg whatsapp.Message) (whatsapp.Receipt, error)
}

// MetricsRecorder учет отправленных уведомлений
type MetricsRecorder interface {
	RecordNotification(target, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
