package snapshot

import (
	"context"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// ScheduleSource источник текущего расписания
type ScheduleSource interface {
	Snapshot() domain.Schedule
	Merge(loaded domain.Schedule, cancelled map[int64]struct{}) int
}

// ScheduleLoader читает сохраненное расписание; ok=false - хранилище недоступно
type ScheduleLoader interface {
	Load(ctx context.Context) (domain.Schedule, bool)
}

// ScheduleSaver сохраняет расписание целиком
type ScheduleSaver interface {
	Save(ctx context.Context, schedule domain.Schedule) error
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
