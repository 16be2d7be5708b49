package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/infra/storage/kv"
	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

// DefaultKey ключ, под которым хранится расписание
const DefaultKey = "bs_bookings"

const (
	operationLoad = "load"
	operationSave = "save"
)

// Repository читает и пишет расписание целиком
type Repository struct {
	store   KVStore
	key     string
	metrics MetricsRecorder
	logger  Logger
}

// NewRepository создает репозиторий; пустой key заменяется на DefaultKey
func NewRepository(store KVStore, key string, metrics MetricsRecorder, logger Logger) *Repository {
	if key == "" {
		key = DefaultKey
	}
	return &Repository{
		store:   store,
		key:     key,
		metrics: metrics,
		logger:  logger,
	}
}

// Load загружает расписание
// Отсутствующие, пустые и поврежденные данные дают пустое расписание и ok=true.
// ok=false означает, что хранилище недоступно: пустое расписание нельзя
// сохранять поверх данных, которые прочитать не удалось
func (r *Repository) Load(ctx context.Context) (schedule domain.Schedule, ok bool) {
	data, err := r.store.Get(ctx, r.key)
	if err != nil {
		if errors.Is(err, kv.ErrKeyNotFound) {
			r.logger.Info("ScheduleRepository: no saved schedule under %q, starting empty", r.key)
			r.metrics.RecordPersistence(operationLoad, metrics.ResultSuccess)
			return domain.Schedule{}, true
		}
		r.logger.Warn("ScheduleRepository: storage unavailable, schedule not loaded: %v", err)
		r.metrics.RecordPersistence(operationLoad, metrics.ResultFailure)
		return domain.Schedule{}, false
	}

	schedule, err = Decode(data)
	if err != nil {
		r.logger.Warn("ScheduleRepository: saved schedule is unreadable, starting empty: %v", err)
		r.metrics.RecordPersistence(operationLoad, metrics.ResultFailure)
		return domain.Schedule{}, true
	}

	r.logger.Info("ScheduleRepository: loaded %d dates from %q", len(schedule), r.key)
	r.metrics.RecordPersistence(operationLoad, metrics.ResultSuccess)
	return schedule, true
}

// Save сохраняет расписание целиком
func (r *Repository) Save(ctx context.Context, schedule domain.Schedule) error {
	data, err := Encode(schedule)
	if err != nil {
		r.metrics.RecordPersistence(operationSave, metrics.ResultFailure)
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	if err := r.store.Put(ctx, r.key, data); err != nil {
		r.metrics.RecordPersistence(operationSave, metrics.ResultFailure)
		return fmt.Errorf("%w: %v", ErrPersistenceUnavailable, err)
	}

	r.metrics.RecordPersistence(operationSave, metrics.ResultSuccess)
	return nil
}
