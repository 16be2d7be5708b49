package snapshot

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Service сохраняет расписание после каждой мутации
//
// Ошибка записи не возвращается вызывающему коду: расписание помечается
// как несохраненное, и Checkpoint повторит запись позже.
//
// Если при старте хранилище было недоступно (Suspend), запись не выполняется,
// пока сохраненное расписание не прочитано и не объединено с текущим
type Service struct {
	source  ScheduleSource
	saver   ScheduleSaver
	timeout time.Duration
	logger  Logger

	// dirty меняется без mu: MarkDirty вызывается из Publish под блокировкой хранилища
	dirty atomic.Bool

	mu sync.Mutex
	// не nil, пока сохраненное расписание не прочитано
	loader    ScheduleLoader
	cancelled map[int64]struct{}
}

// NewService создает сервис сохранения; timeout <= 0 - без ограничения
func NewService(source ScheduleSource, saver ScheduleSaver, timeout time.Duration, logger Logger) *Service {
	return &Service{
		source:  source,
		saver:   saver,
		timeout: timeout,
		logger:  logger,
	}
}

// Name имя обработчика событий
func (s *Service) Name() string {
	return "snapshot"
}

// Suspend откладывает запись до успешного чтения через loader
func (s *Service) Suspend(loader ScheduleLoader) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loader = loader
	s.cancelled = make(map[int64]struct{})
	s.dirty.Store(true)
	s.logger.Warn("Snapshot: stored schedule was not loaded, saves are suspended until it is read")
}

// MarkDirty помечает расписание несохраненным (например, событие потеряно шиной)
func (s *Service) MarkDirty() {
	s.dirty.Store(true)
}

// Handle сохраняет расписание после события
func (s *Service) Handle(ctx context.Context, event domain.BookingEvent) {
	if event.Type == domain.EventBookingCancelled {
		s.rememberCancelled(event.Booking.ID)
	}
	s.logger.Debug("Snapshot: saving after %s (booking id=%d)", event.Type, event.Booking.ID)
	_ = s.save(ctx, "event")
}

// Checkpoint повторяет запись, если предыдущая завершилась ошибкой
func (s *Service) Checkpoint(ctx context.Context) {
	if !s.Dirty() {
		return
	}
	s.logger.Info("Snapshot: retrying save")
	_ = s.save(ctx, "checkpoint")
}

// Flush сохраняет расписание безусловно (при остановке сервиса)
func (s *Service) Flush(ctx context.Context) error {
	return s.save(ctx, "shutdown")
}

// Dirty возвращает true, если текущее расписание может быть не сохранено
func (s *Service) Dirty() bool {
	return s.dirty.Load()
}

func (s *Service) save(ctx context.Context, reason string) error {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	// Записи сериализуются, чтобы более старый снимок не перезаписал новый
	s.mu.Lock()
	defer s.mu.Unlock()

	// Сброс до снимка: отметка, поставленная во время записи, сохранится
	wasDirty := s.dirty.Swap(false)

	if err := s.restore(ctx); err != nil {
		s.dirty.Store(true)
		s.logger.Warn("Snapshot: save skipped (%s): %v", reason, err)
		return err
	}

	schedule := s.source.Snapshot()
	if err := s.saver.Save(ctx, schedule); err != nil {
		s.dirty.Store(true)
		s.logger.Warn("Snapshot: failed to save schedule (%s), will retry: %v", reason, err)
		return err
	}

	if wasDirty {
		s.logger.Info("Snapshot: pending changes saved (%s)", reason)
	}
	return nil
}

func (s *Service) rememberCancelled(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loader != nil {
		s.cancelled[id] = struct{}{}
	}
}

// restore читает сохраненное расписание и объединяет его с текущим
// Вызывается под s.mu
func (s *Service) restore(ctx context.Context) error {
	if s.loader == nil {
		return nil
	}

	loaded, ok := s.loader.Load(ctx)
	if !ok {
		return ErrScheduleNotLoaded
	}

	added := s.source.Merge(loaded, s.cancelled)
	s.logger.Info("Snapshot: stored schedule read, %d bookings restored, saves resumed", added)
	s.loader = nil
	s.cancelled = nil
	return nil
}
