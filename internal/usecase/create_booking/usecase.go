package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
)

// Результаты для метрики bookings_total
const (
	resultCreated        = "created"
	resultInvalidDate    = "invalid_date"
	resultInvalidSlot    = "invalid_slot"
	resultInvalidName    = "invalid_name"
	resultInvalidContact = "invalid_contact"
	resultSlotFull       = "slot_full"
	resultError          = "error"
)

// UseCase use case для создания бронирования
type UseCase struct {
	store   ScheduleStore
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(store ScheduleStore, metrics MetricsRecorder, logger Logger) *UseCase {
	return &UseCase{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case создания бронирования
// Уведомления отправляются асинхронно по событию хранилища и не влияют на результат
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: date=%s, slot=%s", req.Date, req.Slot)

	// 1. Проверяем дату
	if err := validateDate(req.Date); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		uc.metrics.RecordBooking(resultInvalidDate)
		return nil, err
	}

	// 2. Проверяем, что слот существует в рабочем дне
	if !uc.store.HasSlot(req.Slot) {
		uc.logger.Warn("CreateBooking: unknown slot %q", req.Slot)
		uc.metrics.RecordBooking(resultInvalidSlot)
		return nil, fmt.Errorf("%w: %q", ErrInvalidSlot, req.Slot)
	}

	// 3. Бронируем (имя, контакт и вместимость проверяются атомарно в хранилище)
	booking, err := uc.store.Book(req.Date, req.Slot, req.Name, req.WhatsApp)
	if err != nil {
		return nil, uc.mapStoreError(req, err)
	}

	uc.metrics.RecordBooking(resultCreated)

	cfg := uc.store.Config()
	resp := &Response{
		ID:         booking.ID,
		Date:       req.Date,
		Slot:       req.Slot,
		Name:       booking.Name,
		WhatsApp:   booking.Contact,
		CreatedAt:  booking.CreatedAt,
		Booked:     uc.store.Count(req.Date, req.Slot),
		TotalSeats: cfg.SeatsPerSlot,
	}

	uc.logger.Info("CreateBooking: booking id=%d created for %s %s", booking.ID, req.Date, req.Slot)
	return resp, nil
}

func (uc *UseCase) mapStoreError(req *Request, err error) error {
	switch {
	case errors.Is(err, schedule.ErrInvalidName):
		uc.logger.Warn("CreateBooking: empty customer name for %s %s", req.Date, req.Slot)
		uc.metrics.RecordBooking(resultInvalidName)
		return ErrInvalidName
	case errors.Is(err, schedule.ErrInvalidContact):
		uc.logger.Warn("CreateBooking: invalid contact for %s %s: %v", req.Date, req.Slot, err)
		uc.metrics.RecordBooking(resultInvalidContact)
		return ErrInvalidContact
	case errors.Is(err, schedule.ErrSlotFull):
		uc.logger.Warn("CreateBooking: slot %s on %s is full", req.Slot, req.Date)
		uc.metrics.RecordBooking(resultSlotFull)
		return ErrSlotFull
	default:
		uc.logger.Error("CreateBooking: failed to book %s %s: %v", req.Date, req.Slot, err)
		uc.metrics.RecordBooking(resultError)
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}
