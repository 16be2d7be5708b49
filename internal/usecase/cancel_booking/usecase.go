package cancel_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-BarberBooking/pkg/metrics"
)

const resultNotConfirmed = "not_confirmed"

// UseCase use case для отмены бронирования
type UseCase struct {
	store   ScheduleStore
	policy  ConfirmationPolicy
	metrics MetricsRecorder
	logger  Logger
}

// NewUseCase создает новый экземпляр use case; nil policy означает RequireExplicit
func NewUseCase(store ScheduleStore, policy ConfirmationPolicy, metrics MetricsRecorder, logger Logger) *UseCase {
	if policy == nil {
		policy = RequireExplicit{}
	}
	return &UseCase{
		store:   store,
		policy:  policy,
		metrics: metrics,
		logger:  logger,
	}
}

// Execute выполняет use case отмены бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CancelBooking: booking id=%d, date=%s, slot=%s", req.BookingID, req.Date, req.Slot)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CancelBooking: validation failed: %v", err)
		uc.metrics.RecordCancellation(metrics.ResultFailure)
		return nil, err
	}

	// 2. Подтверждение
	if !uc.policy.Confirm(ctx, req) {
		uc.logger.Warn("CancelBooking: booking id=%d not confirmed, nothing changed", req.BookingID)
		uc.metrics.RecordCancellation(resultNotConfirmed)
		return nil, ErrNotConfirmed
	}

	// 3. Удаляем бронирование (отсутствующее - не ошибка)
	if err := uc.store.Cancel(req.Date, req.Slot, req.BookingID); err != nil {
		uc.logger.Error("CancelBooking: failed to cancel booking id=%d: %v", req.BookingID, err)
		uc.metrics.RecordCancellation(metrics.ResultFailure)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.metrics.RecordCancellation(metrics.ResultSuccess)

	return &Response{
		BookingID:  req.BookingID,
		Date:       req.Date,
		Slot:       req.Slot,
		Booked:     uc.store.Count(req.Date, req.Slot),
		TotalSeats: uc.store.Config().SeatsPerSlot,
	}, nil
}
