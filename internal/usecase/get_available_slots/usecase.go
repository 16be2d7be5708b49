package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// UseCase use case для получения занятости слотов на дату
type UseCase struct {
	schedule     ScheduleReader
	timeProvider TimeProvider
	location     *time.Location
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
// location задает "сегодня" для запроса без даты (nil - локальная зона)
func NewUseCase(schedule ScheduleReader, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.Local
	}
	return &UseCase{
		schedule:     schedule,
		timeProvider: &RealTimeProvider{},
		location:     location,
		logger:       logger,
	}
}

// Execute возвращает все слоты дня с количеством бронирований
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Дата по умолчанию - сегодня
	if req.Date == "" {
		req.Date = uc.timeProvider.Now().In(uc.location).Format(domain.DateFormat)
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 3. Считаем занятость по снимку расписания
	availability := uc.schedule.Availability(req.Date)

	slots := make([]Slot, len(availability))
	free := 0
	for i, a := range availability {
		slots[i] = Slot{
			Label:      a.Slot.Label,
			StartTime:  a.Slot.Start,
			Booked:     a.Booked,
			Available:  a.Available(),
			TotalSeats: a.TotalSeats,
			IsFull:     a.IsFull(),
		}
		free += a.Available()
	}

	uc.logger.Info("GetAvailableSlots: date=%s, slots=%d, free seats=%d", req.Date, len(slots), free)

	return &Response{
		Date:  req.Date,
		Slots: slots,
	}, nil
}
