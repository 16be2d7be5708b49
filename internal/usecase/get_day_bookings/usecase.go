package get_day_bookings

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// UseCase use case для просмотра бронирований дня владельцем
type UseCase struct {
	schedule ScheduleReader
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(schedule ScheduleReader, logger Logger) *UseCase {
	return &UseCase{
		schedule: schedule,
		logger:   logger,
	}
}

// Execute возвращает слоты дня в порядке расписания с бронированиями
// Метки, которых нет в текущей конфигурации, добавляются в конец в лексическом порядке
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if _, err := time.Parse(domain.DateFormat, req.Date); err != nil {
		uc.logger.Warn("GetDayBookings: invalid date %q", req.Date)
		return nil, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalidDate, req.Date)
	}

	seats := uc.schedule.Config().SeatsPerSlot
	day := uc.schedule.Day(req.Date)
	slots := uc.schedule.Slots()

	resp := &Response{
		Date:  req.Date,
		Slots: make([]SlotBookings, 0, len(slots)),
	}

	// 2. Слоты текущей конфигурации
	known := make(map[string]struct{}, len(slots))
	for _, slot := range slots {
		known[slot.Label] = struct{}{}
		resp.Slots = append(resp.Slots, toSlotBookings(slot.Label, true, seats, day[slot.Label]))
	}

	// 3. Метки прежней конфигурации с бронированиями
	var unknown []string
	for label, bookings := range day {
		if _, ok := known[label]; !ok && len(bookings) > 0 {
			unknown = append(unknown, label)
		}
	}
	slices.Sort(unknown)
	for _, label := range unknown {
		resp.Slots = append(resp.Slots, toSlotBookings(label, false, seats, day[label]))
	}

	for _, s := range resp.Slots {
		resp.TotalBookings += s.Booked
	}

	if len(unknown) > 0 {
		uc.logger.Warn("GetDayBookings: date=%s has bookings in unknown slots %v", req.Date, unknown)
	}
	uc.logger.Info("GetDayBookings: date=%s, bookings=%d", req.Date, resp.TotalBookings)

	return resp, nil
}

func toSlotBookings(label string, known bool, seats int, bookings []domain.Booking) SlotBookings {
	out := SlotBookings{
		Label:      label,
		Known:      known,
		Booked:     len(bookings),
		TotalSeats: seats,
		Bookings:   make([]Booking, len(bookings)),
	}
	for i, b := range bookings {
		out.Bookings[i] = Booking{
			ID:        b.ID,
			Name:      b.Name,
			WhatsApp:  b.Contact,
			CreatedAt: b.CreatedAt,
		}
	}
	return out
}
