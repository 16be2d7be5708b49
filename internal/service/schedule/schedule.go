package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// CountBooked возвращает количество бронирований в слоте (0 для неизвестной даты или слота)
func CountBooked(schedule domain.Schedule, date, slotLabel string) int {
	return len(schedule[date][slotLabel])
}

// BookSlot проверяет бронирование и возвращает новое расписание с добавленной записью
//
// Порядок проверок (первая ошибка прерывает):
// 1. имя клиента после trim не пустое -> ErrInvalidName
// 2. нормализованный контакт не короче MinContactLength -> ErrInvalidContact
// 3. в слоте меньше seatsPerSlot бронирований -> ErrSlotFull
//
// Исходное расписание не изменяется: копируются только затронутые ветки
// (дата и слот), остальные разделяются с исходным. При ошибке возвращается
// исходное расписание. nextID вызывается только при успешной проверке
func BookSlot(
	schedule domain.Schedule,
	date string,
	slotLabel string,
	customerName string,
	rawContact string,
	seatsPerSlot int,
	nextID func() int64,
	now time.Time,
) (domain.Schedule, domain.Booking, error) {
	name, contact, err := validateBooking(customerName, rawContact)
	if err != nil {
		return schedule, domain.Booking{}, err
	}

	if CountBooked(schedule, date, slotLabel) >= seatsPerSlot {
		return schedule, domain.Booking{}, ErrSlotFull
	}

	booking := domain.Booking{
		ID:        nextID(),
		Name:      name,
		Contact:   contact,
		CreatedAt: now.UTC().Truncate(time.Millisecond),
	}

	existing := schedule[date][slotLabel]
	bookings := make([]domain.Booking, len(existing), len(existing)+1)
	copy(bookings, existing)
	bookings = append(bookings, booking)

	next := withSlot(schedule, date, slotLabel, bookings)
	return next, booking, nil
}

// CancelBooking возвращает новое расписание без бронирования bookingID
// Порядок остальных бронирований сохраняется. Если дата, слот или бронирование
// не найдены - возвращает исходное расписание и false
func CancelBooking(
	schedule domain.Schedule,
	date string,
	slotLabel string,
	bookingID int64,
) (domain.Schedule, domain.Booking, bool) {
	existing, ok := schedule[date][slotLabel]
	if !ok {
		return schedule, domain.Booking{}, false
	}

	var (
		removed domain.Booking
		found   bool
	)
	remaining := make([]domain.Booking, 0, len(existing))
	for _, b := range existing {
		if b.ID == bookingID {
			removed = b
			found = true
			continue
		}
		remaining = append(remaining, b)
	}

	if !found {
		return schedule, domain.Booking{}, false
	}

	return withSlot(schedule, date, slotLabel, remaining), removed, true
}

// withSlot строит новое расписание, в котором у date/slotLabel список bookings
func withSlot(schedule domain.Schedule, date, slotLabel string, bookings []domain.Booking) domain.Schedule {
	next := make(domain.Schedule, len(schedule)+1)
	for d, day := range schedule {
		next[d] = day
	}

	oldDay := schedule[date]
	day := make(domain.DaySchedule, len(oldDay)+1)
	for label, list := range oldDay {
		day[label] = list
	}
	day[slotLabel] = bookings

	next[date] = day
	return next
}

// MergeSchedules добавляет в current бронирования из loaded, которых в нем нет
// Бронирования из cancelled не восстанавливаются. Слоты упорядочиваются по ID
// Возвращает новое расписание и число добавленных бронирований
func MergeSchedules(current, loaded domain.Schedule, cancelled map[int64]struct{}) (domain.Schedule, int) {
	known := make(map[int64]struct{})
	for _, day := range current {
		for _, bookings := range day {
			for _, b := range bookings {
				known[b.ID] = struct{}{}
			}
		}
	}

	next := current
	added := 0
	for date, day := range loaded {
		for slotLabel, bookings := range day {
			var missing []domain.Booking
			for _, b := range bookings {
				if _, ok := known[b.ID]; ok {
					continue
				}
				if _, ok := cancelled[b.ID]; ok {
					continue
				}
				known[b.ID] = struct{}{}
				missing = append(missing, b)
			}
			if len(missing) == 0 {
				continue
			}

			merged := make([]domain.Booking, 0, len(next[date][slotLabel])+len(missing))
			merged = append(merged, next[date][slotLabel]...)
			merged = append(merged, missing...)
			sort.Slice(merged, func(i, j int) bool { return merged[i].ID < merged[j].ID })

			next = withSlot(next, date, slotLabel, merged)
			added += len(missing)
		}
	}
	return next, added
}
