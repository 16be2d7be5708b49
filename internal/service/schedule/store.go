package schedule

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Store хранилище расписания магазина
//
// Единственный изменяемый объект процесса. Читатели работают без блокировок
// со снимком, полученным через atomic.Pointer; писатели сериализуются мьютексом
// и публикуют новое расписание целиком (copy-on-write), поэтому читатель видит
// либо состояние до мутации, либо после, но никогда промежуточное
type Store struct {
	config    domain.ShopConfig
	slots     []domain.Slot
	slotIndex map[string]int

	state   atomic.Pointer[domain.Schedule]
	writeMu sync.Mutex

	ids          *idGenerator
	publisher    EventPublisher
	timeProvider TimeProvider
	logger       Logger
}

// NewStore создает хранилище с начальным расписанием (например, загруженным из хранилища)
// initial может быть nil - тогда расписание пустое
func NewStore(
	config domain.ShopConfig,
	initial domain.Schedule,
	publisher EventPublisher,
	logger Logger,
) (*Store, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}

	slots, err := CollectSlots(config.OpenTime, config.CloseTime, config.SlotMinutes)
	if err != nil {
		return nil, err
	}
	if len(slots) == 0 {
		return nil, fmt.Errorf("%w: no %d-minute slot fits between %s and %s",
			ErrInvalidConfig, config.SlotMinutes, config.OpenTime, config.CloseTime)
	}

	slotIndex := make(map[string]int, len(slots))
	for i, slot := range slots {
		slotIndex[slot.Label] = i
	}

	if initial == nil {
		initial = domain.Schedule{}
	}
	if publisher == nil {
		publisher = noopPublisher{}
	}

	timeProvider := &RealTimeProvider{}

	s := &Store{
		config:       config,
		slots:        slots,
		slotIndex:    slotIndex,
		ids:          newIDGenerator(initial.MaxBookingID(), timeProvider.Now),
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
	s.state.Store(&initial)

	logger.Info("ScheduleStore: %d slots of %d minutes from %s to %s, %d seats per slot, %d dates loaded",
		len(slots), config.SlotMinutes, config.OpenTime, config.CloseTime, config.SeatsPerSlot, len(initial))

	return s, nil
}

// Config возвращает конфигурацию магазина
func (s *Store) Config() domain.ShopConfig {
	return s.config
}

// Slots возвращает слоты рабочего дня в порядке времени
func (s *Store) Slots() []domain.Slot {
	out := make([]domain.Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

// HasSlot проверяет, что слот с такой меткой существует в текущей конфигурации
func (s *Store) HasSlot(slotLabel string) bool {
	_, ok := s.slotIndex[slotLabel]
	return ok
}

// Count возвращает количество бронирований в слоте
func (s *Store) Count(date, slotLabel string) int {
	return CountBooked(s.current(), date, slotLabel)
}

// Availability возвращает занятость всех слотов на дату
func (s *Store) Availability(date string) []domain.SlotAvailability {
	current := s.current()

	result := make([]domain.SlotAvailability, len(s.slots))
	for i, slot := range s.slots {
		result[i] = domain.SlotAvailability{
			Slot:       slot,
			Booked:     CountBooked(current, date, slot.Label),
			TotalSeats: s.config.SeatsPerSlot,
		}
	}
	return result
}

// Day возвращает копию бронирований на дату
func (s *Store) Day(date string) domain.DaySchedule {
	return s.current()[date].Clone()
}

// Snapshot возвращает копию всего расписания (для сохранения)
func (s *Store) Snapshot() domain.Schedule {
	return s.current().Clone()
}

// Book создает бронирование в слоте
// Либо бронирование полностью записано и возвращено, либо расписание не изменилось
func (s *Store) Book(date, slotLabel, customerName, rawContact string) (domain.Booking, error) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	current := s.current()
	now := s.timeProvider.Now()

	next, booking, err := BookSlot(
		current,
		date,
		slotLabel,
		customerName,
		rawContact,
		s.config.SeatsPerSlot,
		s.ids.Next,
		now,
	)
	if err != nil {
		if errors.Is(err, ErrSlotFull) {
			s.logger.Debug("Book: slot %s on %s is full (%d/%d)",
				slotLabel, date, CountBooked(current, date, slotLabel), s.config.SeatsPerSlot)
		}
		return domain.Booking{}, err
	}

	s.state.Store(&next)

	booked := CountBooked(next, date, slotLabel)
	s.logger.Info("Book: booking id=%d created for %s %s (%d/%d)",
		booking.ID, date, slotLabel, booked, s.config.SeatsPerSlot)

	s.publisher.Publish(domain.BookingEvent{
		Type:       domain.EventBookingCreated,
		Date:       date,
		SlotLabel:  slotLabel,
		Booking:    booking,
		Booked:     booked,
		OccurredAt: now,
	})

	return booking, nil
}

// Cancel удаляет бронирование из слота
// Отсутствие даты, слота или бронирования - не ошибка (повторная отмена допустима)
// Подтверждение отмены - ответственность вызывающего кода
func (s *Store) Cancel(date, slotLabel string, bookingID int64) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, removed, ok := CancelBooking(s.current(), date, slotLabel, bookingID)
	if !ok {
		s.logger.Debug("Cancel: booking id=%d not found in %s %s, nothing to do", bookingID, date, slotLabel)
		return nil
	}

	s.state.Store(&next)

	booked := CountBooked(next, date, slotLabel)
	s.logger.Info("Cancel: booking id=%d removed from %s %s (%d/%d)",
		bookingID, date, slotLabel, booked, s.config.SeatsPerSlot)

	s.publisher.Publish(domain.BookingEvent{
		Type:       domain.EventBookingCancelled,
		Date:       date,
		SlotLabel:  slotLabel,
		Booking:    removed,
		Booked:     booked,
		OccurredAt: s.timeProvider.Now(),
	})

	return nil
}

// Merge добавляет бронирования, прочитанные из хранилища позже старта
// Бронирования, уже известные процессу или отмененные (cancelled), пропускаются
// События не публикуются: расписание сохраняет вызывающий код
func (s *Store) Merge(loaded domain.Schedule, cancelled map[int64]struct{}) int {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	next, added := MergeSchedules(s.current(), loaded, cancelled)
	s.ids.Raise(loaded.MaxBookingID())
	if added == 0 {
		return 0
	}

	s.state.Store(&next)
	s.logger.Info("ScheduleStore: %d bookings merged from storage", added)
	return added
}

func (s *Store) current() domain.Schedule {
	return *s.state.Load()
}
