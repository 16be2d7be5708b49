package digest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// Service ежедневная сводка записей для владельца
type Service struct {
	schedule     ScheduleReader
	notifier     OwnerNotifier
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает сервис сводки; location задает "завтра" (nil - локальная зона)
func NewService(schedule ScheduleReader, notifier OwnerNotifier, location *time.Location, logger Logger) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		schedule:     schedule,
		notifier:     notifier,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Build формирует текст сводки на дату
func (s *Service) Build(date string) string {
	cfg := s.schedule.Config()
	availability := s.schedule.Availability(date)
	day := s.schedule.Day(date)

	total := 0
	var lines []string
	for _, slot := range availability {
		if slot.Booked == 0 {
			continue
		}
		total += slot.Booked

		names := make([]string, 0, len(day[slot.Slot.Label]))
		for _, b := range day[slot.Slot.Label] {
			names = append(names, b.Name)
		}
		lines = append(lines, fmt.Sprintf("%s: %d/%d - %s",
			slot.Slot.Label, slot.Booked, slot.TotalSeats, strings.Join(names, ", ")))
	}

	if total == 0 {
		return fmt.Sprintf("%s: no bookings for %s.", cfg.Name, date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s schedule for %s (%d bookings):", cfg.Name, date, total)
	for _, line := range lines {
		b.WriteString("\n")
		b.WriteString(line)
	}
	return b.String()
}

// SendForDate отправляет сводку на дату владельцу
func (s *Service) SendForDate(ctx context.Context, date string) error {
	body := s.Build(date)

	if err := s.notifier.NotifyOwner(ctx, body); err != nil {
		s.logger.Warn("Digest: failed to send digest for %s: %v", date, err)
		return err
	}

	s.logger.Info("Digest: sent digest for %s", date)
	return nil
}

// SendTomorrow отправляет сводку на следующий день (задача cron)
func (s *Service) SendTomorrow(ctx context.Context) {
	tomorrow := s.timeProvider.Now().In(s.location).AddDate(0, 0, 1).Format(domain.DateFormat)
	_ = s.SendForDate(ctx, tomorrow)
}
