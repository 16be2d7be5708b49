package schedule

import (
	"sync"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

// fixedClock управляемые часы для тестов
type fixedClock struct {
	mu      sync.Mutex
	current time.Time
}

func newFixedClock(t time.Time) *fixedClock {
	return &fixedClock{current: t}
}

func (c *fixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *fixedClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	c.mu.Unlock()
}

// recordingPublisher запоминает опубликованные события
type recordingPublisher struct {
	mu     sync.Mutex
	events []domain.BookingEvent
}

func (p *recordingPublisher) Publish(event domain.BookingEvent) {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
}

func (p *recordingPublisher) Events() []domain.BookingEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.BookingEvent(nil), p.events...)
}

var referenceTime = time.Date(2024, 6, 1, 8, 30, 0, 0, time.UTC)

func newTestStore(initial domain.Schedule) (*Store, *recordingPublisher, *fixedClock, error) {
	publisher := &recordingPublisher{}
	clock := newFixedClock(referenceTime)

	store, err := NewStore(domain.DefaultShopConfig(), initial, publisher, logger.Nop())
	if err != nil {
		return nil, nil, nil, err
	}
	store.timeProvider = clock
	store.ids = newIDGenerator(store.current().MaxBookingID(), clock.Now)

	return store, publisher, clock, nil
}
