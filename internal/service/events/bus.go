package events

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// DefaultQueueSize размер очереди событий по умолчанию
const DefaultQueueSize = 256

// Bus асинхронная шина событий расписания
//
// Publish никогда не блокирует: мутация расписания уже зафиксирована,
// поэтому при переполненной очереди событие теряется с предупреждением.
// Доставка выполняется одной горутиной (Run) по очереди всем подписчикам.
type Bus struct {
	queue   chan domain.BookingEvent
	metrics MetricsRecorder
	logger  Logger

	mu        sync.RWMutex
	listeners []Listener
	onDrop    []func(domain.BookingEvent)
	closed    bool

	closeOnce sync.Once
	done      chan struct{}
}

// NewBus создает шину с очередью queueSize (DefaultQueueSize, если <= 0)
func NewBus(queueSize int, metrics MetricsRecorder, logger Logger) *Bus {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Bus{
		queue:   make(chan domain.BookingEvent, queueSize),
		metrics: metrics,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

// Subscribe добавляет обработчик. Подписываться нужно до Run
func (b *Bus) Subscribe(listener Listener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, listener)
	b.logger.Info("EventBus: listener %q subscribed", listener.Name())
}

// OnDrop добавляет обработчик потерянных событий
// Вызывается синхронно из Publish и не должен блокировать
func (b *Bus) OnDrop(fn func(event domain.BookingEvent)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onDrop = append(b.onDrop, fn)
}

// Publish ставит событие в очередь
func (b *Bus) Publish(event domain.BookingEvent) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.closed {
		b.logger.Warn("EventBus: bus is closed, dropping %s for %s %s", event.Type, event.Date, event.SlotLabel)
		b.recordDropped(event)
		return
	}

	select {
	case b.queue <- event:
	default:
		b.logger.Warn("EventBus: queue is full, dropping %s for %s %s (booking id=%d)",
			event.Type, event.Date, event.SlotLabel, event.Booking.ID)
		b.recordDropped(event)
	}
}

// Run доставляет события подписчикам до закрытия шины
// После Close оставшиеся в очереди события доставляются, затем Run возвращается
func (b *Bus) Run(ctx context.Context) {
	defer close(b.done)

	for event := range b.queue {
		b.dispatch(ctx, event)
	}
	b.logger.Info("EventBus: queue drained, worker stopped")
}

// Close закрывает очередь и ждет, пока Run доставит оставшиеся события
// Если Run не запущен, ожидание ограничено ctx
func (b *Bus) Close(ctx context.Context) error {
	b.closeOnce.Do(func() {
		b.mu.Lock()
		b.closed = true
		close(b.queue)
		b.mu.Unlock()
	})

	select {
	case <-b.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (b *Bus) dispatch(ctx context.Context, event domain.BookingEvent) {
	b.mu.RLock()
	listeners := make([]Listener, len(b.listeners))
	copy(listeners, b.listeners)
	b.mu.RUnlock()

	for _, listener := range listeners {
		b.deliver(ctx, listener, event)
	}
}

func (b *Bus) deliver(ctx context.Context, listener Listener, event domain.BookingEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("EventBus: listener %q panicked on %s (booking id=%d): %v",
				listener.Name(), event.Type, event.Booking.ID, r)
		}
	}()

	listener.Handle(ctx, event)
}

// Вызывается под b.mu
func (b *Bus) recordDropped(event domain.BookingEvent) {
	if b.metrics != nil {
		b.metrics.RecordEventDropped()
	}
	for _, fn := range b.onDrop {
		fn(event)
	}
}
