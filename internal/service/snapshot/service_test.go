package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type staticSource struct {
	mu       sync.Mutex
	schedule domain.Schedule
	merged   []map[int64]struct{}
}

func (s *staticSource) Snapshot() domain.Schedule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.schedule.Clone()
}

func (s *staticSource) Merge(loaded domain.Schedule, cancelled map[int64]struct{}) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.merged = append(s.merged, cancelled)
	s.schedule = loaded.Clone()
	return len(loaded)
}

type toggleLoader struct {
	mu        sync.Mutex
	available bool
	schedule  domain.Schedule
	calls     int
}

func (l *toggleLoader) Load(context.Context) (domain.Schedule, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	if !l.available {
		return domain.Schedule{}, false
	}
	return l.schedule.Clone(), true
}

func (l *toggleLoader) setAvailable() {
	l.mu.Lock()
	l.available = true
	l.mu.Unlock()
}

type flakySaver struct {
	mu    sync.Mutex
	err   error
	saved []domain.Schedule
}

func (f *flakySaver) Save(_ context.Context, schedule domain.Schedule) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, schedule)
	return nil
}

func (f *flakySaver) setErr(err error) {
	f.mu.Lock()
	f.err = err
	f.mu.Unlock()
}

var sample = domain.Schedule{"2024-06-01": {"9:00 AM": {{ID: 1, Name: "Ravi", Contact: "9961583051"}}}}

func TestService_SavesOnEvent(t *testing.T) {
	saver := &flakySaver{}
	svc := NewService(&staticSource{schedule: sample}, saver, 0, logger.Nop())

	svc.Handle(context.Background(), domain.BookingEvent{Type: domain.EventBookingCreated})

	require.Len(t, saver.saved, 1)
	assert.Equal(t, sample, saver.saved[0])
	assert.False(t, svc.Dirty())
}

func TestService_FailureMarksDirtyAndCheckpointRetries(t *testing.T) {
	saver := &flakySaver{err: errors.New("disk full")}
	svc := NewService(&staticSource{schedule: sample}, saver, 0, logger.Nop())

	assert.NotPanics(t, func() {
		svc.Handle(context.Background(), domain.BookingEvent{Type: domain.EventBookingCancelled})
	})
	assert.True(t, svc.Dirty())

	svc.Checkpoint(context.Background())
	assert.True(t, svc.Dirty(), "still failing")
	assert.Empty(t, saver.saved)

	saver.setErr(nil)
	svc.Checkpoint(context.Background())
	assert.False(t, svc.Dirty())
	require.Len(t, saver.saved, 1)
}

func TestService_CheckpointSkipsWhenClean(t *testing.T) {
	saver := &flakySaver{}
	svc := NewService(&staticSource{schedule: sample}, saver, 0, logger.Nop())

	svc.Checkpoint(context.Background())
	assert.Empty(t, saver.saved)
}

func TestService_Flush(t *testing.T) {
	saver := &flakySaver{}
	svc := NewService(&staticSource{schedule: sample}, saver, 0, logger.Nop())

	require.NoError(t, svc.Flush(context.Background()))
	assert.Len(t, saver.saved, 1)

	saver.setErr(errors.New("read-only"))
	assert.Error(t, svc.Flush(context.Background()))
	assert.True(t, svc.Dirty())
}

func TestService_SuspendedSavesWaitForStoredSchedule(t *testing.T) {
	ctx := context.Background()
	saver := &flakySaver{}
	source := &staticSource{schedule: domain.Schedule{}}
	loader := &toggleLoader{schedule: sample}
	svc := NewService(source, saver, 0, logger.Nop())

	svc.Suspend(loader)
	assert.True(t, svc.Dirty())

	svc.Handle(ctx, domain.BookingEvent{
		Type:    domain.EventBookingCancelled,
		Booking: domain.Booking{ID: 7},
	})
	svc.Checkpoint(ctx)
	assert.ErrorIs(t, svc.Flush(ctx), ErrScheduleNotLoaded)
	assert.Empty(t, saver.saved, "nothing is written over unread data")
	assert.Equal(t, 3, loader.calls)
	assert.True(t, svc.Dirty())

	loader.setAvailable()
	svc.Checkpoint(ctx)

	assert.False(t, svc.Dirty())
	require.Len(t, saver.saved, 1)
	assert.Equal(t, sample, saver.saved[0])
	require.Len(t, source.merged, 1)
	assert.Contains(t, source.merged[0], int64(7), "cancellations are passed to merge")

	// После восстановления хранилище больше не читается
	svc.Handle(ctx, domain.BookingEvent{Type: domain.EventBookingCreated})
	assert.Equal(t, 4, loader.calls)
	assert.Len(t, saver.saved, 2)
}

func TestService_MarkDirtyTriggersCheckpoint(t *testing.T) {
	saver := &flakySaver{}
	svc := NewService(&staticSource{schedule: sample}, saver, 0, logger.Nop())

	svc.MarkDirty()
	assert.True(t, svc.Dirty())

	svc.Checkpoint(context.Background())
	assert.False(t, svc.Dirty())
	assert.Len(t, saver.saved, 1)
}
