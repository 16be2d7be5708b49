package create_booking

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
	"github.com/m04kA/SMC-BarberBooking/internal/service/schedule"
	"github.com/m04kA/SMC-BarberBooking/pkg/logger"
)

type countingMetrics struct {
	results map[string]int
}

func (c *countingMetrics) RecordBooking(result string) {
	if c.results == nil {
		c.results = make(map[string]int)
	}
	c.results[result]++
}

// brokenStore возвращает непредвиденную ошибку
type brokenStore struct {
	*schedule.Store
}

func (brokenStore) Book(string, string, string, string) (domain.Booking, error) {
	return domain.Booking{}, errors.New("unexpected")
}

func newStore(t *testing.T) *schedule.Store {
	t.Helper()
	store, err := schedule.NewStore(domain.DefaultShopConfig(), nil, nil, logger.Nop())
	require.NoError(t, err)
	return store
}

func validRequest() *Request {
	return &Request{
		Date:     "2024-06-01",
		Slot:     "9:00 AM",
		Name:     "  Ravi ",
		WhatsApp: "+91 99615-83051",
	}
}

func TestExecute_Success(t *testing.T) {
	store := newStore(t)
	recorder := &countingMetrics{}
	uc := NewUseCase(store, recorder, logger.Nop())

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.NotZero(t, resp.ID)
	assert.Equal(t, "2024-06-01", resp.Date)
	assert.Equal(t, "9:00 AM", resp.Slot)
	assert.Equal(t, "Ravi", resp.Name)
	assert.Equal(t, "+919961583051", resp.WhatsApp)
	assert.False(t, resp.CreatedAt.IsZero())
	assert.Equal(t, 1, resp.Booked)
	assert.Equal(t, 5, resp.TotalSeats)
	assert.Equal(t, 1, recorder.results[resultCreated])
	assert.Equal(t, 1, store.Count("2024-06-01", "9:00 AM"))
}

func TestExecute_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(req *Request)
		wantErr error
		result  string
	}{
		{name: "bad date", mutate: func(r *Request) { r.Date = "2024/06/01" }, wantErr: ErrInvalidDate, result: resultInvalidDate},
		{name: "missing date", mutate: func(r *Request) { r.Date = "" }, wantErr: ErrInvalidDate, result: resultInvalidDate},
		{name: "unknown slot", mutate: func(r *Request) { r.Slot = "8:00 PM" }, wantErr: ErrInvalidSlot, result: resultInvalidSlot},
		{name: "24h label", mutate: func(r *Request) { r.Slot = "09:00" }, wantErr: ErrInvalidSlot, result: resultInvalidSlot},
		{name: "empty name", mutate: func(r *Request) { r.Name = "   " }, wantErr: ErrInvalidName, result: resultInvalidName},
		{name: "short contact", mutate: func(r *Request) { r.WhatsApp = "12" }, wantErr: ErrInvalidContact, result: resultInvalidContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newStore(t)
			recorder := &countingMetrics{}
			uc := NewUseCase(store, recorder, logger.Nop())

			req := validRequest()
			tt.mutate(req)

			resp, err := uc.Execute(context.Background(), req)
			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, 1, recorder.results[tt.result])
			assert.Empty(t, store.Snapshot())
		})
	}
}

func TestExecute_SlotFull(t *testing.T) {
	store := newStore(t)
	recorder := &countingMetrics{}
	uc := NewUseCase(store, recorder, logger.Nop())

	for i := 0; i < 5; i++ {
		_, err := uc.Execute(context.Background(), validRequest())
		require.NoError(t, err)
	}

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotFull)
	assert.Equal(t, 5, recorder.results[resultCreated])
	assert.Equal(t, 1, recorder.results[resultSlotFull])
}

func TestExecute_UnexpectedStoreError(t *testing.T) {
	recorder := &countingMetrics{}
	uc := NewUseCase(brokenStore{Store: newStore(t)}, recorder, logger.Nop())

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, recorder.results[resultError])
}
