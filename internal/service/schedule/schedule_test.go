package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

func sequentialIDs(start int64) func() int64 {
	next := start
	return func() int64 {
		next++
		return next
	}
}

func TestNormalizeContact(t *testing.T) {
	tests := map[string]string{
		"+91 99615-83051":  "+919961583051",
		"(996) 158 3051":   "9961583051",
		"++91":             "+91",
		"call me":          "",
		"":                 "",
		" +1 (555) 010-99": "+155501099",
	}
	for raw, want := range tests {
		assert.Equal(t, want, NormalizeContact(raw), "raw=%q", raw)
	}
}

func TestStripContact(t *testing.T) {
	tests := map[string]string{
		"+91 99615-83051": "+919961583051",
		"123+456+":        "123+456+",
		"1+2+3+4":         "1+2+3+4",
		"call me":         "",
	}
	for raw, want := range tests {
		assert.Equal(t, want, stripContact(raw), "raw=%q", raw)
	}
}

func TestCountBooked(t *testing.T) {
	schedule := domain.Schedule{
		"2024-06-01": {"9:00 AM": {{ID: 1}, {ID: 2}}},
	}

	assert.Equal(t, 2, CountBooked(schedule, "2024-06-01", "9:00 AM"))
	assert.Equal(t, 0, CountBooked(schedule, "2024-06-01", "10:00 AM"))
	assert.Equal(t, 0, CountBooked(schedule, "2024-06-02", "9:00 AM"))
	assert.Equal(t, 0, CountBooked(nil, "2024-06-01", "9:00 AM"))
}

func TestBookSlot_Success(t *testing.T) {
	now := time.Date(2024, 6, 1, 10, 15, 30, 123456789, time.FixedZone("IST", 5*3600+1800))

	next, booking, err := BookSlot(domain.Schedule{}, "2024-06-01", "9:00 AM", "  Ravi  ", "+91 99615 83051", 5, sequentialIDs(0), now)
	require.NoError(t, err)

	assert.Equal(t, int64(1), booking.ID)
	assert.Equal(t, "Ravi", booking.Name)
	assert.Equal(t, "+919961583051", booking.Contact)
	assert.Equal(t, now.UTC().Truncate(time.Millisecond), booking.CreatedAt)
	assert.Equal(t, time.UTC, booking.CreatedAt.Location())
	assert.Equal(t, []domain.Booking{booking}, next["2024-06-01"]["9:00 AM"])
}

func TestBookSlot_ValidationOrder(t *testing.T) {
	full := domain.Schedule{
		"2024-06-01": {"9:00 AM": {{ID: 1}, {ID: 2}}},
	}

	tests := []struct {
		name    string
		bookee  string
		contact string
		wantErr error
	}{
		{name: "empty name wins over bad contact and full slot", bookee: "", contact: "12", wantErr: ErrInvalidName},
		{name: "whitespace name", bookee: " \t\n", contact: "9961583051", wantErr: ErrInvalidName},
		{name: "short contact wins over full slot", bookee: "Asha", contact: "12", wantErr: ErrInvalidContact},
		{name: "contact short after normalization", bookee: "Asha", contact: "12-34-5 ab", wantErr: ErrInvalidContact},
		{name: "full slot", bookee: "Asha", contact: "9961583051", wantErr: ErrSlotFull},
		{name: "inner plus signs count toward length", bookee: "Asha", contact: "123+456+", wantErr: ErrSlotFull},
		{name: "seven characters with pluses", bookee: "Asha", contact: "1+2+3+4", wantErr: ErrSlotFull},
		{name: "six characters with pluses", bookee: "Asha", contact: "1+2+3+", wantErr: ErrInvalidContact},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := full.Clone()
			idCalls := 0
			nextID := func() int64 { idCalls++; return 99 }

			next, booking, err := BookSlot(full, "2024-06-01", "9:00 AM", tt.bookee, tt.contact, 2, nextID, referenceTime)

			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, domain.Booking{}, booking)
			assert.Equal(t, before, next, "schedule must be unchanged")
			assert.Equal(t, before, full, "input must not be mutated")
			assert.Zero(t, idCalls, "no id is allocated for a rejected booking")
		})
	}
}

func TestBookSlot_ContactWithInnerPlus(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{raw: "123+456+", want: "123456"},
		{raw: "1+2+3+4", want: "1234"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			next, booking, err := BookSlot(domain.Schedule{}, "2024-06-01", "9:00 AM", "Asha", tt.raw, 5, sequentialIDs(0), referenceTime)
			require.NoError(t, err)
			assert.Equal(t, tt.want, booking.Contact)
			assert.Equal(t, 1, CountBooked(next, "2024-06-01", "9:00 AM"))
		})
	}
}

func TestBookSlot_LastSeatSucceedsNextFails(t *testing.T) {
	schedule := domain.Schedule{}
	ids := sequentialIDs(0)
	var err error

	for i := 0; i < 5; i++ {
		schedule, _, err = BookSlot(schedule, "2024-06-01", "9:00 AM", "Customer", "9961583051", 5, ids, referenceTime)
		require.NoError(t, err, "booking #%d", i+1)
	}
	assert.Equal(t, 5, CountBooked(schedule, "2024-06-01", "9:00 AM"))

	_, _, err = BookSlot(schedule, "2024-06-01", "9:00 AM", "Customer", "9961583051", 5, ids, referenceTime)
	assert.ErrorIs(t, err, ErrSlotFull)
}

func TestBookSlot_CopyOnWrite(t *testing.T) {
	original := domain.Schedule{
		"2024-06-01": {"9:00 AM": {{ID: 1, Name: "A"}}},
		"2024-06-02": {"9:00 AM": {{ID: 2, Name: "B"}}},
	}
	snapshot := original.Clone()

	next, _, err := BookSlot(original, "2024-06-01", "9:00 AM", "C", "9961583051", 5, sequentialIDs(10), referenceTime)
	require.NoError(t, err)

	assert.Equal(t, snapshot, original, "published schedule must stay untouched")
	assert.Len(t, next["2024-06-01"]["9:00 AM"], 2)
	assert.Equal(t, original["2024-06-02"], next["2024-06-02"])
}

func TestCancelBooking(t *testing.T) {
	original := domain.Schedule{
		"2024-06-01": {"9:00 AM": {{ID: 1, Name: "A"}, {ID: 2, Name: "B"}, {ID: 3, Name: "C"}}},
	}
	snapshot := original.Clone()

	next, removed, ok := CancelBooking(original, "2024-06-01", "9:00 AM", 2)
	require.True(t, ok)
	assert.Equal(t, int64(2), removed.ID)
	assert.Equal(t, []domain.Booking{{ID: 1, Name: "A"}, {ID: 3, Name: "C"}}, next["2024-06-01"]["9:00 AM"])
	assert.Equal(t, snapshot, original)
}

func TestCancelBooking_MissingIsNoop(t *testing.T) {
	original := domain.Schedule{
		"2024-06-01": {"9:00 AM": {{ID: 1}}},
	}

	tests := []struct {
		name string
		date string
		slot string
		id   int64
	}{
		{name: "unknown date", date: "2024-07-01", slot: "9:00 AM", id: 1},
		{name: "unknown slot", date: "2024-06-01", slot: "10:00 AM", id: 1},
		{name: "unknown id", date: "2024-06-01", slot: "9:00 AM", id: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, _, ok := CancelBooking(original, tt.date, tt.slot, tt.id)
			assert.False(t, ok)
			assert.Equal(t, original, next)
		})
	}
}
