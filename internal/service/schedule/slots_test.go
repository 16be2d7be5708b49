package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-BarberBooking/pkg/types"
)

func TestCollectSlots_DefaultShopHours(t *testing.T) {
	slots, err := CollectSlots("09:00", "20:00", 60)
	require.NoError(t, err)

	require.Len(t, slots, 11)
	assert.Equal(t, "9:00 AM", slots[0].Label)
	assert.Equal(t, types.TimeString("09:00"), slots[0].Start)
	assert.Equal(t, "12:00 PM", slots[3].Label)
	assert.Equal(t, "7:00 PM", slots[len(slots)-1].Label)
}

func TestCollectSlots_CoverOperatingHoursInFixedSteps(t *testing.T) {
	tests := []struct {
		name    string
		open    types.TimeString
		close   types.TimeString
		minutes int
		want    int
	}{
		{name: "hourly", open: "09:00", close: "20:00", minutes: 60, want: 11},
		{name: "half hour", open: "09:00", close: "20:00", minutes: 30, want: 22},
		{name: "partial tail slot is dropped", open: "09:00", close: "20:00", minutes: 90, want: 7},
		{name: "slot longer than the day", open: "09:00", close: "10:00", minutes: 90, want: 0},
		{name: "whole day", open: "00:00", close: "23:59", minutes: 15, want: 95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slots, err := CollectSlots(tt.open, tt.close, tt.minutes)
			require.NoError(t, err)
			require.Len(t, slots, tt.want)

			seen := make(map[string]bool, len(slots))
			for i, slot := range slots {
				assert.False(t, seen[slot.Label], "duplicate label %s", slot.Label)
				seen[slot.Label] = true

				assert.Equal(t, tt.open.Minutes()+i*tt.minutes, slot.Start.Minutes())
				assert.LessOrEqual(t, slot.Start.Minutes()+tt.minutes, tt.close.Minutes())
				if i > 0 {
					assert.True(t, slots[i-1].Start.Minutes() < slot.Start.Minutes(), "slots must be strictly ordered")
				}
			}
		})
	}
}

func TestGenerateSlots_IsLazyAndDeterministic(t *testing.T) {
	seq, err := GenerateSlots("09:00", "20:00", 60)
	require.NoError(t, err)

	var first []string
	for slot := range seq {
		first = append(first, slot.Label)
		if len(first) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"9:00 AM", "10:00 AM"}, first)

	a, err := CollectSlots("09:00", "20:00", 60)
	require.NoError(t, err)
	b, err := CollectSlots("09:00", "20:00", 60)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestGenerateSlots_InvalidConfig(t *testing.T) {
	tests := []struct {
		name    string
		open    types.TimeString
		close   types.TimeString
		minutes int
	}{
		{name: "zero length", open: "09:00", close: "20:00", minutes: 0},
		{name: "negative length", open: "09:00", close: "20:00", minutes: -30},
		{name: "close before open", open: "20:00", close: "09:00", minutes: 60},
		{name: "close equals open", open: "09:00", close: "09:00", minutes: 60},
		{name: "bad open", open: "9am", close: "20:00", minutes: 60},
		{name: "bad close", open: "09:00", close: "", minutes: 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSlots(tt.open, tt.close, tt.minutes)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
