package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "two digit hour", input: "09:00", want: "09:00"},
		{name: "single digit hour is normalized", input: "9:30", want: "09:30"},
		{name: "evening", input: "20:00", want: "20:00"},
		{name: "garbage", input: "nine", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Label(t *testing.T) {
	tests := map[TimeString]string{
		"00:00": "12:00 AM",
		"09:00": "9:00 AM",
		"11:30": "11:30 AM",
		"12:00": "12:00 PM",
		"19:00": "7:00 PM",
		"23:45": "11:45 PM",
	}

	for input, want := range tests {
		assert.Equal(t, want, input.Label(), "label for %s", input)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	assert.Equal(t, 9*60+15, TimeString("09:15").Minutes())
	assert.Equal(t, 0, TimeString("bad").Minutes())
}

func TestNewTimeStringFromMinutes(t *testing.T) {
	got, err := NewTimeStringFromMinutes(19 * 60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("19:00"), got)

	_, err = NewTimeStringFromMinutes(MinutesPerDay)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}
