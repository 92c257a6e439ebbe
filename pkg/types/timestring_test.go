package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	valid := []string{"00:00", "09:30", "10:00", "23:59"}
	for _, s := range valid {
		assert.NoError(t, TimeString(s).Validate(), "expected %q to be valid", s)
	}

	invalid := []string{"", "10", "24:00", "10:60", "-1:00", "10:30:00", "abc", "10:aa"}
	for _, s := range invalid {
		err := TimeString(s).Validate()
		require.Error(t, err, "expected %q to be invalid", s)
		assert.ErrorIs(t, err, ErrInvalidTimeFormat)
	}
}

func TestTimeString_Minutes(t *testing.T) {
	tests := []struct {
		in   TimeString
		want int
	}{
		{"00:00", 0},
		{"01:00", 60},
		{"10:30", 630},
		{"23:59", 1439},
	}

	for _, tt := range tests {
		got, err := tt.in.Minutes()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := TimeString("25:00").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = TimeString("10:00").AddMinutes(-30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("09:30"), got)

	// Переход через полночь не поддерживается
	_, err = TimeString("23:30").AddMinutes(60)
	assert.Error(t, err)

	_, err = TimeString("00:30").AddMinutes(-60)
	assert.Error(t, err)
}

func TestTimeString_Ordering(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("10:30").IsAfter("10:00"))
	assert.False(t, TimeString("10:00").IsAfter("10:00"))
}

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:45")
	require.NoError(t, err)
	assert.Equal(t, TimeString("14:45"), ts)

	_, err = NewTimeStringFromString("14:75")
	assert.ErrorIs(t, err, ErrInvalidTimeFormat)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	// Postgres TIME приходит с секундами
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:15:59")))
	assert.Equal(t, TimeString("09:15"), ts)

	require.NoError(t, ts.Scan(time.Date(2026, 3, 1, 18, 5, 30, 0, time.UTC)))
	assert.Equal(t, TimeString("18:05"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())

	assert.Error(t, ts.Scan(42))
}
