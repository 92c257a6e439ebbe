package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_TransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		wantErr bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, false},
		{"pending to cancelled", StatusPending, StatusCancelled, false},
		{"confirmed to completed", StatusConfirmed, StatusCompleted, false},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, false},

		// Завершить можно только подтвержденное бронирование
		{"pending to completed rejected", StatusPending, StatusCompleted, true},
		{"confirmed to pending rejected", StatusConfirmed, StatusPending, true},

		// Терминальные статусы заморожены
		{"completed to confirmed rejected", StatusCompleted, StatusConfirmed, true},
		{"completed to cancelled rejected", StatusCompleted, StatusCancelled, true},
		{"cancelled to pending rejected", StatusCancelled, StatusPending, true},
		{"cancelled to confirmed rejected", StatusCancelled, StatusConfirmed, true},

		// Переход в тот же статус не входит в машину состояний
		{"pending to pending rejected", StatusPending, StatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Booking{Status: tt.from}
			err := b.TransitionTo(tt.to)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTransition)
				assert.Equal(t, tt.from, b.Status, "status must not change on rejected transition")
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.to, b.Status)
			}
		})
	}
}

func TestBooking_IsBlocking(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).IsBlocking())
	assert.True(t, (&Booking{Status: StatusConfirmed}).IsBlocking())
	assert.False(t, (&Booking{Status: StatusCompleted}).IsBlocking())
	assert.False(t, (&Booking{Status: StatusCancelled}).IsBlocking())
}

func TestBooking_IsTerminal(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsTerminal())
	assert.False(t, (&Booking{Status: StatusConfirmed}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCompleted}).IsTerminal())
	assert.True(t, (&Booking{Status: StatusCancelled}).IsTerminal())
}

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "completed", "cancelled"} {
		status, err := ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, BookingStatus(s), status)
	}

	_, err := ParseStatus("archived")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ParseStatus("")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestBooking_Interval(t *testing.T) {
	b := &Booking{StartTime: "09:15", DurationMinutes: 45}
	interval, err := b.Interval()
	require.NoError(t, err)
	assert.Equal(t, 555, interval.StartMinutes)
	assert.Equal(t, 600, interval.EndMinutes)
}
