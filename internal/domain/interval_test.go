package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

func TestNewInterval(t *testing.T) {
	interval, err := NewInterval(types.TimeString("10:00"), 60)
	require.NoError(t, err)
	assert.Equal(t, 600, interval.StartMinutes)
	assert.Equal(t, 660, interval.EndMinutes)
	assert.Equal(t, 60, interval.DurationMinutes())

	_, err = NewInterval(types.TimeString("25:00"), 60)
	assert.Error(t, err)
}

func TestNewInterval_DayBoundary(t *testing.T) {
	// Интервал до конца дня допустим: [23:00, 24:00) не выходит за сутки
	interval, err := NewInterval(types.TimeString("23:00"), 60)
	require.NoError(t, err)
	assert.Equal(t, 1440, interval.EndMinutes)

	// Переход через полночь непредставим в рамках одного дня
	_, err = NewInterval(types.TimeString("23:30"), 480)
	assert.ErrorIs(t, err, ErrCrossesMidnight)

	_, err = NewInterval(types.TimeString("23:30"), 31)
	assert.ErrorIs(t, err, ErrCrossesMidnight)
}

func TestInterval_Overlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Interval
		b    Interval
		want bool
	}{
		{
			name: "identical intervals overlap",
			a:    Interval{600, 660},
			b:    Interval{600, 660},
			want: true,
		},
		{
			name: "partial overlap",
			a:    Interval{600, 660},
			b:    Interval{630, 690},
			want: true,
		},
		{
			name: "containment",
			a:    Interval{600, 720},
			b:    Interval{630, 660},
			want: true,
		},
		{
			name: "touching endpoints do not overlap",
			a:    Interval{600, 660},
			b:    Interval{660, 720},
			want: false,
		},
		{
			name: "disjoint",
			a:    Interval{600, 660},
			b:    Interval{720, 780},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Overlaps(tt.b))
			// Предикат симметричен
			assert.Equal(t, tt.want, tt.b.Overlaps(tt.a))
		})
	}
}

func TestOverlappingBookings(t *testing.T) {
	mkBooking := func(start types.TimeString, duration int, status BookingStatus) *Booking {
		return &Booking{
			StartTime:       start,
			DurationMinutes: duration,
			Status:          status,
		}
	}

	// Кандидат 10:30-11:00
	candidate := Interval{StartMinutes: 630, EndMinutes: 660}

	t.Run("blocking statuses conflict", func(t *testing.T) {
		bookings := []*Booking{
			mkBooking("10:00", 60, StatusConfirmed),
			mkBooking("10:00", 60, StatusPending),
		}
		conflicts := OverlappingBookings(candidate, bookings)
		assert.Len(t, conflicts, 2)
	})

	t.Run("completed and cancelled never conflict", func(t *testing.T) {
		bookings := []*Booking{
			mkBooking("10:00", 60, StatusCompleted),
			mkBooking("10:00", 60, StatusCancelled),
		}
		conflicts := OverlappingBookings(candidate, bookings)
		assert.Empty(t, conflicts)
	})

	t.Run("adjacent booking does not conflict", func(t *testing.T) {
		bookings := []*Booking{
			mkBooking("11:00", 30, StatusConfirmed),
			mkBooking("10:00", 30, StatusConfirmed),
		}
		conflicts := OverlappingBookings(candidate, bookings)
		assert.Empty(t, conflicts)
	})

	t.Run("unparseable time is skipped", func(t *testing.T) {
		bookings := []*Booking{
			mkBooking("not-a-time", 60, StatusConfirmed),
		}
		conflicts := OverlappingBookings(candidate, bookings)
		assert.Empty(t, conflicts)
	})
}
