package domain

import (
	"errors"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

const minutesPerDay = 24 * 60

// ErrCrossesMidnight is returned for an interval extending past the end of
// its day. Bookings are day-scoped; a slot that spills into the next day has
// no representation and could never be checked against that day's bookings.
var ErrCrossesMidnight = errors.New("domain: interval extends past end of day")

// Interval is a half-open [Start, End) minute interval within one day.
// Both availability queries and the commit-time conflict check are built on
// this one type so the two paths can never diverge on what "overlap" means.
type Interval struct {
	StartMinutes int
	EndMinutes   int
}

// NewInterval builds an interval from a start time and a duration in minutes
func NewInterval(start types.TimeString, durationMinutes int) (Interval, error) {
	startMinutes, err := start.Minutes()
	if err != nil {
		return Interval{}, err
	}

	if startMinutes+durationMinutes > minutesPerDay {
		return Interval{}, ErrCrossesMidnight
	}

	return Interval{
		StartMinutes: startMinutes,
		EndMinutes:   startMinutes + durationMinutes,
	}, nil
}

// Overlaps reports whether two half-open intervals share at least one minute.
// Intervals that only touch at an endpoint (one ends exactly where the other
// starts) do not overlap.
func (i Interval) Overlaps(other Interval) bool {
	return i.StartMinutes < other.EndMinutes && other.StartMinutes < i.EndMinutes
}

// DurationMinutes returns the interval length in minutes
func (i Interval) DurationMinutes() int {
	return i.EndMinutes - i.StartMinutes
}

// OverlappingBookings returns the bookings whose intervals overlap the
// candidate. Only blocking bookings (pending, confirmed) participate;
// completed and cancelled bookings never conflict. Bookings whose stored
// time cannot be parsed are skipped.
func OverlappingBookings(candidate Interval, bookings []*Booking) []*Booking {
	conflicts := make([]*Booking, 0)

	for _, booking := range bookings {
		if !booking.IsBlocking() {
			continue
		}

		interval, err := booking.Interval()
		if err != nil {
			continue
		}

		if candidate.Overlaps(interval) {
			conflicts = append(conflicts, booking)
		}
	}

	return conflicts
}
