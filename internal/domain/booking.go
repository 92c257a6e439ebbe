package domain

import (
	"errors"
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

var (
	// ErrInvalidTransition is returned when a booking status change is not
	// allowed by the lifecycle state machine
	ErrInvalidTransition = errors.New("domain: invalid booking status transition")

	// ErrUnknownStatus is returned when a raw status string is outside the
	// closed status set
	ErrUnknownStatus = errors.New("domain: unknown booking status")
)

// transitions is the booking lifecycle state machine:
// pending -> confirmed -> completed, cancelled reachable from pending and
// confirmed. completed and cancelled are terminal.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Booking represents one scheduled appointment
type Booking struct {
	ID          int64
	CustomerID  int64
	TherapistID int64
	ServiceID   *int64 // what is being performed: a catalog service
	PackageID   *int64 // or a package; at most one of the two is set

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          BookingStatus

	// Denormalized data for history
	OfferingName string
	Price        float64
	Notes        *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking occupies its slot on the calendar.
// Completed and cancelled bookings free their slot and never count in
// conflict checks.
func (b *Booking) IsBlocking() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if the booking is in a terminal state
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusCompleted || b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo reports whether moving to the given status is legal
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range transitions[b.Status] {
		if allowed == next {
			return true
		}
	}
	return false
}

// TransitionTo is the single mutation point for the booking status.
// Any move not present in the state machine fails with ErrInvalidTransition.
// Date, time and therapist are never changed after creation; a reschedule is
// modeled as cancel-and-recreate.
func (b *Booking) TransitionTo(next BookingStatus) error {
	if !b.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.Status = next
	return nil
}

// Interval returns the booking's occupied interval on its day
func (b *Booking) Interval() (Interval, error) {
	return NewInterval(b.StartTime, b.DurationMinutes)
}

// TherapistBookingsFilter filters therapist bookings queries
type TherapistBookingsFilter struct {
	TherapistID     int64
	StartDate       *time.Time     // Period start (optional)
	EndDate         *time.Time     // Period end (optional)
	Status          *BookingStatus // Status filter (optional)
	IncludeInactive bool           // Include completed and cancelled bookings
}

// ParseStatus converts a raw string into a BookingStatus, rejecting anything
// outside the closed status set
func ParseStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return BookingStatus(s), nil
	}
	return "", ErrUnknownStatus
}
