package domain

// Default values
const (
	// DefaultDurationMinutes is the advisory fallback used when neither an
	// explicit duration nor a catalog offering resolves one. Availability
	// queries may fall back to it; the commit path never does.
	DefaultDurationMinutes = 60
)

// Business validation constants
const (
	MinDurationMinutes = 5
	MaxDurationMinutes = 480 // 8 hours
	MaxNotesLength     = 500

	MaxCancellationReasonLength = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses are the statuses that occupy a slot on the calendar.
// Used when loading a day's bookings for conflict checks.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}

// InactiveStatuses are the terminal statuses that no longer occupy the calendar
var InactiveStatuses = []BookingStatus{
	StatusCompleted,
	StatusCancelled,
}
