package domain

import "time"

// Service is a bookable offering from the salon catalog.
// Duration and price are immutable defaults used when a booking request does
// not carry an explicit duration.
type Service struct {
	ID         int64
	Name       string
	Duration   int // default duration in minutes
	Price      float64
	CategoryID *int64
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Package is a bundled offering with an optional validity window
type Package struct {
	ID        int64
	Name      string
	Duration  int // minutes
	Price     float64
	StartDate *time.Time // validity window start (optional)
	EndDate   *time.Time // validity window end (optional)
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsAvailableOn returns true if the package is active and the given date
// falls inside its validity window
func (p *Package) IsAvailableOn(date time.Time) bool {
	if !p.IsActive {
		return false
	}

	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())

	if p.StartDate != nil {
		start := time.Date(p.StartDate.Year(), p.StartDate.Month(), p.StartDate.Day(), 0, 0, 0, 0, p.StartDate.Location())
		if day.Before(start) {
			return false
		}
	}

	if p.EndDate != nil {
		end := time.Date(p.EndDate.Year(), p.EndDate.Month(), p.EndDate.Day(), 0, 0, 0, 0, p.EndDate.Location())
		if day.After(end) {
			return false
		}
	}

	return true
}
