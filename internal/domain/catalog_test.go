package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

func TestPackage_IsAvailableOn(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("inactive package is never available", func(t *testing.T) {
		p := &Package{IsActive: false}
		assert.False(t, p.IsAvailableOn(date(2026, 3, 10)))
	})

	t.Run("active package without window is always available", func(t *testing.T) {
		p := &Package{IsActive: true}
		assert.True(t, p.IsAvailableOn(date(2026, 3, 10)))
	})

	t.Run("window boundaries are inclusive", func(t *testing.T) {
		p := &Package{
			IsActive:  true,
			StartDate: ptr.Ptr(date(2026, 3, 1)),
			EndDate:   ptr.Ptr(date(2026, 3, 31)),
		}

		assert.True(t, p.IsAvailableOn(date(2026, 3, 1)))
		assert.True(t, p.IsAvailableOn(date(2026, 3, 31)))
		assert.False(t, p.IsAvailableOn(date(2026, 2, 28)))
		assert.False(t, p.IsAvailableOn(date(2026, 4, 1)))
	})

	t.Run("time of day does not affect day granularity", func(t *testing.T) {
		p := &Package{
			IsActive: true,
			EndDate:  ptr.Ptr(date(2026, 3, 31)),
		}
		lastDayEvening := time.Date(2026, 3, 31, 23, 30, 0, 0, time.UTC)
		assert.True(t, p.IsAvailableOn(lastDayEvening))
	})
}
