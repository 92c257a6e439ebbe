package get_therapist_bookings

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

// ParseQuery собирает service request из query-параметров
// Поддерживаются: startDate, endDate (YYYY-MM-DD), status, includeInactive
func ParseQuery(therapistID int64, query url.Values) (*models.GetTherapistBookingsRequest, error) {
	req := &models.GetTherapistBookingsRequest{
		TherapistID: therapistID,
	}

	if startDateStr := query.Get("startDate"); startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid startDate %q: %w", startDateStr, err)
		}
		req.StartDate = &startDate
	}

	if endDateStr := query.Get("endDate"); endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, fmt.Errorf("invalid endDate %q: %w", endDateStr, err)
		}
		req.EndDate = &endDate
	}

	if statusStr := query.Get("status"); statusStr != "" {
		if _, err := domain.ParseStatus(statusStr); err != nil {
			return nil, fmt.Errorf("invalid status %q: %w", statusStr, err)
		}
		req.Status = &statusStr
	}

	if includeStr := query.Get("includeInactive"); includeStr != "" {
		include, err := strconv.ParseBool(includeStr)
		if err != nil {
			return nil, fmt.Errorf("invalid includeInactive %q: %w", includeStr, err)
		}
		req.IncludeInactive = include
	}

	return req, nil
}
