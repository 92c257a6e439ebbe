package create_booking

import (
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CustomerID <= 0 {
		return fmt.Errorf("%w: customerID must be positive", ErrInvalidInput)
	}

	if req.TherapistID <= 0 {
		return fmt.Errorf("%w: therapistID must be positive", ErrInvalidInput)
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceID must be positive", ErrInvalidInput)
	}

	if req.PackageID != nil && *req.PackageID <= 0 {
		return fmt.Errorf("%w: packageID must be positive", ErrInvalidInput)
	}

	// Источник длительности/цены не более одного
	if req.ServiceID != nil && req.PackageID != nil {
		return fmt.Errorf("%w: serviceID and packageID are mutually exclusive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if req.Duration != nil {
		if *req.Duration <= 0 {
			return fmt.Errorf("%w: duration must be positive", ErrInvalidInput)
		}
		if *req.Duration > domain.MaxDurationMinutes {
			return fmt.Errorf("%w: duration must not exceed %d minutes", ErrInvalidInput, domain.MaxDurationMinutes)
		}
	}

	if req.Price != nil && *req.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrInvalidInput)
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes must not exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	return nil
}
