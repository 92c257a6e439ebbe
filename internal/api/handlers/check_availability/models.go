package check_availability

import (
	"strconv"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	checkAvailability "github.com/m04kA/Salon-BookingService/internal/usecase/check_availability"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Available bool              `json:"available"`
	Conflicts int               `json:"conflicts"`
	Requested RequestedInterval `json:"requested"`
	Degraded  bool              `json:"degraded,omitempty"`
}

// RequestedInterval запрошенный интервал в минутах от начала дня
type RequestedInterval struct {
	StartMinutes    int `json:"startMinutes"`
	EndMinutes      int `json:"endMinutes"`
	DurationMinutes int `json:"durationMinutes"`
}

// ToUseCaseRequest собирает запрос use case из query параметров
func ToUseCaseRequest(dateStr, timeStr, durationStr, packageIDStr, serviceIDStr, therapistIDStr string) (*checkAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(timeStr)
	if err != nil {
		return nil, err
	}

	req := &checkAvailability.Request{
		Date:      date,
		StartTime: startTime,
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = &duration
	}

	if packageIDStr != "" {
		packageID, err := strconv.ParseInt(packageIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.PackageID = &packageID
	}

	if serviceIDStr != "" {
		serviceID, err := strconv.ParseInt(serviceIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ServiceID = &serviceID
	}

	if therapistIDStr != "" {
		therapistID, err := strconv.ParseInt(therapistIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.TherapistID = &therapistID
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Available: resp.Available,
		Conflicts: resp.ConflictCount,
		Requested: RequestedInterval{
			StartMinutes:    resp.Requested.StartMinutes,
			EndMinutes:      resp.Requested.EndMinutes,
			DurationMinutes: resp.Requested.DurationMinutes,
		},
		Degraded: resp.Degraded,
	}
}
