package create_booking

import (
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	createBooking "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	CustomerID      int64    `json:"customerId"`
	TherapistID     int64    `json:"therapistId"`
	ServiceID       *int64   `json:"serviceId,omitempty"`
	PackageID       *int64   `json:"packageId,omitempty"`
	BookingDate     string   `json:"bookingDate"` // "2024-01-10"
	StartTime       string   `json:"startTime"`   // "10:00"
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID              int64   `json:"id"`
	CustomerID      int64   `json:"customerId"`
	TherapistID     int64   `json:"therapistId"`
	ServiceID       *int64  `json:"serviceId,omitempty"`
	PackageID       *int64  `json:"packageId,omitempty"`
	BookingDate     string  `json:"bookingDate"`
	StartTime       string  `json:"startTime"`
	DurationMinutes int     `json:"durationMinutes"`
	Status          string  `json:"status"`
	OfferingName    string  `json:"offeringName"`
	Price           float64 `json:"price"`
	Notes           *string `json:"notes,omitempty"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ConflictResponse HTTP response при занятом слоте
type ConflictResponse struct {
	Error     string            `json:"error"`
	Conflicts int               `json:"conflicts"`
	Requested RequestedInterval `json:"requested"`
}

// RequestedInterval запрошенный интервал в минутах от начала дня
type RequestedInterval struct {
	StartMinutes int `json:"startMinutes"`
	EndMinutes   int `json:"endMinutes"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.BookingDate)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		CustomerID:  r.CustomerID,
		TherapistID: r.TherapistID,
		ServiceID:   r.ServiceID,
		PackageID:   r.PackageID,
		Date:        bookingDate,
		StartTime:   startTime,
		Duration:    r.DurationMinutes,
		Price:       r.Price,
		Notes:       r.Notes,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:              resp.ID,
		CustomerID:      resp.CustomerID,
		TherapistID:     resp.TherapistID,
		ServiceID:       resp.ServiceID,
		PackageID:       resp.PackageID,
		BookingDate:     resp.BookingDate.Format(domain.DateFormat),
		StartTime:       resp.StartTime.String(),
		DurationMinutes: resp.DurationMinutes,
		Status:          resp.Status,
		OfferingName:    resp.OfferingName,
		Price:           resp.Price,
		Notes:           resp.Notes,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

// FromConflictError конвертирует ConflictError в HTTP response
func FromConflictError(msg string, conflictErr *createBooking.ConflictError) *ConflictResponse {
	return &ConflictResponse{
		Error:     msg,
		Conflicts: conflictErr.ConflictCount,
		Requested: RequestedInterval{
			StartMinutes: conflictErr.Requested.StartMinutes,
			EndMinutes:   conflictErr.Requested.EndMinutes,
		},
	}
}
