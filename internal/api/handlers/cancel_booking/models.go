package cancel_booking

import (
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

// CancelRequest тело запроса на отмену бронирования
type CancelRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

func (r *CancelRequest) ToServiceRequest() *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		CancellationReason: r.CancellationReason,
	}
}
