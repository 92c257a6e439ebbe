package delete_customer_bookings

import "context"

type BookingService interface {
	DeleteCustomerBookings(ctx context.Context, customerID int64) (int64, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
