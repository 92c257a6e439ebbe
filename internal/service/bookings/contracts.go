package bookings

import (
	"context"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByCustomerID(ctx context.Context, customerID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetByTherapistWithFilter(ctx context.Context, filter domain.TherapistBookingsFilter) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (*domain.Booking, error)
	Cancel(ctx context.Context, id int64, reason string) (*domain.Booking, error)
	DeleteByCustomerID(ctx context.Context, customerID int64) (int64, error)
}

// TransactionManager интерфейс для управления транзакциями
// Статусные переходы выполняются как read-modify-write под блокировкой строки
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
