package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetBlockingByDate(ctx context.Context, date time.Time, therapistID *int64) ([]*domain.Booking, error)
}

// DurationResolver интерфейс разрешения длительности и цены для коммита
type DurationResolver interface {
	ResolveForCommit(ctx context.Context, explicitMinutes *int, packageID, serviceID *int64, date time.Time) (*catalog.Resolution, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
