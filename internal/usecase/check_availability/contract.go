package check_availability

import (
	"context"
	"time"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	"github.com/m04kA/Salon-BookingService/internal/service/catalog"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// GetBlockingByDate получает блокирующие бронирования на дату,
	// опционально ограниченные одним мастером
	GetBlockingByDate(ctx context.Context, date time.Time, therapistID *int64) ([]*domain.Booking, error)
}

// DurationResolver интерфейс разрешения длительности запроса
type DurationResolver interface {
	ResolveForQuery(ctx context.Context, explicitMinutes *int, packageID, serviceID *int64) *catalog.Resolution
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
