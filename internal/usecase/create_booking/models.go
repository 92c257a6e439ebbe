package create_booking

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	CustomerID  int64            // ID клиента
	TherapistID int64            // ID мастера
	ServiceID   *int64           // Услуга (опционально, взаимоисключимо с пакетом)
	PackageID   *int64           // Пакет (опционально)
	Date        time.Time        // Дата бронирования (без времени)
	StartTime   types.TimeString // Время начала ("10:00")
	Duration    *int             // Явная длительность в минутах (опционально)
	Price       *float64         // Явная цена (опционально, иначе из каталога)
	Notes       *string          // Заметки (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          int64
	CustomerID  int64
	TherapistID int64
	ServiceID   *int64
	PackageID   *int64

	BookingDate     time.Time
	StartTime       types.TimeString
	DurationMinutes int
	Status          string

	// Денормализованные данные каталога
	OfferingName string
	Price        float64
	Notes        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
