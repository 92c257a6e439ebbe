package check_availability

import (
	"time"

	"github.com/m04kA/Salon-BookingService/pkg/types"
)

// Request модель запроса проверки доступности слота
type Request struct {
	Date            time.Time        // Дата запрашиваемого слота (без времени)
	StartTime       types.TimeString // Время начала слота ("10:00")
	DurationMinutes *int             // Явная длительность (опционально)
	PackageID       *int64           // Источник длительности: пакет (опционально)
	ServiceID       *int64           // Источник длительности: услуга (опционально)
	TherapistID     *int64           // Мастер; nil - глобальная проверка по всем мастерам
}

// RequestedInterval запрошенный интервал в минутах от начала дня
type RequestedInterval struct {
	StartMinutes    int
	EndMinutes      int
	DurationMinutes int
}

// Response модель ответа проверки доступности
type Response struct {
	Available     bool
	ConflictCount int
	Requested     RequestedInterval

	// Degraded выставляется, когда хранилище недоступно и ответ
	// консервативно деградирован до "занято"
	Degraded bool
}
