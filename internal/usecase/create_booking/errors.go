package create_booking

import (
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

var (
	// ErrSlotNotAvailable возвращается, когда слот занят пересекающимся бронированием
	// Конкретные детали несет ConflictError, который разворачивается в эту ошибку
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrServiceNotFound возвращается, когда услуга не найдена
	ErrServiceNotFound = errors.New("create_booking: service not found")

	// ErrPackageNotFound возвращается, когда пакет не найден
	ErrPackageNotFound = errors.New("create_booking: package not found")

	// ErrPackageNotAvailable возвращается, когда пакет неактивен или дата вне окна действия
	ErrPackageNotAvailable = errors.New("create_booking: package is not available on this date")

	// ErrDurationRequired возвращается, когда длительность не разрешима ни из
	// явного значения, ни из каталога; фолбэк на коммите запрещен
	ErrDurationRequired = errors.New("create_booking: a definite positive duration is required")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrTransient возвращается при сбое хранилища во время проверки-и-вставки
	// Безопасно повторить весь вызов целиком: ретрай заново выполнит проверку пересечений
	ErrTransient = errors.New("create_booking: transient storage error")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)

// ConflictError возвращается, когда на момент коммита существует реальное
// пересекающееся бронирование. Несет количество конфликтов и запрошенный
// интервал; errors.Is(err, ErrSlotNotAvailable) возвращает true
type ConflictError struct {
	ConflictCount int
	Requested     domain.Interval
}

// Error реализует интерфейс error
func (e *ConflictError) Error() string {
	return fmt.Sprintf("create_booking: slot [%d, %d) is not available, %d conflicting booking(s)",
		e.Requested.StartMinutes, e.Requested.EndMinutes, e.ConflictCount)
}

// Unwrap позволяет errors.Is сопоставлять с ErrSlotNotAvailable
func (e *ConflictError) Unwrap() error {
	return ErrSlotNotAvailable
}
