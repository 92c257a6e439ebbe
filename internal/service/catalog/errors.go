package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("catalog: service not found")

	// ErrPackageNotFound возвращается, когда пакет не найден в каталоге
	ErrPackageNotFound = errors.New("catalog: package not found")

	// ErrPackageNotAvailable возвращается, когда пакет неактивен или дата
	// бронирования вне окна действия пакета
	ErrPackageNotAvailable = errors.New("catalog: package is not available on this date")

	// ErrDurationNotResolved возвращается, когда для коммита бронирования
	// не удалось получить определенную положительную длительность
	ErrDurationNotResolved = errors.New("catalog: duration could not be resolved")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("catalog: internal error")
)
