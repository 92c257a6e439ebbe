package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	catalogSvc "github.com/m04kA/Salon-BookingService/internal/service/catalog"
	"github.com/m04kA/Salon-BookingService/pkg/ptr"
)

// UseCase use case создания бронирования
// Гарантия отсутствия двойного бронирования: проверка пересечений и вставка
// выполняются единой сериализуемой транзакцией с блокировкой строк
// therapist-day (FOR UPDATE). Результатам более ранней клиентской проверки
// доступности usecase не доверяет никогда
type UseCase struct {
	bookingRepo BookingRepository
	resolver    DurationResolver
	txManager   TransactionManager
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resolver DurationResolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		resolver:    resolver,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute выполняет use case создания бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: customer=%d, therapist=%d, date=%s, time=%s",
		req.CustomerID, req.TherapistID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем длительность и цену; на коммите фолбэк запрещен -
	// длительность обязана быть определенной (явной или из каталога)
	resolution, err := uc.resolver.ResolveForCommit(ctx, req.Duration, req.PackageID, req.ServiceID, req.Date)
	if err != nil {
		return nil, uc.mapResolveError(req, err)
	}

	// 3. Строим интервал кандидата
	candidate, err := domain.NewInterval(req.StartTime, resolution.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	price := resolution.Price
	if req.Price != nil {
		price = *req.Price
	}

	var result *domain.Booking

	// 4. Перепроверка пересечений + вставка как атомарная единица
	// относительно других писателей на тот же therapist-day
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем блокирующие бронирования мастера на дату с FOR UPDATE
		bookings, err := uc.bookingRepo.GetBlockingByDate(txCtx, req.Date, ptr.Ptr(req.TherapistID))
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %w", err)
			return fmt.Errorf("%w: failed to get bookings: %w", ErrTransient, err)
		}

		// 4.2. Проверяем пересечения тем же предикатом, что и read path
		conflicts := domain.OverlappingBookings(candidate, bookings)
		if len(conflicts) > 0 {
			uc.logger.Warn("CreateBooking: slot [%d, %d) for therapist=%d has %d conflict(s)",
				candidate.StartMinutes, candidate.EndMinutes, req.TherapistID, len(conflicts))
			return &ConflictError{
				ConflictCount: len(conflicts),
				Requested:     candidate,
			}
		}

		// 4.3. Слот свободен - создаем бронирование в начальном статусе pending
		booking := &domain.Booking{
			CustomerID:      req.CustomerID,
			TherapistID:     req.TherapistID,
			ServiceID:       req.ServiceID,
			PackageID:       req.PackageID,
			BookingDate:     req.Date,
			StartTime:       req.StartTime,
			DurationMinutes: resolution.DurationMinutes,
			Status:          domain.StatusPending,
			OfferingName:    resolution.OfferingName,
			Price:           price,
			Notes:           req.Notes,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %w", err)
			return fmt.Errorf("%w: failed to create booking: %w", ErrTransient, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Исчерпанные ретраи сериализации - тоже transient: весь вызов можно повторить
		var conflictErr *ConflictError
		if !errors.As(err, &conflictErr) && !errors.Is(err, ErrTransient) && !isKnown(err) {
			return nil, fmt.Errorf("%w: %v", ErrTransient, err)
		}
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d (customer=%d, therapist=%d)",
		result.ID, req.CustomerID, req.TherapistID)

	return &Response{
		ID:              result.ID,
		CustomerID:      result.CustomerID,
		TherapistID:     result.TherapistID,
		ServiceID:       result.ServiceID,
		PackageID:       result.PackageID,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		DurationMinutes: result.DurationMinutes,
		Status:          string(result.Status),
		OfferingName:    result.OfferingName,
		Price:           result.Price,
		Notes:           result.Notes,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}

// mapResolveError конвертирует ошибки разрешения каталога в ошибки usecase
func (uc *UseCase) mapResolveError(req *Request, err error) error {
	switch {
	case errors.Is(err, catalogSvc.ErrServiceNotFound):
		uc.logger.Warn("CreateBooking: service id=%v not found", req.ServiceID)
		return ErrServiceNotFound
	case errors.Is(err, catalogSvc.ErrPackageNotFound):
		uc.logger.Warn("CreateBooking: package id=%v not found", req.PackageID)
		return ErrPackageNotFound
	case errors.Is(err, catalogSvc.ErrPackageNotAvailable):
		uc.logger.Warn("CreateBooking: package id=%v not available on %s",
			req.PackageID, req.Date.Format(domain.DateFormat))
		return ErrPackageNotAvailable
	case errors.Is(err, catalogSvc.ErrDurationNotResolved):
		uc.logger.Warn("CreateBooking: duration not resolved for customer=%d", req.CustomerID)
		return ErrDurationRequired
	default:
		uc.logger.Error("CreateBooking: failed to resolve duration: %v", err)
		return fmt.Errorf("%w: failed to resolve duration: %v", ErrInternal, err)
	}
}

// isKnown проверяет, относится ли ошибка к известным ошибкам usecase
func isKnown(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrServiceNotFound) ||
		errors.Is(err, ErrPackageNotFound) ||
		errors.Is(err, ErrPackageNotAvailable) ||
		errors.Is(err, ErrDurationRequired) ||
		errors.Is(err, ErrInternal)
}
