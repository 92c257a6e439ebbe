package check_availability

import (
	"context"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
)

// UseCase use case проверки доступности слота
// Чистый read path: не мутирует состояние и работает без блокировок.
// Ответ advisory - окончательная проверка выполняется повторно на коммите
// в usecase create_booking тем же предикатом пересечения
type UseCase struct {
	bookingRepo BookingRepository
	resolver    DurationResolver
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	resolver DurationResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		resolver:    resolver,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности слота
// При недоступности хранилища деградирует до консервативного "занято"
// вместо ложного "свободно"
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: date=%s, time=%s, therapist=%v",
		req.Date.Format(domain.DateFormat), req.StartTime, req.TherapistID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Разрешаем эффективную длительность (явная -> пакет -> услуга -> фолбэк)
	resolution := uc.resolver.ResolveForQuery(ctx, req.DurationMinutes, req.PackageID, req.ServiceID)
	if resolution.UsedFallback {
		uc.logger.Info("CheckAvailability: duration resolved to %d-minute fallback", resolution.DurationMinutes)
	}

	// 3. Строим интервал кандидата
	candidate, err := domain.NewInterval(req.StartTime, resolution.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CheckAvailability: invalid start time %q: %v", req.StartTime, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	requested := RequestedInterval{
		StartMinutes:    candidate.StartMinutes,
		EndMinutes:      candidate.EndMinutes,
		DurationMinutes: resolution.DurationMinutes,
	}

	// 4. Загружаем блокирующие бронирования дня и считаем пересечения
	bookings, err := uc.bookingRepo.GetBlockingByDate(ctx, req.Date, req.TherapistID)
	if err != nil {
		// Деградация read path: при сбое хранилища отвечаем "занято",
		// чтобы не показать ложно свободный слот
		uc.logger.Error("CheckAvailability: storage failure, degrading to unavailable: %v", err)
		return &Response{
			Available: false,
			Requested: requested,
			Degraded:  true,
		}, nil
	}

	conflicts := domain.OverlappingBookings(candidate, bookings)

	uc.logger.Info("CheckAvailability: date=%s, time=%s -> available=%t, conflicts=%d",
		req.Date.Format(domain.DateFormat), req.StartTime, len(conflicts) == 0, len(conflicts))

	return &Response{
		Available:     len(conflicts) == 0,
		ConflictCount: len(conflicts),
		Requested:     requested,
	}, nil
}
