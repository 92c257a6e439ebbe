package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/Salon-BookingService/internal/domain"
	bookingRepo "github.com/m04kA/Salon-BookingService/internal/infra/storage/booking"
	"github.com/m04kA/Salon-BookingService/internal/service/bookings/models"
)

// Service сервис жизненного цикла бронирований
// Все изменения статуса проходят через конечный автомат domain.Booking:
// pending -> confirmed -> completed, отмена из pending/confirmed
type Service struct {
	bookingRepo BookingRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// GetCustomerBookings получает историю бронирований клиента
// Опционально фильтрует по статусу
func (s *Service) GetCustomerBookings(ctx context.Context, req *models.GetCustomerBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetCustomerBookings: fetching bookings for customer=%d, status=%v", req.CustomerID, req.Status)

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetCustomerBookings: invalid status=%s for customer=%d", *req.Status, req.CustomerID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByCustomerID(ctx, req.CustomerID, domainStatus)
	if err != nil {
		s.logger.Error("GetCustomerBookings: repository error for customer=%d: %v", req.CustomerID, err)
		return nil, fmt.Errorf("%w: GetCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetCustomerBookings: successfully fetched %d bookings for customer=%d", len(bookings), req.CustomerID)
	return models.FromDomainBookingList(bookings), nil
}

// GetTherapistBookings получает бронирования мастера с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
func (s *Service) GetTherapistBookings(ctx context.Context, req *models.GetTherapistBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetTherapistBookings: fetching bookings for therapist=%d", req.TherapistID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetTherapistBookings: invalid filter for therapist=%d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	bookings, err := s.bookingRepo.GetByTherapistWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetTherapistBookings: repository error for therapist=%d: %v", req.TherapistID, err)
		return nil, fmt.Errorf("%w: GetTherapistBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetTherapistBookings: successfully fetched %d bookings for therapist=%d", len(bookings), req.TherapistID)
	return models.FromDomainBookingList(bookings), nil
}

// Confirm переводит бронирование pending -> confirmed
// Повторный вызов на уже подтвержденном бронировании - no-op успех,
// чтобы клиентские ретраи по сети были безопасны
func (s *Service) Confirm(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Confirm: confirming booking id=%d", bookingID)
	return s.transition(ctx, bookingID, domain.StatusConfirmed)
}

// Complete переводит бронирование confirmed -> completed
// Прямой переход pending -> completed запрещен: визит должен быть
// подтвержден до завершения. Повторный вызов - no-op успех
func (s *Service) Complete(ctx context.Context, bookingID int64) (*models.BookingResponse, error) {
	s.logger.Info("Complete: completing booking id=%d", bookingID)
	return s.transition(ctx, bookingID, domain.StatusCompleted)
}

// Cancel отменяет бронирование из pending или confirmed
// Отмененное бронирование освобождает слот и исключается из проверок занятости.
// Повторная отмена - no-op успех
func (s *Service) Cancel(ctx context.Context, bookingID int64, req *models.CancelBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d", bookingID)

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		return nil, fmt.Errorf("%w: cancellation reason is too long", ErrInvalidInput)
	}

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		// Идемпотентный ретрай: уже отменено - успех без изменений
		if booking.Status == domain.StatusCancelled {
			s.logger.Info("Cancel: booking id=%d is already cancelled, no-op", bookingID)
			result = booking
			return nil
		}

		if err := booking.TransitionTo(domain.StatusCancelled); err != nil {
			s.logger.Warn("Cancel: invalid transition for booking id=%d from status=%s", bookingID, booking.Status)
			return ErrInvalidTransition
		}

		// БД выставляет cancelled_at/updated_at; ответ строим из обновленной строки
		cancelled, err := s.bookingRepo.Cancel(txCtx, bookingID, req.CancellationReason)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		result = cancelled
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", bookingID)
	return models.FromDomainBooking(result), nil
}

// DeleteCustomerBookings удаляет все бронирования клиента и возвращает их количество
// Вызывается только каскадным процессом удаления клиента; сам движок
// бронирования жизненный цикл через удаление не ведет
func (s *Service) DeleteCustomerBookings(ctx context.Context, customerID int64) (int64, error) {
	s.logger.Info("DeleteCustomerBookings: deleting bookings for customer=%d", customerID)

	deleted, err := s.bookingRepo.DeleteByCustomerID(ctx, customerID)
	if err != nil {
		s.logger.Error("DeleteCustomerBookings: repository error for customer=%d: %v", customerID, err)
		return 0, fmt.Errorf("%w: DeleteCustomerBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteCustomerBookings: deleted %d bookings for customer=%d", deleted, customerID)
	return deleted, nil
}

// transition выполняет переход статуса как read-modify-write в транзакции
// Строка бронирования блокируется (FOR UPDATE в GetByID), так что параллельные
// переходы на одном бронировании сериализуются
func (s *Service) transition(ctx context.Context, bookingID int64, target domain.BookingStatus) (*models.BookingResponse, error) {
	var result *domain.Booking

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.bookingRepo.GetByID(txCtx, bookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
		}

		// Идемпотентный ретрай: бронирование уже в целевом статусе
		if booking.Status == target {
			s.logger.Info("transition: booking id=%d is already %s, no-op", bookingID, target)
			result = booking
			return nil
		}

		if err := booking.TransitionTo(target); err != nil {
			s.logger.Warn("transition: invalid transition for booking id=%d: %s -> %s",
				bookingID, booking.Status, target)
			return ErrInvalidTransition
		}

		// Ответ строим из обновленной строки, updated_at выставляет БД
		updated, err := s.bookingRepo.UpdateStatus(txCtx, bookingID, target)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: transition - repository error: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("transition: booking id=%d moved to status=%s", bookingID, target)
	return models.FromDomainBooking(result), nil
}
