package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	createBooking "github.com/m04kA/Salon-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgSlotNotAvailable    = "выбранный временной слот занят"
	msgServiceNotFound     = "услуга не найдена"
	msgPackageNotFound     = "пакет не найден"
	msgPackageNotAvailable = "пакет недоступен на выбранную дату"
	msgDurationRequired    = "требуется положительная длительность (явная или из услуги/пакета)"
	msgInvalidInput        = "некорректные данные запроса"
	msgTransient           = "временная ошибка хранилища, повторите запрос"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var conflictErr *createBooking.ConflictError

		switch {
		case errors.As(err, &conflictErr):
			h.logger.Warn("POST /bookings - Slot not available: customer=%d, therapist=%d, conflicts=%d",
				req.CustomerID, req.TherapistID, conflictErr.ConflictCount)
			handlers.RespondConflict(w, FromConflictError(msgSlotNotAvailable, conflictErr))

		case errors.Is(err, createBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: customer=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrPackageNotFound):
			h.logger.Warn("POST /bookings - Package not found: customer=%d", req.CustomerID)
			handlers.RespondNotFound(w, msgPackageNotFound)

		case errors.Is(err, createBooking.ErrPackageNotAvailable):
			h.logger.Warn("POST /bookings - Package not available: customer=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgPackageNotAvailable)

		case errors.Is(err, createBooking.ErrDurationRequired):
			h.logger.Warn("POST /bookings - Duration required: customer=%d", req.CustomerID)
			handlers.RespondBadRequest(w, msgDurationRequired)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrTransient):
			h.logger.Error("POST /bookings - Transient storage failure: customer=%d, therapist=%d, error=%v",
				req.CustomerID, req.TherapistID, err)
			handlers.RespondServiceUnavailable(w, msgTransient)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: customer=%d, therapist=%d, error=%v",
				req.CustomerID, req.TherapistID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, customer=%d, therapist=%d",
		result.ID, req.CustomerID, req.TherapistID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
