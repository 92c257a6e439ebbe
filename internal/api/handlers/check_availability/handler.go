package check_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
	checkAvailability "github.com/m04kA/Salon-BookingService/internal/usecase/check_availability"
)

const (
	msgMissingDate    = "дата обязательна"
	msgMissingTime    = "время начала обязательно"
	msgInvalidParams  = "некорректные параметры запроса, ожидается date=YYYY-MM-DD и time=HH:MM"
	msgInvalidRequest = "некорректные параметры запроса"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM),
// durationMinutes | packageId | serviceId (источник длительности, опционально),
// therapistId (опционально; без него проверка глобальная)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /availability - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := query.Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /availability - Missing time")
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	// Некорректные date/time - это ошибка валидации, а не "слот свободен"
	useCaseReq, err := ToUseCaseRequest(
		dateStr,
		timeStr,
		query.Get("durationMinutes"),
		query.Get("packageId"),
		query.Get("serviceId"),
		query.Get("therapistId"),
	)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		default:
			h.logger.Error("GET /availability - Failed to check availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - date=%s, time=%s -> available=%t, conflicts=%d",
		dateStr, timeStr, result.Available, result.ConflictCount)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
