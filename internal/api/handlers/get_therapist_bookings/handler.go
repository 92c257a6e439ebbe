package get_therapist_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

const (
	msgInvalidTherapistID = "некорректный ID мастера"
	msgInvalidQuery       = "некорректные параметры фильтра"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/therapists/{therapistId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	therapistIDStr := vars["therapistId"]

	therapistID, err := strconv.ParseInt(therapistIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/bookings - Invalid therapist ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTherapistID)
		return
	}

	req, err := ParseQuery(therapistID, r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /therapists/{id}/bookings - Invalid query: therapist_id=%d, error=%v", therapistID, err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	resp, err := h.service.GetTherapistBookings(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /therapists/{id}/bookings - Failed to get bookings: therapist_id=%d, error=%v",
			therapistID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /therapists/{id}/bookings - Retrieved %d bookings: therapist_id=%d",
		len(resp.Bookings), therapistID)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
