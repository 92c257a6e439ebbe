package delete_customer_bookings

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/Salon-BookingService/internal/api/handlers"
)

const msgInvalidCustomerID = "некорректный ID клиента"

// DeleteResponse количество удаленных бронирований
type DeleteResponse struct {
	Deleted int64 `json:"deleted"`
}

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

// Handle DELETE /api/v1/customers/{customerId}/bookings
// Точка входа каскадного удаления клиента; обычный жизненный цикл
// бронирований через удаление не идет
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	customerIDStr := vars["customerId"]

	customerID, err := strconv.ParseInt(customerIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /customers/{id}/bookings - Invalid customer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCustomerID)
		return
	}

	deleted, err := h.service.DeleteCustomerBookings(r.Context(), customerID)
	if err != nil {
		h.logger.Error("DELETE /customers/{id}/bookings - Failed to delete bookings: customer_id=%d, error=%v",
			customerID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /customers/{id}/bookings - Deleted %d bookings: customer_id=%d", deleted, customerID)
	handlers.RespondJSON(w, http.StatusOK, DeleteResponse{Deleted: deleted})
}
