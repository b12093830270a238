package get_client_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
)

type Handler struct {
	service ClientBookingsService
	logger  Logger
}

func NewHandler(service ClientBookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/clients/{clientId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["clientId"]

	result, err := h.service.ListBookingsForClient(r.Context(), clientID)
	if err != nil {
		h.logger.Error("GET /clients/{clientId}/bookings - Failed to list bookings: client_id=%s, error=%v",
			clientID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
