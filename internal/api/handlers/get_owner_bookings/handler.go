package get_owner_bookings

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
)

type Handler struct {
	service OwnerBookingsService
	logger  Logger
}

func NewHandler(service OwnerBookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	result, err := h.service.ListBookingsForOwner(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("GET /owners/{ownerId}/bookings - Failed to list bookings: owner_id=%s, error=%v",
			ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
