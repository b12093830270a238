package get_owner_cars

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
)

type Handler struct {
	service OwnerCarsService
	logger  Logger
}

func NewHandler(service OwnerCarsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/owners/{ownerId}/cars
//
// Для владельца без объявлений возвращается пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ownerID := mux.Vars(r)["ownerId"]

	result, err := h.service.ListCarsByOwner(r.Context(), ownerID)
	if err != nil {
		h.logger.Error("GET /owners/{ownerId}/cars - Failed to list cars: owner_id=%s, error=%v", ownerID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
