package delete_car

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
)

type Handler struct {
	service DeleteCarService
	logger  Logger
}

func NewHandler(service DeleteCarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/cars/{id}
//
// Удаление идемпотентно: повторный запрос тоже успешен.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	if err := h.service.RemoveCar(r.Context(), carID); err != nil {
		h.logger.Error("DELETE /cars/{id} - Failed to remove car: car_id=%s, error=%v", carID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /cars/{id} - Car removed: car_id=%s", carID)
	handlers.RespondNoContent(w)
}
