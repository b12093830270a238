package get_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/service/cars"
)

const (
	msgCarNotFound = "автомобиль не найден"
)

type Handler struct {
	service GetCarService
	logger  Logger
}

func NewHandler(service GetCarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	car, err := h.service.GetCarByID(r.Context(), carID)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrCarNotFound):
			h.logger.Warn("GET /cars/{id} - Car not found: car_id=%s", carID)
			handlers.RespondNotFound(w, msgCarNotFound)

		default:
			h.logger.Error("GET /cars/{id} - Failed to get car: car_id=%s, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, car)
}
