package get_car_reviews

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
)

type Handler struct {
	service CarReviewsService
	logger  Logger
}

func NewHandler(service CarReviewsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars/{id}/reviews
//
// Для автомобиля без отзывов (и для неизвестного автомобиля)
// возвращается пустой список.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	result, err := h.service.ListReviewsForCar(r.Context(), carID)
	if err != nil {
		h.logger.Error("GET /cars/{id}/reviews - Failed to list reviews: car_id=%s, error=%v", carID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
