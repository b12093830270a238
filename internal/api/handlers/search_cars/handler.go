package search_cars

import (
	"errors"
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/service/cars"
)

const (
	msgInvalidCategory = "некорректный класс автомобиля"
)

type Handler struct {
	service SearchService
	logger  Logger
}

func NewHandler(service SearchService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/cars?city=&category=&available=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := ParseQuery(r.URL.Query())

	result, err := h.service.Search(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrInvalidCategory):
			h.logger.Warn("GET /cars - Invalid category: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		default:
			h.logger.Error("GET /cars - Failed to search cars: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
