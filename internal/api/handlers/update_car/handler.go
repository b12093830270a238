package update_car

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/service/cars"
	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgCarNotFound        = "автомобиль не найден"
	msgInvalidPrice       = "цена за день должна быть положительной"
	msgInvalidYear        = "неправдоподобный год выпуска"
	msgInvalidCategory    = "некорректный класс автомобиля"
	msgInvalidListingType = "некорректный тип объявления"
	msgInvalidInput       = "некорректные данные объявления"
)

type Handler struct {
	service UpdateCarService
	logger  Logger
}

func NewHandler(service UpdateCarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/cars/{id}
//
// Обновление неизвестного объявления не ошибка: сервис возвращает nil,
// клиенту уходит 404 без деталей.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	carID := mux.Vars(r)["id"]

	var req carModels.UpdateCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /cars/{id} - Invalid request body: car_id=%s, error=%v", carID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.UpdateCar(r.Context(), carID, &req)
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrInvalidPrice):
			h.logger.Warn("PATCH /cars/{id} - Invalid price: car_id=%s", carID)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, cars.ErrInvalidYear):
			h.logger.Warn("PATCH /cars/{id} - Invalid year: car_id=%s", carID)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, cars.ErrInvalidCategory):
			h.logger.Warn("PATCH /cars/{id} - Invalid category: car_id=%s", carID)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, cars.ErrInvalidListingType):
			h.logger.Warn("PATCH /cars/{id} - Invalid listing type: car_id=%s", carID)
			handlers.RespondBadRequest(w, msgInvalidListingType)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("PATCH /cars/{id} - Invalid input: car_id=%s", carID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /cars/{id} - Failed to update car: car_id=%s, error=%v", carID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if car == nil {
		h.logger.Warn("PATCH /cars/{id} - Car not found: car_id=%s", carID)
		handlers.RespondNotFound(w, msgCarNotFound)
		return
	}

	h.logger.Info("PATCH /cars/{id} - Car updated: car_id=%s", carID)
	handlers.RespondJSON(w, http.StatusOK, car)
}
