package add_car

import (
	"errors"
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/api/middleware"
	"github.com/driveshare/DS-RentalService/internal/service/cars"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoActiveSession    = "нет активной сессии"
	msgOwnerNotFound      = "владелец не найден"
	msgInvalidPrice       = "цена за день должна быть положительной"
	msgInvalidYear        = "неправдоподобный год выпуска"
	msgInvalidCategory    = "некорректный класс автомобиля"
	msgInvalidListingType = "некорректный тип объявления"
	msgInvalidInput       = "некорректные данные объявления"
)

type Handler struct {
	service AddCarService
	logger  Logger
}

func NewHandler(service AddCarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/cars
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := middleware.GetSessionUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoActiveSession)
		return
	}

	var req AddCarRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /cars - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	car, err := h.service.AddCar(r.Context(), req.ToServiceRequest(sessionUser.ID))
	if err != nil {
		switch {
		case errors.Is(err, cars.ErrOwnerNotFound):
			h.logger.Warn("POST /cars - Owner not found: owner_id=%s", sessionUser.ID)
			handlers.RespondNotFound(w, msgOwnerNotFound)

		case errors.Is(err, cars.ErrInvalidPrice):
			h.logger.Warn("POST /cars - Invalid price: owner_id=%s, price=%d", sessionUser.ID, req.PricePerDay)
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, cars.ErrInvalidYear):
			h.logger.Warn("POST /cars - Invalid year: owner_id=%s, year=%d", sessionUser.ID, req.Year)
			handlers.RespondBadRequest(w, msgInvalidYear)

		case errors.Is(err, cars.ErrInvalidCategory):
			h.logger.Warn("POST /cars - Invalid category: owner_id=%s, category=%s", sessionUser.ID, req.Category)
			handlers.RespondBadRequest(w, msgInvalidCategory)

		case errors.Is(err, cars.ErrInvalidListingType):
			h.logger.Warn("POST /cars - Invalid listing type: owner_id=%s, type=%s", sessionUser.ID, req.Type)
			handlers.RespondBadRequest(w, msgInvalidListingType)

		case errors.Is(err, cars.ErrInvalidInput):
			h.logger.Warn("POST /cars - Invalid input: owner_id=%s", sessionUser.ID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /cars - Failed to add car: owner_id=%s, error=%v", sessionUser.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /cars - Car added: car_id=%s, owner_id=%s", car.ID, sessionUser.ID)
	handlers.RespondJSON(w, http.StatusCreated, car)
}
