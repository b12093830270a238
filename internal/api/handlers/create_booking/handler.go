package create_booking

import (
	"errors"
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/api/middleware"
	"github.com/driveshare/DS-RentalService/internal/service/bookings"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgNoActiveSession    = "нет активной сессии"
	msgCarNotFound        = "автомобиль не найден"
	msgClientNotFound     = "клиент не найден"
	msgInvalidDateRange   = "дата окончания раньше даты начала"
	msgCarUnavailable     = "автомобиль недоступен для бронирования"
	msgDateConflict       = "даты пересекаются с существующим бронированием"
)

type Handler struct {
	service CreateBookingService
	logger  Logger
}

func NewHandler(service CreateBookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := middleware.GetSessionUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoActiveSession)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(sessionUser.ID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse dates: car_id=%s, error=%v", req.CarID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	booking, err := h.service.CreateBooking(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrCarNotFound):
			h.logger.Warn("POST /bookings - Car not found: car_id=%s, client_id=%s", req.CarID, sessionUser.ID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, bookings.ErrClientNotFound):
			h.logger.Warn("POST /bookings - Client not found: client_id=%s", sessionUser.ID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, bookings.ErrInvalidDateRange):
			h.logger.Warn("POST /bookings - Invalid date range: car_id=%s, start=%s, end=%s",
				req.CarID, req.StartDate, req.EndDate)
			handlers.RespondBadRequest(w, msgInvalidDateRange)

		case errors.Is(err, bookings.ErrCarUnavailable):
			h.logger.Warn("POST /bookings - Car unavailable: car_id=%s, client_id=%s", req.CarID, sessionUser.ID)
			handlers.RespondConflict(w, msgCarUnavailable)

		case errors.Is(err, bookings.ErrDateConflict):
			h.logger.Warn("POST /bookings - Date conflict: car_id=%s, start=%s, end=%s",
				req.CarID, req.StartDate, req.EndDate)
			handlers.RespondConflict(w, msgDateConflict)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: client_id=%s", sessionUser.ID)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: car_id=%s, client_id=%s, error=%v",
				req.CarID, sessionUser.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created: booking_id=%s, car_id=%s, client_id=%s",
		booking.ID, booking.CarID, booking.ClientID)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
