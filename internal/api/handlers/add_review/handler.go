package add_review

import (
	"errors"
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/api/middleware"
	"github.com/driveshare/DS-RentalService/internal/service/reviews"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNoActiveSession    = "нет активной сессии"
	msgCarNotFound        = "автомобиль не найден"
	msgInvalidRating      = "оценка должна быть от 1 до 5"
	msgNoCompletedBooking = "отзыв доступен только после завершенной аренды"
	msgInvalidReviewInput = "некорректные данные отзыва"
)

type Handler struct {
	service AddReviewService
	logger  Logger
}

func NewHandler(service AddReviewService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reviews
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionUser, ok := middleware.GetSessionUser(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgNoActiveSession)
		return
	}

	var req AddReviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reviews - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	review, err := h.service.AddReview(r.Context(), req.ToServiceRequest(sessionUser))
	if err != nil {
		switch {
		case errors.Is(err, reviews.ErrCarNotFound):
			h.logger.Warn("POST /reviews - Car not found: car_id=%s, user_id=%s", req.CarID, sessionUser.ID)
			handlers.RespondNotFound(w, msgCarNotFound)

		case errors.Is(err, reviews.ErrInvalidRating):
			h.logger.Warn("POST /reviews - Invalid rating: car_id=%s, rating=%d", req.CarID, req.Rating)
			handlers.RespondBadRequest(w, msgInvalidRating)

		case errors.Is(err, reviews.ErrNoCompletedBooking):
			h.logger.Warn("POST /reviews - No completed booking: car_id=%s, user_id=%s", req.CarID, sessionUser.ID)
			handlers.RespondConflict(w, msgNoCompletedBooking)

		case errors.Is(err, reviews.ErrInvalidInput):
			h.logger.Warn("POST /reviews - Invalid input: car_id=%s, user_id=%s", req.CarID, sessionUser.ID)
			handlers.RespondBadRequest(w, msgInvalidReviewInput)

		default:
			h.logger.Error("POST /reviews - Failed to add review: car_id=%s, user_id=%s, error=%v",
				req.CarID, sessionUser.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reviews - Review added: review_id=%s, car_id=%s, user_id=%s",
		review.ID, review.CarID, review.UserID)
	handlers.RespondJSON(w, http.StatusCreated, review)
}
