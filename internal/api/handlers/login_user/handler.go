package login_user

import (
	"errors"
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/service/users"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUserNotFound       = "пользователь с таким email не найден"
)

type Handler struct {
	service LoginService
	logger  Logger
}

func NewHandler(service LoginService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/login
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/login - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Login(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			h.logger.Warn("POST /auth/login - User not found: email=%s", req.Email)
			handlers.RespondNotFound(w, msgUserNotFound)

		default:
			h.logger.Error("POST /auth/login - Failed to login: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/login - User logged in: user_id=%s", user.ID)
	handlers.RespondJSON(w, http.StatusOK, user)
}
