package register_user

import (
	"errors"
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	"github.com/driveshare/DS-RentalService/internal/service/users"
	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgEmailTaken         = "email уже зарегистрирован"
	msgInvalidRole        = "некорректная роль пользователя"
	msgInvalidInput       = "некорректные данные регистрации"
)

type Handler struct {
	service RegisterService
	logger  Logger
}

func NewHandler(service RegisterService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/register
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req userModels.RegisterRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/register - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := h.service.Register(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			h.logger.Warn("POST /auth/register - Email taken: email=%s", req.Email)
			handlers.RespondConflict(w, msgEmailTaken)

		case errors.Is(err, users.ErrInvalidRole):
			h.logger.Warn("POST /auth/register - Invalid role: role=%s", req.Role)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, users.ErrInvalidInput):
			h.logger.Warn("POST /auth/register - Invalid input: email=%s", req.Email)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /auth/register - Failed to register user: email=%s, error=%v", req.Email, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/register - User registered: user_id=%s, email=%s", user.ID, user.Email)
	handlers.RespondJSON(w, http.StatusCreated, user)
}
