package get_current_user

import (
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
)

const (
	msgNoActiveSession = "нет активной сессии"
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/auth/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user := h.service.CurrentUser(r.Context())
	if user == nil {
		h.logger.Warn("GET /auth/me - No active session")
		handlers.RespondUnauthorized(w, msgNoActiveSession)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, user)
}
