package logout_user

import (
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
)

type Handler struct {
	service LogoutService
	logger  Logger
}

func NewHandler(service LogoutService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/auth/logout
//
// Выход идемпотентен: без активной сессии запрос тоже успешен.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	h.service.Logout(r.Context())

	h.logger.Info("POST /auth/logout - Session cleared")
	handlers.RespondNoContent(w)
}
