package middleware

import (
	"context"
	"net/http"

	"github.com/driveshare/DS-RentalService/internal/api/handlers"
	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

// SessionReader читает пользователя текущей сессии
type SessionReader interface {
	CurrentUser(ctx context.Context) *userModels.UserResponse
}

type sessionUserKey struct{}

// Auth middleware, пропускающее только запросы с активной сессией.
// Пользователь сессии кладется в контекст запроса.
func Auth(session SessionReader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := session.CurrentUser(r.Context())
			if user == nil {
				handlers.RespondUnauthorized(w, "требуется вход в систему")
				return
			}
			ctx := context.WithValue(r.Context(), sessionUserKey{}, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionUser достает пользователя сессии из контекста запроса
func GetSessionUser(ctx context.Context) (*userModels.UserResponse, bool) {
	user, ok := ctx.Value(sessionUserKey{}).(*userModels.UserResponse)
	return user, ok
}
