package get_current_user

import (
	"context"

	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

type SessionService interface {
	CurrentUser(ctx context.Context) *userModels.UserResponse
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
