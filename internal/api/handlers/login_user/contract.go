package login_user

import (
	"context"

	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

type LoginService interface {
	Login(ctx context.Context, email string) (*userModels.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
