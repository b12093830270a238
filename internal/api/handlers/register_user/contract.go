package register_user

import (
	"context"

	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

type RegisterService interface {
	Register(ctx context.Context, req *userModels.RegisterRequest) (*userModels.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
