package get_car

import (
	"context"

	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

type GetCarService interface {
	GetCarByID(ctx context.Context, id string) (*carModels.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
