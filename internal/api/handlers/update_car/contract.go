package update_car

import (
	"context"

	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

type UpdateCarService interface {
	UpdateCar(ctx context.Context, id string, req *carModels.UpdateCarRequest) (*carModels.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
