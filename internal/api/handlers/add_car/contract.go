package add_car

import (
	"context"

	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

type AddCarService interface {
	AddCar(ctx context.Context, req *carModels.AddCarRequest) (*carModels.CarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
