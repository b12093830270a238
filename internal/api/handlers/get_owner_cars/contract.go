package get_owner_cars

import (
	"context"

	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

type OwnerCarsService interface {
	ListCarsByOwner(ctx context.Context, ownerID string) (*carModels.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
