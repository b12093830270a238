package search_cars

import (
	"context"

	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

type SearchService interface {
	Search(ctx context.Context, req *carModels.SearchRequest) (*carModels.CarListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
