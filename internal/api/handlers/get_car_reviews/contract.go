package get_car_reviews

import (
	"context"

	reviewModels "github.com/driveshare/DS-RentalService/internal/service/reviews/models"
)

type CarReviewsService interface {
	ListReviewsForCar(ctx context.Context, carID string) (*reviewModels.ReviewListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
