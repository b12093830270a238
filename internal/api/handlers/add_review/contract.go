package add_review

import (
	"context"

	reviewModels "github.com/driveshare/DS-RentalService/internal/service/reviews/models"
)

type AddReviewService interface {
	AddReview(ctx context.Context, req *reviewModels.AddReviewRequest) (*reviewModels.ReviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
