package add_review

import (
	reviewModels "github.com/driveshare/DS-RentalService/internal/service/reviews/models"
	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

// AddReviewRequest HTTP request model.
// Автор отзыва берется из сессии, а не из тела запроса.
type AddReviewRequest struct {
	CarID   string `json:"carId"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddReviewRequest) ToServiceRequest(author *userModels.UserResponse) *reviewModels.AddReviewRequest {
	return &reviewModels.AddReviewRequest{
		CarID:    r.CarID,
		UserID:   author.ID,
		UserName: author.Name,
		Rating:   r.Rating,
		Comment:  r.Comment,
	}
}
