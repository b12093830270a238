package models

import (
	"time"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// Request модели

// AddReviewRequest запрос на добавление отзыва
type AddReviewRequest struct {
	CarID    string `json:"carId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

// Response модели

// ReviewResponse ответ с данными отзыва
type ReviewResponse struct {
	ID       string `json:"id"`
	CarID    string `json:"carId"`
	UserID   string `json:"userId"`
	UserName string `json:"userName"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
	Date     string `json:"date"` // "2024-03-04"
}

// ReviewListResponse ответ со списком отзывов
type ReviewListResponse struct {
	Reviews []ReviewResponse `json:"reviews"`
}

// FromDomainReview конвертирует domain модель в DTO
func FromDomainReview(r *domain.Review) *ReviewResponse {
	if r == nil {
		return nil
	}
	return &ReviewResponse{
		ID:       r.ID,
		CarID:    r.CarID,
		UserID:   r.UserID,
		UserName: r.UserName,
		Rating:   r.Rating,
		Comment:  r.Comment,
		Date:     r.Date.Format(domain.DateFormat),
	}
}

// FromDomainReviewList конвертирует список domain моделей в DTO
func FromDomainReviewList(reviews []*domain.Review) *ReviewListResponse {
	resp := &ReviewListResponse{Reviews: make([]ReviewResponse, 0, len(reviews))}
	for _, review := range reviews {
		if reviewResp := FromDomainReview(review); reviewResp != nil {
			resp.Reviews = append(resp.Reviews, *reviewResp)
		}
	}
	return resp
}

// NewReviewDate возвращает дату отзыва: календарный день в UTC
func NewReviewDate(now time.Time) time.Time {
	return now.UTC().Truncate(24 * time.Hour)
}
