package reviews

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/driveshare/DS-RentalService/internal/domain"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	"github.com/driveshare/DS-RentalService/internal/service/reviews/models"
)

// Service сервис отзывов (Review Board)
type Service struct {
	reviewRepo  ReviewRepository
	bookingRepo BookingRepository
	carRepo     CarRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса отзывов
func NewService(
	reviewRepo ReviewRepository,
	bookingRepo BookingRepository,
	carRepo CarRepository,
	logger Logger,
) *Service {
	return &Service{
		reviewRepo:  reviewRepo,
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		logger:      logger,
	}
}

// ListForCar получает отзывы на автомобиль в порядке добавления
func (s *Service) ListForCar(ctx context.Context, carID string) (*models.ReviewListResponse, error) {
	reviews, err := s.reviewRepo.GetByCarID(ctx, carID)
	if err != nil {
		s.logger.Error("ListForCar: repository error for car id=%s: %v", carID, err)
		return nil, fmt.Errorf("%w: ListForCar - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainReviewList(reviews), nil
}

// Add добавляет отзыв на автомобиль.
// Отзыв разрешен только после завершенной аренды этого автомобиля.
func (s *Service) Add(ctx context.Context, req *models.AddReviewRequest) (*models.ReviewResponse, error) {
	s.logger.Info("Add: car=%s, user=%s, rating=%d", req.CarID, req.UserID, req.Rating)

	if err := validateAdd(req); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, err
	}

	if _, err := s.carRepo.GetByID(ctx, req.CarID); err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Add: car id=%s not found", req.CarID)
			return nil, ErrCarNotFound
		}
		s.logger.Error("Add: failed to check car id=%s: %v", req.CarID, err)
		return nil, fmt.Errorf("%w: Add - failed to check car: %v", ErrInternal, err)
	}

	completed, err := s.bookingRepo.HasCompleted(ctx, req.UserID, req.CarID)
	if err != nil {
		s.logger.Error("Add: failed to check completed bookings: %v", err)
		return nil, fmt.Errorf("%w: Add - failed to check completed bookings: %v", ErrInternal, err)
	}
	if !completed {
		s.logger.Warn("Add: user id=%s has no completed booking for car id=%s", req.UserID, req.CarID)
		return nil, ErrNoCompletedBooking
	}

	review := &domain.Review{
		ID:       uuid.NewString(),
		CarID:    req.CarID,
		UserID:   req.UserID,
		UserName: req.UserName,
		Rating:   req.Rating,
		Comment:  req.Comment,
		Date:     models.NewReviewDate(time.Now()),
	}

	created, err := s.reviewRepo.Create(ctx, review)
	if err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully added review id=%s", created.ID)
	return models.FromDomainReview(created), nil
}

// validateAdd валидирует входные данные отзыва
func validateAdd(req *models.AddReviewRequest) error {
	if req.CarID == "" {
		return fmt.Errorf("%w: carId is required", ErrInvalidInput)
	}
	if req.UserID == "" {
		return fmt.Errorf("%w: userId is required", ErrInvalidInput)
	}
	if req.Rating < domain.MinRating || req.Rating > domain.MaxRating {
		return fmt.Errorf("%w: got %d", ErrInvalidRating, req.Rating)
	}
	if len(req.Comment) > domain.MaxCommentLength {
		return fmt.Errorf("%w: comment too long", ErrInvalidInput)
	}
	return nil
}
