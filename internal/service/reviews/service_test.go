package reviews

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshare/DS-RentalService/internal/domain"
	bookingRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/booking"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	reviewRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/review"
	"github.com/driveshare/DS-RentalService/internal/service/reviews/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(t *testing.T) *Service {
	t.Helper()
	ctx := context.Background()

	cars := carRepo.NewMemoryRepository()
	_, err := cars.Create(ctx, &domain.Car{
		ID:          "car-1",
		OwnerID:     "owner-1",
		Type:        domain.ListingClassic,
		Category:    domain.CategorySUV,
		Brand:       "Tesla",
		Model:       "Model Y",
		Year:        2023,
		PricePerDay: 120,
		City:        "Paris",
		Available:   true,
	})
	require.NoError(t, err)

	bookings := bookingRepo.NewMemoryRepository()
	// У client-1 завершенная аренда car-1, у client-2 только активная
	_, err = bookings.Create(ctx, &domain.Booking{
		ID: "b1", CarID: "car-1", ClientID: "client-1", OwnerID: "owner-1",
		StartDate: time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusCompleted,
	})
	require.NoError(t, err)
	_, err = bookings.Create(ctx, &domain.Booking{
		ID: "b2", CarID: "car-1", ClientID: "client-2", OwnerID: "owner-1",
		StartDate: time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, time.March, 12, 0, 0, 0, 0, time.UTC),
		Status:    domain.StatusConfirmed,
	})
	require.NoError(t, err)

	return NewService(reviewRepo.NewMemoryRepository(), bookings, cars, nopLogger{})
}

func addReviewRequest(userID string, rating int) *models.AddReviewRequest {
	return &models.AddReviewRequest{
		CarID:    "car-1",
		UserID:   userID,
		UserName: "Marie Lavoie",
		Rating:   rating,
		Comment:  "Отличная машина",
	}
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	review, err := svc.Add(ctx, addReviewRequest("client-1", 5))
	require.NoError(t, err)

	assert.NotEmpty(t, review.ID)
	assert.Equal(t, "car-1", review.CarID)
	assert.Equal(t, "Marie Lavoie", review.UserName)
	assert.Equal(t, 5, review.Rating)
	assert.NotEmpty(t, review.Date)
}

func TestService_Add_Errors(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	t.Run("rating out of range", func(t *testing.T) {
		_, err := svc.Add(ctx, addReviewRequest("client-1", 0))
		assert.ErrorIs(t, err, ErrInvalidRating)

		_, err = svc.Add(ctx, addReviewRequest("client-1", 6))
		assert.ErrorIs(t, err, ErrInvalidRating)
	})

	t.Run("unknown car", func(t *testing.T) {
		req := addReviewRequest("client-1", 4)
		req.CarID = "ghost"
		_, err := svc.Add(ctx, req)
		assert.ErrorIs(t, err, ErrCarNotFound)
	})

	t.Run("active booking is not enough", func(t *testing.T) {
		_, err := svc.Add(ctx, addReviewRequest("client-2", 4))
		assert.ErrorIs(t, err, ErrNoCompletedBooking)
	})

	t.Run("no booking at all", func(t *testing.T) {
		_, err := svc.Add(ctx, addReviewRequest("stranger", 4))
		assert.ErrorIs(t, err, ErrNoCompletedBooking)
	})
}

func TestService_ListForCar(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t)

	_, err := svc.Add(ctx, addReviewRequest("client-1", 5))
	require.NoError(t, err)

	list, err := svc.ListForCar(ctx, "car-1")
	require.NoError(t, err)
	require.Len(t, list.Reviews, 1)
	assert.Equal(t, 5, list.Reviews[0].Rating)

	// Неизвестный автомобиль - пустой список, а не ошибка
	empty, err := svc.ListForCar(ctx, "ghost")
	require.NoError(t, err)
	assert.Empty(t, empty.Reviews)
}
