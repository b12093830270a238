package cars

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshare/DS-RentalService/internal/domain"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	userRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/user"
	"github.com/driveshare/DS-RentalService/internal/service/cars/models"
	"github.com/driveshare/DS-RentalService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(t *testing.T) (*Service, string) {
	t.Helper()

	users := userRepo.NewMemoryRepository()
	owner, err := users.Create(context.Background(), &domain.User{
		ID:    "owner-1",
		Name:  "Jean Dupont",
		Email: "jean@example.com",
		Role:  domain.RoleOwner,
	})
	require.NoError(t, err)

	return NewService(carRepo.NewMemoryRepository(), users, nopLogger{}), owner.ID
}

func addCarRequest(ownerID string) *models.AddCarRequest {
	return &models.AddCarRequest{
		OwnerID:     ownerID,
		Type:        "classic",
		Category:    "Berline",
		Brand:       "BMW",
		Model:       "Série 3",
		Year:        2021,
		PricePerDay: 85,
		City:        "Lyon",
		Description: "Комфортный седан",
		Images:      []string{"bmw.jpg"},
	}
}

func TestService_Add(t *testing.T) {
	ctx := context.Background()
	svc, ownerID := newTestService(t)

	car, err := svc.Add(ctx, addCarRequest(ownerID))
	require.NoError(t, err)

	assert.NotEmpty(t, car.ID)
	assert.Equal(t, ownerID, car.OwnerID)
	// Новое объявление всегда доступно
	assert.True(t, car.Available)
}

func TestService_Add_Validation(t *testing.T) {
	ctx := context.Background()
	svc, ownerID := newTestService(t)

	tests := []struct {
		name    string
		mutate  func(*models.AddCarRequest)
		wantErr error
	}{
		{"unknown owner", func(r *models.AddCarRequest) { r.OwnerID = "ghost" }, ErrOwnerNotFound},
		{"zero price", func(r *models.AddCarRequest) { r.PricePerDay = 0 }, ErrInvalidPrice},
		{"negative price", func(r *models.AddCarRequest) { r.PricePerDay = -10 }, ErrInvalidPrice},
		{"year too old", func(r *models.AddCarRequest) { r.Year = 1900 }, ErrInvalidYear},
		{"year too far in future", func(r *models.AddCarRequest) { r.Year = 2100 }, ErrInvalidYear},
		{"unknown category", func(r *models.AddCarRequest) { r.Category = "Tank" }, ErrInvalidCategory},
		{"unknown listing type", func(r *models.AddCarRequest) { r.Type = "premium" }, ErrInvalidListingType},
		{"missing brand", func(r *models.AddCarRequest) { r.Brand = "" }, ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := addCarRequest(ownerID)
			tt.mutate(req)

			_, err := svc.Add(ctx, req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Search(t *testing.T) {
	ctx := context.Background()
	svc, ownerID := newTestService(t)

	parisCar := addCarRequest(ownerID)
	parisCar.City = "Paris"
	parisCar.Category = "SUV"
	_, err := svc.Add(ctx, parisCar)
	require.NoError(t, err)

	_, err = svc.Add(ctx, addCarRequest(ownerID))
	require.NoError(t, err)

	t.Run("nil request returns everything", func(t *testing.T) {
		result, err := svc.Search(ctx, nil)
		require.NoError(t, err)
		assert.Len(t, result.Cars, 2)
	})

	t.Run("filter by city", func(t *testing.T) {
		result, err := svc.Search(ctx, &models.SearchRequest{City: ptr.Ptr("paris")})
		require.NoError(t, err)
		require.Len(t, result.Cars, 1)
		assert.Equal(t, "Paris", result.Cars[0].City)
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := svc.Search(ctx, &models.SearchRequest{Category: ptr.Ptr("Spaceship")})
		assert.ErrorIs(t, err, ErrInvalidCategory)
	})
}

func TestService_Update(t *testing.T) {
	ctx := context.Background()
	svc, ownerID := newTestService(t)

	car, err := svc.Add(ctx, addCarRequest(ownerID))
	require.NoError(t, err)

	t.Run("partial update keeps other fields", func(t *testing.T) {
		updated, err := svc.Update(ctx, car.ID, &models.UpdateCarRequest{
			PricePerDay: ptr.Ptr(int64(95)),
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, int64(95), updated.PricePerDay)
		assert.Equal(t, "BMW", updated.Brand)
	})

	t.Run("unknown id returns nil without error", func(t *testing.T) {
		updated, err := svc.Update(ctx, "missing", &models.UpdateCarRequest{
			PricePerDay: ptr.Ptr(int64(95)),
		})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, car.ID, &models.UpdateCarRequest{
			PricePerDay: ptr.Ptr(int64(-5)),
		})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})
}

func TestService_Remove_Idempotent(t *testing.T) {
	ctx := context.Background()
	svc, ownerID := newTestService(t)

	car, err := svc.Add(ctx, addCarRequest(ownerID))
	require.NoError(t, err)

	require.NoError(t, svc.Remove(ctx, car.ID))

	_, err = svc.GetByID(ctx, car.ID)
	assert.ErrorIs(t, err, ErrCarNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, svc.Remove(ctx, car.ID))
}
