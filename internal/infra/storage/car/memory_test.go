package car

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshare/DS-RentalService/internal/domain"
	"github.com/driveshare/DS-RentalService/pkg/ptr"
)

func testCar(id, city string, category domain.CarCategory, available bool) *domain.Car {
	return &domain.Car{
		ID:          id,
		OwnerID:     "owner-1",
		Type:        domain.ListingClassic,
		Category:    category,
		Brand:       "Renault",
		Model:       "Clio",
		Year:        2022,
		PricePerDay: 45,
		City:        city,
		Images:      []string{"img1.jpg"},
		Available:   available,
	}
}

func TestMemoryRepository_GetAll_Filter(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, testCar("c1", "Paris", domain.CategorySUV, true))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testCar("c2", "Lyon", domain.CategoryBerline, true))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testCar("c3", "Paris", domain.CategoryCitadine, false))
	require.NoError(t, err)

	t.Run("empty filter returns all in insertion order", func(t *testing.T) {
		cars, err := repo.GetAll(ctx, domain.CarFilter{})
		require.NoError(t, err)
		require.Len(t, cars, 3)
		assert.Equal(t, "c1", cars[0].ID)
		assert.Equal(t, "c2", cars[1].ID)
		assert.Equal(t, "c3", cars[2].ID)
	})

	t.Run("city is case-insensitive substring", func(t *testing.T) {
		cars, err := repo.GetAll(ctx, domain.CarFilter{City: ptr.Ptr("par")})
		require.NoError(t, err)
		require.Len(t, cars, 2)
		assert.Equal(t, "c1", cars[0].ID)
		assert.Equal(t, "c3", cars[1].ID)
	})

	t.Run("category is exact match", func(t *testing.T) {
		cars, err := repo.GetAll(ctx, domain.CarFilter{Category: ptr.Ptr(domain.CategoryBerline)})
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Equal(t, "c2", cars[0].ID)
	})

	t.Run("available only", func(t *testing.T) {
		cars, err := repo.GetAll(ctx, domain.CarFilter{AvailableOnly: true})
		require.NoError(t, err)
		require.Len(t, cars, 2)
	})

	t.Run("options combine with AND", func(t *testing.T) {
		cars, err := repo.GetAll(ctx, domain.CarFilter{City: ptr.Ptr("Paris"), AvailableOnly: true})
		require.NoError(t, err)
		require.Len(t, cars, 1)
		assert.Equal(t, "c1", cars[0].ID)
	})

	t.Run("no matches returns empty slice", func(t *testing.T) {
		cars, err := repo.GetAll(ctx, domain.CarFilter{City: ptr.Ptr("Marseille")})
		require.NoError(t, err)
		assert.Empty(t, cars)
	})
}

func TestMemoryRepository_GetByID_NotFound(t *testing.T) {
	repo := NewMemoryRepository()

	_, err := repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestMemoryRepository_Update(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, testCar("c1", "Paris", domain.CategorySUV, true))
	require.NoError(t, err)

	updated, err := repo.Update(ctx, "c1", domain.CarUpdate{
		PricePerDay: ptr.Ptr(int64(60)),
		Available:   ptr.Ptr(false),
	})
	require.NoError(t, err)

	// Указанные поля обновлены, остальные не тронуты
	assert.Equal(t, int64(60), updated.PricePerDay)
	assert.False(t, updated.Available)
	assert.Equal(t, "Paris", updated.City)
	assert.Equal(t, "Renault", updated.Brand)

	_, err = repo.Update(ctx, "missing", domain.CarUpdate{})
	assert.ErrorIs(t, err, ErrCarNotFound)
}

func TestMemoryRepository_Delete_Idempotent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, testCar("c1", "Paris", domain.CategorySUV, true))
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, "c1"))
	_, err = repo.GetByID(ctx, "c1")
	assert.ErrorIs(t, err, ErrCarNotFound)

	// Повторное удаление не ошибка
	require.NoError(t, repo.Delete(ctx, "c1"))
	require.NoError(t, repo.Delete(ctx, "never-existed"))
}

func TestMemoryRepository_ReturnsClones(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, testCar("c1", "Paris", domain.CategorySUV, true))
	require.NoError(t, err)

	first, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)

	// Мутация полученной записи не должна влиять на хранилище
	first.City = "Lyon"
	first.Images[0] = "hacked.jpg"

	second, err := repo.GetByID(ctx, "c1")
	require.NoError(t, err)
	assert.Equal(t, "Paris", second.City)
	assert.Equal(t, "img1.jpg", second.Images[0])
}
