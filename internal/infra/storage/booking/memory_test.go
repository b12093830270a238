package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

func testBooking(id, carID, clientID string, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:         id,
		CarID:      carID,
		ClientID:   clientID,
		OwnerID:    "owner-1",
		StartDate:  time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2024, time.March, 3, 0, 0, 0, 0, time.UTC),
		TotalPrice: 255,
		Status:     status,
	}
}

func TestMemoryRepository_Create_StampsTimestamps(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	created, err := repo.Create(ctx, testBooking("b1", "c1", "u1", domain.StatusPending))
	require.NoError(t, err)

	assert.False(t, created.CreatedAt.IsZero())
	assert.Equal(t, created.CreatedAt, created.UpdatedAt)
}

func TestMemoryRepository_GetActiveByCarID(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, testBooking("b1", "c1", "u1", domain.StatusPending))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking("b2", "c1", "u2", domain.StatusConfirmed))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking("b3", "c1", "u3", domain.StatusCancelled))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking("b4", "c2", "u1", domain.StatusPending))
	require.NoError(t, err)

	active, err := repo.GetActiveByCarID(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "b1", active[0].ID)
	assert.Equal(t, "b2", active[1].ID)
}

func TestMemoryRepository_UpdateStatus_CompareAndSwap(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, testBooking("b1", "c1", "u1", domain.StatusPending))
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "b1", domain.StatusPending, domain.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmed, updated.Status)

	// Второй переход из pending проигрывает: статус уже confirmed
	_, err = repo.UpdateStatus(ctx, "b1", domain.StatusPending, domain.StatusRejected)
	assert.ErrorIs(t, err, ErrStatusConflict)

	_, err = repo.UpdateStatus(ctx, "missing", domain.StatusPending, domain.StatusConfirmed)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestMemoryRepository_HasCompleted(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	_, err := repo.Create(ctx, testBooking("b1", "c1", "u1", domain.StatusCompleted))
	require.NoError(t, err)
	_, err = repo.Create(ctx, testBooking("b2", "c2", "u1", domain.StatusConfirmed))
	require.NoError(t, err)

	has, err := repo.HasCompleted(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.True(t, has)

	// Активная аренда не считается завершенной
	has, err = repo.HasCompleted(ctx, "u1", "c2")
	require.NoError(t, err)
	assert.False(t, has)

	has, err = repo.HasCompleted(ctx, "u2", "c1")
	require.NoError(t, err)
	assert.False(t, has)
}

func TestMemoryRepository_ListsKeepCreationOrder(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepository()

	for _, id := range []string{"b1", "b2", "b3"} {
		_, err := repo.Create(ctx, testBooking(id, "c1", "u1", domain.StatusPending))
		require.NoError(t, err)
	}

	list, err := repo.GetByClientID(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "b1", list[0].ID)
	assert.Equal(t, "b2", list[1].ID)
	assert.Equal(t, "b3", list[2].ID)
}
