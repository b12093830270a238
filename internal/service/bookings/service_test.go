package bookings

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/driveshare/DS-RentalService/internal/domain"
	bookingRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/booking"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	userRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/user"
	"github.com/driveshare/DS-RentalService/internal/service/bookings/models"
	"github.com/driveshare/DS-RentalService/pkg/memtxmanager"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fixture struct {
	svc      *Service
	bookings *bookingRepo.MemoryRepository
	cars     *carRepo.MemoryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	users := userRepo.NewMemoryRepository()
	_, err := users.Create(ctx, &domain.User{
		ID: "client-1", Name: "Marie", Email: "marie@example.com", Role: domain.RoleClient,
	})
	require.NoError(t, err)

	cars := carRepo.NewMemoryRepository()
	_, err = cars.Create(ctx, &domain.Car{
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
	_, err = cars.Create(ctx, &domain.Car{
		ID:          "car-2",
		OwnerID:     "owner-1",
		Type:        domain.ListingClassic,
		Category:    domain.CategoryPickup,
		Brand:       "Ford",
		Model:       "F-150",
		Year:        2020,
		PricePerDay: 110,
		City:        "Marseille",
		Available:   false,
	})
	require.NoError(t, err)

	bookings := bookingRepo.NewMemoryRepository()
	svc := NewService(bookings, cars, users, memtxmanager.NewTransactionManager(), nopLogger{})

	return &fixture{svc: svc, bookings: bookings, cars: cars}
}

func createRequest(carID string, start, end time.Time) *models.CreateBookingRequest {
	return &models.CreateBookingRequest{
		CarID:     carID,
		ClientID:  "client-1",
		StartDate: start,
		EndDate:   end,
	}
}

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	booking, err := f.svc.Create(ctx, createRequest("car-1", day(1), day(3)))
	require.NoError(t, err)

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "car-1", booking.CarID)
	assert.Equal(t, "client-1", booking.ClientID)
	// ownerId снимается с объявления в момент создания
	assert.Equal(t, "owner-1", booking.OwnerID)
	assert.Equal(t, string(domain.StatusPending), booking.Status)
	// 120 * 2 дня + сервисный сбор 15
	assert.Equal(t, int64(255), booking.TotalPrice)
}

func TestService_Create_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	tests := []struct {
		name    string
		req     *models.CreateBookingRequest
		wantErr error
	}{
		{"unknown car", createRequest("ghost", day(1), day(3)), ErrCarNotFound},
		{"unavailable car", createRequest("car-2", day(1), day(3)), ErrCarUnavailable},
		{"end before start", createRequest("car-1", day(5), day(3)), ErrInvalidDateRange},
		{
			"unknown client",
			&models.CreateBookingRequest{CarID: "car-1", ClientID: "ghost", StartDate: day(1), EndDate: day(3)},
			ErrClientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.svc.Create(ctx, tt.req)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_Create_DateConflict(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.svc.Create(ctx, createRequest("car-1", day(1), day(5)))
	require.NoError(t, err)

	// Пересечение с активным бронированием - конфликт
	_, err = f.svc.Create(ctx, createRequest("car-1", day(4), day(8)))
	assert.ErrorIs(t, err, ErrDateConflict)

	// Общий граничный день тоже считается пересечением
	_, err = f.svc.Create(ctx, createRequest("car-1", day(5), day(7)))
	assert.ErrorIs(t, err, ErrDateConflict)

	// Непересекающиеся даты проходят
	_, err = f.svc.Create(ctx, createRequest("car-1", day(10), day(12)))
	assert.NoError(t, err)
}

func TestService_Create_ConcurrentOverlapSingleWinner(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	// Конкурентные заявки на одни даты: проходит ровно одна,
	// остальные получают конфликт дат
	const workers = 32
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = f.svc.Create(ctx, createRequest("car-1", day(1), day(3)))
		}(i)
	}
	wg.Wait()

	created := 0
	for _, err := range errs {
		if err == nil {
			created++
			continue
		}
		assert.ErrorIs(t, err, ErrDateConflict)
	}
	assert.Equal(t, 1, created)

	stored, err := f.bookings.GetActiveByCarID(ctx, "car-1")
	require.NoError(t, err)
	assert.Len(t, stored, 1)
}

func TestService_Create_RejectedDatesAreFree(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.svc.Create(ctx, createRequest("car-1", day(1), day(5)))
	require.NoError(t, err)

	// Отклоненное бронирование освобождает даты
	_, err = f.svc.UpdateStatus(ctx, first.ID, "rejected")
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, createRequest("car-1", day(1), day(5)))
	assert.NoError(t, err)
}

func TestService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	booking, err := f.svc.Create(ctx, createRequest("car-1", day(1), day(3)))
	require.NoError(t, err)

	confirmed, err := f.svc.UpdateStatus(ctx, booking.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusConfirmed), confirmed.Status)

	completed, err := f.svc.UpdateStatus(ctx, booking.ID, "completed")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCompleted), completed.Status)

	// Из терминального статуса переходов нет
	_, err = f.svc.UpdateStatus(ctx, booking.ID, "cancelled")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestService_UpdateStatus_Errors(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	booking, err := f.svc.Create(ctx, createRequest("car-1", day(1), day(3)))
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, "missing", "confirmed")
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.UpdateStatus(ctx, booking.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	// pending -> completed минует confirmed
	_, err = f.svc.UpdateStatus(ctx, booking.ID, "completed")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestService_Lists(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	first, err := f.svc.Create(ctx, createRequest("car-1", day(1), day(3)))
	require.NoError(t, err)
	second, err := f.svc.Create(ctx, createRequest("car-1", day(10), day(12)))
	require.NoError(t, err)

	byClient, err := f.svc.ListForClient(ctx, "client-1")
	require.NoError(t, err)
	require.Len(t, byClient.Bookings, 2)
	assert.Equal(t, first.ID, byClient.Bookings[0].ID)
	assert.Equal(t, second.ID, byClient.Bookings[1].ID)

	byOwner, err := f.svc.ListForOwner(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, byOwner.Bookings, 2)

	empty, err := f.svc.ListForClient(ctx, "nobody")
	require.NoError(t, err)
	assert.Empty(t, empty.Bookings)
}
