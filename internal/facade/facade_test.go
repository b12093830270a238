package facade

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookingRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/booking"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	reviewRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/review"
	userRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/user"
	bookingsService "github.com/driveshare/DS-RentalService/internal/service/bookings"
	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
	carsService "github.com/driveshare/DS-RentalService/internal/service/cars"
	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
	reviewsService "github.com/driveshare/DS-RentalService/internal/service/reviews"
	reviewModels "github.com/driveshare/DS-RentalService/internal/service/reviews/models"
	usersService "github.com/driveshare/DS-RentalService/internal/service/users"
	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
	"github.com/driveshare/DS-RentalService/pkg/memtxmanager"
	"github.com/driveshare/DS-RentalService/pkg/ptr"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestFacade() *Service {
	users := userRepo.NewMemoryRepository()
	cars := carRepo.NewMemoryRepository()
	bookings := bookingRepo.NewMemoryRepository()
	reviews := reviewRepo.NewMemoryRepository()

	log := nopLogger{}
	userSvc := usersService.NewService(users, log)
	carSvc := carsService.NewService(cars, users, log)
	bookingSvc := bookingsService.NewService(bookings, cars, users, memtxmanager.NewTransactionManager(), log)
	reviewSvc := reviewsService.NewService(reviews, bookings, cars, log)

	return NewService(userSvc, carSvc, bookingSvc, reviewSvc, log)
}

func date(d int) string {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func parseDate(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func TestFullRentalScenario(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	// Владелец публикует объявление
	owner, err := f.Register(ctx, &userModels.RegisterRequest{
		Name:  "Jean Dupont",
		Email: "jean@example.com",
		Role:  "owner",
	})
	require.NoError(t, err)

	car, err := f.AddCar(ctx, &carModels.AddCarRequest{
		OwnerID:     owner.ID,
		Type:        "marketplace",
		Category:    "SUV",
		Brand:       "Tesla",
		Model:       "Model Y",
		Year:        2023,
		PricePerDay: 120,
		City:        "Paris",
		Description: "Электрический кроссовер",
		Images:      []string{"tesla.jpg"},
	})
	require.NoError(t, err)

	// Клиент регистрируется и становится пользователем сессии
	alice, err := f.Register(ctx, &userModels.RegisterRequest{
		Name:  "Alice Martin",
		Email: "alice@example.com",
		Role:  "client",
	})
	require.NoError(t, err)

	current := f.CurrentUser(ctx)
	require.NotNil(t, current)
	assert.Equal(t, alice.ID, current.ID)

	// Поиск по городу находит объявление
	found, err := f.Search(ctx, &carModels.SearchRequest{City: ptr.Ptr("Paris"), AvailableOnly: true})
	require.NoError(t, err)
	require.Len(t, found.Cars, 1)
	assert.Equal(t, car.ID, found.Cars[0].ID)

	// Бронирование на два дня: 120 * 2 + 15
	booking, err := f.CreateBooking(ctx, &bookingModels.CreateBookingRequest{
		CarID:     car.ID,
		ClientID:  alice.ID,
		StartDate: parseDate(1),
		EndDate:   parseDate(3),
	})
	require.NoError(t, err)
	assert.Equal(t, "pending", booking.Status)
	assert.Equal(t, int64(255), booking.TotalPrice)
	assert.Equal(t, date(1), booking.StartDate)
	assert.Equal(t, date(3), booking.EndDate)
	assert.Equal(t, owner.ID, booking.OwnerID)

	// Пересекающаяся заявка отклоняется, пока первая активна
	_, err = f.CreateBooking(ctx, &bookingModels.CreateBookingRequest{
		CarID:     car.ID,
		ClientID:  alice.ID,
		StartDate: parseDate(2),
		EndDate:   parseDate(4),
	})
	assert.ErrorIs(t, err, bookingsService.ErrDateConflict)

	// Владелец подтверждает и завершает аренду
	confirmed, err := f.UpdateBookingStatus(ctx, booking.ID, "confirmed")
	require.NoError(t, err)
	assert.Equal(t, "confirmed", confirmed.Status)

	_, err = f.UpdateBookingStatus(ctx, booking.ID, "completed")
	require.NoError(t, err)

	// Бронирования видны обеим сторонам
	clientBookings, err := f.ListBookingsForClient(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, clientBookings.Bookings, 1)

	ownerBookings, err := f.ListBookingsForOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, ownerBookings.Bookings, 1)

	// После завершенной аренды клиент может оставить отзыв
	review, err := f.AddReview(ctx, &reviewModels.AddReviewRequest{
		CarID:    car.ID,
		UserID:   alice.ID,
		UserName: alice.Name,
		Rating:   5,
		Comment:  "Все отлично",
	})
	require.NoError(t, err)

	carReviews, err := f.ListReviewsForCar(ctx, car.ID)
	require.NoError(t, err)
	require.Len(t, carReviews.Reviews, 1)
	assert.Equal(t, review.ID, carReviews.Reviews[0].ID)
}

func TestSessionLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	assert.Nil(t, f.CurrentUser(ctx))

	registered, err := f.Register(ctx, &userModels.RegisterRequest{
		Name:  "Alice Martin",
		Email: "alice@example.com",
		Role:  "client",
	})
	require.NoError(t, err)
	require.NotNil(t, f.CurrentUser(ctx))

	// Logout идемпотентен
	f.Logout(ctx)
	assert.Nil(t, f.CurrentUser(ctx))
	f.Logout(ctx)
	assert.Nil(t, f.CurrentUser(ctx))

	// Повторный вход по email восстанавливает сессию
	loggedIn, err := f.Login(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, loggedIn.ID)
	require.NotNil(t, f.CurrentUser(ctx))

	// Наружу отдается копия: мутация не влияет на сессию
	current := f.CurrentUser(ctx)
	current.Name = "Mallory"
	assert.Equal(t, "Alice Martin", f.CurrentUser(ctx).Name)
}

func TestUpdateCar_UnknownIDIsNil(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	updated, err := f.UpdateCar(ctx, "missing", &carModels.UpdateCarRequest{
		PricePerDay: ptr.Ptr(int64(99)),
	})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestRemoveCar_Idempotent(t *testing.T) {
	ctx := context.Background()
	f := newTestFacade()

	require.NoError(t, f.RemoveCar(ctx, "never-existed"))
}
