package facade

import (
	"context"

	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
	reviewModels "github.com/driveshare/DS-RentalService/internal/service/reviews/models"
	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

// UsersService интерфейс сервиса учетных записей
type UsersService interface {
	Register(ctx context.Context, req *userModels.RegisterRequest) (*userModels.UserResponse, error)
	Login(ctx context.Context, email string) (*userModels.UserResponse, error)
	GetByID(ctx context.Context, id string) (*userModels.UserResponse, error)
}

// CarsService интерфейс сервиса каталога
type CarsService interface {
	Search(ctx context.Context, req *carModels.SearchRequest) (*carModels.CarListResponse, error)
	GetByID(ctx context.Context, id string) (*carModels.CarResponse, error)
	ListByOwner(ctx context.Context, ownerID string) (*carModels.CarListResponse, error)
	Add(ctx context.Context, req *carModels.AddCarRequest) (*carModels.CarResponse, error)
	Update(ctx context.Context, id string, req *carModels.UpdateCarRequest) (*carModels.CarResponse, error)
	Remove(ctx context.Context, id string) error
}

// BookingsService интерфейс сервиса бронирований
type BookingsService interface {
	Create(ctx context.Context, req *bookingModels.CreateBookingRequest) (*bookingModels.BookingResponse, error)
	UpdateStatus(ctx context.Context, bookingID string, status string) (*bookingModels.BookingResponse, error)
	ListForClient(ctx context.Context, clientID string) (*bookingModels.BookingListResponse, error)
	ListForOwner(ctx context.Context, ownerID string) (*bookingModels.BookingListResponse, error)
}

// ReviewsService интерфейс сервиса отзывов
type ReviewsService interface {
	ListForCar(ctx context.Context, carID string) (*reviewModels.ReviewListResponse, error)
	Add(ctx context.Context, req *reviewModels.AddReviewRequest) (*reviewModels.ReviewResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
