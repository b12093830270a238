package bookings

import (
	"context"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByClientID(ctx context.Context, clientID string) ([]*domain.Booking, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error)
	GetActiveByCarID(ctx context.Context, carID string) ([]*domain.Booking, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error)
}

// CarRepository интерфейс репозитория каталога.
// Нужен для разрешения carId и снимка ownerId при создании.
type CarRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Car, error)
}

// UserRepository интерфейс репозитория пользователей.
// Нужен для проверки инварианта clientId -> существующий пользователь.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
