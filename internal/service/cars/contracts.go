package cars

import (
	"context"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// CarRepository интерфейс репозитория каталога
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
	GetByID(ctx context.Context, id string) (*domain.Car, error)
	GetAll(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error)
	GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Car, error)
	Update(ctx context.Context, id string, upd domain.CarUpdate) (*domain.Car, error)
	Delete(ctx context.Context, id string) error
}

// UserRepository интерфейс репозитория пользователей.
// Нужен для проверки инварианта ownerId -> существующий пользователь.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
