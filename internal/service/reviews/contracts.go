package reviews

import (
	"context"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// ReviewRepository интерфейс репозитория отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
	GetByCarID(ctx context.Context, carID string) ([]*domain.Review, error)
}

// BookingRepository интерфейс репозитория бронирований.
// Нужен для проверки, что рецензент действительно завершил аренду.
type BookingRepository interface {
	HasCompleted(ctx context.Context, clientID, carID string) (bool, error)
}

// CarRepository интерфейс репозитория каталога
type CarRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Car, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
