// Package seed наполняет хранилище демонстрационными данными,
// чтобы сервис был пригоден к работе сразу после запуска.
package seed

import (
	"context"
	"time"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// UserRepository интерфейс для создания пользователей
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// CarRepository интерфейс для создания объявлений
type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) (*domain.Car, error)
}

// BookingRepository интерфейс для создания бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
}

// ReviewRepository интерфейс для создания отзывов
type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Run записывает демонстрационный набор: три пользователя, четыре
// автомобиля, одна завершенная аренда и один отзыв. Ошибки вставки
// логируются и не останавливают остальной набор, поэтому повторный
// запуск поверх заполненной базы безопасен.
func Run(
	ctx context.Context,
	users UserRepository,
	cars CarRepository,
	bookings BookingRepository,
	reviews ReviewRepository,
	log Logger,
) {
	for _, user := range demoUsers() {
		if _, err := users.Create(ctx, user); err != nil {
			log.Warn("seed.Run - skip user %s: %v", user.Email, err)
		}
	}

	for _, car := range demoCars() {
		if _, err := cars.Create(ctx, car); err != nil {
			log.Warn("seed.Run - skip car %s %s: %v", car.Brand, car.Model, err)
		}
	}

	for _, booking := range demoBookings() {
		if _, err := bookings.Create(ctx, booking); err != nil {
			log.Warn("seed.Run - skip booking %s: %v", booking.ID, err)
		}
	}

	for _, review := range demoReviews() {
		if _, err := reviews.Create(ctx, review); err != nil {
			log.Warn("seed.Run - skip review %s: %v", review.ID, err)
		}
	}

	log.Info("seed.Run - demo dataset loaded")
}

func demoUsers() []*domain.User {
	return []*domain.User{
		{
			ID:      "u1",
			Name:    "Jean Dupont",
			Email:   "jean@example.com",
			Role:    domain.RoleOwner,
			Avatar:  "https://i.pravatar.cc/150?u=u1",
			Balance: 1250,
		},
		{
			ID:      "u2",
			Name:    "Marie Lavoie",
			Email:   "marie@example.com",
			Role:    domain.RoleClient,
			Avatar:  "https://i.pravatar.cc/150?u=u2",
			Balance: 500,
		},
		{
			ID:      "u3",
			Name:    "Admin DriveShare",
			Email:   "admin@driveshare.com",
			Role:    domain.RoleOwner,
			Avatar:  "https://i.pravatar.cc/150?u=u3",
			Balance: 0,
		},
	}
}

func demoCars() []*domain.Car {
	return []*domain.Car{
		{
			ID:          "car1",
			OwnerID:     "u1",
			Type:        domain.ListingMarketplace,
			Category:    domain.CategorySUV,
			Brand:       "Tesla",
			Model:       "Model Y",
			Year:        2023,
			PricePerDay: 120,
			City:        "Paris",
			Description: "Электрический кроссовер с автопилотом, идеален для города и трассы.",
			Images:      []string{"https://images.driveshare.example/cars/tesla-model-y.jpg"},
			Available:   true,
		},
		{
			ID:          "car2",
			OwnerID:     "u1",
			Type:        domain.ListingClassic,
			Category:    domain.CategoryBerline,
			Brand:       "BMW",
			Model:       "Série 3",
			Year:        2021,
			PricePerDay: 85,
			City:        "Lyon",
			Description: "Комфортный седан для деловых поездок.",
			Images:      []string{"https://images.driveshare.example/cars/bmw-serie-3.jpg"},
			Available:   true,
		},
		{
			ID:          "car3",
			OwnerID:     "u3",
			Type:        domain.ListingMarketplace,
			Category:    domain.CategoryCitadine,
			Brand:       "Mini",
			Model:       "Cooper",
			Year:        2022,
			PricePerDay: 55,
			City:        "Paris",
			Description: "Компактный и маневренный, легко парковать.",
			Images:      []string{"https://images.driveshare.example/cars/mini-cooper.jpg"},
			Available:   true,
		},
		{
			ID:          "car4",
			OwnerID:     "u3",
			Type:        domain.ListingClassic,
			Category:    domain.CategoryPickup,
			Brand:       "Ford",
			Model:       "F-150",
			Year:        2020,
			PricePerDay: 110,
			City:        "Marseille",
			Description: "Пикап для перевозки грузов, на техобслуживании.",
			Images:      []string{"https://images.driveshare.example/cars/ford-f150.jpg"},
			Available:   false,
		},
	}
}

func demoBookings() []*domain.Booking {
	start := time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, time.February, 12, 0, 0, 0, 0, time.UTC)

	return []*domain.Booking{
		{
			ID:         "b1",
			CarID:      "car1",
			ClientID:   "u2",
			OwnerID:    "u1",
			StartDate:  start,
			EndDate:    end,
			TotalPrice: domain.TotalPrice(120, start, end),
			Status:     domain.StatusCompleted,
		},
	}
}

func demoReviews() []*domain.Review {
	return []*domain.Review{
		{
			ID:       "r1",
			CarID:    "car1",
			UserID:   "u2",
			UserName: "Marie Lavoie",
			Rating:   5,
			Comment:  "Отличная машина, владелец очень отзывчивый.",
			Date:     time.Date(2024, time.February, 13, 0, 0, 0, 0, time.UTC),
		},
	}
}
