package facade

import (
	"context"
	"sync"

	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
	reviewModels "github.com/driveshare/DS-RentalService/internal/service/reviews/models"
	userModels "github.com/driveshare/DS-RentalService/internal/service/users/models"
)

// Service фасад доменного сервиса аренды.
// Собирает четыре компонента в одну поверхность API и единолично
// владеет ссылкой на пользователя текущей сессии. Ошибки компонентов
// пробрасываются без переинтерпретации.
type Service struct {
	users    UsersService
	cars     CarsService
	bookings BookingsService
	reviews  ReviewsService
	logger   Logger

	mu      sync.RWMutex
	session *userModels.UserResponse
}

// NewService создает новый фасад доменного сервиса
func NewService(
	users UsersService,
	cars CarsService,
	bookings BookingsService,
	reviews ReviewsService,
	logger Logger,
) *Service {
	return &Service{
		users:    users,
		cars:     cars,
		bookings: bookings,
		reviews:  reviews,
		logger:   logger,
	}
}

// Учетные записи

// Register регистрирует пользователя и делает его пользователем сессии
func (s *Service) Register(ctx context.Context, req *userModels.RegisterRequest) (*userModels.UserResponse, error) {
	user, err := s.users.Register(ctx, req)
	if err != nil {
		return nil, err
	}
	s.setSession(user)
	return user, nil
}

// Login выполняет вход и делает пользователя пользователем сессии
func (s *Service) Login(ctx context.Context, email string) (*userModels.UserResponse, error) {
	user, err := s.users.Login(ctx, email)
	if err != nil {
		return nil, err
	}
	s.setSession(user)
	return user, nil
}

// Logout завершает сессию. Идемпотентен: повторный вызов не ошибка.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.session != nil {
		s.logger.Info("Logout: user id=%s logged out", s.session.ID)
	}
	s.session = nil
}

// CurrentUser возвращает пользователя текущей сессии или nil
func (s *Service) CurrentUser(ctx context.Context) *userModels.UserResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session == nil {
		return nil
	}
	clone := *s.session
	return &clone
}

func (s *Service) setSession(user *userModels.UserResponse) {
	s.mu.Lock()
	defer s.mu.Unlock()
	clone := *user
	s.session = &clone
}

// Каталог

// Search ищет автомобили по фильтру
func (s *Service) Search(ctx context.Context, req *carModels.SearchRequest) (*carModels.CarListResponse, error) {
	return s.cars.Search(ctx, req)
}

// GetCarByID получает автомобиль по ID
func (s *Service) GetCarByID(ctx context.Context, id string) (*carModels.CarResponse, error) {
	return s.cars.GetByID(ctx, id)
}

// ListCarsByOwner получает объявления владельца
func (s *Service) ListCarsByOwner(ctx context.Context, ownerID string) (*carModels.CarListResponse, error) {
	return s.cars.ListByOwner(ctx, ownerID)
}

// AddCar добавляет объявление
func (s *Service) AddCar(ctx context.Context, req *carModels.AddCarRequest) (*carModels.CarResponse, error) {
	return s.cars.Add(ctx, req)
}

// UpdateCar частично обновляет объявление.
// Для неизвестного ID возвращает nil без ошибки.
func (s *Service) UpdateCar(ctx context.Context, id string, req *carModels.UpdateCarRequest) (*carModels.CarResponse, error) {
	return s.cars.Update(ctx, id, req)
}

// RemoveCar удаляет объявление, идемпотентно
func (s *Service) RemoveCar(ctx context.Context, id string) error {
	return s.cars.Remove(ctx, id)
}

// Бронирования

// CreateBooking создает бронирование
func (s *Service) CreateBooking(ctx context.Context, req *bookingModels.CreateBookingRequest) (*bookingModels.BookingResponse, error) {
	return s.bookings.Create(ctx, req)
}

// ListBookingsForClient получает бронирования клиента
func (s *Service) ListBookingsForClient(ctx context.Context, clientID string) (*bookingModels.BookingListResponse, error) {
	return s.bookings.ListForClient(ctx, clientID)
}

// ListBookingsForOwner получает бронирования на автомобили владельца
func (s *Service) ListBookingsForOwner(ctx context.Context, ownerID string) (*bookingModels.BookingListResponse, error) {
	return s.bookings.ListForOwner(ctx, ownerID)
}

// UpdateBookingStatus переводит бронирование в новый статус
func (s *Service) UpdateBookingStatus(ctx context.Context, bookingID string, status string) (*bookingModels.BookingResponse, error) {
	return s.bookings.UpdateStatus(ctx, bookingID, status)
}

// Отзывы

// ListReviewsForCar получает отзывы на автомобиль
func (s *Service) ListReviewsForCar(ctx context.Context, carID string) (*reviewModels.ReviewListResponse, error) {
	return s.reviews.ListForCar(ctx, carID)
}

// AddReview добавляет отзыв
func (s *Service) AddReview(ctx context.Context, req *reviewModels.AddReviewRequest) (*reviewModels.ReviewResponse, error) {
	return s.reviews.Add(ctx, req)
}
