package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/driveshare/DS-RentalService/internal/domain"
	bookingRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/booking"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	userRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/user"
	"github.com/driveshare/DS-RentalService/internal/service/bookings/models"
)

// Service сервис бронирований (Reservation Ledger).
// Здесь централизованы расчет стоимости и правила переходов статуса:
// все вызывающие стороны видят одинаковые суммы и одинаковую
// допустимость переходов.
type Service struct {
	bookingRepo BookingRepository
	carRepo     CarRepository
	userRepo    UserRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	carRepo CarRepository,
	userRepo UserRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		carRepo:     carRepo,
		userRepo:    userRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// Create создает бронирование со статусом pending.
// Проверка пересечения дат и вставка выполняются в сериализуемой
// транзакции: из двух конкурентных заявок на одни даты проходит одна.
func (s *Service) Create(ctx context.Context, req *models.CreateBookingRequest) (*models.BookingResponse, error) {
	s.logger.Info("Create: car=%s, client=%s, period=%s to %s",
		req.CarID, req.ClientID,
		req.StartDate.Format(domain.DateFormat), req.EndDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateCreate(req); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование клиента
	if _, err := s.userRepo.GetByID(ctx, req.ClientID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Create: client id=%s not found", req.ClientID)
			return nil, ErrClientNotFound
		}
		s.logger.Error("Create: failed to check client id=%s: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: Create - failed to check client: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 3. Разрешение автомобиля, проверка дат и вставка - атомарно
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Разрешаем carId и снимаем ownerId
		car, err := s.carRepo.GetByID(txCtx, req.CarID)
		if err != nil {
			if errors.Is(err, carRepo.ErrCarNotFound) {
				s.logger.Warn("Create: car id=%s not found", req.CarID)
				return ErrCarNotFound
			}
			s.logger.Error("Create: failed to get car id=%s: %v", req.CarID, err)
			return fmt.Errorf("%w: Create - failed to get car: %v", ErrInternal, err)
		}

		// 3.2. Недоступный автомобиль бронировать нельзя
		if !car.Available {
			s.logger.Warn("Create: car id=%s is not available", req.CarID)
			return ErrCarUnavailable
		}

		// 3.3. Активные бронирования автомобиля (с блокировкой строк в БД)
		active, err := s.bookingRepo.GetActiveByCarID(txCtx, req.CarID)
		if err != nil {
			s.logger.Error("Create: failed to get active bookings for car id=%s: %v", req.CarID, err)
			return fmt.Errorf("%w: Create - failed to get active bookings: %v", ErrInternal, err)
		}

		// 3.4. Пересечение дат с активным бронированием - конфликт
		for _, b := range active {
			if domain.RangesOverlap(req.StartDate, req.EndDate, b.StartDate, b.EndDate) {
				s.logger.Warn("Create: dates overlap booking id=%s for car id=%s", b.ID, req.CarID)
				return ErrDateConflict
			}
		}

		// 3.5. Создаем бронирование
		booking := &domain.Booking{
			ID:         uuid.NewString(),
			CarID:      car.ID,
			ClientID:   req.ClientID,
			OwnerID:    car.OwnerID,
			StartDate:  req.StartDate,
			EndDate:    req.EndDate,
			TotalPrice: domain.TotalPrice(car.PricePerDay, req.StartDate, req.EndDate),
			Status:     domain.StatusPending,
		}

		created, err := s.bookingRepo.Create(txCtx, booking)
		if err != nil {
			s.logger.Error("Create: failed to create booking: %v", err)
			return fmt.Errorf("%w: Create - failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Create: successfully created booking id=%s, total=%d", result.ID, result.TotalPrice)
	return models.FromDomainBooking(result), nil
}

// UpdateStatus переводит бронирование в новый статус.
// Допустимы только переходы из allowed edge set машины состояний,
// переходы из терминальных статусов отклоняются.
func (s *Service) UpdateStatus(ctx context.Context, bookingID string, status string) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking=%s, status=%s", bookingID, status)

	newStatus := domain.BookingStatus(status)
	if !domain.ValidBookingStatus(newStatus) {
		s.logger.Warn("UpdateStatus: unknown status %q", status)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%s not found", bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !domain.CanTransition(booking.Status, newStatus) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%s",
			booking.Status, newStatus, bookingID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, booking.Status, newStatus)
	}

	// Compare-and-swap по прочитанному статусу: из двух конкурентных
	// переходов выигрывает ровно один
	updated, err := s.bookingRepo.UpdateStatus(ctx, bookingID, booking.Status, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrStatusConflict):
			s.logger.Warn("UpdateStatus: lost concurrent transition for booking id=%s", bookingID)
			return nil, ErrStatusConflict
		default:
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", bookingID, err)
			return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("UpdateStatus: booking id=%s moved to %s", bookingID, newStatus)
	return models.FromDomainBooking(updated), nil
}

// ListForClient получает бронирования клиента в порядке создания
func (s *Service) ListForClient(ctx context.Context, clientID string) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByClientID(ctx, clientID)
	if err != nil {
		s.logger.Error("ListForClient: repository error for client id=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: ListForClient - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBookingList(bookings), nil
}

// ListForOwner получает бронирования на автомобили владельца в порядке создания
func (s *Service) ListForOwner(ctx context.Context, ownerID string) (*models.BookingListResponse, error) {
	bookings, err := s.bookingRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListForOwner: repository error for owner id=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListForOwner - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainBookingList(bookings), nil
}

// validateCreate валидирует входные данные бронирования
func validateCreate(req *models.CreateBookingRequest) error {
	if req.CarID == "" {
		return fmt.Errorf("%w: carId is required", ErrInvalidInput)
	}
	if req.ClientID == "" {
		return fmt.Errorf("%w: clientId is required", ErrInvalidInput)
	}
	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return fmt.Errorf("%w: startDate and endDate are required", ErrInvalidInput)
	}
	if req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: %s < %s", ErrInvalidDateRange,
			req.EndDate.Format(domain.DateFormat), req.StartDate.Format(domain.DateFormat))
	}
	return nil
}
