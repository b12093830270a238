package cars

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/driveshare/DS-RentalService/internal/domain"
	carRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/car"
	userRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/user"
	"github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

// Service сервис каталога автомобилей
type Service struct {
	carRepo  CarRepository
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(carRepo CarRepository, userRepo UserRepository, logger Logger) *Service {
	return &Service{
		carRepo:  carRepo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// Search ищет автомобили по фильтру.
// Пустой фильтр возвращает весь каталог в порядке добавления.
func (s *Service) Search(ctx context.Context, req *models.SearchRequest) (*models.CarListResponse, error) {
	if req == nil {
		req = &models.SearchRequest{}
	}

	if req.Category != nil && !domain.ValidCarCategory(domain.CarCategory(*req.Category)) {
		s.logger.Warn("Search: unknown category %q", *req.Category)
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategory, *req.Category)
	}

	cars, err := s.carRepo.GetAll(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("Search: repository error: %v", err)
		return nil, fmt.Errorf("%w: Search - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Search: found %d cars", len(cars))
	return models.FromDomainCarList(cars), nil
}

// GetByID получает автомобиль по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.CarResponse, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			return nil, ErrCarNotFound
		}
		s.logger.Error("GetByID: repository error for car id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCar(car), nil
}

// ListByOwner получает все объявления владельца в порядке добавления
func (s *Service) ListByOwner(ctx context.Context, ownerID string) (*models.CarListResponse, error) {
	cars, err := s.carRepo.GetByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error("ListByOwner: repository error for owner id=%s: %v", ownerID, err)
		return nil, fmt.Errorf("%w: ListByOwner - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainCarList(cars), nil
}

// Add добавляет новое объявление. Новое объявление всегда доступно.
func (s *Service) Add(ctx context.Context, req *models.AddCarRequest) (*models.CarResponse, error) {
	s.logger.Info("Add: owner=%s, brand=%s, model=%s, city=%s", req.OwnerID, req.Brand, req.Model, req.City)

	if err := validateAddCar(req); err != nil {
		s.logger.Warn("Add: validation failed: %v", err)
		return nil, err
	}

	// Инвариант каталога: ownerId ссылается на существующего пользователя
	if _, err := s.userRepo.GetByID(ctx, req.OwnerID); err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Add: owner id=%s not found", req.OwnerID)
			return nil, ErrOwnerNotFound
		}
		s.logger.Error("Add: failed to check owner id=%s: %v", req.OwnerID, err)
		return nil, fmt.Errorf("%w: Add - failed to check owner: %v", ErrInternal, err)
	}

	car := &domain.Car{
		ID:          uuid.NewString(),
		OwnerID:     req.OwnerID,
		Type:        domain.ListingType(req.Type),
		Category:    domain.CarCategory(req.Category),
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		PricePerDay: req.PricePerDay,
		City:        req.City,
		Description: req.Description,
		Images:      req.Images,
		Available:   true,
	}

	created, err := s.carRepo.Create(ctx, car)
	if err != nil {
		s.logger.Error("Add: repository error: %v", err)
		return nil, fmt.Errorf("%w: Add - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Add: successfully added car id=%s", created.ID)
	return models.FromDomainCar(created), nil
}

// Update частично обновляет объявление.
// Неизвестный ID ошибкой не считается: возвращается nil, вызывающий
// обязан проверить результат.
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateCarRequest) (*models.CarResponse, error) {
	if err := validateUpdateCar(req); err != nil {
		s.logger.Warn("Update: validation failed for car id=%s: %v", id, err)
		return nil, err
	}

	car, err := s.carRepo.Update(ctx, id, req.ToDomainUpdate())
	if err != nil {
		if errors.Is(err, carRepo.ErrCarNotFound) {
			s.logger.Warn("Update: car id=%s not found", id)
			return nil, nil
		}
		s.logger.Error("Update: repository error for car id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated car id=%s", id)
	return models.FromDomainCar(car), nil
}

// Remove удаляет объявление. Удаление идемпотентно.
func (s *Service) Remove(ctx context.Context, id string) error {
	if err := s.carRepo.Delete(ctx, id); err != nil {
		s.logger.Error("Remove: repository error for car id=%s: %v", id, err)
		return fmt.Errorf("%w: Remove - repository error: %v", ErrInternal, err)
	}
	s.logger.Info("Remove: car id=%s removed", id)
	return nil
}

// validateAddCar валидирует входные данные нового объявления
func validateAddCar(req *models.AddCarRequest) error {
	if req.OwnerID == "" {
		return fmt.Errorf("%w: ownerId is required", ErrInvalidInput)
	}
	if req.Brand == "" || req.Model == "" {
		return fmt.Errorf("%w: brand and model are required", ErrInvalidInput)
	}
	if !domain.ValidListingType(domain.ListingType(req.Type)) {
		return fmt.Errorf("%w: %q", ErrInvalidListingType, req.Type)
	}
	if !domain.ValidCarCategory(domain.CarCategory(req.Category)) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, req.Category)
	}
	if req.PricePerDay <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPrice, req.PricePerDay)
	}
	if err := validateYear(req.Year); err != nil {
		return err
	}
	if len(req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description too long", ErrInvalidInput)
	}
	return nil
}

// validateUpdateCar валидирует заданные поля merge-набора
func validateUpdateCar(req *models.UpdateCarRequest) error {
	if req == nil {
		return fmt.Errorf("%w: empty update", ErrInvalidInput)
	}
	if req.Type != nil && !domain.ValidListingType(domain.ListingType(*req.Type)) {
		return fmt.Errorf("%w: %q", ErrInvalidListingType, *req.Type)
	}
	if req.Category != nil && !domain.ValidCarCategory(domain.CarCategory(*req.Category)) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, *req.Category)
	}
	if req.PricePerDay != nil && *req.PricePerDay <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidPrice, *req.PricePerDay)
	}
	if req.Year != nil {
		return validateYear(*req.Year)
	}
	return nil
}

// validateYear проверяет правдоподобность года выпуска.
// Год из следующего модельного года допустим.
func validateYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < domain.MinModelYear || year > maxYear {
		return fmt.Errorf("%w: %d (allowed %d-%d)", ErrInvalidYear, year, domain.MinModelYear, maxYear)
	}
	return nil
}
