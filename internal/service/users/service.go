package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/driveshare/DS-RentalService/internal/domain"
	userRepo "github.com/driveshare/DS-RentalService/internal/infra/storage/user"
	"github.com/driveshare/DS-RentalService/internal/service/users/models"
)

// Service сервис учетных записей (Identity Directory)
type Service struct {
	userRepo UserRepository
	logger   Logger
}

// NewService создает новый экземпляр сервиса учетных записей
func NewService(userRepo UserRepository, logger Logger) *Service {
	return &Service{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Register регистрирует нового пользователя.
// Email должен быть глобально уникален (точное совпадение, с учетом регистра).
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	s.logger.Info("Register: name=%s, email=%s, role=%s", req.Name, req.Email, req.Role)

	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	user := &domain.User{
		ID:    uuid.NewString(),
		Name:  strings.TrimSpace(req.Name),
		Email: req.Email,
		Role:  domain.UserRole(req.Role),
	}
	user.Avatar = fmt.Sprintf("https://i.pravatar.cc/150?u=%s", user.ID)

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Register: email %s already registered", req.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: successfully registered user id=%s", created.ID)
	return models.FromDomainUser(created), nil
}

// Login выполняет вход по точному совпадению email
func (s *Service) Login(ctx context.Context, email string) (*models.UserResponse, error) {
	s.logger.Info("Login: email=%s", email)

	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: user with email %s not found", email)
			return nil, ErrUserNotFound
		}
		s.logger.Error("Login: repository error: %v", err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user id=%s logged in", user.ID)
	return models.FromDomainUser(user), nil
}

// GetByID получает пользователя по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetByID: repository error for user id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}
	return models.FromDomainUser(user), nil
}

// validateRegister валидирует входные данные регистрации
func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if req.Email == "" {
		return fmt.Errorf("%w: email is required", ErrInvalidInput)
	}
	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("%w: email must contain @", ErrInvalidInput)
	}
	if !domain.ValidUserRole(domain.UserRole(req.Role)) {
		return fmt.Errorf("%w: %q", ErrInvalidRole, req.Role)
	}
	return nil
}
