package user

import (
	"context"
	"sync"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// MemoryRepository in-memory репозиторий пользователей.
// Хранилище по умолчанию: один процесс, коллекция под RWMutex,
// порядок вставки сохраняется.
type MemoryRepository struct {
	mu      sync.RWMutex
	users   []*domain.User
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
}

// NewMemoryRepository создает пустой in-memory репозиторий пользователей
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:    make(map[string]*domain.User),
		byEmail: make(map[string]*domain.User),
	}
}

// Create создает нового пользователя.
// Проверка уникальности email выполняется под write-lock.
func (r *MemoryRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byEmail[user.Email]; exists {
		return nil, ErrEmailTaken
	}

	stored := cloneUser(user)
	r.users = append(r.users, stored)
	r.byID[stored.ID] = stored
	r.byEmail[stored.Email] = stored

	return cloneUser(stored), nil
}

// GetByID получает пользователя по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(user), nil
}

// GetByEmail получает пользователя по точному совпадению email
func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	return cloneUser(user), nil
}

// cloneUser возвращает копию, чтобы наружу не утекали изменяемые ссылки
// на хранимые записи
func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}
