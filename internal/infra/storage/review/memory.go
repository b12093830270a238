package review

import (
	"context"
	"sync"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// MemoryRepository in-memory репозиторий отзывов
type MemoryRepository struct {
	mu      sync.RWMutex
	reviews []*domain.Review
}

// NewMemoryRepository создает пустой in-memory репозиторий отзывов
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{}
}

// Create добавляет новый отзыв
func (r *MemoryRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneReview(review)
	r.reviews = append(r.reviews, stored)

	return cloneReview(stored), nil
}

// GetByCarID получает отзывы на автомобиль в порядке добавления
func (r *MemoryRepository) GetByCarID(ctx context.Context, carID string) ([]*domain.Review, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Review, 0)
	for _, review := range r.reviews {
		if review.CarID == carID {
			result = append(result, cloneReview(review))
		}
	}
	return result, nil
}

// cloneReview возвращает копию, чтобы наружу не утекали изменяемые
// ссылки на хранимые записи
func cloneReview(rv *domain.Review) *domain.Review {
	c := *rv
	return &c
}
