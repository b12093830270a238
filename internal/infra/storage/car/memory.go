package car

import (
	"context"
	"strings"
	"sync"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// MemoryRepository in-memory репозиторий каталога.
// Слайс хранит порядок добавления, индекс по ID ускоряет точечные чтения.
type MemoryRepository struct {
	mu   sync.RWMutex
	cars []*domain.Car
	byID map[string]*domain.Car
}

// NewMemoryRepository создает пустой in-memory репозиторий каталога
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]*domain.Car),
	}
}

// Create добавляет новое объявление в каталог
func (r *MemoryRepository) Create(ctx context.Context, car *domain.Car) (*domain.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneCar(car)
	r.cars = append(r.cars, stored)
	r.byID[stored.ID] = stored

	return cloneCar(stored), nil
}

// GetByID получает автомобиль по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	car, ok := r.byID[id]
	if !ok {
		return nil, ErrCarNotFound
	}
	return cloneCar(car), nil
}

// GetAll получает автомобили с учетом фильтра поиска в порядке добавления
func (r *MemoryRepository) GetAll(ctx context.Context, filter domain.CarFilter) ([]*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Car, 0)
	for _, car := range r.cars {
		if matchesFilter(car, filter) {
			result = append(result, cloneCar(car))
		}
	}
	return result, nil
}

// GetByOwnerID получает все автомобили владельца в порядке добавления
func (r *MemoryRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Car, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Car, 0)
	for _, car := range r.cars {
		if car.OwnerID == ownerID {
			result = append(result, cloneCar(car))
		}
	}
	return result, nil
}

// Update частично обновляет объявление: nil-поля сохраняют текущее значение
func (r *MemoryRepository) Update(ctx context.Context, id string, upd domain.CarUpdate) (*domain.Car, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	car, ok := r.byID[id]
	if !ok {
		return nil, ErrCarNotFound
	}

	if upd.Type != nil {
		car.Type = *upd.Type
	}
	if upd.Category != nil {
		car.Category = *upd.Category
	}
	if upd.Brand != nil {
		car.Brand = *upd.Brand
	}
	if upd.Model != nil {
		car.Model = *upd.Model
	}
	if upd.Year != nil {
		car.Year = *upd.Year
	}
	if upd.PricePerDay != nil {
		car.PricePerDay = *upd.PricePerDay
	}
	if upd.City != nil {
		car.City = *upd.City
	}
	if upd.Description != nil {
		car.Description = *upd.Description
	}
	if upd.Images != nil {
		car.Images = append([]string(nil), upd.Images...)
	}
	if upd.Available != nil {
		car.Available = *upd.Available
	}

	return cloneCar(car), nil
}

// Delete удаляет объявление из каталога.
// Удаление идемпотентно: отсутствие записи ошибкой не считается.
func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return nil
	}

	delete(r.byID, id)
	for i, car := range r.cars {
		if car.ID == id {
			r.cars = append(r.cars[:i], r.cars[i+1:]...)
			break
		}
	}
	return nil
}

// matchesFilter проверяет объявление по всем заданным опциям фильтра (AND)
func matchesFilter(car *domain.Car, filter domain.CarFilter) bool {
	if filter.City != nil &&
		!strings.Contains(strings.ToLower(car.City), strings.ToLower(*filter.City)) {
		return false
	}
	if filter.Category != nil && car.Category != *filter.Category {
		return false
	}
	if filter.AvailableOnly && !car.Available {
		return false
	}
	return true
}

// cloneCar возвращает копию, чтобы наружу не утекали изменяемые ссылки
// на хранимые записи
func cloneCar(c *domain.Car) *domain.Car {
	clone := *c
	clone.Images = append([]string(nil), c.Images...)
	return &clone
}
