package booking

import (
	"context"
	"sync"
	"time"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// MemoryRepository in-memory репозиторий бронирований.
// Все проверки и записи выполняются под одним RWMutex, поэтому
// compare-and-swap обновление статуса атомарно.
type MemoryRepository struct {
	mu       sync.RWMutex
	bookings []*domain.Booking
	byID     map[string]*domain.Booking
}

// NewMemoryRepository создает пустой in-memory репозиторий бронирований
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID: make(map[string]*domain.Booking),
	}
}

// Create создает новое бронирование
func (r *MemoryRepository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBooking(booking)
	now := time.Now().UTC()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.bookings = append(r.bookings, stored)
	r.byID[stored.ID] = stored

	return cloneBooking(stored), nil
}

// GetByID получает бронирование по ID
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	return cloneBooking(booking), nil
}

// GetByClientID получает бронирования клиента в порядке создания
func (r *MemoryRepository) GetByClientID(ctx context.Context, clientID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.ClientID == clientID })
}

// GetByOwnerID получает бронирования на автомобили владельца в порядке создания
func (r *MemoryRepository) GetByOwnerID(ctx context.Context, ownerID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.OwnerID == ownerID })
}

// GetActiveByCarID получает активные (pending/confirmed) бронирования автомобиля
func (r *MemoryRepository) GetActiveByCarID(ctx context.Context, carID string) ([]*domain.Booking, error) {
	return r.filter(func(b *domain.Booking) bool { return b.CarID == carID && b.IsActive() })
}

// UpdateStatus переводит бронирование из статуса from в статус to.
// Compare-and-swap: если статус уже не from, возвращает ErrStatusConflict.
func (r *MemoryRepository) UpdateStatus(ctx context.Context, id string, from, to domain.BookingStatus) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.byID[id]
	if !ok {
		return nil, ErrBookingNotFound
	}
	if booking.Status != from {
		return nil, ErrStatusConflict
	}

	booking.Status = to
	booking.UpdatedAt = time.Now().UTC()

	return cloneBooking(booking), nil
}

// HasCompleted сообщает, есть ли у клиента завершенное бронирование
// данного автомобиля
func (r *MemoryRepository) HasCompleted(ctx context.Context, clientID, carID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, b := range r.bookings {
		if b.ClientID == clientID && b.CarID == carID && b.Status == domain.StatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryRepository) filter(keep func(*domain.Booking) bool) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if keep(b) {
			result = append(result, cloneBooking(b))
		}
	}
	return result, nil
}

// cloneBooking возвращает копию, чтобы наружу не утекали изменяемые
// ссылки на хранимые записи
func cloneBooking(b *domain.Booking) *domain.Booking {
	c := *b
	return &c
}
