package models

import "github.com/driveshare/DS-RentalService/internal/domain"

// Request модели

// SearchRequest параметры поиска по каталогу.
// Все опции независимо необязательны и комбинируются через AND.
type SearchRequest struct {
	City          *string `json:"city,omitempty"`          // подстрока, без учета регистра
	Category      *string `json:"category,omitempty"`      // точное совпадение класса
	AvailableOnly bool    `json:"availableOnly,omitempty"` // только доступные
}

// AddCarRequest запрос на добавление объявления
type AddCarRequest struct {
	OwnerID     string   `json:"ownerId"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	PricePerDay int64    `json:"pricePerDay"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
}

// UpdateCarRequest запрос на частичное обновление объявления.
// Nil-поля сохраняют текущее значение.
type UpdateCarRequest struct {
	Type        *string  `json:"type,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Model       *string  `json:"model,omitempty"`
	Year        *int     `json:"year,omitempty"`
	PricePerDay *int64   `json:"pricePerDay,omitempty"`
	City        *string  `json:"city,omitempty"`
	Description *string  `json:"description,omitempty"`
	Images      []string `json:"images,omitempty"`
	Available   *bool    `json:"available,omitempty"`
}

// ToDomainFilter конвертирует параметры поиска в domain фильтр
func (r *SearchRequest) ToDomainFilter() domain.CarFilter {
	filter := domain.CarFilter{
		City:          r.City,
		AvailableOnly: r.AvailableOnly,
	}
	if r.Category != nil {
		category := domain.CarCategory(*r.Category)
		filter.Category = &category
	}
	return filter
}

// ToDomainUpdate конвертирует запрос обновления в domain merge-набор
func (r *UpdateCarRequest) ToDomainUpdate() domain.CarUpdate {
	upd := domain.CarUpdate{
		Brand:       r.Brand,
		Model:       r.Model,
		Year:        r.Year,
		PricePerDay: r.PricePerDay,
		City:        r.City,
		Description: r.Description,
		Images:      r.Images,
		Available:   r.Available,
	}
	if r.Type != nil {
		listingType := domain.ListingType(*r.Type)
		upd.Type = &listingType
	}
	if r.Category != nil {
		category := domain.CarCategory(*r.Category)
		upd.Category = &category
	}
	return upd
}

// Response модели

// CarResponse ответ с данными объявления
type CarResponse struct {
	ID          string   `json:"id"`
	OwnerID     string   `json:"ownerId"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Brand       string   `json:"brand"`
	Model       string   `json:"model"`
	Year        int      `json:"year"`
	PricePerDay int64    `json:"pricePerDay"`
	City        string   `json:"city"`
	Description string   `json:"description"`
	Images      []string `json:"images"`
	Available   bool     `json:"available"`
}

// CarListResponse ответ со списком объявлений
type CarListResponse struct {
	Cars []CarResponse `json:"cars"`
}

// FromDomainCar конвертирует domain модель в DTO
func FromDomainCar(c *domain.Car) *CarResponse {
	if c == nil {
		return nil
	}
	return &CarResponse{
		ID:          c.ID,
		OwnerID:     c.OwnerID,
		Type:        string(c.Type),
		Category:    string(c.Category),
		Brand:       c.Brand,
		Model:       c.Model,
		Year:        c.Year,
		PricePerDay: c.PricePerDay,
		City:        c.City,
		Description: c.Description,
		Images:      c.Images,
		Available:   c.Available,
	}
}

// FromDomainCarList конвертирует список domain моделей в DTO
func FromDomainCarList(cars []*domain.Car) *CarListResponse {
	resp := &CarListResponse{Cars: make([]CarResponse, 0, len(cars))}
	for _, car := range cars {
		if carResp := FromDomainCar(car); carResp != nil {
			resp.Cars = append(resp.Cars, *carResp)
		}
	}
	return resp
}
