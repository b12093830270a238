package add_car

import (
	carModels "github.com/driveshare/DS-RentalService/internal/service/cars/models"
)

// AddCarRequest HTTP request model.
// Владелец объявления берется из сессии, а не из тела запроса.
type AddCarRequest struct {
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

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddCarRequest) ToServiceRequest(ownerID string) *carModels.AddCarRequest {
	return &carModels.AddCarRequest{
		OwnerID:     ownerID,
		Type:        r.Type,
		Category:    r.Category,
		Brand:       r.Brand,
		Model:       r.Model,
		Year:        r.Year,
		PricePerDay: r.PricePerDay,
		City:        r.City,
		Description: r.Description,
		Images:      r.Images,
	}
}
