package create_booking

import (
	"time"

	"github.com/driveshare/DS-RentalService/internal/domain"
	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
)

// CreateBookingRequest HTTP request model.
// Клиент берется из сессии, а не из тела запроса.
type CreateBookingRequest struct {
	CarID     string `json:"carId"`
	StartDate string `json:"startDate"` // "2024-03-01"
	EndDate   string `json:"endDate"`   // "2024-03-03"
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
// (с парсингом дат)
func (r *CreateBookingRequest) ToServiceRequest(clientID string) (*bookingModels.CreateBookingRequest, error) {
	startDate, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	endDate, err := time.Parse(domain.DateFormat, r.EndDate)
	if err != nil {
		return nil, err
	}

	return &bookingModels.CreateBookingRequest{
		CarID:     r.CarID,
		ClientID:  clientID,
		StartDate: startDate,
		EndDate:   endDate,
	}, nil
}
