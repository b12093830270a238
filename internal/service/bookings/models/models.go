package models

import (
	"time"

	"github.com/driveshare/DS-RentalService/internal/domain"
)

// Request модели

// CreateBookingRequest запрос на создание бронирования
type CreateBookingRequest struct {
	CarID     string    `json:"carId"`
	ClientID  string    `json:"clientId"`
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID         string `json:"id"`
	CarID      string `json:"carId"`
	ClientID   string `json:"clientId"`
	OwnerID    string `json:"ownerId"`
	StartDate  string `json:"startDate"` // "2024-03-01"
	EndDate    string `json:"endDate"`   // "2024-03-03"
	TotalPrice int64  `json:"totalPrice"`
	Status     string `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}
	return &BookingResponse{
		ID:         b.ID,
		CarID:      b.CarID,
		ClientID:   b.ClientID,
		OwnerID:    b.OwnerID,
		StartDate:  b.StartDate.Format(domain.DateFormat),
		EndDate:    b.EndDate.Format(domain.DateFormat),
		TotalPrice: b.TotalPrice,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{Bookings: make([]BookingResponse, 0, len(bookings))}
	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}
	return resp
}
