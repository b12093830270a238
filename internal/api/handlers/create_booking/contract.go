package create_booking

import (
	"context"

	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
)

type CreateBookingService interface {
	CreateBooking(ctx context.Context, req *bookingModels.CreateBookingRequest) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
