package update_booking_status

import (
	"context"

	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
)

type UpdateStatusService interface {
	UpdateBookingStatus(ctx context.Context, bookingID string, status string) (*bookingModels.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
