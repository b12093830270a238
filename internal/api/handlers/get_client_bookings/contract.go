package get_client_bookings

import (
	"context"

	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
)

type ClientBookingsService interface {
	ListBookingsForClient(ctx context.Context, clientID string) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
