package get_owner_bookings

import (
	"context"

	bookingModels "github.com/driveshare/DS-RentalService/internal/service/bookings/models"
)

type OwnerBookingsService interface {
	ListBookingsForOwner(ctx context.Context, ownerID string) (*bookingModels.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
