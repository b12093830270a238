package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusRejected  BookingStatus = "rejected"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// allowedTransitions describes the booking state machine:
// pending -> confirmed | rejected, confirmed -> completed | cancelled.
// rejected, cancelled and completed are terminal.
var allowedTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusRejected},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
}

// Booking represents a rental reservation in the system
type Booking struct {
	ID       string
	CarID    string
	ClientID string

	// OwnerID is a snapshot of the car's owner at creation time,
	// kept so owner-side listings need no catalog lookup
	OwnerID string

	StartDate  time.Time
	EndDate    time.Time
	TotalPrice int64
	Status     BookingStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its dates
func (b *Booking) IsActive() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsTerminal returns true if no further transition is legal
func (b *Booking) IsTerminal() bool {
	return b.Status == StatusRejected ||
		b.Status == StatusCancelled ||
		b.Status == StatusCompleted
}

// CanTransition reports whether from -> to is in the allowed edge set
// of the state machine
func CanTransition(from, to BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidBookingStatus reports whether s is a known booking status
func ValidBookingStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// RentalDays returns the number of charged days between two dates:
// whole days between start and end, a same-day rental counts as one day
func RentalDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return days
}

// TotalPrice computes the booking price: pricePerDay for every charged
// day plus the flat service fee
func TotalPrice(pricePerDay int64, start, end time.Time) int64 {
	return pricePerDay*int64(RentalDays(start, end)) + ServiceFee
}

// RangesOverlap reports whether two date ranges share at least one day.
// Touching boundaries count: a car returned on the 3rd cannot be picked
// up again on the 3rd.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !aEnd.Before(bStart) && !bEnd.Before(aStart)
}
