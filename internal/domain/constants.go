package domain

// ServiceFee is the flat platform fee added to every booking,
// in the same currency units as Car.PricePerDay
const ServiceFee = 15

// Business validation constants
const (
	MinRating = 1
	MaxRating = 5

	// MinModelYear is the oldest plausible model year for a listing.
	// Anything older is almost certainly a typo, not an oldtimer.
	MinModelYear = 1950

	MaxDescriptionLength = 2000
	MaxCommentLength     = 1000
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses are the statuses that occupy a car's dates.
// Used when checking for double bookings.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
