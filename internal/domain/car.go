package domain

// CarCategory represents the enumerated vehicle class of a listing
type CarCategory string

const (
	CategorySUV      CarCategory = "SUV"
	CategoryBerline  CarCategory = "Berline"
	CategoryPickup   CarCategory = "Pickup"
	CategoryCitadine CarCategory = "Citadine"
	CategorySport    CarCategory = "Sport"
	CategoryLuxe     CarCategory = "Luxe"
)

// ListingType distinguishes platform-owned listings from owner-owned
// ones. The distinction is cosmetic, both behave identically.
type ListingType string

const (
	ListingClassic     ListingType = "classic"
	ListingMarketplace ListingType = "marketplace"
)

// Car represents a rentable listing
type Car struct {
	ID          string
	OwnerID     string
	Type        ListingType
	Category    CarCategory
	Brand       string
	Model       string
	Year        int
	PricePerDay int64
	City        string
	Description string
	Images      []string
	Available   bool
}

// CarFilter holds the recognized search options. Every option is
// independently optional, set options compose with logical AND.
type CarFilter struct {
	City          *string      // substring match, case-insensitive
	Category      *CarCategory // exact match
	AvailableOnly bool
}

// CarUpdate holds the merge set for a partial catalog update.
// Nil fields keep their current value.
type CarUpdate struct {
	Type        *ListingType
	Category    *CarCategory
	Brand       *string
	Model       *string
	Year        *int
	PricePerDay *int64
	City        *string
	Description *string
	Images      []string
	Available   *bool
}

// ValidCarCategory reports whether c is a known vehicle class
func ValidCarCategory(c CarCategory) bool {
	switch c {
	case CategorySUV, CategoryBerline, CategoryPickup, CategoryCitadine, CategorySport, CategoryLuxe:
		return true
	}
	return false
}

// ValidListingType reports whether t is a known listing kind
func ValidListingType(t ListingType) bool {
	return t == ListingClassic || t == ListingMarketplace
}
