package domain

// UserRole represents the role of a user on the platform
type UserRole string

const (
	RoleClient UserRole = "client"
	RoleOwner  UserRole = "owner"
)

// User represents a registered user (renter or owner)
type User struct {
	ID     string
	Name   string
	Email  string
	Role   UserRole
	Avatar string

	// Balance is informational only, nothing enforces it
	Balance int64
}

// ValidUserRole reports whether r is a known role
func ValidUserRole(r UserRole) bool {
	return r == RoleClient || r == RoleOwner
}
