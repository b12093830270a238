package login_user

// LoginRequest HTTP request model
type LoginRequest struct {
	Email string `json:"email"`
}
