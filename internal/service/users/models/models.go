package models

import "github.com/driveshare/DS-RentalService/internal/domain"

// Request модели

// RegisterRequest запрос на регистрацию пользователя
type RegisterRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Response модели

// UserResponse ответ с данными пользователя
type UserResponse struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Avatar  string `json:"avatar,omitempty"`
	Balance int64  `json:"balance"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:      u.ID,
		Name:    u.Name,
		Email:   u.Email,
		Role:    string(u.Role),
		Avatar:  u.Avatar,
		Balance: u.Balance,
	}
}
