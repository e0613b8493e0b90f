package dto

import (
	"time"

	"github.com/SscSPs/portfolio_tracker/internal/core/domain"
)

// UserResponse defines the user data returned by the API.
type UserResponse struct {
	UserID        string              `json:"userID"`
	Email         string              `json:"email"`
	Name          string              `json:"name"`
	AuthProvider  domain.AuthProvider `json:"authProvider"`
	EmailVerified bool                `json:"emailVerified"`
	CreatedAt     time.Time           `json:"createdAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:        u.UserID,
		Email:         u.Email,
		Name:          u.Name,
		AuthProvider:  u.AuthProvider,
		EmailVerified: u.EmailVerified,
		CreatedAt:     u.CreatedAt,
	}
}
