package dto

import (
	"time"

	"github.com/uta-gremial/reclamos-service/internal/domain"
)

// RegisterRequest payload for new submitter accounts.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest payload for login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// ChangePasswordRequest payload for PATCH /users/me/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// UserView is the public projection of an account; the password hash is
// never serialized.
type UserView struct {
	ID            string      `json:"id"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Role          domain.Role `json:"role"`
	LineaAsignada *string     `json:"linea_asignada"`
	IsActive      bool        `json:"is_active"`
	CreatedAt     time.Time   `json:"created_at"`
}

// NewUserView projects a domain user.
func NewUserView(user *domain.User) UserView {
	return UserView{
		ID:            user.ID,
		Username:      user.Username,
		Email:         user.Email,
		Role:          user.Role,
		LineaAsignada: user.LineaAsignada,
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
	}
}
