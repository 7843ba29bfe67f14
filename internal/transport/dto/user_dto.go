// internal/transport/dto/user_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"company-site-api/internal/models"
)

// RegisterRequest defines the structure for creating an admin account.
type RegisterRequest struct {
	Email     string  `json:"email" validate:"required,email"`
	Password  string  `json:"password" validate:"required,min=8"`
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
}

// LoginRequest defines the structure for an admin login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the refresh token to rotate.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// LogoutRequest carries the refresh token to revoke.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// UpsertUserRequest defines the insert-or-merge payload keyed by user id.
// Nil fields keep whatever the stored record already has.
type UpsertUserRequest struct {
	ID              uuid.UUID `json:"id" validate:"required"`
	Email           *string   `json:"email,omitempty" validate:"omitempty,email"`
	FirstName       *string   `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName        *string   `json:"last_name,omitempty" validate:"omitempty,max=100"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty" validate:"omitempty,url"`
	PasswordHash    *string   `json:"-"`
}

// UserResponse is the user shape returned to clients (no password hash).
type UserResponse struct {
	ID              uuid.UUID `json:"id"`
	Email           *string   `json:"email,omitempty"`
	FirstName       *string   `json:"first_name,omitempty"`
	LastName        *string   `json:"last_name,omitempty"`
	ProfileImageURL *string   `json:"profile_image_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TokenPairResponse carries freshly issued access and refresh tokens.
type TokenPairResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// MapUserToResponse converts a models.User to a UserResponse.
func MapUserToResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:              user.ID,
		Email:           user.Email,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: user.ProfileImageURL,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}
}
