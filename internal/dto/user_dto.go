package dto

import (
	"time"

	"cinehub/internal/models"
)

// UpdateUserRequest for updating a user's profile
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" binding:"omitempty,min=1,max=100"`
	Age       *int    `json:"age,omitempty" binding:"omitempty,gte=0,lte=150"`
	Email     *string `json:"email,omitempty" binding:"omitempty,email"`
}

// UserResponse is the sanitized user view (no password hash, no reset token)
type UserResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Age       int       `json:"age"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// FromModelToUserResponse converts a User model to UserResponse DTO
func FromModelToUserResponse(user *models.User) *UserResponse {
	return &UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Age:       user.Age,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// ToggleFavoriteResponse reports the outcome of a favorites toggle
type ToggleFavoriteResponse struct {
	MovieID   int64  `json:"movie_id"`
	Favorited bool   `json:"favorited"`
	Message   string `json:"message"`
}
