package dto

// Data Transfer Objects for authentication requests and responses

// SignupRequest: payload for account creation
type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Age       int    `json:"age" binding:"omitempty,gte=0,lte=150"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
}

// LoginRequest: payload for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse: response payload after successful authentication
type AuthResponse struct {
	Token     string `json:"token"`
	UserID    string `json:"user_id"`
	Email     string `json:"email"`
	ExpiresIn int64  `json:"expires_in"` // seconds
}

// RecoverRequest: payload for requesting a password-reset mail
type RecoverRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordRequest: payload for completing a password reset
type ResetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=8"`
}
