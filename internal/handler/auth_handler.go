package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"cinehub/internal/dto"
	"cinehub/internal/service"
)

type AuthHandler struct {
	authService service.AuthService
	userService service.UserService
}

func NewAuthHandler(authService service.AuthService, userService service.UserService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Signup creates a new account
// POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Signup(req)
	if err != nil {
		if errors.Is(err, service.ErrEmailInUse) {
			c.JSON(http.StatusConflict, gin.H{"error": "Account creation failed"})
			return
		}
		log.Printf("[auth] signup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create account"})
		return
	}

	c.JSON(http.StatusCreated, dto.FromModelToUserResponse(user))
}

// Login authenticates and issues a bearer token. An unknown email and a
// wrong password produce an identical response.
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		log.Printf("[auth] login failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not log in"})
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		Token:     token,
		UserID:    user.ID,
		Email:     user.Email,
		ExpiresIn: int64(h.authService.TokenTTL().Seconds()),
	})
}

// Profile returns the sanitized account of the token's owner
// GET /api/auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	userID, exists := c.Get("userID")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	user, err := h.userService.GetUser(userID.(string))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("[auth] profile lookup failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Recover mails a password reset link
// POST /api/auth/recover
func (h *AuthHandler) Recover(c *gin.Context) {
	var req dto.RecoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.RecoverPassword(c.Request.Context(), req.Email); err != nil {
		if errors.Is(err, service.ErrMailDisabled) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "password recovery is not available"})
			return
		}
		// Unknown address and mail failure get the same response so the
		// endpoint cannot be used to probe for registered emails.
		log.Printf("[auth] recover failed: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"message": "If that address is registered, a reset link has been sent"})
}

// Reset completes a password recovery
// POST /api/auth/reset
func (h *AuthHandler) Reset(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.authService.ResetPassword(req.Token, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidResetToken) || errors.Is(err, service.ErrExpiredResetToken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired reset token"})
			return
		}
		log.Printf("[auth] reset failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not reset password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully"})
}
