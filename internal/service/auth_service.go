package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinehub/internal/config"
	"cinehub/internal/dto"
	"cinehub/internal/middleware/auth"
	"cinehub/internal/models"
	"cinehub/internal/repository"
)

var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpiredToken       = errors.New("token has expired")
	ErrInvalidResetToken  = errors.New("invalid or unknown reset token")
	ErrExpiredResetToken  = errors.New("reset token has expired")
	ErrMailDisabled       = errors.New("mail sending is not configured")
)

// Claims is the payload embedded in issued access tokens
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Mailer sends the password recovery mail. Raw reset tokens appear only
// inside the reset URL; implementations must not log them.
type Mailer interface {
	SendPasswordResetEmail(ctx context.Context, toEmail, displayName, resetURL string) error
}

type AuthService interface {
	Signup(req dto.SignupRequest) (*models.User, error)
	Login(email, password string) (token string, user *models.User, err error)
	ValidateToken(tokenString string) (*Claims, error)
	RecoverPassword(ctx context.Context, email string) error
	ResetPassword(token, newPassword string) error
	TokenTTL() time.Duration
}

type authService struct {
	userRepo      repository.UserRepository
	mailer        Mailer // nil when SMTP is not configured
	jwtSecret     string
	tokenTTL      time.Duration
	resetTokenTTL time.Duration
	appBaseURL    string
	now           func() time.Time
}

func NewAuthService(userRepo repository.UserRepository, mailer Mailer, cfg *config.Config) AuthService {
	return &authService{
		userRepo:      userRepo,
		mailer:        mailer,
		jwtSecret:     cfg.JWTSecret,
		tokenTTL:      cfg.TokenTTL,      // 2 hours
		resetTokenTTL: cfg.ResetTokenTTL, // 1 hour
		appBaseURL:    cfg.AppBaseURL,
		now:           time.Now,
	}
}

// Signup registers a new account. The password is hashed here, before the
// user row is ever persisted.
func (s *authService) Signup(req dto.SignupRequest) (*models.User, error) {
	// Check if email exists
	if _, err := s.userRepo.FindByEmail(req.Email); err == nil {
		return nil, ErrEmailInUse
	}

	// Hash password
	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Age:       req.Age,
		Email:     req.Email,
		Password:  hashedPassword,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login authenticates by exact email match and bcrypt comparison. An unknown
// email and a wrong password both yield ErrInvalidCredentials so callers
// cannot probe for registered addresses.
func (s *authService) Login(email, password string) (string, *models.User, error) {
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		// User not found: dummy compare to mitigate timing attacks (always take same time)
		auth.VerifyPassword("$2a$10$7EqJtq98hPqEX7fNZaFWoOHi6VbU5h6K9v8u5rO0m3j0h6dX5r8e", password)
		return "", nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(user.Password, password); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}

	return token, user, nil
}

func (s *authService) generateToken(user *models.User) (string, error) {
	now := s.now()
	claims := Claims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *authService) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

func (s *authService) TokenTTL() time.Duration {
	return s.tokenTTL
}

// RecoverPassword stores a fresh reset token + expiry on the user row and
// mails the reset link. Token and expiry are always written together.
func (s *authService) RecoverPassword(ctx context.Context, email string) error {
	if s.mailer == nil {
		return ErrMailDisabled
	}

	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return err
	}

	token, err := generateResetToken()
	if err != nil {
		return err
	}

	expiry := s.now().Add(s.resetTokenTTL)
	user.ResetToken = &token
	user.ResetTokenExpiry = &expiry
	if err := s.userRepo.Save(user); err != nil {
		return err
	}

	resetURL := fmt.Sprintf("%s/reset?token=%s", s.appBaseURL, token)
	return s.mailer.SendPasswordResetEmail(ctx, user.Email, user.FirstName, resetURL)
}

// ResetPassword completes a recovery. The stored token must match exactly
// AND its expiry must be in the future; an expired token is rejected even
// when the string matches. On success the new hash is written and both
// token and expiry are cleared in the same save.
func (s *authService) ResetPassword(token, newPassword string) error {
	user, err := s.userRepo.FindByResetToken(token)
	if err != nil {
		return ErrInvalidResetToken
	}

	if user.ResetTokenExpiry == nil || s.now().After(*user.ResetTokenExpiry) {
		return ErrExpiredResetToken
	}

	hashedPassword, err := auth.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	return s.userRepo.Save(user)
}

// generateResetToken returns 32 random bytes, hex encoded
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
