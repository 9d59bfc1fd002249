package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Environment
	GoEnv string `env:"GO_ENV" default:"development"`

	// Service
	HTTPPort int `env:"HTTP_PORT" default:"8080"`

	// Database
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Authentication
	JWTSecret     string        `env:"JWT_SECRET" required:"true"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" default:"2h"`
	ResetTokenTTL time.Duration `env:"RESET_TOKEN_TTL" default:"1h"`

	// Mail (optional; password recovery is disabled without it)
	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" default:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	MailFrom     string `env:"MAIL_FROM"`
	AppBaseURL   string `env:"APP_BASE_URL" default:"http://localhost:8080"`

	// Pexels (optional; search/import are disabled without it)
	PexelsAPIKey string `env:"PEXELS_API_KEY"`

	// Subtitles
	CaptionsDir      string `env:"CAPTIONS_DIR" default:"./captions"`
	TranscribeAPIURL string `env:"TRANSCRIBE_API_URL"`
	TranscribeAPIKey string `env:"TRANSCRIBE_API_KEY"`
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	// Try to load .env file from the working directory
	if err := godotenv.Load(".env"); err != nil {
		// If .env file doesn't exist, that's OK - we can still use system env vars
		fmt.Printf("Warning: .env file not found: %v\n", err)
	}

	config := &Config{}

	if err := loadEnvString(&config.GoEnv, "GO_ENV", "development"); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.HTTPPort, "HTTP_PORT", 8080); err != nil {
		return nil, err
	}

	// Database (required, startup halts without it)
	if err := loadEnvStringRequired(&config.DatabaseURL, "DATABASE_URL"); err != nil {
		return nil, err
	}

	// Authentication
	if err := loadEnvStringRequired(&config.JWTSecret, "JWT_SECRET"); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.TokenTTL, "TOKEN_TTL", 2*time.Hour); err != nil {
		return nil, err
	}
	if err := loadEnvDuration(&config.ResetTokenTTL, "RESET_TOKEN_TTL", time.Hour); err != nil {
		return nil, err
	}

	// Mail
	if err := loadEnvString(&config.SMTPHost, "SMTP_HOST", ""); err != nil {
		return nil, err
	}
	if err := loadEnvInt(&config.SMTPPort, "SMTP_PORT", 587); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.SMTPUsername, "SMTP_USERNAME", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.SMTPPassword, "SMTP_PASSWORD", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.MailFrom, "MAIL_FROM", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.AppBaseURL, "APP_BASE_URL", "http://localhost:8080"); err != nil {
		return nil, err
	}

	// External APIs
	if err := loadEnvString(&config.PexelsAPIKey, "PEXELS_API_KEY", ""); err != nil {
		return nil, err
	}

	// Subtitles
	if err := loadEnvString(&config.CaptionsDir, "CAPTIONS_DIR", "./captions"); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.TranscribeAPIURL, "TRANSCRIBE_API_URL", ""); err != nil {
		return nil, err
	}
	if err := loadEnvString(&config.TranscribeAPIKey, "TRANSCRIBE_API_KEY", ""); err != nil {
		return nil, err
	}

	return config, nil
}

// Helper functions for type conversion and validation
func loadEnvString(target *string, key, defaultValue string) error {
	if value := os.Getenv(key); value != "" {
		*target = value
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvStringRequired(target *string, key string) error {
	value := os.Getenv(key)
	if value == "" {
		return fmt.Errorf("required environment variable %s is not set", key)
	}
	*target = value
	return nil
}

func loadEnvInt(target *int, key string, defaultValue int) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid integer value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

func loadEnvDuration(target *time.Duration, key string, defaultValue time.Duration) error {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration value for %s: %v", key, err)
		}
		*target = parsed
	} else {
		*target = defaultValue
	}
	return nil
}

// MailEnabled reports whether SMTP credentials were supplied.
// Password recovery degrades when they were not; nothing else is affected.
func (c *Config) MailEnabled() bool {
	return c.SMTPHost != "" && c.MailFrom != ""
}

// PexelsEnabled reports whether the Pexels API key was supplied.
func (c *Config) PexelsEnabled() bool {
	return c.PexelsAPIKey != ""
}

// TranscribeEnabled reports whether the transcription API is configured.
func (c *Config) TranscribeEnabled() bool {
	return c.TranscribeAPIURL != ""
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}
