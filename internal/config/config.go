package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is built once at startup and passed to the components that need it.
type Config struct {
	Port string

	// DatabaseURL is a Postgres DSN (postgres:// or postgresql://) or,
	// otherwise, a SQLite file path.
	DatabaseURL string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	// Question generation, OpenAI-compatible endpoint.
	LLMAPIKey  string
	LLMBaseURL string
	LLMModel   string

	GoogleUserInfoURL string
	HTTPClientTimeout time.Duration

	CORSAllowedOrigin string
	ShutdownTimeout   time.Duration
}

// Load reads an optional .env file, then the environment. The returned
// config has already passed Validate.
func Load() (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var errs []error
	cfg := &Config{
		Port:              getenvDefault("PORT", "5000"),
		DatabaseURL:       getenvDefault("DATABASE_URL", "mathpractice.db"),
		JWTSecret:         os.Getenv("JWT_SECRET_KEY"),
		TokenTTL:          getDuration("TOKEN_TTL", 24*time.Hour, &errs),
		BcryptCost:        getInt("BCRYPT_COST", 10, &errs),
		LLMAPIKey:         os.Getenv("LLM_API_KEY"),
		LLMBaseURL:        os.Getenv("LLM_BASE_URL"),
		LLMModel:          os.Getenv("LLM_MODEL"),
		GoogleUserInfoURL: os.Getenv("GOOGLE_USERINFO_URL"),
		HTTPClientTimeout: getDuration("HTTP_CLIENT_TIMEOUT", 60*time.Second, &errs),
		CORSAllowedOrigin: getenvDefault("CORS_ALLOWED_ORIGIN", "*"),
		ShutdownTimeout:   getDuration("SHUTDOWN_TIMEOUT", 5*time.Second, &errs),
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every setting that would prevent the server from starting.
func (c *Config) Validate() error {
	var errs []error
	if c.JWTSecret == "" {
		errs = append(errs, errors.New("config: JWT_SECRET_KEY is required"))
	} else if len(c.JWTSecret) < 32 {
		errs = append(errs, errors.New("config: JWT_SECRET_KEY must be at least 32 characters for HMAC-SHA256 security"))
	}
	if c.BcryptCost < 4 || c.BcryptCost > 14 {
		errs = append(errs, fmt.Errorf("config: BCRYPT_COST must be between 4 and 14, got %d", c.BcryptCost))
	}
	if c.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("config: TOKEN_TTL must be positive, got %s", c.TokenTTL))
	}
	if c.HTTPClientTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: HTTP_CLIENT_TIMEOUT must be positive, got %s", c.HTTPClientTimeout))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("config: SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	if c.Port == "" {
		errs = append(errs, errors.New("config: PORT must not be empty"))
	}
	return errors.Join(errs...)
}

// UsePostgres reports whether DatabaseURL names a Postgres database.
func (c *Config) UsePostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDuration(k string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("config: %s=%q is not a valid duration: %w", k, v, err))
		return fallback
	}
	return d
}

func getInt(k string, fallback int, errs *[]error) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("config: %s=%q is not a valid integer: %w", k, v, err))
		return fallback
	}
	return n
}
