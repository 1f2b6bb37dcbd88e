package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/terraincognita07/emotrack/internal/db"
	"github.com/terraincognita07/emotrack/internal/security"
	"golang.org/x/crypto/bcrypt"
	gormlogger "gorm.io/gorm/logger"
)

const minSecretKeyLength = 32

var (
	ErrMissingSecretKey     = errors.New("SECRET_KEY is required")
	ErrInsecureSecretKey    = errors.New("SECRET_KEY uses a known placeholder")
	ErrShortSecretKey       = fmt.Errorf("SECRET_KEY must be at least %d characters", minSecretKeyLength)
	ErrInvalidTokenLifetime = errors.New("ACCESS_TOKEN_EXPIRE_MINUTES must be a positive integer")
)

var placeholderSecrets = map[string]struct{}{
	"change_me_in_production":                    {},
	"replace_with_at_least_32_random_characters": {},
	"secret":                                     {},
	"changeme":                                   {},
}

// Config is loaded once at startup and treated as read-only afterwards.
type Config struct {
	DBPath         string
	DBLogLevel     gormlogger.LogLevel
	SecretKey      string
	Algorithm      string
	TokenTTL       time.Duration
	BcryptCost     int
	Port           string
	MetricsEnabled bool
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the process environment alone.
func FromEnv() (*Config, error) {
	secret, err := resolveSecretKey()
	if err != nil {
		return nil, err
	}

	algorithm := strings.ToUpper(getEnvString("ALGORITHM", "HS256"))
	if _, err := security.SigningMethod(algorithm); err != nil {
		return nil, fmt.Errorf("ALGORITHM: %w", err)
	}

	ttl, err := resolveTokenTTL()
	if err != nil {
		return nil, err
	}

	cost, err := resolveBcryptCost()
	if err != nil {
		return nil, err
	}

	port, err := resolvePort()
	if err != nil {
		return nil, err
	}

	metricsEnabled, err := resolveBool("METRICS_ENABLED", true)
	if err != nil {
		return nil, err
	}

	dbLogLevel, err := db.ParseLogLevel(getEnvString("DB_LOG_LEVEL", ""))
	if err != nil {
		return nil, fmt.Errorf("DB_LOG_LEVEL: %w", err)
	}

	return &Config{
		DBPath:         getEnvString("DB_PATH", filepath.Join("data", "emotrack.db")),
		DBLogLevel:     dbLogLevel,
		SecretKey:      secret,
		Algorithm:      algorithm,
		TokenTTL:       ttl,
		BcryptCost:     cost,
		Port:           port,
		MetricsEnabled: metricsEnabled,
	}, nil
}

func resolveSecretKey() (string, error) {
	secret := strings.TrimSpace(os.Getenv("SECRET_KEY"))
	if secret == "" {
		return "", ErrMissingSecretKey
	}
	if _, ok := placeholderSecrets[strings.ToLower(secret)]; ok {
		return "", ErrInsecureSecretKey
	}
	if len(secret) < minSecretKeyLength {
		return "", ErrShortSecretKey
	}
	return secret, nil
}

func resolveTokenTTL() (time.Duration, error) {
	raw := getEnvString("ACCESS_TOKEN_EXPIRE_MINUTES", "")
	if raw == "" {
		return security.DefaultTokenTTL, nil
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTokenLifetime, raw)
	}
	return time.Duration(minutes) * time.Minute, nil
}

func resolveBcryptCost() (int, error) {
	raw := getEnvString("BCRYPT_COST", "")
	if raw == "" {
		return bcrypt.DefaultCost, nil
	}
	cost, err := strconv.Atoi(raw)
	if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return 0, fmt.Errorf("BCRYPT_COST must be an integer between %d and %d, got %q", bcrypt.MinCost, bcrypt.MaxCost, raw)
	}
	return cost, nil
}

func resolvePort() (string, error) {
	raw := getEnvString("PORT", "8080")
	port, err := strconv.Atoi(raw)
	if err != nil || port < 1 || port > 65535 {
		return "", fmt.Errorf("PORT must be between 1 and 65535, got %q", raw)
	}
	return strconv.Itoa(port), nil
}

func resolveBool(key string, fallback bool) (bool, error) {
	raw := getEnvString(key, "")
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("%s must be a boolean, got %q", key, raw)
	}
	return value, nil
}

func getEnvString(key string, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}
