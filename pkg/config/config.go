package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// DefaultUserAgent is sent on every provider request.
// Luogu rejects clients that do not look like a browser.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Config holds all configuration for the application
// ⭐ SSOT: 모든 환경변수는 여기서만 읽음
type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Provider
	Luogu LuoguConfig

	// Outbound HTTP
	HTTPTimeout time.Duration

	// Card rendering
	Card CardConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// LuoguConfig holds Luogu provider configuration
type LuoguConfig struct {
	BaseURL   string
	UserAgent string
}

// CardConfig holds defaults and bounds for the card width accepted by the API
type CardConfig struct {
	DefaultWidth int
	MinWidth     int
	MaxWidth     int
}

// Load reads configuration from environment variables
// ⭐ SSOT: 이 함수만 os.Getenv()를 호출함
func Load() (*Config, error) {
	loadEnvFile()

	cfg := &Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		Luogu: LuoguConfig{
			BaseURL:   getEnv("LUOGU_BASE_URL", "https://www.luogu.com.cn"),
			UserAgent: getEnv("LUOGU_USER_AGENT", DefaultUserAgent),
		},

		HTTPTimeout: getEnvAsDuration("HTTP_TIMEOUT", "10s"),

		Card: CardConfig{
			DefaultWidth: getEnvAsInt("CARD_DEFAULT_WIDTH", 500),
			MinWidth:     getEnvAsInt("CARD_MIN_WIDTH", 400),
			MaxWidth:     getEnvAsInt("CARD_MAX_WIDTH", 1920),
		},

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// validate checks if configuration values are consistent
func (c *Config) validate() error {
	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return fmt.Errorf("ENV must be one of: development, staging, production")
	}

	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}

	if c.Luogu.BaseURL == "" {
		return fmt.Errorf("LUOGU_BASE_URL is required")
	}

	if c.Card.MinWidth <= 0 || c.Card.MinWidth > c.Card.DefaultWidth || c.Card.DefaultWidth > c.Card.MaxWidth {
		return fmt.Errorf("card widths must satisfy 0 < CARD_MIN_WIDTH <= CARD_DEFAULT_WIDTH <= CARD_MAX_WIDTH")
	}

	return nil
}

// loadEnvFile tries to load .env from multiple locations
func loadEnvFile() {
	paths := []string{".env"}

	if exe, err := os.Executable(); err == nil {
		exeDir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(exeDir, ".env"),
			filepath.Join(exeDir, "..", ".env"),
		)
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			_ = godotenv.Load(path)
			return
		}
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		valueStr = defaultValue
	}

	duration, err := time.ParseDuration(valueStr)
	if err != nil {
		// Fallback to default
		duration, _ = time.ParseDuration(defaultValue)
	}

	return duration
}
