package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all application configuration
type Config struct {
	// HTTP server
	ServerAddress string
	Environment   string

	// Record loading
	RecordsFile string

	// Default canvas geometry for layout queries
	DefaultCanvasWidth  float64
	DefaultCanvasHeight float64

	// Lambda runtime
	IsLambda bool

	// Logging
	LogLevel string

	// Authentication
	AuthEnabled bool
	JWTSecret   string
	JWTIssuer   string

	// Rate limiting
	RateLimitPerMinute int

	// Query cache
	EnableQueryCache     bool
	QueryCacheTTLSeconds int

	// Feature flags
	EnableMetrics bool
	EnableCORS    bool
	CORSOrigins   []string
}

// LoadConfig reads configuration from environment variables, falling
// back to development defaults, and validates the result.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerAddress: envStr("SERVER_ADDRESS", ":8080"),
		Environment:   envStr("ENVIRONMENT", "development"),

		RecordsFile: envStr("RECORDS_FILE", ""),

		DefaultCanvasWidth:  envFloat("DEFAULT_CANVAS_WIDTH", 800),
		DefaultCanvasHeight: envFloat("DEFAULT_CANVAS_HEIGHT", 600),

		IsLambda: envBool("IS_LAMBDA", false),

		LogLevel: envStr("LOG_LEVEL", "info"),

		AuthEnabled: envBool("AUTH_ENABLED", false),
		JWTSecret:   envStr("JWT_SECRET", ""),
		JWTIssuer:   envStr("JWT_ISSUER", "evograph"),

		RateLimitPerMinute: envInt("RATE_LIMIT_PER_MINUTE", 120),

		EnableQueryCache:     envBool("ENABLE_QUERY_CACHE", true),
		QueryCacheTTLSeconds: envInt("QUERY_CACHE_TTL_SECONDS", 30),

		EnableMetrics: envBool("ENABLE_METRICS", false),
		EnableCORS:    envBool("ENABLE_CORS", true),
		CORSOrigins:   envList("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load is an alias for LoadConfig
func Load() (*Config, error) {
	return LoadConfig()
}

// Validate rejects combinations the server cannot safely start with.
func (c *Config) Validate() error {
	if c.AuthEnabled && c.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required when AUTH_ENABLED is set")
	}
	if c.DefaultCanvasWidth <= 0 || c.DefaultCanvasHeight <= 0 {
		return fmt.Errorf("canvas dimensions must be positive")
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE cannot be negative")
	}
	if c.QueryCacheTTLSeconds < 0 {
		return fmt.Errorf("QUERY_CACHE_TTL_SECONDS cannot be negative")
	}
	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envBool treats exactly "true", "1" and "yes" as true. Anything else
// set is false, matching how the deploy scripts spell flags.
func envBool(key string, fallback bool) bool {
	switch os.Getenv(key) {
	case "":
		return fallback
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

func envInt(key string, fallback int) int {
	return parseEnv(key, fallback, strconv.Atoi)
}

func envFloat(key string, fallback float64) float64 {
	return parseEnv(key, fallback, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

// envList splits a comma-separated variable, dropping empty segments.
// A value with no usable segments keeps the fallback.
func envList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}

	var items []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}
	if len(items) == 0 {
		return fallback
	}
	return items
}

// parseEnv reads key and converts it with parse, keeping fallback when
// the variable is unset or malformed.
func parseEnv[T any](key string, fallback T, parse func(string) (T, error)) T {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	v, err := parse(raw)
	if err != nil {
		return fallback
	}
	return v
}
