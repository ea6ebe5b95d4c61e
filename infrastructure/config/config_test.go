package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// Empty values read as unset, shielding the test from the host env
	for _, key := range []string{
		"SERVER_ADDRESS", "ENVIRONMENT", "RECORDS_FILE",
		"DEFAULT_CANVAS_WIDTH", "DEFAULT_CANVAS_HEIGHT",
		"AUTH_ENABLED", "JWT_SECRET", "JWT_ISSUER",
		"RATE_LIMIT_PER_MINUTE", "ENABLE_QUERY_CACHE",
		"QUERY_CACHE_TTL_SECONDS", "ENABLE_CORS", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, "development", cfg.Environment)
	assert.Empty(t, cfg.RecordsFile)
	assert.Equal(t, float64(800), cfg.DefaultCanvasWidth)
	assert.Equal(t, float64(600), cfg.DefaultCanvasHeight)
	assert.False(t, cfg.AuthEnabled)
	assert.Equal(t, "evograph", cfg.JWTIssuer)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.True(t, cfg.EnableQueryCache)
	assert.Equal(t, 30, cfg.QueryCacheTTLSeconds)
	assert.True(t, cfg.EnableCORS)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadConfig_ReadsEnvironment(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("RECORDS_FILE", "/data/records.json")
	t.Setenv("DEFAULT_CANVAS_WIDTH", "1024")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "60")
	t.Setenv("ENABLE_QUERY_CACHE", "false")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.True(t, cfg.IsProduction())
	assert.False(t, cfg.IsDevelopment())
	assert.Equal(t, "/data/records.json", cfg.RecordsFile)
	assert.Equal(t, float64(1024), cfg.DefaultCanvasWidth)
	assert.Equal(t, 60, cfg.RateLimitPerMinute)
	assert.False(t, cfg.EnableQueryCache)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadConfig_AuthRequiresSecret(t *testing.T) {
	t.Setenv("AUTH_ENABLED", "true")

	_, err := LoadConfig()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET is required")

	t.Setenv("JWT_SECRET", "dev-secret")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.AuthEnabled)
}

func TestLoadConfig_MalformedNumbersKeepDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not a number")
	t.Setenv("DEFAULT_CANVAS_WIDTH", "wide")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, 120, cfg.RateLimitPerMinute)
	assert.Equal(t, float64(800), cfg.DefaultCanvasWidth)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"zero width", func(c *Config) { c.DefaultCanvasWidth = 0 }, "canvas dimensions must be positive"},
		{"negative height", func(c *Config) { c.DefaultCanvasHeight = -1 }, "canvas dimensions must be positive"},
		{"negative rate limit", func(c *Config) { c.RateLimitPerMinute = -1 }, "RATE_LIMIT_PER_MINUTE cannot be negative"},
		{"negative cache ttl", func(c *Config) { c.QueryCacheTTLSeconds = -1 }, "QUERY_CACHE_TTL_SECONDS cannot be negative"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{
				DefaultCanvasWidth:  800,
				DefaultCanvasHeight: 600,
			}
			tt.mutate(cfg)

			err := cfg.Validate()

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestGetEnvBool_Spellings(t *testing.T) {
	for _, truthy := range []string{"true", "1", "yes"} {
		t.Setenv("ENABLE_METRICS", truthy)
		cfg, err := LoadConfig()
		require.NoError(t, err)
		assert.True(t, cfg.EnableMetrics, "%q should enable", truthy)
	}

	t.Setenv("ENABLE_METRICS", "TRUE")
	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.False(t, cfg.EnableMetrics, "parsing is case sensitive")
}
