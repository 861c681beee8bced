package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"PORT", "JWT_TTL_HOURS", "STORAGE_BACKEND", "MEDIA_URL", "MAX_UPLOAD_MB"} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 24, cfg.JWTTTL)
	assert.Equal(t, "local", cfg.StorageBackend)
	assert.Equal(t, "/media", cfg.MediaURL)
	assert.Equal(t, 10, cfg.MaxUploadMB)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("RATE_LIMIT_AUTH_RPS", "0.5")
	t.Setenv("BASE_URL", "https://api.example.com/")
	t.Setenv("STORAGE_BACKEND", "s3")
	t.Setenv("S3_BUCKET", "recipes")

	cfg := Load()

	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.Equal(t, 2, cfg.JWTTTL)
	assert.InDelta(t, 0.5, cfg.RateLimitAuthRPS, 1e-9)
	assert.Equal(t, "https://api.example.com", cfg.BaseURL)
	assert.Equal(t, "s3", cfg.StorageBackend)
	assert.Equal(t, "recipes", cfg.S3Bucket)
}

func TestGetEnvHelpers_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("SOME_INT", "abc")
	t.Setenv("SOME_FLOAT", "x1")

	assert.Equal(t, 7, getEnvInt("SOME_INT", 7))
	assert.InDelta(t, 1.5, getEnvFloat("SOME_FLOAT", 1.5), 1e-9)
	assert.Equal(t, "d", getEnv("MISSING_KEY_FOR_TEST", "d"))
}
