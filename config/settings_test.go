package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadSettingsDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("TOKEN_TYPE", "")
	t.Setenv("TOKEN_DURATION", "")
	t.Setenv("BASE_CURRENCY", "")
	t.Setenv("REFRESH_TOKEN_DURATION", "")

	s := LoadSettings()

	assert.Equal(t, "8080", s.Port)
	assert.Equal(t, "jwt", s.TokenType)
	assert.Equal(t, 60*time.Minute, s.TokenDuration)
	assert.Equal(t, 7*24*time.Hour, s.RefreshDuration)
	assert.Equal(t, "PLN", s.BaseCurrency)
	assert.Equal(t, time.Hour, s.RateCacheTTL)
}

func TestLoadSettingsFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("TOKEN_TYPE", "PASETO")
	t.Setenv("TOKEN_DURATION", "15m")
	t.Setenv("BASE_CURRENCY", "eur")
	t.Setenv("RATE_CACHE_TTL", "not-a-duration")
	t.Setenv("LOG_STDOUT", "true")

	s := LoadSettings()

	assert.Equal(t, "9000", s.Port)
	assert.Equal(t, "paseto", s.TokenType)
	assert.Equal(t, 15*time.Minute, s.TokenDuration)
	assert.Equal(t, "EUR", s.BaseCurrency)
	assert.Equal(t, time.Hour, s.RateCacheTTL)
	assert.True(t, s.LogStdout)
}

func TestGetEnvDefault(t *testing.T) {
	t.Setenv("LICENSING_TEST_KEY", "  value ")
	assert.Equal(t, "value", GetEnvDefault("LICENSING_TEST_KEY", "x"))
	assert.Equal(t, "x", GetEnvDefault("LICENSING_MISSING_KEY", "x"))
}
