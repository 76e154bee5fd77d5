package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadRateLimitConfigDefaults(t *testing.T) {
	cfg := LoadRateLimitConfig()

	assert.True(t, cfg.Enabled)
	assert.Equal(t, 60, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, time.Second, cfg.RefillInterval)
	assert.Equal(t, "ip_route", cfg.KeyStrategy)
	assert.Equal(t, "rl", cfg.Prefix)
}

func TestLoadRateLimitConfigOverridesAndFloors(t *testing.T) {
	t.Setenv("RATE_LIMIT_BURST", "10")
	t.Setenv("RATE_LIMIT_REFILL_EVERY", "2s")
	t.Setenv("RATE_LIMIT_TTL", "1s")
	t.Setenv("RATE_LIMIT_KEY_STRATEGY", "ip")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 10, cfg.Capacity)
	assert.Equal(t, 1, cfg.RefillTokens)
	assert.Equal(t, 2*time.Second, cfg.RefillInterval)
	assert.Equal(t, "ip", cfg.KeyStrategy)
	// TTL is floored so keys outlive the refill window.
	assert.Equal(t, 10*time.Second, cfg.TTL)
}

func TestLoadRateLimitConfigBadValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_CAPACITY", "not-a-number")
	t.Setenv("RATE_LIMIT_ENABLED", "maybe")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "soon")

	cfg := LoadRateLimitConfig()
	assert.Equal(t, 60, cfg.Capacity)
	assert.True(t, cfg.Enabled)
	assert.Equal(t, time.Second, cfg.RefillInterval)
}
