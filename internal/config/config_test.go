package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_EXPIRES_IN", "not-a-duration")
	t.Setenv("AUTH_RATE_LIMIT", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.JWTExpirationDur != 24*time.Hour {
		t.Errorf("expected 24h fallback, got %s", cfg.JWTExpirationDur)
	}
	if cfg.AuthRateLimit != 5 || cfg.AuthRateBurst != 10 {
		t.Errorf("unexpected rate limit defaults: %v/%d", cfg.AuthRateLimit, cfg.AuthRateBurst)
	}
	if cfg.NotificationQueue == "" {
		t.Error("expected a default notification queue name")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AUTH_RATE_LIMIT", "0.5")
	t.Setenv("AUTH_RATE_BURST", "3")
	t.Setenv("CURRENCY_SYMBOL", "SAR ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" || cfg.RedisURL != "redis://localhost:6379/0" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.AuthRateLimit != 0.5 || cfg.AuthRateBurst != 3 {
		t.Errorf("unexpected rate limit: %v/%d", cfg.AuthRateLimit, cfg.AuthRateBurst)
	}
	if Get().CurrencySymbol != "SAR " {
		t.Errorf("Get should return the last loaded config")
	}
}
