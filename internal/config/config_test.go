package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Addr != ":8080" {
		t.Errorf("Addr = %q, want :8080", cfg.Addr)
	}
	if cfg.StoreBackend != "memory" {
		t.Errorf("StoreBackend = %q, want memory", cfg.StoreBackend)
	}
	if cfg.SessionTTL != 0 {
		t.Errorf("SessionTTL = %v, want 0", cfg.SessionTTL)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("EGAINBOT_ADDR", ":9999")
	t.Setenv("EGAINBOT_STORE", "redis")
	t.Setenv("EGAINBOT_REDIS_DB", "3")
	t.Setenv("EGAINBOT_SESSION_TTL", "30m")

	cfg := Load()

	if cfg.Addr != ":9999" {
		t.Errorf("Addr = %q, want :9999", cfg.Addr)
	}
	if cfg.StoreBackend != "redis" {
		t.Errorf("StoreBackend = %q, want redis", cfg.StoreBackend)
	}
	if cfg.RedisDB != 3 {
		t.Errorf("RedisDB = %d, want 3", cfg.RedisDB)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
}

func TestLoad_BadValuesFallBack(t *testing.T) {
	t.Setenv("EGAINBOT_REDIS_DB", "not-a-number")
	t.Setenv("EGAINBOT_SESSION_TTL", "soon")

	cfg := Load()

	if cfg.RedisDB != 0 {
		t.Errorf("RedisDB = %d, want fallback 0", cfg.RedisDB)
	}
	if cfg.SessionTTL != 0 {
		t.Errorf("SessionTTL = %v, want fallback 0", cfg.SessionTTL)
	}
}
