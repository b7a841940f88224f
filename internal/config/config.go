// Package config loads server configuration from the environment.
// A .env file is honored when present; explicit environment variables win.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the serve-mode application configuration.
type Config struct {
	Addr          string
	LogLevel      string
	ScriptPath    string
	StoreBackend  string // "memory" | "file" | "redis"
	SessionDir    string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration

	// EncryptionKey encrypts sessions at rest when set. Base64, 32 bytes.
	EncryptionKey string
	// PIIPatterns are regexes masked out of stored user messages.
	PIIPatterns []string
}

// Load reads configuration from the environment, after best-effort loading a
// local .env file. Missing variables fall back to defaults that run a fully
// in-memory server.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Addr:          getEnv("EGAINBOT_ADDR", ":8080"),
		LogLevel:      getEnv("EGAINBOT_LOG_LEVEL", "info"),
		ScriptPath:    getEnv("EGAINBOT_SCRIPT", ""),
		StoreBackend:  getEnv("EGAINBOT_STORE", "memory"),
		SessionDir:    getEnv("EGAINBOT_SESSION_DIR", ""),
		RedisAddr:     getEnv("EGAINBOT_REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("EGAINBOT_REDIS_PASSWORD", ""),
		RedisDB:       getInt("EGAINBOT_REDIS_DB", 0),
		SessionTTL:    getDuration("EGAINBOT_SESSION_TTL", 0),
		EncryptionKey: getEnv("EGAINBOT_ENCRYPTION_KEY", ""),
		PIIPatterns:   getList("EGAINBOT_PII_PATTERNS"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
