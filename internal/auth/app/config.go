package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/medibook/medibook/pkg/jwtx"
)

type Config struct {
	Issuer        string        // Issuer claim stamped on every token (default: medibook-auth)
	SigningSecret string        // Required: HS256 signing key, at least 32 bytes
	AccessTTL     time.Duration // Access token lifetime; refresh tokens live twice as long
	ExemptPaths   []string      // Paths that bypass bearer validation entirely

	SeedIdentifier  string   // Optional: account created when the store is empty
	SeedSecret      string   // Secret for the seed account
	SeedAuthorities []string // Authorities for the seed account (default: admin)

	DatabaseFile        string        // Path to the SQLite database file (default: ./auth.db)
	PepperFile          string        // Path to the secret-hash pepper file (default: ./pepper)
	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// DefaultExemptPaths bypass bearer-token validation: the endpoints that mint
// tokens and the health probes.
var DefaultExemptPaths = []string{
	"/v1/auth/login",
	"/v1/auth/refresh",
	"/livez",
	"/readyz",
}

func LoadConfig() Config {
	cfg := Config{
		Issuer:        getEnvOrDefault("AUTH_ISSUER", "medibook-auth"),
		SigningSecret: os.Getenv("AUTH_SIGNING_SECRET"),
		AccessTTL:     getEnvDurationOrDefault("AUTH_ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		ExemptPaths:   DefaultExemptPaths,

		SeedIdentifier:  os.Getenv("AUTH_SEED_IDENTIFIER"),
		SeedSecret:      os.Getenv("AUTH_SEED_SECRET"),
		SeedAuthorities: splitList(getEnvOrDefault("AUTH_SEED_AUTHORITIES", "admin")),

		DatabaseFile:        getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		PepperFile:          getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}

	if v := os.Getenv("AUTH_EXEMPT_PATHS"); v != "" {
		cfg.ExemptPaths = splitList(v)
	}

	return cfg
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Accept Go duration strings ("15m", "90s") or bare minutes.
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
