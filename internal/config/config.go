package config // package config loads application configuration from environment variables

import (
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// Config holds all runtime configuration values.  Each field has a
// default so the service starts with no environment at all; production
// deployments should at minimum override JWT_SECRET.
type Config struct {
	Env        string        // application environment (e.g. "dev", "prod")
	Port       string        // HTTP port to listen on
	DataFile   string        // path of the JSON database file
	JWTSecret  string        // secret used to sign session tokens
	SessionTTL time.Duration // session token validity window
	BcryptCost int           // bcrypt cost for password hashing
}

// Load reads configuration from environment variables, falling back to
// defaults for anything unset.
func Load() Config {
	return Config{
		Env:        envStr("APP_ENV", "dev"),
		Port:       envStr("APP_PORT", "3000"),
		DataFile:   envStr("DATA_FILE", "database.json"),
		JWTSecret:  envStr("JWT_SECRET", "club-secret-key-2024"),
		SessionTTL: envDur("SESSION_TTL", 24*time.Hour),
		BcryptCost: envInt("BCRYPT_COST", bcrypt.DefaultCost),
	}
}

func envStr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envDur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
