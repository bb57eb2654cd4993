package app

import (
	"os"
	"strconv"
	"time"

	"github.com/apitrail/apitrail/pkg/jwtx"
)

type Config struct {
	Issuer string // Optional: issuer claim for session tokens (default: apitrail)

	DatabaseURL  string // Optional: Postgres connection URL; SQLite is used when unset
	DatabaseFile string // Optional: path to SQLite database file (default: ./apitrail.db)

	SessionSecret string        // Optional: HS256 secret; an ephemeral one is generated when unset
	SessionTTL    time.Duration // Optional: session token lifetime (default: 168h)

	HashTimeCost    int // Optional: argon2id iterations (default: 2)
	HashMemoryKiB   int // Optional: argon2id memory in KiB (default: 19456)
	HashParallelism int // Optional: argon2id lanes (default: 1)

	Env                 string        // Environment (dev, staging, prod) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 8080)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

func LoadConfig() Config {
	return Config{
		Issuer: getEnvOrDefault("APITRAIL_ISSUER", "apitrail"),

		DatabaseURL:  os.Getenv("APITRAIL_DATABASE_URL"), // Optional: Postgres when set
		DatabaseFile: getEnvOrDefault("APITRAIL_DATABASE_FILE", "apitrail.db"),

		SessionSecret: os.Getenv("APITRAIL_SESSION_SECRET"),
		SessionTTL:    getEnvDurationOrDefault("APITRAIL_SESSION_TTL", jwtx.DefaultSessionTTL),

		HashTimeCost:    getEnvIntOrDefault("APITRAIL_HASH_TIME", 2),
		HashMemoryKiB:   getEnvIntOrDefault("APITRAIL_HASH_MEMORY_KIB", 19*1024),
		HashParallelism: getEnvIntOrDefault("APITRAIL_HASH_PARALLELISM", 1),

		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
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

	// Duration strings like "168h", "30m", "90s"
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	return defaultValue
}
