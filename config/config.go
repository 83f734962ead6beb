package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type AppConfig struct {
	Port     string
	Env      string
	LogLevel string

	DBDriver    string // sqlite|postgres
	DBPath      string
	DatabaseURL string `json:"-"`

	RetryAttempts   int
	RetryBase       time.Duration
	RetryMax        time.Duration
	BreakerFailures uint32

	RequireIdentity  bool
	DashboardTimeout time.Duration
}

// Load reads the environment, after merging an optional .env file.
// The second return reports whether a .env file was found.
func Load() (AppConfig, bool) {
	envLoaded := godotenv.Load() == nil

	get := func(k, def string) string {
		if v := os.Getenv(k); v != "" {
			return v
		}
		return def
	}
	getInt := func(k string, def int) int {
		if n, err := strconv.Atoi(get(k, "")); err == nil && n > 0 {
			return n
		}
		return def
	}

	cfg := AppConfig{
		Port:     get("PORT", "8080"),
		Env:      get("APP_ENV", "production"),
		LogLevel: get("LOG_LEVEL", "info"),

		DBDriver:    get("DB_DRIVER", "sqlite"),
		DBPath:      get("DB_PATH", "farm.db"),
		DatabaseURL: get("DATABASE_URL", ""),

		RetryAttempts:   getInt("DB_RETRY_ATTEMPTS", 3),
		RetryBase:       time.Duration(getInt("DB_RETRY_BASE_MS", 100)) * time.Millisecond,
		RetryMax:        time.Duration(getInt("DB_RETRY_MAX_MS", 2000)) * time.Millisecond,
		BreakerFailures: uint32(getInt("DB_BREAKER_FAILURES", 5)),

		RequireIdentity:  get("REQUIRE_IDENTITY", "false") == "true",
		DashboardTimeout: time.Duration(getInt("DASHBOARD_TIMEOUT_MS", 10000)) * time.Millisecond,
	}
	return cfg, envLoaded
}

func (c AppConfig) Development() bool { return c.Env == "development" }
