package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Session state is in memory only and bounded by count and idle time.
	SessionMaxCount     int
	SessionIdleTimeout  time.Duration
	SessionCookieSecure bool

	// CataloguePath overrides the embedded field catalogue when set.
	CataloguePath string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	idleTimeout, err := time.ParseDuration(sharedcfg.EnvOrDefault("SESSION_IDLE_TIMEOUT", "30m"))
	if err != nil || idleTimeout <= 0 {
		return nil, errors.New("invalid SESSION_IDLE_TIMEOUT")
	}

	maxCount, err := strconv.Atoi(sharedcfg.EnvOrDefault("SESSION_MAX_COUNT", "1000"))
	if err != nil || maxCount <= 0 {
		return nil, errors.New("invalid SESSION_MAX_COUNT")
	}

	secure := false
	if v := os.Getenv("SESSION_COOKIE_SECURE"); v != "" {
		secure, err = strconv.ParseBool(v)
		if err != nil {
			return nil, errors.New("invalid SESSION_COOKIE_SECURE")
		}
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		SessionMaxCount:     maxCount,
		SessionIdleTimeout:  idleTimeout,
		SessionCookieSecure: secure,

		CataloguePath: os.Getenv("CATALOGUE_PATH"),
	}

	if cfg.HTTPAddr == "" {
		return nil, errors.New("HTTP_ADDR is required")
	}
	switch cfg.LogFormat {
	case "json", "text":
	default:
		return nil, errors.New("LOG_FORMAT must be json or text")
	}

	return cfg, nil
}
