package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/zum-pay/zum_pay/internal/zumrails"
)

const (
	defaultAppName        = "ZumPay"
	defaultAppEnv         = "development"
	defaultPort           = "8080"
	defaultLogLevel       = "info"
	defaultShutdownDelay  = 10 * time.Second
	defaultIdempotencyTTL = 24 * time.Hour

	envSandbox    = "sandbox"
	envProduction = "production"

	idemTTLSecondsEnvVar   = "IDEMPOTENCY_TTL_SECONDS"
	idemTTLDurEnvVar       = "IDEMPOTENCY_TTL"
	shutdownSecondsEnvVar  = "SHUTDOWN_TIMEOUT_SECONDS"
	shutdownDurationEnvVar = "SHUTDOWN_TIMEOUT"
	refreshSecondsEnvVar   = "ZUM_TOKEN_REFRESH_INTERVAL_SECONDS"
	refreshDurationEnvVar  = "ZUM_TOKEN_REFRESH_INTERVAL"
	gatewayEnvironmentVar  = "ZUM_ENVIRONMENT"
	gatewayUsernameEnvVar  = "ZUM_USERNAME"
	gatewayPasswordEnvVar  = "ZUM_PASSWORD"
	apiKeyHashEnvVar       = "API_KEY_HASH"
)

// Config captures application runtime configuration loaded from environment variables.
type Config struct {
	AppName  string
	AppEnv   string
	Port     string
	LogLevel string

	DatabaseURL string
	RedisURL    string

	// APIKeyHash is the bcrypt hash callers' X-API-Key is checked against.
	APIKeyHash string

	// Gateway settings.
	GatewayUsername      string
	GatewayPassword      string
	GatewaySandbox       bool
	TokenRefreshInterval time.Duration

	ShutdownPeriod time.Duration
	IdempotencyTTL time.Duration
}

// Load reads configuration values from the environment and populates a Config instance.
func Load() (Config, error) {
	cfg := Config{
		AppName:              getEnv("APP_NAME", defaultAppName),
		AppEnv:               getEnv("APP_ENV", defaultAppEnv),
		Port:                 getEnv("PORT", defaultPort),
		LogLevel:             strings.ToLower(getEnv("LOG_LEVEL", defaultLogLevel)),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		RedisURL:             os.Getenv("REDIS_URL"),
		APIKeyHash:           os.Getenv(apiKeyHashEnvVar),
		GatewayUsername:      os.Getenv(gatewayUsernameEnvVar),
		GatewayPassword:      os.Getenv(gatewayPasswordEnvVar),
		TokenRefreshInterval: zumrails.DefaultTokenRefreshInterval,
		ShutdownPeriod:       defaultShutdownDelay,
		IdempotencyTTL:       defaultIdempotencyTTL,
	}

	switch env := strings.ToLower(getEnv(gatewayEnvironmentVar, envSandbox)); env {
	case envSandbox:
		cfg.GatewaySandbox = true
	case envProduction:
		cfg.GatewaySandbox = false
	default:
		return Config{}, fmt.Errorf("invalid %s: %q (want %s or %s)", gatewayEnvironmentVar, env, envSandbox, envProduction)
	}

	var err error
	if cfg.ShutdownPeriod, err = durationFromEnv(shutdownSecondsEnvVar, shutdownDurationEnvVar, cfg.ShutdownPeriod); err != nil {
		return Config{}, err
	}
	if cfg.IdempotencyTTL, err = durationFromEnv(idemTTLSecondsEnvVar, idemTTLDurEnvVar, cfg.IdempotencyTTL); err != nil {
		return Config{}, err
	}
	if cfg.TokenRefreshInterval, err = durationFromEnv(refreshSecondsEnvVar, refreshDurationEnvVar, cfg.TokenRefreshInterval); err != nil {
		return Config{}, err
	}

	if cfg.GatewayUsername == "" || cfg.GatewayPassword == "" {
		return Config{}, fmt.Errorf("%s and %s must be set", gatewayUsernameEnvVar, gatewayPasswordEnvVar)
	}
	if cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.RedisURL == "" {
		return Config{}, fmt.Errorf("REDIS_URL must be set")
	}

	return cfg, nil
}

// Address returns the listen address in the format Fiber expects.
func (c Config) Address() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return fmt.Sprintf(":%s", c.Port)
}

// durationFromEnv reads a duration from either a whole-seconds variable or a
// time.ParseDuration variable, preferring the former.
func durationFromEnv(secondsVar, durationVar string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(secondsVar); v != "" {
		seconds, err := strconv.Atoi(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", secondsVar, err)
		}
		return time.Duration(seconds) * time.Second, nil
	}
	if v := os.Getenv(durationVar); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, fmt.Errorf("invalid %s: %w", durationVar, err)
		}
		return d, nil
	}
	return fallback, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
