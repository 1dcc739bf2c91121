package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"
)

const (
	RateLimitBackendRedis = "redis"
	RateLimitBackendLocal = "local"

	redacted = "[REDACTED]"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel   LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP       HTTP       `mapstructure:",squash"`
	Provider   Provider   `mapstructure:",squash"`
	Redis      Redis      `mapstructure:",squash"`
	Search     Search     `mapstructure:",squash"`
	Preference Preference `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// Provider holds the sky scrapper configuration. the api key is sent on every call
type Provider struct {
	BaseURL          string        `mapstructure:"SKY_SCRAPPER_BASE_URL"`
	APIKey           string        `mapstructure:"SKY_SCRAPPER_API_KEY"`
	APIHost          string        `mapstructure:"SKY_SCRAPPER_API_HOST"`
	Locale           string        `mapstructure:"SKY_SCRAPPER_LOCALE"`
	Timeout          time.Duration `mapstructure:"SKY_SCRAPPER_TIMEOUT"`
	RateLimitRPS     int           `mapstructure:"SKY_SCRAPPER_RATE_LIMIT"`
	RateLimitBurst   int           `mapstructure:"SKY_SCRAPPER_RATE_LIMIT_BURST"`
	RateLimitBackend string        `mapstructure:"SKY_SCRAPPER_RATE_LIMIT_BACKEND"`
}

// Search holds the defaults applied to options a search request leaves out.
type Search struct {
	CabinClass  string `mapstructure:"SEARCH_DEFAULT_CABIN_CLASS"`
	Adults      int    `mapstructure:"SEARCH_DEFAULT_ADULTS"`
	SortBy      string `mapstructure:"SEARCH_DEFAULT_SORT_BY"`
	Currency    string `mapstructure:"SEARCH_DEFAULT_CURRENCY"`
	Market      string `mapstructure:"SEARCH_DEFAULT_MARKET"`
	CountryCode string `mapstructure:"SEARCH_DEFAULT_COUNTRY_CODE"`
}

type Preference struct {
	DefaultTheme string        `mapstructure:"PREFERENCE_DEFAULT_THEME"`
	Expiration   time.Duration `mapstructure:"PREFERENCE_EXPIRATION"`
}

// Validate reports settings the service cannot start with.
func (c Config) Validate() error {
	if c.Provider.BaseURL == "" {
		return errors.New("SKY_SCRAPPER_BASE_URL is required")
	}

	if c.Provider.RateLimitRPS <= 0 {
		return fmt.Errorf("SKY_SCRAPPER_RATE_LIMIT must be positive, got %d", c.Provider.RateLimitRPS)
	}

	if c.Provider.RateLimitBackend == RateLimitBackendLocal && c.Provider.RateLimitBurst <= 0 {
		return fmt.Errorf("SKY_SCRAPPER_RATE_LIMIT_BURST must be positive, got %d", c.Provider.RateLimitBurst)
	}

	if c.Provider.RateLimitBackend != RateLimitBackendRedis && c.Provider.RateLimitBackend != RateLimitBackendLocal {
		return fmt.Errorf("unknown SKY_SCRAPPER_RATE_LIMIT_BACKEND %q", c.Provider.RateLimitBackend)
	}

	if c.Preference.DefaultTheme != "light" && c.Preference.DefaultTheme != "dark" {
		return fmt.Errorf("unknown PREFERENCE_DEFAULT_THEME %q", c.Preference.DefaultTheme)
	}

	return nil
}

// loggedConfig drops the LogValue method so the redacted copy logs as a plain struct.
type loggedConfig Config

// LogValue hides credentials when the config is logged.
func (c Config) LogValue() slog.Value {
	if c.Provider.APIKey != "" {
		c.Provider.APIKey = redacted
	}

	if c.Redis.Password != "" {
		c.Redis.Password = redacted
	}

	return slog.AnyValue(loggedConfig(c))
}
