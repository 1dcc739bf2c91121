package config

import (
	"encoding/json"
	"log/slog"
	"reflect"
	"strings"

	"github.com/spf13/viper"
)

// MustInitConfig initializes configuration from .env file or environment variables.
// If configFile exists, it loads from the file. Otherwise, it automatically binds
// environment variables based on the Config struct's mapstructure tags.
func MustInitConfig(configFile string) Config {
	var (
		vpr = viper.New()
		cfg Config
	)

	setDefaults(vpr)

	vpr.AutomaticEnv()

	vpr.SetConfigFile(configFile)
	vpr.SetConfigType("env")

	if err := vpr.ReadInConfig(); err != nil {
		slog.Warn("config file not found or cannot be read, using environment variables",
			slog.String("file", configFile),
			slog.String("error", err.Error()))
	} else {
		slog.Info("config file loaded successfully", slog.String("file", configFile))

		vpr.WatchConfig()
	}

	// Automatically bind all environment variables from Config struct
	bindEnvFromStruct(vpr)

	// Unmarshal configuration into struct
	if err := vpr.Unmarshal(&cfg); err != nil {
		slog.Error("cannot unmarshal config", slog.String("error", err.Error()))
		panic(err)
	}

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", slog.String("error", err.Error()))
		panic(err)
	}

	if cfg.Provider.APIKey == "" {
		slog.Warn("SKY_SCRAPPER_API_KEY is empty, provider calls will be rejected")
	}

	return cfg
}

func setDefaults(vpr *viper.Viper) {
	vpr.SetDefault("LOG_LEVEL", "info")

	vpr.SetDefault("HTTP_PORT", 8080)
	vpr.SetDefault("HTTP_TIMEOUT", "30s")
	vpr.SetDefault("HTTP_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	vpr.SetDefault("REDIS_ADDR", "localhost:6379")
	vpr.SetDefault("REDIS_DB", 0)
	vpr.SetDefault("REDIS_TIMEOUT", "3s")

	vpr.SetDefault("SKY_SCRAPPER_BASE_URL", "https://sky-scrapper.p.rapidapi.com")
	vpr.SetDefault("SKY_SCRAPPER_API_HOST", "sky-scrapper.p.rapidapi.com")
	vpr.SetDefault("SKY_SCRAPPER_LOCALE", "en-US")
	vpr.SetDefault("SKY_SCRAPPER_TIMEOUT", "15s")
	vpr.SetDefault("SKY_SCRAPPER_RATE_LIMIT", 5)
	vpr.SetDefault("SKY_SCRAPPER_RATE_LIMIT_BURST", 5)
	vpr.SetDefault("SKY_SCRAPPER_RATE_LIMIT_BACKEND", RateLimitBackendRedis)

	vpr.SetDefault("SEARCH_DEFAULT_CABIN_CLASS", "economy")
	vpr.SetDefault("SEARCH_DEFAULT_ADULTS", 1)
	vpr.SetDefault("SEARCH_DEFAULT_SORT_BY", "best")
	vpr.SetDefault("SEARCH_DEFAULT_CURRENCY", "USD")
	vpr.SetDefault("SEARCH_DEFAULT_MARKET", "en-US")
	vpr.SetDefault("SEARCH_DEFAULT_COUNTRY_CODE", "US")

	vpr.SetDefault("PREFERENCE_DEFAULT_THEME", "light")
	vpr.SetDefault("PREFERENCE_EXPIRATION", "720h")
}

// bindEnvFromStruct automatically binds environment variables based on mapstructure tags using reflection
func bindEnvFromStruct(vpr *viper.Viper) {
	bindEnvFromType(vpr, reflect.TypeOf(Config{}))
}

func bindEnvFromType(vpr *viper.Viper, t reflect.Type) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	if t.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" || tag == "-" {
			// If it's an embedded struct without a tag, recurse
			if field.Anonymous && field.Type.Kind() == reflect.Struct {
				bindEnvFromType(vpr, field.Type)
			}
			continue
		}

		parts := strings.Split(tag, ",")
		envVar := parts[0]
		isSquash := false
		for _, p := range parts {
			if strings.TrimSpace(p) == "squash" {
				isSquash = true
				break
			}
		}

		if isSquash && field.Type.Kind() == reflect.Struct {
			bindEnvFromType(vpr, field.Type)
			continue
		}

		if envVar != "" {
			_ = vpr.BindEnv(envVar)

			// If it's an array of struct, check if the value is a JSON string and unmarshal it
			if (field.Type.Kind() == reflect.Slice && field.Type.Elem().Kind() == reflect.Struct) ||
				field.Type.Kind() == reflect.Struct {
				val := vpr.Get(envVar)
				if s, ok := val.(string); ok && s != "" {
					var jsonVal interface{}
					if err := json.Unmarshal([]byte(s), &jsonVal); err == nil {
						vpr.Set(envVar, jsonVal)
					}
				}
			}
		}
	}
}
