// Package config loads and validates the TianguiStore server configuration.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Environment selects how strict the outward-facing behavior of the
// server is: development relaxes CORS and includes error detail in
// responses, production does neither.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvProduction  Environment = "production"
)

// MaxJSONBodyBytes is the ceiling for JSON request bodies (1 MiB).
const MaxJSONBodyBytes = 1 << 20

// requiredKeys maps viper keys to the operator-facing environment
// variable names reported when a key is absent. The database password is
// deliberately not here: an absent DB_PASSWORD means the empty password.
var requiredKeys = []struct {
	viperKey string
	envName  string
}{
	{"database.host", "DB_HOST"},
	{"database.port", "DB_PORT"},
	{"database.user", "DB_USER"},
	{"database.name", "DB_NAME"},
}

// MissingKeysError reports every required configuration key that was
// absent or empty, not just the first one found.
type MissingKeysError struct {
	Keys []string
}

func (e *MissingKeysError) Error() string {
	return fmt.Sprintf("missing required configuration keys: %s", strings.Join(e.Keys, ", "))
}

// Config holds all configuration for the TianguiStore server. It is built
// once at startup and never mutated afterwards; every component receives
// it explicitly.
type Config struct {
	Environment Environment `mapstructure:"environment" validate:"oneof=development production"`

	Server struct {
		Host string `mapstructure:"host" validate:"required"`
		Port int    `mapstructure:"port" validate:"min=1,max=65535"`
	} `mapstructure:"server"`

	Database struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port" validate:"min=1,max=65535"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`

	CORS struct {
		AllowedOrigin string `mapstructure:"allowed_origin"`
	} `mapstructure:"cors"`

	API struct {
		RateLimit struct {
			RequestsPerSecond int `mapstructure:"requests_per_second" validate:"min=1"`
			Burst             int `mapstructure:"burst" validate:"min=1"`
		} `mapstructure:"rate_limit"`
	} `mapstructure:"api"`

	Static struct {
		Dir string `mapstructure:"dir" validate:"required"`
	} `mapstructure:"static"`
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

// setDefaults sets default configuration values. Required keys get no
// default on purpose so their absence is detectable.
func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", string(EnvDevelopment))
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 3000)
	v.SetDefault("database.password", "")
	v.SetDefault("cors.allowed_origin", "")
	v.SetDefault("api.rate_limit.requests_per_second", 100)
	v.SetDefault("api.rate_limit.burst", 200)
	v.SetDefault("static.dir", "./public")
}

// bindEnv wires the operational environment variables the deployment
// scripts have always used.
func bindEnv(v *viper.Viper) {
	_ = v.BindEnv("environment", "APP_ENV")
	_ = v.BindEnv("server.host", "HOST")
	_ = v.BindEnv("server.port", "PORT")
	_ = v.BindEnv("database.host", "DB_HOST")
	_ = v.BindEnv("database.port", "DB_PORT")
	_ = v.BindEnv("database.user", "DB_USER")
	_ = v.BindEnv("database.password", "DB_PASSWORD")
	_ = v.BindEnv("database.name", "DB_NAME")
	_ = v.BindEnv("cors.allowed_origin", "CORS_ORIGIN")
	_ = v.BindEnv("static.dir", "STATIC_DIR")
}

// Load reads configuration from config.yaml (if present) and the
// environment, verifies every required key is set, and returns the
// immutable Config. Construction is all-or-nothing: a *MissingKeysError
// naming every absent key is returned if any required key is missing.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	setDefaults(v)
	bindEnv(v)

	// Config file is optional; env vars and defaults carry the rest.
	_ = v.ReadInConfig()

	var missing []string
	for _, k := range requiredKeys {
		if strings.TrimSpace(v.GetString(k.viperKey)) == "" {
			missing = append(missing, k.envName)
		}
	}
	if len(missing) > 0 {
		return nil, &MissingKeysError{Keys: missing}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}
