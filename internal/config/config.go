// Package config provides configuration loading and validation for the screener binary.
// Values come from defaults, an optional YAML file, SCREENER_* environment variables and
// command-line flags, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-screener/internal/logging"
)

const (
	// EnvPrefix is prepended to every environment variable name
	EnvPrefix = "SCREENER"
	// DefaultFileName is looked up in the working directory when no file is given
	DefaultFileName = "screener"
)

// Config represents the service configuration.
type Config struct {
	Host            string          `mapstructure:"host"`
	Port            int             `mapstructure:"port"`
	LogLevel        string          `mapstructure:"log_level"`
	LogJSON         bool            `mapstructure:"log_json"`
	PatternsFile    string          `mapstructure:"patterns_file"` // optional override of the embedded pattern library
	MaxConcurrent   int             `mapstructure:"max_concurrent"`
	ShutdownTimeout time.Duration   `mapstructure:"shutdown_timeout"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
	CORSOrigins     []string        `mapstructure:"cors_origins"`
}

// RateLimitConfig configures per-client request limiting
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
}

// New returns a viper instance with defaults and environment bindings applied.
func New() *viper.Viper {
	v := viper.New()

	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("port", 8000)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_json", false)
	v.SetDefault("patterns_file", "")
	v.SetDefault("max_concurrent", 0)
	v.SetDefault("shutdown_timeout", 30*time.Second)
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.requests_per_minute", 600)
	v.SetDefault("rate_limit.burst", 60)
	v.SetDefault("cors_origins", []string{"*"})

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// PORT is honoured for platforms that inject it
	_ = v.BindEnv("port", EnvPrefix+"_PORT", "PORT")

	return v
}

// Load reads the optional config file into v and decodes the result.
// An explicit path must exist; the default file is optional.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultFileName)
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if cfg.MaxConcurrent == 0 {
		cfg.MaxConcurrent = runtime.NumCPU() * 4
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: 'log_level': %w", err)
	}
	if c.MaxConcurrent < 0 {
		return fmt.Errorf("config error: 'max_concurrent' must be non-negative")
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("config error: 'shutdown_timeout' must be non-negative")
	}
	if c.RateLimit.Enabled {
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("config error: 'rate_limit.requests_per_minute' must be positive")
		}
		if c.RateLimit.Burst <= 0 {
			return fmt.Errorf("config error: 'rate_limit.burst' must be positive")
		}
	}
	return nil
}

// Addr returns the listen address.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
