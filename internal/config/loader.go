package config

import (
	"errors"
	"io/fs"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultEnvFile is read before the process environment when present.
const DefaultEnvFile = ".env"

// Loader handles loading configuration from multiple sources
type Loader struct {
	config  *Config
	envFile string
}

// NewLoader creates a new configuration loader
func NewLoader() *Loader {
	return &Loader{
		config:  NewConfig(),
		envFile: DefaultEnvFile,
	}
}

// WithEnvFile points the loader at a different dotenv file. An empty path disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Merge the dotenv file into the environment (existing variables win)
// 3. Override with environment variables
// 4. Override with command line flags (handled by cobra through LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if l.envFile != "" {
		if err := godotenv.Load(l.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, &ConfigError{Field: "env_file", Message: err.Error()}
		}
	}

	if err := l.config.LoadFromEnvironment(); err != nil {
		return nil, err
	}

	if err := l.config.Validate(); err != nil {
		return nil, err
	}

	return l.config, nil
}

// LoadWithOverrides loads configuration and applies command line overrides
func (l *Loader) LoadWithOverrides(overrides *ConfigOverrides) (*Config, error) {
	config, err := l.Load()
	if err != nil {
		return nil, err
	}

	if overrides != nil {
		l.applyOverrides(config, overrides)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	// Server overrides
	Host        *string
	Port        *int
	CORSOrigins *string

	// Storage overrides
	StorageDriver *string
	StorageDSN    *string

	// Validation overrides
	TitleMaxLength *int

	// Log overrides
	LogLevel  *string
	LogFormat *string

	// Client overrides
	BaseURL      *string
	Timeout      *time.Duration
	OutputFormat *string
}

// applyOverrides applies command line overrides to the configuration
func (l *Loader) applyOverrides(config *Config, overrides *ConfigOverrides) {
	if overrides.Host != nil {
		config.Server.Host = *overrides.Host
	}
	if overrides.Port != nil {
		config.Server.Port = *overrides.Port
	}
	if overrides.CORSOrigins != nil {
		config.Server.CORSOrigins = *overrides.CORSOrigins
	}

	if overrides.StorageDriver != nil {
		config.Storage.Driver = strings.ToLower(*overrides.StorageDriver)
	}
	if overrides.StorageDSN != nil {
		config.Storage.DSN = *overrides.StorageDSN
	}

	if overrides.TitleMaxLength != nil {
		config.Validation.TitleMaxLength = *overrides.TitleMaxLength
	}

	if overrides.LogLevel != nil {
		config.Log.Level = strings.ToLower(*overrides.LogLevel)
	}
	if overrides.LogFormat != nil {
		config.Log.Format = strings.ToLower(*overrides.LogFormat)
	}

	if overrides.BaseURL != nil {
		config.Client.BaseURL = strings.TrimRight(*overrides.BaseURL, "/")
	}
	if overrides.Timeout != nil {
		config.Client.Timeout = *overrides.Timeout
	}
	if overrides.OutputFormat != nil {
		config.Client.OutputFormat = strings.ToLower(*overrides.OutputFormat)
	}
}

// ParseDurationWithFallback parses a duration string with a fallback value
func ParseDurationWithFallback(s string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(s); err == nil {
		return d
	}
	return fallback
}

// ParseIntWithFallback parses an integer string with a fallback value
func ParseIntWithFallback(s string, fallback int) int {
	if i, err := strconv.Atoi(s); err == nil {
		return i
	}
	return fallback
}

// ParseBoolWithFallback parses a boolean string with a fallback value
func ParseBoolWithFallback(s string, fallback bool) bool {
	if b, err := strconv.ParseBool(s); err == nil {
		return b
	}
	return fallback
}
