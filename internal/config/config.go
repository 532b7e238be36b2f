package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Storage drivers understood by CreateRepository.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
)

// Config holds all configuration options for the task tracker
type Config struct {
	Server     ServerConfig
	Storage    StorageConfig
	Validation ValidationConfig
	Log        LogConfig
	Client     ClientConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string        `env:"TASKS_HOST"`
	Port            int           `env:"TASKS_PORT"`
	ShutdownTimeout time.Duration `env:"TASKS_SHUTDOWN_TIMEOUT"`
	ReadTimeout     time.Duration `env:"TASKS_READ_TIMEOUT"`
	BodyLimit       int           `env:"TASKS_BODY_LIMIT"`
	CORSOrigins     string        `env:"TASKS_CORS_ORIGINS"`
	APIPrefix       string        `env:"TASKS_API_PREFIX"`
}

// StorageConfig holds task storage configuration
type StorageConfig struct {
	Driver       string        `env:"TASKS_STORAGE_DRIVER"`
	DSN          string        `env:"TASKS_STORAGE_DSN"`
	QueryTimeout time.Duration `env:"TASKS_STORAGE_QUERY_TIMEOUT"`
}

// ValidationConfig holds validation rules configuration
type ValidationConfig struct {
	TitleMaxLength int `env:"TASKS_TITLE_MAX_LENGTH"`
}

// LogConfig holds logger configuration
type LogConfig struct {
	Level      string `env:"TASKS_LOG_LEVEL"`
	Format     string `env:"TASKS_LOG_FORMAT"`
	Output     string `env:"TASKS_LOG_OUTPUT"`
	FilePath   string `env:"TASKS_LOG_FILE"`
	MaxSize    int    `env:"TASKS_LOG_MAX_SIZE"`
	MaxBackups int    `env:"TASKS_LOG_MAX_BACKUPS"`
	MaxAge     int    `env:"TASKS_LOG_MAX_AGE"`
	Compress   bool   `env:"TASKS_LOG_COMPRESS"`
}

// ClientConfig holds configuration for the CLI client commands
type ClientConfig struct {
	BaseURL      string        `env:"TASKS_URL"`
	Timeout      time.Duration `env:"TASKS_CLIENT_TIMEOUT"`
	OutputFormat string        `env:"TASKS_OUTPUT_FORMAT"`
}

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "",
			Port:            3977,
			ShutdownTimeout: 30 * time.Second,
			ReadTimeout:     10 * time.Second,
			BodyLimit:       1 << 20,
			CORSOrigins:     "*",
			APIPrefix:       "/api",
		},
		Storage: StorageConfig{
			Driver:       DriverMemory,
			DSN:          ":memory:",
			QueryTimeout: 5 * time.Second,
		},
		Validation: ValidationConfig{
			TitleMaxLength: 0,
		},
		Log: LogConfig{
			Level:      "info",
			Format:     "json",
			Output:     "stdout",
			FilePath:   "logs/tasks.log",
			MaxSize:    100,
			MaxBackups: 5,
			MaxAge:     30,
			Compress:   true,
		},
		Client: ClientConfig{
			BaseURL:      "http://localhost:3977",
			Timeout:      10 * time.Second,
			OutputFormat: "table",
		},
	}
}

// Address returns the host:port the HTTP server listens on
func (c *Config) Address() string {
	return c.Server.Host + ":" + strconv.Itoa(c.Server.Port)
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// Server configuration; PORT is honoured for hosting platforms that inject it
	if port := os.Getenv("PORT"); port != "" {
		c.Server.Port = ParseIntWithFallback(port, c.Server.Port)
	}
	if host := os.Getenv("TASKS_HOST"); host != "" {
		c.Server.Host = host
	}
	if port := os.Getenv("TASKS_PORT"); port != "" {
		c.Server.Port = ParseIntWithFallback(port, c.Server.Port)
	}
	if timeout := os.Getenv("TASKS_SHUTDOWN_TIMEOUT"); timeout != "" {
		c.Server.ShutdownTimeout = ParseDurationWithFallback(timeout, c.Server.ShutdownTimeout)
	}
	if timeout := os.Getenv("TASKS_READ_TIMEOUT"); timeout != "" {
		c.Server.ReadTimeout = ParseDurationWithFallback(timeout, c.Server.ReadTimeout)
	}
	if limit := os.Getenv("TASKS_BODY_LIMIT"); limit != "" {
		c.Server.BodyLimit = ParseIntWithFallback(limit, c.Server.BodyLimit)
	}
	if origins := os.Getenv("TASKS_CORS_ORIGINS"); origins != "" {
		c.Server.CORSOrigins = origins
	}
	if prefix, ok := os.LookupEnv("TASKS_API_PREFIX"); ok {
		c.Server.APIPrefix = prefix
	}

	// Storage configuration
	if driver := os.Getenv("TASKS_STORAGE_DRIVER"); driver != "" {
		c.Storage.Driver = strings.ToLower(driver)
	}
	if dsn := os.Getenv("TASKS_STORAGE_DSN"); dsn != "" {
		c.Storage.DSN = dsn
	}
	if timeout := os.Getenv("TASKS_STORAGE_QUERY_TIMEOUT"); timeout != "" {
		c.Storage.QueryTimeout = ParseDurationWithFallback(timeout, c.Storage.QueryTimeout)
	}

	// Validation configuration
	if maxLen := os.Getenv("TASKS_TITLE_MAX_LENGTH"); maxLen != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(maxLen, c.Validation.TitleMaxLength)
	}

	// Log configuration
	if level := os.Getenv("TASKS_LOG_LEVEL"); level != "" {
		c.Log.Level = strings.ToLower(level)
	}
	if format := os.Getenv("TASKS_LOG_FORMAT"); format != "" {
		c.Log.Format = strings.ToLower(format)
	}
	if output := os.Getenv("TASKS_LOG_OUTPUT"); output != "" {
		c.Log.Output = strings.ToLower(output)
	}
	if path := os.Getenv("TASKS_LOG_FILE"); path != "" {
		c.Log.FilePath = path
	}
	if size := os.Getenv("TASKS_LOG_MAX_SIZE"); size != "" {
		c.Log.MaxSize = ParseIntWithFallback(size, c.Log.MaxSize)
	}
	if backups := os.Getenv("TASKS_LOG_MAX_BACKUPS"); backups != "" {
		c.Log.MaxBackups = ParseIntWithFallback(backups, c.Log.MaxBackups)
	}
	if age := os.Getenv("TASKS_LOG_MAX_AGE"); age != "" {
		c.Log.MaxAge = ParseIntWithFallback(age, c.Log.MaxAge)
	}
	if compress := os.Getenv("TASKS_LOG_COMPRESS"); compress != "" {
		c.Log.Compress = ParseBoolWithFallback(compress, c.Log.Compress)
	}

	// Client configuration
	if url := os.Getenv("TASKS_URL"); url != "" {
		c.Client.BaseURL = strings.TrimRight(url, "/")
	}
	if timeout := os.Getenv("TASKS_CLIENT_TIMEOUT"); timeout != "" {
		c.Client.Timeout = ParseDurationWithFallback(timeout, c.Client.Timeout)
	}
	if format := os.Getenv("TASKS_OUTPUT_FORMAT"); format != "" {
		c.Client.OutputFormat = strings.ToLower(format)
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return &ConfigError{Field: "server.port", Message: "port must be between 0 and 65535"}
	}
	if c.Server.ShutdownTimeout <= 0 {
		return &ConfigError{Field: "server.shutdown_timeout", Message: "shutdown timeout must be positive"}
	}
	if c.Server.ReadTimeout <= 0 {
		return &ConfigError{Field: "server.read_timeout", Message: "read timeout must be positive"}
	}
	if c.Server.BodyLimit <= 0 {
		return &ConfigError{Field: "server.body_limit", Message: "body limit must be positive"}
	}
	if c.Server.APIPrefix != "" && !strings.HasPrefix(c.Server.APIPrefix, "/") {
		return &ConfigError{Field: "server.api_prefix", Message: "api prefix must start with /"}
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverSQLite:
		if c.Storage.DSN == "" {
			return &ConfigError{Field: "storage.dsn", Message: "sqlite dsn cannot be empty"}
		}
	default:
		return &ConfigError{Field: "storage.driver", Message: "storage driver must be memory or sqlite"}
	}
	if c.Storage.QueryTimeout <= 0 {
		return &ConfigError{Field: "storage.query_timeout", Message: "query timeout must be positive"}
	}

	if c.Validation.TitleMaxLength < 0 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length cannot be negative"}
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return &ConfigError{Field: "log.format", Message: "log format must be json or text"}
	}
	switch c.Log.Output {
	case "stdout", "file", "both":
	default:
		return &ConfigError{Field: "log.output", Message: "log output must be stdout, file or both"}
	}
	if c.Log.Output != "stdout" && c.Log.FilePath == "" {
		return &ConfigError{Field: "log.file_path", Message: "log file path cannot be empty when logging to a file"}
	}

	if c.Client.BaseURL == "" {
		return &ConfigError{Field: "client.base_url", Message: "client base url cannot be empty"}
	}
	if c.Client.Timeout <= 0 {
		return &ConfigError{Field: "client.timeout", Message: "client timeout must be positive"}
	}
	switch c.Client.OutputFormat {
	case "table", "json":
	default:
		return &ConfigError{Field: "client.output_format", Message: "output format must be table or json"}
	}

	return nil
}

// ConfigError represents a configuration validation error
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return e.Field + ": " + e.Message
}
