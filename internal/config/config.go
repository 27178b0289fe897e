package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration options for the task manager client
type Config struct {
	API           APIConfig           `mapstructure:"api"`
	Database      DatabaseConfig      `mapstructure:"database"`
	Notifications NotificationsConfig `mapstructure:"notifications"`
	Display       DisplayConfig       `mapstructure:"display"`
	Validation    ValidationConfig    `mapstructure:"validation"`
	Application   ApplicationConfig   `mapstructure:"application"`
}

// APIConfig holds settings for the remote task service
type APIConfig struct {
	BaseURL string        `mapstructure:"base_url" env:"TM_API_BASE_URL"`
	Timeout time.Duration `mapstructure:"timeout" env:"TM_API_TIMEOUT"`
}

// DatabaseConfig holds settings for the local credential store
type DatabaseConfig struct {
	Dir            string        `mapstructure:"dir" env:"TM_DB_DIR"`
	Filename       string        `mapstructure:"filename" env:"TM_DB_FILENAME"`
	QueryTimeout   time.Duration `mapstructure:"query_timeout" env:"TM_DB_QUERY_TIMEOUT"`
	WriteTimeout   time.Duration `mapstructure:"write_timeout" env:"TM_DB_WRITE_TIMEOUT"`
	DirPermissions uint32        `mapstructure:"dir_permissions" env:"TM_DB_DIR_PERMISSIONS"`
}

// NotificationsConfig holds due-soon notification settings
type NotificationsConfig struct {
	WindowDays int `mapstructure:"window_days" env:"TM_NOTIFY_WINDOW_DAYS"`
}

// DisplayConfig holds display formatting configuration
type DisplayConfig struct {
	DateFormat    string `mapstructure:"date_format" env:"TM_DISPLAY_DATE_FORMAT"`
	RelativeDates bool   `mapstructure:"relative_dates" env:"TM_DISPLAY_RELATIVE_DATES"`
	Color         bool   `mapstructure:"color" env:"TM_DISPLAY_COLOR"`
}

// ValidationConfig holds form validation limits
type ValidationConfig struct {
	TitleMaxLength       int `mapstructure:"title_max_length" env:"TM_VALIDATION_TITLE_MAX"`
	DescriptionMaxLength int `mapstructure:"description_max_length" env:"TM_VALIDATION_DESCRIPTION_MAX"`
}

// ApplicationConfig holds application-level configuration
type ApplicationConfig struct {
	Environment string        `mapstructure:"environment" env:"TM_ENV"`
	Timeout     time.Duration `mapstructure:"timeout" env:"TM_APP_TIMEOUT"`
	Verbose     bool          `mapstructure:"verbose" env:"TM_APP_VERBOSE"`
	LogLevel    string        `mapstructure:"log_level" env:"TM_LOG_LEVEL"`
	LogFormat   string        `mapstructure:"log_format" env:"TM_LOG_FORMAT"`
}

// Environments understood by TM_ENV
const (
	EnvProduction = "production"
	EnvTesting    = "testing"
)

// NewConfig creates a new configuration with sensible defaults
func NewConfig() *Config {
	homeDir, _ := os.UserHomeDir()
	defaultDBDir := filepath.Join(homeDir, ".tm")

	return &Config{
		API: APIConfig{
			BaseURL: "http://localhost:3000/",
			Timeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Dir:            defaultDBDir,
			Filename:       "session.db",
			QueryTimeout:   10 * time.Second,
			WriteTimeout:   5 * time.Second,
			DirPermissions: 0700,
		},
		Notifications: NotificationsConfig{
			WindowDays: 3,
		},
		Display: DisplayConfig{
			DateFormat:    "2006-01-02",
			RelativeDates: true,
			Color:         true,
		},
		Validation: ValidationConfig{
			TitleMaxLength:       255,
			DescriptionMaxLength: 2000,
		},
		Application: ApplicationConfig{
			Environment: EnvProduction,
			Timeout:     60 * time.Second,
			Verbose:     false,
			LogLevel:    "warn",
			LogFormat:   "text",
		},
	}
}

// GetDatabasePath returns the full path to the credential database file
func (c *Config) GetDatabasePath() string {
	return filepath.Join(c.Database.Dir, c.Database.Filename)
}

// GetQueryTimeout returns the database query timeout
func (c *Config) GetQueryTimeout() time.Duration {
	return c.Database.QueryTimeout
}

// GetWriteTimeout returns the database write timeout
func (c *Config) GetWriteTimeout() time.Duration {
	return c.Database.WriteTimeout
}

// LoadFromEnvironment loads configuration from environment variables
func (c *Config) LoadFromEnvironment() error {
	// API configuration
	if url := os.Getenv("TM_API_BASE_URL"); url != "" {
		c.API.BaseURL = url
	}
	if timeout := os.Getenv("TM_API_TIMEOUT"); timeout != "" {
		c.API.Timeout = ParseDurationWithFallback(timeout, c.API.Timeout)
	}

	// Database configuration
	if dir := os.Getenv("TM_DB_DIR"); dir != "" {
		c.Database.Dir = dir
	}
	if filename := os.Getenv("TM_DB_FILENAME"); filename != "" {
		c.Database.Filename = filename
	}
	if timeout := os.Getenv("TM_DB_QUERY_TIMEOUT"); timeout != "" {
		c.Database.QueryTimeout = ParseDurationWithFallback(timeout, c.Database.QueryTimeout)
	}
	if timeout := os.Getenv("TM_DB_WRITE_TIMEOUT"); timeout != "" {
		c.Database.WriteTimeout = ParseDurationWithFallback(timeout, c.Database.WriteTimeout)
	}
	if perms := os.Getenv("TM_DB_DIR_PERMISSIONS"); perms != "" {
		c.Database.DirPermissions = ParseUint32WithFallback(perms, 8, c.Database.DirPermissions)
	}

	// Notification configuration
	if window := os.Getenv("TM_NOTIFY_WINDOW_DAYS"); window != "" {
		c.Notifications.WindowDays = ParseIntWithFallback(window, c.Notifications.WindowDays)
	}

	// Display configuration
	if format := os.Getenv("TM_DISPLAY_DATE_FORMAT"); format != "" {
		c.Display.DateFormat = format
	}
	if relative := os.Getenv("TM_DISPLAY_RELATIVE_DATES"); relative != "" {
		c.Display.RelativeDates = ParseBoolWithFallback(relative, c.Display.RelativeDates)
	}
	if color := os.Getenv("TM_DISPLAY_COLOR"); color != "" {
		c.Display.Color = ParseBoolWithFallback(color, c.Display.Color)
	}
	if _, noColor := os.LookupEnv("NO_COLOR"); noColor {
		c.Display.Color = false
	}

	// Validation configuration
	if maxLen := os.Getenv("TM_VALIDATION_TITLE_MAX"); maxLen != "" {
		c.Validation.TitleMaxLength = ParseIntWithFallback(maxLen, c.Validation.TitleMaxLength)
	}
	if maxLen := os.Getenv("TM_VALIDATION_DESCRIPTION_MAX"); maxLen != "" {
		c.Validation.DescriptionMaxLength = ParseIntWithFallback(maxLen, c.Validation.DescriptionMaxLength)
	}

	// Application configuration
	if env := os.Getenv("TM_ENV"); env != "" {
		c.Application.Environment = strings.ToLower(env)
	}
	if timeout := os.Getenv("TM_APP_TIMEOUT"); timeout != "" {
		c.Application.Timeout = ParseDurationWithFallback(timeout, c.Application.Timeout)
	}
	if verbose := os.Getenv("TM_APP_VERBOSE"); verbose != "" {
		c.Application.Verbose = ParseBoolWithFallback(verbose, c.Application.Verbose)
	}
	if level := os.Getenv("TM_LOG_LEVEL"); level != "" {
		c.Application.LogLevel = level
	}
	if format := os.Getenv("TM_LOG_FORMAT"); format != "" {
		c.Application.LogFormat = format
	}

	return nil
}

// Validate validates the configuration and returns any errors
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return &ConfigError{Field: "api.base_url", Message: "API base URL cannot be empty"}
	}
	if !strings.HasPrefix(c.API.BaseURL, "http://") && !strings.HasPrefix(c.API.BaseURL, "https://") {
		return &ConfigError{Field: "api.base_url", Message: "API base URL must start with http:// or https://"}
	}
	if c.API.Timeout <= 0 {
		return &ConfigError{Field: "api.timeout", Message: "API timeout must be positive"}
	}

	if c.Database.Dir == "" {
		return &ConfigError{Field: "database.dir", Message: "database directory cannot be empty"}
	}
	if c.Database.Filename == "" {
		return &ConfigError{Field: "database.filename", Message: "database filename cannot be empty"}
	}
	if c.Database.QueryTimeout <= 0 {
		return &ConfigError{Field: "database.query_timeout", Message: "query timeout must be positive"}
	}
	if c.Database.WriteTimeout <= 0 {
		return &ConfigError{Field: "database.write_timeout", Message: "write timeout must be positive"}
	}

	if c.Notifications.WindowDays < 0 {
		return &ConfigError{Field: "notifications.window_days", Message: "notification window cannot be negative"}
	}

	if c.Display.DateFormat == "" {
		return &ConfigError{Field: "display.date_format", Message: "date format cannot be empty"}
	}

	if c.Validation.TitleMaxLength < 1 {
		return &ConfigError{Field: "validation.title_max_length", Message: "title maximum length must be at least 1"}
	}
	if c.Validation.DescriptionMaxLength < 1 {
		return &ConfigError{Field: "validation.description_max_length", Message: "description maximum length must be at least 1"}
	}

	switch c.Application.Environment {
	case EnvProduction, EnvTesting:
	default:
		return &ConfigError{Field: "application.environment", Message: "environment must be production or testing"}
	}
	if c.Application.Timeout <= 0 {
		return &ConfigError{Field: "application.timeout", Message: "application timeout must be positive"}
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

// ParseUint32WithFallback parses a uint32 string with a fallback value
func ParseUint32WithFallback(s string, base int, fallback uint32) uint32 {
	if u, err := strconv.ParseUint(s, base, 32); err == nil {
		return uint32(u)
	}
	return fallback
}
