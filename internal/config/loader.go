package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Loader handles loading configuration from multiple sources
type Loader struct {
	config     *Config
	configFile string
	envFile    string
}

// NewLoader creates a new configuration loader using the default file locations
func NewLoader() *Loader {
	return &Loader{
		config:     NewConfig(),
		configFile: DefaultConfigFilePath(),
		envFile:    ".env",
	}
}

// WithConfigFile sets the YAML config file to read. An empty path disables it.
func (l *Loader) WithConfigFile(path string) *Loader {
	l.configFile = path
	return l
}

// WithEnvFile sets the dotenv file to read. An empty path disables it.
func (l *Loader) WithEnvFile(path string) *Loader {
	l.envFile = path
	return l
}

// DefaultConfigFilePath returns $TM_CONFIG, or ~/.tm/config.yaml
func DefaultConfigFilePath() string {
	if path := os.Getenv("TM_CONFIG"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".tm", "config.yaml")
}

// Load loads configuration using the cascading strategy:
// 1. Start with defaults
// 2. Override with the YAML config file, if present
// 3. Load the dotenv file into the process environment, if present
// 4. Override with environment variables
// 5. Override with command line flags (LoadWithOverrides)
func (l *Loader) Load() (*Config, error) {
	if err := loadFile(l.configFile, l.config); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", l.configFile, err)
	}

	if err := loadEnvFile(l.envFile); err != nil {
		return nil, fmt.Errorf("failed to read env file %s: %w", l.envFile, err)
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
		overrides.Apply(config)
	}

	// Re-validate after applying overrides
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// loadFile merges a YAML file over cfg. A missing file is not an error.
func loadFile(path string, cfg *Config) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return err
	}

	return v.Unmarshal(cfg)
}

// loadEnvFile loads a dotenv file without overriding variables that are already set.
func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return godotenv.Load(path)
}

// ConfigOverrides holds command line flag overrides
type ConfigOverrides struct {
	APIBaseURL *string
	APITimeout *time.Duration

	DBDir      *string
	DBFilename *string

	WindowDays *int

	DateFormat    *string
	RelativeDates *bool
	Color         *bool

	Timeout  *time.Duration
	Verbose  *bool
	LogLevel *string
}

// Apply copies every set override onto config
func (o *ConfigOverrides) Apply(config *Config) {
	if o.APIBaseURL != nil {
		config.API.BaseURL = *o.APIBaseURL
	}
	if o.APITimeout != nil {
		config.API.Timeout = *o.APITimeout
	}

	if o.DBDir != nil {
		config.Database.Dir = *o.DBDir
	}
	if o.DBFilename != nil {
		config.Database.Filename = *o.DBFilename
	}

	if o.WindowDays != nil {
		config.Notifications.WindowDays = *o.WindowDays
	}

	if o.DateFormat != nil {
		config.Display.DateFormat = *o.DateFormat
	}
	if o.RelativeDates != nil {
		config.Display.RelativeDates = *o.RelativeDates
	}
	if o.Color != nil {
		config.Display.Color = *o.Color
	}

	if o.Timeout != nil {
		config.Application.Timeout = *o.Timeout
	}
	if o.Verbose != nil {
		config.Application.Verbose = *o.Verbose
	}
	if o.LogLevel != nil {
		config.Application.LogLevel = *o.LogLevel
	}
}
