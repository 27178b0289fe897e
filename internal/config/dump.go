package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type dumpAPI struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`
}

type dumpDatabase struct {
	Dir            string `yaml:"dir"`
	Filename       string `yaml:"filename"`
	QueryTimeout   string `yaml:"query_timeout"`
	WriteTimeout   string `yaml:"write_timeout"`
	DirPermissions string `yaml:"dir_permissions"`
}

type dumpNotifications struct {
	WindowDays int `yaml:"window_days"`
}

type dumpDisplay struct {
	DateFormat    string `yaml:"date_format"`
	RelativeDates bool   `yaml:"relative_dates"`
	Color         bool   `yaml:"color"`
}

type dumpValidation struct {
	TitleMaxLength       int `yaml:"title_max_length"`
	DescriptionMaxLength int `yaml:"description_max_length"`
}

type dumpApplication struct {
	Environment string `yaml:"environment"`
	Timeout     string `yaml:"timeout"`
	Verbose     bool   `yaml:"verbose"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
}

type dumpConfig struct {
	API           dumpAPI           `yaml:"api"`
	Database      dumpDatabase      `yaml:"database"`
	Notifications dumpNotifications `yaml:"notifications"`
	Display       dumpDisplay       `yaml:"display"`
	Validation    dumpValidation    `yaml:"validation"`
	Application   dumpApplication   `yaml:"application"`
}

// ToYAML renders the configuration in the same shape the config file accepts.
// Durations are written as Go duration strings so the output can be fed back in.
func (c *Config) ToYAML() ([]byte, error) {
	out := dumpConfig{
		API: dumpAPI{
			BaseURL: c.API.BaseURL,
			Timeout: c.API.Timeout.String(),
		},
		Database: dumpDatabase{
			Dir:            c.Database.Dir,
			Filename:       c.Database.Filename,
			QueryTimeout:   c.Database.QueryTimeout.String(),
			WriteTimeout:   c.Database.WriteTimeout.String(),
			DirPermissions: fmt.Sprintf("%04o", c.Database.DirPermissions),
		},
		Notifications: dumpNotifications{
			WindowDays: c.Notifications.WindowDays,
		},
		Display: dumpDisplay{
			DateFormat:    c.Display.DateFormat,
			RelativeDates: c.Display.RelativeDates,
			Color:         c.Display.Color,
		},
		Validation: dumpValidation{
			TitleMaxLength:       c.Validation.TitleMaxLength,
			DescriptionMaxLength: c.Validation.DescriptionMaxLength,
		},
		Application: dumpApplication{
			Environment: c.Application.Environment,
			Timeout:     c.Application.Timeout.String(),
			Verbose:     c.Application.Verbose,
			LogLevel:    c.Application.LogLevel,
			LogFormat:   c.Application.LogFormat,
		},
	}
	return yaml.Marshal(out)
}
