package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoader_MissingFilesUseDefaults(t *testing.T) {
	clearTMEnv(t)
	dir := t.TempDir()

	cfg, err := NewLoader().
		WithConfigFile(filepath.Join(dir, "absent.yaml")).
		WithEnvFile(filepath.Join(dir, "absent.env")).
		Load()
	require.NoError(t, err)

	assert.Equal(t, NewConfig().API, cfg.API)
}

func TestLoader_YAMLFile(t *testing.T) {
	clearTMEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", `
api:
  base_url: https://tasks.example.com/
  timeout: 4s
notifications:
  window_days: 5
display:
  color: false
`)

	cfg, err := NewLoader().WithConfigFile(path).WithEnvFile("").Load()
	require.NoError(t, err)

	assert.Equal(t, "https://tasks.example.com/", cfg.API.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.API.Timeout)
	assert.Equal(t, 5, cfg.Notifications.WindowDays)
	assert.False(t, cfg.Display.Color)
	// untouched keys keep their defaults
	assert.Equal(t, "session.db", cfg.Database.Filename)
}

func TestLoader_EnvBeatsFile(t *testing.T) {
	clearTMEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "notifications:\n  window_days: 5\n")
	t.Setenv("TM_NOTIFY_WINDOW_DAYS", "9")

	cfg, err := NewLoader().WithConfigFile(path).WithEnvFile("").Load()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.Notifications.WindowDays)
}

func TestLoader_DotEnvFile(t *testing.T) {
	clearTMEnv(t)

	dir := t.TempDir()
	envPath := writeFile(t, dir, ".env", "TM_LOG_LEVEL=debug\n")

	cfg, err := NewLoader().WithConfigFile("").WithEnvFile(envPath).Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Application.LogLevel)
}

func TestLoader_InvalidFileIsRejected(t *testing.T) {
	clearTMEnv(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "config.yaml", "api:\n  base_url: ftp://nope\n")

	_, err := NewLoader().WithConfigFile(path).WithEnvFile("").Load()
	require.Error(t, err)
}

func TestLoadWithOverrides(t *testing.T) {
	clearTMEnv(t)
	window := 1
	color := false
	url := "https://override.example.com/"

	cfg, err := NewLoader().WithConfigFile("").WithEnvFile("").LoadWithOverrides(&ConfigOverrides{
		APIBaseURL: &url,
		WindowDays: &window,
		Color:      &color,
	})
	require.NoError(t, err)

	assert.Equal(t, url, cfg.API.BaseURL)
	assert.Equal(t, 1, cfg.Notifications.WindowDays)
	assert.False(t, cfg.Display.Color)
}

func TestLoadWithOverrides_Revalidates(t *testing.T) {
	clearTMEnv(t)
	window := -2

	_, err := NewLoader().WithConfigFile("").WithEnvFile("").LoadWithOverrides(&ConfigOverrides{WindowDays: &window})

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "notifications.window_days", cfgErr.Field)
}

func TestToYAML_RoundTrips(t *testing.T) {
	clearTMEnv(t)
	original := NewConfig()
	original.API.Timeout = 7 * time.Second
	original.Notifications.WindowDays = 4

	out, err := original.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "timeout: 7s")

	path := writeFile(t, t.TempDir(), "config.yaml", string(out))
	cfg, err := NewLoader().WithConfigFile(path).WithEnvFile("").Load()
	require.NoError(t, err)

	assert.Equal(t, original, cfg)
}
