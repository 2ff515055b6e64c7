package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "talentscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 1200*time.Millisecond, cfg.Predictor.Delay)
	assert.False(t, cfg.Auth.Enabled())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9090
predictor:
  delay: 1500ms
log:
  level: debug
  format: json
display:
  top_n: 5
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 1500*time.Millisecond, cfg.Predictor.Delay)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 5, cfg.Display.TopN)
	// untouched keys keep their defaults
	assert.Equal(t, 10*time.Second, cfg.Server.ReadTimeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadWithoutFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [")
	_, err := Load(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, "server:\n  port: 9090\n")
	t.Setenv("TALENTSCOPE_PORT", "7070")
	t.Setenv("TALENTSCOPE_DELAY", "0s")
	t.Setenv("TALENTSCOPE_LOG_LEVEL", "warn")
	t.Setenv("WEB_USERNAME", "admin")
	t.Setenv("WEB_PASSWORD", "secret")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
	assert.Equal(t, time.Duration(0), cfg.Predictor.Delay)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.True(t, cfg.Auth.Enabled())
}

func TestEnvOverrideErrors(t *testing.T) {
	path := writeConfig(t, "")

	t.Setenv("TALENTSCOPE_PORT", "eighty")
	_, err := Load(path)
	assert.ErrorContains(t, err, "TALENTSCOPE_PORT")

	t.Setenv("TALENTSCOPE_PORT", "")
	t.Setenv("TALENTSCOPE_DELAY", "soon")
	_, err = Load(path)
	assert.ErrorContains(t, err, "TALENTSCOPE_DELAY")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*AppConfig)
	}{
		{"port zero", func(c *AppConfig) { c.Server.Port = 0 }},
		{"port too large", func(c *AppConfig) { c.Server.Port = 70000 }},
		{"negative delay", func(c *AppConfig) { c.Predictor.Delay = -time.Second }},
		{"delay too long", func(c *AppConfig) { c.Predictor.Delay = time.Minute }},
		{"bad level", func(c *AppConfig) { c.Log.Level = "loud" }},
		{"bad format", func(c *AppConfig) { c.Log.Format = "xml" }},
		{"top n zero", func(c *AppConfig) { c.Display.TopN = 0 }},
		{"half credentials", func(c *AppConfig) { c.Auth.Username = "admin" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorContains(t, cfg.Validate(), "config error")
		})
	}
}
