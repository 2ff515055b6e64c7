package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// AppConfig represents the application configuration
type AppConfig struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Predictor PredictorConfig `yaml:"predictor"`
	Log       LogConfig       `yaml:"log"`
	Display   DisplayConfig   `yaml:"display"`
}

type ServerConfig struct {
	Port         int           `yaml:"port" validate:"min=1,max=65535"`
	ReadTimeout  time.Duration `yaml:"read_timeout" validate:"min=1s"`
	WriteTimeout time.Duration `yaml:"write_timeout" validate:"min=1s"`
}

type AuthConfig struct {
	Username string `yaml:"username"` // Prefer WEB_USERNAME env var
	Password string `yaml:"password"` // Prefer WEB_PASSWORD env var
}

// Enabled reports whether both credentials are set
func (a AuthConfig) Enabled() bool {
	return a.Username != "" && a.Password != ""
}

type PredictorConfig struct {
	Delay time.Duration `yaml:"delay" validate:"min=0s,max=10s"`
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=console json"`
}

type DisplayConfig struct {
	SilenceBanner bool `yaml:"silence_banner"`
	TopN          int  `yaml:"top_n" validate:"min=1,max=50"`
}

// Default returns the built-in configuration
func Default() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
		},
		Predictor: PredictorConfig{
			Delay: 1200 * time.Millisecond,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Display: DisplayConfig{
			TopN: 10,
		},
	}
}

// Load reads the YAML config at path, applies environment overrides and
// validates the result. An empty path searches the usual locations; a
// missing file yields the defaults.
func Load(path string) (*AppConfig, error) {
	explicit := path != ""
	if !explicit {
		path = findConfigPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		// defaults
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func findConfigPath() string {
	paths := []string{
		"talentscope.yaml",
		"config.yaml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "talentscope", "config.yaml"))
	}

	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}

	return "talentscope.yaml"
}

func (c *AppConfig) applyEnv() error {
	if v := os.Getenv("TALENTSCOPE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid TALENTSCOPE_PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v := os.Getenv("TALENTSCOPE_DELAY"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid TALENTSCOPE_DELAY %q: %w", v, err)
		}
		c.Predictor.Delay = d
	}
	if v := os.Getenv("TALENTSCOPE_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	if v := os.Getenv("TALENTSCOPE_LOG_FORMAT"); v != "" {
		c.Log.Format = v
	}
	if v := os.Getenv("WEB_USERNAME"); v != "" {
		c.Auth.Username = v
	}
	if v := os.Getenv("WEB_PASSWORD"); v != "" {
		c.Auth.Password = v
	}
	return nil
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks that the configuration has valid values
func (c *AppConfig) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config error: %s fails %q (got %v)", fe.Namespace(), fe.Tag(), fe.Value())
		}
		return fmt.Errorf("config error: %w", err)
	}
	if (c.Auth.Username == "") != (c.Auth.Password == "") {
		return errors.New("config error: auth.username and auth.password must be set together")
	}
	return nil
}
