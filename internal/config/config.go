// Package config handles application configuration and the XDG config directory.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// AppName is the application directory name.
const AppName = "taskpad"

// Config holds application settings.
type Config struct {
	// BaseURL is the backend API base URL.
	BaseURL string

	// Timeout bounds each backend request.
	Timeout time.Duration

	// Debug enables logging to a file.
	Debug bool

	// Dir is the configuration directory path.
	Dir string
}

// Load reads configuration from defaults, an optional config.toml in
// the config directory, and TASKPAD_* environment overrides, in
// increasing precedence. An empty dir selects the default directory.
func Load(dir string) (*Config, error) {
	if dir == "" {
		dir = DefaultConfigDir()
	}

	v := viper.New()
	v.SetDefault("base_url", "http://localhost:8000")
	v.SetDefault("timeout", "5s")
	v.SetDefault("debug", false)

	v.SetConfigType("toml")
	v.SetConfigName("config")
	v.AddConfigPath(dir)

	v.SetEnvPrefix("TASKPAD")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid timeout %q: %w", v.GetString("timeout"), err)
	}

	return &Config{
		BaseURL: v.GetString("base_url"),
		Timeout: timeout,
		Debug:   v.GetBool("debug"),
		Dir:     dir,
	}, nil
}

// Save writes the current settings to config.toml in the config
// directory, creating it if needed. Used by the preferences view.
func Save(cfg *Config) error {
	if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("base_url", cfg.BaseURL)
	v.Set("timeout", cfg.Timeout.String())
	v.Set("debug", cfg.Debug)

	path := filepath.Join(cfg.Dir, "config.toml")
	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// LogPath returns the debug log file path.
func (c *Config) LogPath() string {
	return filepath.Join(c.Dir, "debug.log")
}
