// Package config handles configuration loading from files, defaults, and
// environment variables, plus menu definition files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Config holds the application configuration.
type Config struct {
	UI      UIConfig      `toml:"ui"`
	Menus   MenusConfig   `toml:"menus"`
	Storage StorageConfig `toml:"storage"`
}

// UIConfig holds TUI settings.
type UIConfig struct {
	Theme string `toml:"theme"` // "mocha", "latte", "plain"
}

// MenusConfig points at the menu definition file.
type MenusConfig struct {
	Path string `toml:"path"`
}

// StorageConfig holds invocation history settings.
type StorageConfig struct {
	HistoryPath string `toml:"history_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		UI: UIConfig{
			Theme: "mocha",
		},
		Menus: MenusConfig{
			Path: DefaultMenusPath(),
		},
		Storage: StorageConfig{
			HistoryPath: defaultHistoryPath(),
		},
	}
}

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hydramenu.db"
	}
	return filepath.Join(home, ".local", "share", "hydramenu", "history.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "hydramenu", "config.toml")
}

// DefaultMenusPath returns the default menu definition file path.
func DefaultMenusPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "menus.toml"
	}
	return filepath.Join(home, ".config", "hydramenu", "menus.toml")
}

// Load loads configuration from the default path, merging with defaults and
// env vars.
func Load() (*Config, error) {
	return LoadFrom(DefaultConfigPath())
}

// LoadFrom loads configuration from the specified path.
// It starts with defaults, overlays file config if it exists, then applies
// env overrides.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}

	applyEnvOverrides(cfg)

	cfg.Menus.Path = expandPath(cfg.Menus.Path)
	cfg.Storage.HistoryPath = expandPath(cfg.Storage.HistoryPath)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// loadFromFile loads config from a file if it exists.
func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to the config.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("HYDRAMENU_THEME"); v != "" {
		cfg.UI.Theme = v
	}
	if v := os.Getenv("HYDRAMENU_MENUS_PATH"); v != "" {
		cfg.Menus.Path = v
	}
	if v := os.Getenv("HYDRAMENU_HISTORY_PATH"); v != "" {
		cfg.Storage.HistoryPath = v
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.UI.Theme == "" {
		return errors.New("ui.theme must be set")
	}
	if c.Menus.Path == "" {
		return errors.New("menus.path must be set")
	}
	if c.Storage.HistoryPath == "" {
		return errors.New("storage.history_path must be set")
	}
	return nil
}

// Save writes the configuration to the default path.
func (c *Config) Save() error {
	return c.SaveTo(DefaultConfigPath())
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
