package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected theme mocha, got %s", cfg.UI.Theme)
	}
	if cfg.Menus.Path == "" {
		t.Error("expected a default menus path")
	}
	if cfg.Storage.HistoryPath == "" {
		t.Error("expected a default history path")
	}
}

func TestLoadFrom_FileNotExists(t *testing.T) {
	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Should return defaults
	if cfg.UI.Theme != "mocha" {
		t.Errorf("expected default theme, got %s", cfg.UI.Theme)
	}
}

func TestLoadFrom_ValidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	content := `
[ui]
theme = "latte"

[menus]
path = "/tmp/menus.toml"

[storage]
history_path = "/tmp/history.db"
`
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "latte" {
		t.Errorf("expected theme latte, got %s", cfg.UI.Theme)
	}
	if cfg.Menus.Path != "/tmp/menus.toml" {
		t.Errorf("expected menus path /tmp/menus.toml, got %s", cfg.Menus.Path)
	}
	if cfg.Storage.HistoryPath != "/tmp/history.db" {
		t.Errorf("expected history path /tmp/history.db, got %s", cfg.Storage.HistoryPath)
	}
}

func TestLoadFrom_EnvOverrides(t *testing.T) {
	t.Setenv("HYDRAMENU_THEME", "plain")
	t.Setenv("HYDRAMENU_MENUS_PATH", "/tmp/env-menus.toml")

	cfg, err := LoadFrom("/nonexistent/path/config.toml")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.UI.Theme != "plain" {
		t.Errorf("expected env theme plain, got %s", cfg.UI.Theme)
	}
	if cfg.Menus.Path != "/tmp/env-menus.toml" {
		t.Errorf("expected env menus path, got %s", cfg.Menus.Path)
	}
}

func TestLoadFrom_InvalidFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.toml")

	if err := os.WriteFile(configPath, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadFrom(configPath); err == nil {
		t.Fatal("expected error for invalid toml")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}, wantErr: false},
		{name: "empty theme", mutate: func(c *Config) { c.UI.Theme = "" }, wantErr: true},
		{name: "empty menus path", mutate: func(c *Config) { c.Menus.Path = "" }, wantErr: true},
		{name: "empty history path", mutate: func(c *Config) { c.Storage.HistoryPath = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSaveTo_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "sub", "config.toml")

	cfg := Default()
	cfg.UI.Theme = "latte"
	if err := cfg.SaveTo(configPath); err != nil {
		t.Fatalf("SaveTo: %v", err)
	}

	loaded, err := LoadFrom(configPath)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}
	if loaded.UI.Theme != "latte" {
		t.Errorf("expected theme latte after round trip, got %s", loaded.UI.Theme)
	}
}
