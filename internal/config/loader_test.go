package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaults(t *testing.T) {
	cfg := Default()
	if cfg.API.BaseURL != "http://localhost:8000" {
		t.Errorf("BaseURL = %q", cfg.API.BaseURL)
	}
	if cfg.API.SearchLimit != 20 {
		t.Errorf("SearchLimit = %d, want 20", cfg.API.SearchLimit)
	}
	if cfg.API.RescanReloadDelay != 3*time.Second {
		t.Errorf("RescanReloadDelay = %v, want 3s", cfg.API.RescanReloadDelay)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoadFromMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.SearchLimit != 20 {
		t.Errorf("SearchLimit = %d, want default 20", cfg.API.SearchLimit)
	}
}

func TestLoadFromMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{
		"api": {"baseUrl": "http://docs.internal:9000/", "searchLimit": 50, "rescanReloadDelay": "10s"},
		"ui": {"showFooter": false}
	}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "http://docs.internal:9000" {
		t.Errorf("BaseURL = %q, trailing slash should be stripped", cfg.API.BaseURL)
	}
	if cfg.API.SearchLimit != 50 {
		t.Errorf("SearchLimit = %d, want 50", cfg.API.SearchLimit)
	}
	if cfg.API.RescanReloadDelay != 10*time.Second {
		t.Errorf("RescanReloadDelay = %v, want 10s", cfg.API.RescanReloadDelay)
	}
	if cfg.UI.ShowFooter {
		t.Error("ShowFooter should be overridden to false")
	}
	// Untouched fields keep their defaults.
	if cfg.API.RequestTimeout != 15*time.Second {
		t.Errorf("RequestTimeout = %v, want default 15s", cfg.API.RequestTimeout)
	}
	if cfg.UI.TreeWidthPercent != 30 {
		t.Errorf("TreeWidthPercent = %d, want default 30", cfg.UI.TreeWidthPercent)
	}
}

func TestLoadFromBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path); err == nil {
		t.Error("malformed config should error, not silently default")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"api": {"baseUrl": "http://from-file:8000"}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(envBaseURL, "http://from-env:8000")

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.API.BaseURL != "http://from-env:8000" {
		t.Errorf("BaseURL = %q, env should win over file", cfg.API.BaseURL)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty base url", func(c *Config) { c.API.BaseURL = "" }},
		{"not a url", func(c *Config) { c.API.BaseURL = "::nope" }},
		{"zero search limit", func(c *Config) { c.API.SearchLimit = 0 }},
		{"huge search limit", func(c *Config) { c.API.SearchLimit = 100000 }},
		{"negative timeout", func(c *Config) { c.API.RequestTimeout = -time.Second }},
		{"tree too narrow", func(c *Config) { c.UI.TreeWidthPercent = 2 }},
		{"tree too wide", func(c *Config) { c.UI.TreeWidthPercent = 95 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
