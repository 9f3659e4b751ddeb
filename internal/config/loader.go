package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	configDir  = ".config/docscout"
	configFile = "config.json"

	// envBaseURL overrides the backend URL; the backend deployments
	// ship .env files, so a local .env is honored too.
	envBaseURL = "DOCSCOUT_API_URL"
)

// rawConfig is the JSON-unmarshaling intermediary. Durations are parsed
// from strings ("3s", "500ms"); absent fields keep their defaults.
type rawConfig struct {
	API rawAPIConfig `json:"api"`
	UI  rawUIConfig  `json:"ui"`
}

type rawAPIConfig struct {
	BaseURL           string `json:"baseUrl"`
	SearchLimit       *int   `json:"searchLimit"`
	RequestTimeout    string `json:"requestTimeout"`
	RescanReloadDelay string `json:"rescanReloadDelay"`
}

type rawUIConfig struct {
	ShowFooter       *bool `json:"showFooter"`
	TreeWidthPercent *int  `json:"treeWidthPercent"`
}

// Load loads configuration from the default location.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom loads configuration from a specific path. If path is empty,
// ~/.config/docscout/config.json is used; a missing file yields defaults.
// A .env file in the working directory and the process environment are
// applied on top.
func LoadFrom(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			path = filepath.Join(home, configDir, configFile)
		}
	}

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// No config file, defaults apply.
		case err != nil:
			return nil, err
		default:
			var raw rawConfig
			if err := json.Unmarshal(data, &raw); err != nil {
				return nil, err
			}
			mergeConfig(cfg, &raw)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeConfig merges raw config values into the defaults.
func mergeConfig(cfg *Config, raw *rawConfig) {
	if raw.API.BaseURL != "" {
		cfg.API.BaseURL = strings.TrimRight(raw.API.BaseURL, "/")
	}
	if raw.API.SearchLimit != nil {
		cfg.API.SearchLimit = *raw.API.SearchLimit
	}
	if raw.API.RequestTimeout != "" {
		if d, err := time.ParseDuration(raw.API.RequestTimeout); err == nil {
			cfg.API.RequestTimeout = d
		}
	}
	if raw.API.RescanReloadDelay != "" {
		if d, err := time.ParseDuration(raw.API.RescanReloadDelay); err == nil {
			cfg.API.RescanReloadDelay = d
		}
	}
	if raw.UI.ShowFooter != nil {
		cfg.UI.ShowFooter = *raw.UI.ShowFooter
	}
	if raw.UI.TreeWidthPercent != nil {
		cfg.UI.TreeWidthPercent = *raw.UI.TreeWidthPercent
	}
}

// applyEnv overlays environment settings. godotenv never overrides
// variables already set in the process environment.
func applyEnv(cfg *Config) {
	_ = godotenv.Load()
	if v := os.Getenv(envBaseURL); v != "" {
		cfg.API.BaseURL = strings.TrimRight(v, "/")
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, configDir, configFile)
}
