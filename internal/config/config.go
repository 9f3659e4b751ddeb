package config

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// Config is the root configuration structure.
type Config struct {
	API APIConfig `json:"api"`
	UI  UIConfig  `json:"ui"`
}

// APIConfig configures the backend connection.
type APIConfig struct {
	// BaseURL is the indexer backend, scheme and host (no /api suffix).
	BaseURL string `json:"baseUrl"`
	// SearchLimit is the maximum number of results requested per query.
	SearchLimit int `json:"searchLimit"`
	// RequestTimeout bounds each HTTP request.
	RequestTimeout time.Duration `json:"requestTimeout"`
	// RescanReloadDelay is how long after triggering a rescan the tree
	// and stats are reloaded. The backend exposes no completion signal,
	// so this is a deliberate approximation.
	RescanReloadDelay time.Duration `json:"rescanReloadDelay"`
}

// UIConfig configures appearance.
type UIConfig struct {
	ShowFooter bool `json:"showFooter"`
	// TreeWidthPercent is the tree pane share of the window width.
	TreeWidthPercent int `json:"treeWidthPercent"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		API: APIConfig{
			BaseURL:           "http://localhost:8000",
			SearchLimit:       20,
			RequestTimeout:    15 * time.Second,
			RescanReloadDelay: 3 * time.Second,
		},
		UI: UIConfig{
			ShowFooter:       true,
			TreeWidthPercent: 30,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(&c.API,
		validation.Field(&c.API.BaseURL, validation.Required, is.URL),
		validation.Field(&c.API.SearchLimit, validation.Min(1), validation.Max(500)),
		validation.Field(&c.API.RequestTimeout, validation.Min(time.Duration(0))),
		validation.Field(&c.API.RescanReloadDelay, validation.Min(time.Duration(0))),
	); err != nil {
		return err
	}
	return validation.ValidateStruct(&c.UI,
		validation.Field(&c.UI.TreeWidthPercent, validation.Min(10), validation.Max(70)),
	)
}
