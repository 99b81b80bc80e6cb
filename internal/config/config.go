package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

const (
	defaultThumbHost       = "https://thumbnails.libretro.com"
	defaultFetchTimeoutSec = 10
	defaultProbeHost       = "github.com:443"
)

// Config describes the application level configuration loaded from json.
type Config struct {
	// BaseDir is the storage root; station rom paths are also tried
	// relative to it when they are not found under GamesDir.
	BaseDir string `json:"base_dir"`
	// GamesDir is the primary root holding per-station rom folders.
	GamesDir string `json:"games_dir"`
	// CacheDir holds the downloaded preview tree. Defaults to
	// <games_dir>/previews.
	CacheDir string `json:"cache_dir"`
	// ConfigDir is where the station registry is persisted. Defaults to
	// <base_dir>/config.
	ConfigDir string `json:"config_dir"`
	// ThumbHost is the remote thumbnail collection base url.
	ThumbHost string `json:"thumb_host"`
	// ProbeHost is the host:port used for the reachability probe.
	ProbeHost string `json:"probe_host"`
	// FetchTimeoutSec bounds a single thumbnail download.
	FetchTimeoutSec int `json:"fetch_timeout_sec"`
}

// LoadFirst tries to load configuration from the given paths, returning the
// first successfully decoded configuration. If none of the paths contain a
// readable config, an error is returned.
func LoadFirst(paths ...string) (*Config, error) {
	var lastErr error
	for _, path := range paths {
		if path == "" {
			continue
		}
		cfg, err := Load(path)
		if errors.Is(err, os.ErrNotExist) {
			lastErr = err
			continue
		}
		if err != nil {
			return nil, err
		}
		return cfg, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("config not found in paths: %v", paths)
	}
	return nil, lastErr
}

// Load reads configuration from a single json file path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("decode config %s: %w", path, err)
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.GamesDir == "" && c.BaseDir != "" {
		c.GamesDir = filepath.Join(c.BaseDir, "games")
	}
	if c.CacheDir == "" && c.GamesDir != "" {
		c.CacheDir = filepath.Join(c.GamesDir, "previews")
	}
	if c.ConfigDir == "" && c.BaseDir != "" {
		c.ConfigDir = filepath.Join(c.BaseDir, "config")
	}
	if c.ThumbHost == "" {
		c.ThumbHost = defaultThumbHost
	}
	if c.ProbeHost == "" {
		c.ProbeHost = defaultProbeHost
	}
	if c.FetchTimeoutSec <= 0 {
		c.FetchTimeoutSec = defaultFetchTimeoutSec
	}
}

// Validate performs basic validation of the configuration.
func (c *Config) Validate() error {
	if c.BaseDir == "" {
		return errors.New("config.base_dir must be set")
	}
	if c.GamesDir == "" {
		return errors.New("config.games_dir must be set")
	}
	return nil
}
