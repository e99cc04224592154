// Package config loads codemap settings from .codemap.toml files.
//
// Configuration is optional: every setting has a default, a project may
// override some of them with a .codemap.toml at its root, and connection
// strings for shared backends can come from the environment. Flags handled
// by the CLI take precedence over everything here.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/codemap/pkg/errors"
)

// Filename is the per-project configuration file, looked up at the scan root.
const Filename = ".codemap.toml"

// Config holds the application configuration.
type Config struct {
	Scan    ScanConfig    `toml:"scan"`
	Diagram DiagramConfig `toml:"diagram"`
	Render  RenderConfig  `toml:"render"`
	Cache   CacheConfig   `toml:"cache"`
	Server  ServerConfig  `toml:"server"`
	Store   StoreConfig   `toml:"store"`
}

// ScanConfig controls which files the scanner visits. Nil slices defer to
// the scanner's built-in defaults; empty slices disable the filter.
type ScanConfig struct {
	ExcludeDirs  []string `toml:"exclude_dirs"`
	ExcludeFiles []string `toml:"exclude_files"`
	Languages    []string `toml:"languages"`
	Gitignore    bool     `toml:"gitignore"`
}

// DiagramConfig carries diagram defaults.
type DiagramConfig struct {
	Depth int `toml:"depth"`
}

// RenderConfig carries render defaults.
type RenderConfig struct {
	Format string `toml:"format"`
}

// CacheConfig selects and configures the cache backend.
type CacheConfig struct {
	Dir      string `toml:"dir"`       // file cache directory; default is the XDG cache dir
	RedisURL string `toml:"redis_url"` // use Redis instead of files when set
	Disabled bool   `toml:"disabled"`
}

// ServerConfig configures the API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig configures snapshot persistence.
type StoreConfig struct {
	Dir      string `toml:"dir"`       // snapshot directory; default is the XDG data dir
	MongoURI string `toml:"mongo_uri"` // use MongoDB instead of files when set
	Database string `toml:"database"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Scan:    ScanConfig{Gitignore: true},
		Diagram: DiagramConfig{Depth: 1},
		Render:  RenderConfig{Format: "ascii"},
		Server:  ServerConfig{Addr: ":8080"},
		Store:   StoreConfig{Database: "codemap"},
	}
}

// Load returns the configuration for a project root: the defaults, overlaid
// with the root's .codemap.toml when one exists. Keys absent from the file
// keep their default values.
func Load(root string) (*Config, error) {
	cfg := Default()
	path := filepath.Join(root, Filename)
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadFile loads an explicit configuration file over the defaults.
// Unlike Load, a missing file is an error.
func LoadFile(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides settings from the environment. Connection strings are
// secrets and tend to live in the environment rather than in a committed
// config file.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("CODEMAP_REDIS_URL"); v != "" {
		c.Cache.RedisURL = v
	}
	if v := os.Getenv("CODEMAP_MONGO_URI"); v != "" {
		c.Store.MongoURI = v
	}
}

// Validate checks the settings that have hard bounds.
func (c *Config) Validate() error {
	if err := errors.ValidateDepth(c.Diagram.Depth); err != nil {
		return err
	}
	return nil
}
