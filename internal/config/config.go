// Package config loads wordfreq settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Defaults used when neither the config file nor a flag sets a value.
const (
	DefaultStopwords = "english.stop.txt"
	DefaultURL       = "https://en.wikipedia.org/wiki/Pattern_recognition"
	DefaultAddr      = ":8080"
	DefaultCrawlRate = 2.0
)

// Config holds file-level settings. Command-line flags take precedence.
type Config struct {
	Stopwords string  `toml:"stopwords"`
	URL       string  `toml:"url"`
	Top       int     `toml:"top"`
	DB        string  `toml:"db"`
	Addr      string  `toml:"addr"`
	CrawlRate float64 `toml:"crawl_rate"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Stopwords: DefaultStopwords,
		URL:       DefaultURL,
		Addr:      DefaultAddr,
		CrawlRate: DefaultCrawlRate,
	}
}

// DefaultPath returns ~/.wordfreq/config.toml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".wordfreq", "config.toml"), nil
}

// Load reads path on top of Default. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path, creating its directory.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
