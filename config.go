package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the runner settings read from the config file.
type Config struct {
	Year int `yaml:"year"`
	// SessionFile holds the adventofcode.com session cookie.
	SessionFile string `yaml:"session_file"`
	// CacheDir is where fetched inputs are stored, as <year>/<day>.input.
	CacheDir string `yaml:"cache_dir"`
	BaseURL  string `yaml:"base_url"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	return Config{
		Year:        2023,
		SessionFile: filepath.Join(home, "keys", "aoc.session"),
		CacheDir:    ".",
		BaseURL:     "https://adventofcode.com",
	}
}

// DefaultConfigPath returns $HOME/.config/aoc2023/config.yaml.
func DefaultConfigPath() string {
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "aoc2023", "config.yaml")
}

// LoadConfig reads the YAML config at path over the defaults. A missing
// file yields the defaults; a malformed one is an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if cfg.Year <= 0 {
		return cfg, fmt.Errorf("config %s: invalid year %d", path, cfg.Year)
	}
	return cfg, nil
}

// Session returns the session cookie stored in SessionFile.
func (c Config) Session() (string, error) {
	b, err := os.ReadFile(c.SessionFile)
	if err != nil {
		return "", fmt.Errorf("reading session: %w", err)
	}
	s := strings.TrimSpace(string(b))
	if s == "" {
		return "", fmt.Errorf("session file %s is empty", c.SessionFile)
	}
	return s, nil
}
