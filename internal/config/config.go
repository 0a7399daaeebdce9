package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
)

// ErrInvalid marks a configuration value that cannot be used.
var ErrInvalid = errors.New("invalid config")

// Config holds viewer settings.
type Config struct {
	Transcript string `toml:"transcript"`
	// SyntheticCount is the size of the generated transcript used when no
	// transcript file is configured.
	SyntheticCount int `toml:"synthetic_count"`
	PageSize       int `toml:"page_size"`
	// MaxChildrenPerScreen overrides the screenful estimate; 0 derives it
	// from the aperture height.
	MaxChildrenPerScreen int    `toml:"max_children_per_screen"`
	Theme                string `toml:"theme"`
	Markdown             bool   `toml:"markdown"`
	LogLevel             string `toml:"log_level"`
	LogFile              string `toml:"log_file"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SyntheticCount: 500,
		PageSize:       50,
		Theme:          "dark",
		Markdown:       true,
		LogLevel:       "warn",
	}
}

// DefaultPath returns $HOME/.config/flipview/config.toml.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "flipview", "config.toml")
}

// Load reads path over the defaults and applies environment overrides.
// A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("load config %s: %w", path, err)
		}
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func applyEnv(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("FLIPVIEW_TRANSCRIPT")); v != "" {
		cfg.Transcript = v
	}
	if v := strings.TrimSpace(os.Getenv("FLIPVIEW_THEME")); v != "" {
		cfg.Theme = v
	}
	if v := strings.TrimSpace(os.Getenv("FLIPVIEW_LOG_LEVEL")); v != "" {
		cfg.LogLevel = v
	}
	if v := strings.TrimSpace(os.Getenv("FLIPVIEW_PAGE_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%w: FLIPVIEW_PAGE_SIZE=%q", ErrInvalid, v)
		}
		cfg.PageSize = n
	}
	return nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if c.PageSize <= 0 {
		return fmt.Errorf("%w: page_size must be positive, got %d", ErrInvalid, c.PageSize)
	}
	if c.MaxChildrenPerScreen < 0 {
		return fmt.Errorf("%w: max_children_per_screen must not be negative", ErrInvalid)
	}
	if c.SyntheticCount < 0 {
		return fmt.Errorf("%w: synthetic_count must not be negative", ErrInvalid)
	}
	return nil
}

// Save writes cfg to path as TOML, creating parent directories.
func Save(path string, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, buf.Bytes(), 0o600)
}
