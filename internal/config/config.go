package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/google/renameio/v2"
)

const (
	// EnvConfig overrides the preferences file location.
	EnvConfig = "DOT_CONFIG"
	// EnvStats overrides the statistics file location.
	EnvStats = "DOT_STATS"
)

// UserConfig holds worshipper settings.
type UserConfig struct {
	Name string `toml:"name" json:"name" yaml:"name"` // default name for "dot worship"
}

// DisplayConfig holds output settings.
type DisplayConfig struct {
	Color   bool   `toml:"color" json:"color" yaml:"color"`
	Symbols string `toml:"symbols" json:"symbols" yaml:"symbols"` // "unicode" or "ascii"
}

// StatsConfig holds worship statistics settings.
type StatsConfig struct {
	Track bool   `toml:"track" json:"track" yaml:"track"`
	Path  string `toml:"path" json:"path,omitempty" yaml:"path,omitempty"` // default ~/.dot/stats.json
}

// HooksConfig holds git hook installation settings.
type HooksConfig struct {
	Backup bool `toml:"backup" json:"backup" yaml:"backup"` // keep existing hooks as <name>.backup
}

// Config holds the user preferences read from ~/.config/dot/config.toml.
// The worship suffix is not part of it; see Resolver.
type Config struct {
	User    UserConfig    `toml:"user" json:"user" yaml:"user"`
	Display DisplayConfig `toml:"display" json:"display" yaml:"display"`
	Stats   StatsConfig   `toml:"stats" json:"stats" yaml:"stats"`
	Hooks   HooksConfig   `toml:"hooks" json:"hooks" yaml:"hooks"`
}

// Default returns the default preferences.
func Default() Config {
	return Config{
		Display: DisplayConfig{Color: true, Symbols: "unicode"},
		Stats:   StatsConfig{Track: true},
		Hooks:   HooksConfig{Backup: true},
	}
}

// Path returns the preferences file location, honoring DOT_CONFIG.
func Path() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dot", "config.toml"), nil
}

// Load reads preferences from path.
// Returns Default() if the file doesn't exist (no error).
// Returns Default() and an error if the file exists but is invalid.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := validateEnum(cfg.Display.Symbols, "display.symbols", ValidSymbolSets); err != nil {
		return Default(), err
	}
	if err := ValidatePath(cfg.Stats.Path, "stats.path"); err != nil {
		return Default(), err
	}
	if cfg.Display.Symbols == "" {
		cfg.Display.Symbols = "unicode"
	}

	return cfg, nil
}

// StatsPath returns the statistics file location with ~ expanded.
// DOT_STATS takes precedence over stats.path.
func (c *Config) StatsPath() (string, error) {
	if p := os.Getenv(EnvStats); p != "" {
		return expandPath(p)
	}
	if c.Stats.Path != "" {
		return expandPath(c.Stats.Path)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".dot", "stats.json"), nil
}

// WorshipperName returns the configured name or "" when unset.
func (c *Config) WorshipperName() string {
	return c.User.Name
}

// expandPath expands a leading ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand ~: %w", err)
		}
		return filepath.Join(home, path[1:]), nil
	}
	return path, nil
}

const defaultConfig = `# dot preferences
# Location: ~/.config/dot/config.toml (override with DOT_CONFIG)
#
# The worship suffix is not configured here. It is resolved from
# DOT_WORSHIP_SUFFIX, ./.dot.ini, ~/.dot.ini, then the built-in default.

[user]
# Name used by "dot worship" when no name is given
# name = "Anonymous"

[display]
# Colored output (disabled automatically when stdout is not a terminal)
color = true
# Status symbols: "unicode" (✓ ✗ ⚠) or "ascii" ([OK] [ERROR] [WARN])
symbols = "unicode"

[stats]
# Record worship events
track = true
# Statistics file, absolute or starting with ~
# path = "~/.dot/stats.json"

[hooks]
# Keep existing git hooks as <name>.backup when "dot init" replaces them
backup = true
`

// DefaultConfig returns the commented preferences template.
func DefaultConfig() string {
	return defaultConfig
}

// Init writes the preferences template to path, creating parent
// directories. An existing file is kept unless force is set.
func Init(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%w: %s (use --force to overwrite)", ErrExists, path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return renameio.WriteFile(path, []byte(defaultConfig), 0o644)
}

type configKey struct{}

// WithConfig returns a new context carrying cfg.
func WithConfig(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// FromContext returns the preferences stored in ctx, or defaults.
func FromContext(ctx context.Context) *Config {
	if c, ok := ctx.Value(configKey{}).(*Config); ok {
		return c
	}
	cfg := Default()
	return &cfg
}
