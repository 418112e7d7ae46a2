package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/folio/internal/scrollsync"
)

type Config struct {
	Database string `koanf:"database"` // database path, empty uses the XDG data dir
	Inbox    string `koanf:"inbox"`    // directory watched for extraction files

	Sync   SyncConfig   `koanf:"sync"`
	Page   PageConfig   `koanf:"page"`
	Text   TextConfig   `koanf:"text"`
	Log    LogConfig    `koanf:"log"`
	Notify NotifyConfig `koanf:"notify"`
}

// SyncConfig controls scroll synchronization between the panes.
type SyncConfig struct {
	Enabled     *bool  `koanf:"enabled"`     // default: true
	Denominator string `koanf:"denominator"` // "range" (default) or "content"
}

// PageConfig controls the page pane rendering.
type PageConfig struct {
	Scale float64 `koanf:"scale"` // points per terminal column (default: 6)
}

// TextConfig controls the text pane rendering.
type TextConfig struct {
	Highlight bool `koanf:"highlight"` // color blocks with the highlight palette
}

// LogConfig controls the log file.
type LogConfig struct {
	Level string `koanf:"level"` // "debug", "info" (default), "warn", "error"
	File  string `koanf:"file"`  // empty uses the XDG state dir
}

// NotifyConfig controls desktop notifications.
type NotifyConfig struct {
	Imports bool `koanf:"imports"` // notify when an inbox file is imported
}

const defaultPageScale = 6

func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files win.
// Missing files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("load %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Database = expandPath(cfg.Database)
	cfg.Inbox = expandPath(cfg.Inbox)
	cfg.Log.File = expandPath(cfg.Log.File)

	if _, err := scrollsync.ParseDenominator(strings.ToLower(cfg.Sync.Denominator)); err != nil {
		return nil, err
	}
	if _, err := parseLevel(cfg.Log.Level); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getConfigPaths() []string {
	paths := []string{}

	// 1. ~/.config/folio/config.toml
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "folio", "config.toml"))
	}

	// 2. ./config.toml (pwd, highest priority)
	paths = append(paths, "config.toml")

	return paths
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// SyncEnabled returns whether panes start synchronized.
func (c *Config) SyncEnabled() bool {
	return c.Sync.Enabled == nil || *c.Sync.Enabled
}

// Denominator returns the configured scroll denominator.
func (c *Config) Denominator() scrollsync.Denominator {
	d, _ := scrollsync.ParseDenominator(strings.ToLower(c.Sync.Denominator))
	return d
}

// PageScale returns the page scale with the default applied.
func (c *Config) PageScale() float64 {
	if c.Page.Scale <= 0 {
		return defaultPageScale
	}
	return c.Page.Scale
}

// HasInbox returns true if an inbox directory is configured.
func (c *Config) HasInbox() bool {
	return c.Inbox != ""
}

// LogLevel returns the configured log level.
func (c *Config) LogLevel() slog.Level {
	l, _ := parseLevel(c.Log.Level)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	if s == "" {
		return slog.LevelInfo, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log level: %w", err)
	}
	return l, nil
}
