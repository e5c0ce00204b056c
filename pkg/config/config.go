// Package config loads shapealign settings from a TOML file.
//
// The file lives at $XDG_CONFIG_HOME/shapealign/config.toml, falling back to
// ~/.config/shapealign/config.toml. Every key is optional; missing keys keep
// their defaults:
//
//	[canvas]
//	width = 960
//	height = 540
//	margin = 40
//
//	[log]
//	level = "info"
//
//	[batch]
//	concurrency = 4
//
//	[preview]
//	scale = 1.0
//	show_margin = true
//
// Callers apply settings in increasing precedence: [Default], the file, the
// slide snapshot's own canvas, and finally command-line flags.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/shapealign/pkg/errors"
	"github.com/matzehuels/shapealign/pkg/layout"
)

// AppName names the configuration directory.
const AppName = "shapealign"

// FileName is the configuration file name inside the configuration directory.
const FileName = "config.toml"

// DefaultConcurrency is the number of slides a batch arranges at once.
const DefaultConcurrency = 4

// Config holds every setting the file can carry.
type Config struct {
	Canvas  layout.Canvas `toml:"canvas"`
	Log     LogConfig     `toml:"log"`
	Batch   BatchConfig   `toml:"batch"`
	Preview PreviewConfig `toml:"preview"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type BatchConfig struct {
	Concurrency int `toml:"concurrency"`
}

type PreviewConfig struct {
	Scale      float64 `toml:"scale"`
	ShowMargin bool    `toml:"show_margin"`
	Cache      bool    `toml:"cache"` // reuse rendered SVGs between runs
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas:  layout.DefaultCanvas(),
		Log:     LogConfig{Level: "info"},
		Batch:   BatchConfig{Concurrency: DefaultConcurrency},
		Preview: PreviewConfig{Scale: 1, ShowMargin: true, Cache: true},
	}
}

// Dir returns the configuration directory, honoring XDG_CONFIG_HOME.
func Dir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName), nil
}

// Path returns the default configuration file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, FileName), nil
}

// Load reads the configuration at path over the defaults. A missing file is
// not an error when optional is true; the defaults are returned unchanged.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		if optional {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Default(), errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Default(), errors.New(errors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	cfg.Source = path
	return cfg, nil
}

// LoadDefault loads the file at [Path] if it exists.
func LoadDefault() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return Load(path, true)
}

// Validate checks every section.
func (c Config) Validate() error {
	if err := c.Canvas.Validate(); err != nil {
		return err
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	if c.Batch.Concurrency < 1 {
		return errors.New(errors.ErrCodeInvalidConfig, "batch.concurrency must be at least 1, got %d", c.Batch.Concurrency)
	}
	if err := errors.ValidateSize("preview.scale", c.Preview.Scale); err != nil || c.Preview.Scale == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "preview.scale must be a positive number, got %v", c.Preview.Scale)
	}
	return nil
}

// LogLevel parses the configured log level.
func (c Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel, errors.Wrap(errors.ErrCodeInvalidConfig, err, "log.level")
	}
	return lvl, nil
}

// Write encodes c as TOML.
func Write(w io.Writer, c Config) error {
	if err := toml.NewEncoder(w).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
