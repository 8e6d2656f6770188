// Package config loads the YAML settings of the trek command.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrBadLogLevel indicates a log level other than debug, info, warn or error.
	ErrBadLogLevel = errors.New("config: unknown log level")
	// ErrBadLogFormat indicates a log format other than text or json.
	ErrBadLogFormat = errors.New("config: unknown log format")
	// ErrBadValue indicates a puzzle setting outside its valid range.
	ErrBadValue = errors.New("config: invalid value")
)

// Log configures the process logger.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Crucible holds the default run limits of the crucible command.
type Crucible struct {
	MinRun int `yaml:"min_run"`
	MaxRun int `yaml:"max_run"`
}

// Garden holds the default step budget of the garden command.
type Garden struct {
	Steps int `yaml:"steps"`
}

// Config is the root of the configuration file.
type Config struct {
	Log      Log      `yaml:"log"`
	Crucible Crucible `yaml:"crucible"`
	Garden   Garden   `yaml:"garden"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Log:      Log{Level: "info", Format: "text"},
		Crucible: Crucible{MinRun: 1, MaxRun: 3},
		Garden:   Garden{Steps: 64},
	}
}

// Load reads path on top of DefaultConfig. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrBadLogFormat, c.Log.Format)
	}
	if c.Crucible.MinRun < 0 || c.Crucible.MaxRun < 1 || c.Crucible.MinRun > c.Crucible.MaxRun {
		return fmt.Errorf("%w: crucible run %d..%d", ErrBadValue, c.Crucible.MinRun, c.Crucible.MaxRun)
	}
	if c.Garden.Steps < 0 {
		return fmt.Errorf("%w: garden steps %d", ErrBadValue, c.Garden.Steps)
	}

	return nil
}

// ParseLevel maps a level name to its slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrBadLogLevel, s)
	}

	return l, nil
}

// NewLogger builds the process logger writing to w.
func (l Log) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := ParseLevel(l.Level)
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(l.Format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrBadLogFormat, l.Format)
	}
}
