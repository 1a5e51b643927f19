// Package config holds the settings a drawing session and its window start
// with. Values come from built-in defaults, an optional TOML file and
// command-line flags, in that order.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"MyLocalPaint/internal/state"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config is the full application configuration.
type Config struct {
	Title    string        `toml:"title"`
	Icon     string        `toml:"icon"`
	LogLevel string        `toml:"log_level"`
	Canvas   CanvasConfig  `toml:"canvas"`
	Brush    BrushConfig   `toml:"brush"`
	History  HistoryConfig `toml:"history"`
}

// CanvasConfig sizes the raster.
type CanvasConfig struct {
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Background string `toml:"background"`
}

// BrushConfig is the tool selected at startup.
type BrushConfig struct {
	Size  int    `toml:"size"`
	Color string `toml:"color"`
}

// HistoryConfig bounds the undo history.
type HistoryConfig struct {
	Limit int `toml:"limit"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Title:    "Whiteboard App",
		LogLevel: "info",
		Canvas: CanvasConfig{
			Width:      800,
			Height:     600,
			Background: "#ffffff",
		},
		Brush: BrushConfig{
			Size:  state.DefaultBrushSize,
			Color: "#000000",
		},
		History: HistoryConfig{
			Limit: state.DefaultHistoryLimit,
		},
	}
}

// Load returns the defaults overlaid with the TOML file at path. An empty
// path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Validate checks that every value is usable.
func (c Config) Validate() error {
	var errs []error
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		errs = append(errs, fmt.Errorf("%w: canvas size %dx%d", ErrInvalid, c.Canvas.Width, c.Canvas.Height))
	}
	if c.Brush.Size < state.MinBrushSize || c.Brush.Size > state.MaxBrushSize {
		errs = append(errs, fmt.Errorf("%w: brush size %d not in [%d, %d]",
			ErrInvalid, c.Brush.Size, state.MinBrushSize, state.MaxBrushSize))
	}
	if c.History.Limit < 1 {
		errs = append(errs, fmt.Errorf("%w: history limit %d", ErrInvalid, c.History.Limit))
	}
	if _, err := ParseColor(c.Brush.Color); err != nil {
		errs = append(errs, fmt.Errorf("brush color: %w", err))
	}
	if _, err := ParseColor(c.Canvas.Background); err != nil {
		errs = append(errs, fmt.Errorf("canvas background: %w", err))
	}
	if _, ok := levels[strings.ToLower(c.LogLevel)]; !ok {
		errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel))
	}
	return errors.Join(errs...)
}

// ParseColor parses a "#rrggbb" hex color.
func ParseColor(s string) (color.RGBA, error) {
	c, err := colorful.Hex(strings.TrimSpace(s))
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: color %q: %v", ErrInvalid, s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}

// FormatColor renders c as "#rrggbb".
func FormatColor(c color.Color) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Clamped().Hex()
}

var levels = map[string]slog.Level{
	"debug":   slog.LevelDebug,
	"info":    slog.LevelInfo,
	"warn":    slog.LevelWarn,
	"warning": slog.LevelWarn,
	"error":   slog.LevelError,
}

// Level returns the configured slog level, defaulting to info.
func (c Config) Level() slog.Level {
	if l, ok := levels[strings.ToLower(c.LogLevel)]; ok {
		return l
	}
	return slog.LevelInfo
}

// SessionOptions converts the configuration into drawing session options.
func (c Config) SessionOptions() (state.Options, error) {
	if err := c.Validate(); err != nil {
		return state.Options{}, err
	}
	bg, _ := ParseColor(c.Canvas.Background)
	brush, _ := ParseColor(c.Brush.Color)
	return state.Options{
		Width:        c.Canvas.Width,
		Height:       c.Canvas.Height,
		Background:   bg,
		HistoryLimit: c.History.Limit,
		Tool:         state.DefaultTool().WithColor(brush).WithSize(c.Brush.Size),
	}, nil
}
