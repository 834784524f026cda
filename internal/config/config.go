// Package config provides YAML-based configuration loading for the tetris
// front ends: engine cooldowns, terminal input, display and logging.
package config

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the complete tetris configuration.
type Config struct {
	Timing  TimingConfig  `yaml:"timing"`
	Input   InputConfig   `yaml:"input"`
	Display DisplayConfig `yaml:"display"`
	Log     LogConfig     `yaml:"log"`
}

// TimingConfig holds the engine cooldowns in milliseconds.
type TimingConfig struct {
	GravityMS int `yaml:"gravity_ms"`
	MoveMS    int `yaml:"move_ms"`
	SpinMS    int `yaml:"spin_ms"`
}

// InputConfig tunes terminal key handling.
type InputConfig struct {
	HoldMS int `yaml:"hold_ms"` // How long a key press counts as held
}

// DisplayConfig controls how the board is drawn.
type DisplayConfig struct {
	Glyph    string            `yaml:"glyph"`     // Pattern repeated across a cell
	ShowNext bool              `yaml:"show_next"` // Show the lookahead queue
	Colors   map[string]string `yaml:"colors"`    // Shape letter -> color name
}

// LogConfig configures charmbracelet/log output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // Empty means no log file
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Timing: TimingConfig{
			GravityMS: 300,
			MoveMS:    200,
			SpinMS:    200,
		},
		Input: InputConfig{
			HoldMS: 150,
		},
		Display: DisplayConfig{
			Glyph:    "██",
			ShowNext: true,
			Colors: map[string]string{
				"O": "yellow",
				"L": "orange",
				"J": "blue",
				"S": "green",
				"Z": "red",
				"T": "magenta",
				"I": "cyan",
			},
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// EngineTiming converts the cooldowns for the engine.
func (c Config) EngineTiming() tetris.Timing {
	return tetris.Timing{
		Gravity: ms(c.Timing.GravityMS),
		Move:    ms(c.Timing.MoveMS),
		Spin:    ms(c.Timing.SpinMS),
	}
}

// Hold returns the terminal key hold window.
func (c Config) Hold() time.Duration {
	return ms(c.Input.HoldMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// ShapeColors resolves the color of every shape. Shapes missing from the
// config use their built-in color.
func (c Config) ShapeColors() (map[tetris.Shape]core.Color, error) {
	colors := make(map[tetris.Shape]core.Color, len(tetris.Shapes))
	for _, names := range []map[string]string{Default().Display.Colors, c.Display.Colors} {
		keys := make([]string, 0, len(names))
		for k := range names {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			shape, err := tetris.ParseShape(key)
			if err != nil {
				return nil, fmt.Errorf("display.colors: %w", err)
			}
			color, err := core.ParseColor(names[key])
			if err != nil {
				return nil, fmt.Errorf("display.colors.%s: %w", key, err)
			}
			colors[shape] = color
		}
	}
	return colors, nil
}

// Validate reports every problem with the configuration at once.
func (c Config) Validate() error {
	var errs []error
	positive := func(field string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%w: %s must be positive, got %d", ErrInvalidConfig, field, v))
		}
	}
	positive("timing.gravity_ms", c.Timing.GravityMS)
	positive("timing.move_ms", c.Timing.MoveMS)
	positive("timing.spin_ms", c.Timing.SpinMS)
	positive("input.hold_ms", c.Input.HoldMS)

	if c.Display.Glyph == "" {
		errs = append(errs, fmt.Errorf("%w: display.glyph must not be empty", ErrInvalidConfig))
	}

	keys := make([]string, 0, len(c.Display.Colors))
	for k := range c.Display.Colors {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if _, err := tetris.ParseShape(k); err != nil {
			errs = append(errs, fmt.Errorf("%w: display.colors: %w", ErrInvalidConfig, err))
			continue
		}
		if _, err := core.ParseColor(c.Display.Colors[k]); err != nil {
			errs = append(errs, fmt.Errorf("%w: display.colors.%s: %w", ErrInvalidConfig, k, err))
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			errs = append(errs, fmt.Errorf("%w: log.level: %w", ErrInvalidConfig, err))
		}
	}

	return errors.Join(errs...)
}
