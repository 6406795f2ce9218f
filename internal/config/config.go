// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Speed  SpeedConfig  `yaml:"speed"`
	Colors ColorsConfig `yaml:"colors"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// SpeedConfig defines the simulation rate.
type SpeedConfig struct {
	TickRate int `yaml:"tick_rate"`
}

// ColorsConfig defines board colors as "#rrggbb" strings.
type ColorsConfig struct {
	Background string `yaml:"background"`
	Border     string `yaml:"border"`
	Food       string `yaml:"food"`
	Snake      string `yaml:"snake"`
}

// Validate checks that the config describes a playable board.
func (c SnakeConfig) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalid, c.Board.Width, c.Board.Height)
	}
	if c.Board.Width*c.Board.Height < 2 {
		return fmt.Errorf("%w: board needs room for the snake and the food", ErrInvalid)
	}
	if c.Board.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalid, c.Board.CellSize)
	}
	if c.Speed.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalid, c.Speed.TickRate)
	}
	if _, err := c.Colors.Palette(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return nil
}

// Palette parses the configured colors.
func (c ColorsConfig) Palette() (core.Palette, error) {
	var p core.Palette
	fields := []struct {
		name string
		in   string
		out  *core.Color
	}{
		{"background", c.Background, &p.Background},
		{"border", c.Border, &p.Border},
		{"food", c.Food, &p.Food},
		{"snake", c.Snake, &p.Snake},
	}
	for _, f := range fields {
		col, err := core.ParseColor(f.in)
		if err != nil {
			return p, fmt.Errorf("colors.%s: %w", f.name, err)
		}
		*f.out = col
	}
	return p, nil
}

// ToRuntime converts a validated config into the immutable runtime value.
func (c SnakeConfig) ToRuntime(seed int64) (core.Config, error) {
	if err := c.Validate(); err != nil {
		return core.Config{}, err
	}
	pal, err := c.Colors.Palette()
	if err != nil {
		return core.Config{}, err
	}
	return core.Config{
		Grid:     core.Grid{Width: c.Board.Width, Height: c.Board.Height},
		CellSize: c.Board.CellSize,
		TickRate: c.Speed.TickRate,
		Seed:     seed,
		Palette:  pal,
	}, nil
}
