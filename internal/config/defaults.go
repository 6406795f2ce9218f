package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Board: BoardConfig{
			Width:    32,
			Height:   24,
			CellSize: 20, // 640x480 window
		},
		Speed: SpeedConfig{
			TickRate: 10,
		},
		Colors: ColorsConfig{
			Background: "#000000",
			Border:     "#5dd8e4",
			Food:       "#ff0000",
			Snake:      "#00ff00",
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultSnakeYAML
}
