package core

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is a 24-bit RGB color shared by the terminal and window renderers.
type Color struct {
	R, G, B uint8
}

// Predefined colors matching the classic board.
var (
	ColorBlack  = Color{R: 0, G: 0, B: 0}
	ColorBorder = Color{R: 93, G: 216, B: 228}
	ColorApple  = Color{R: 255, G: 0, B: 0}
	ColorSnake  = Color{R: 0, G: 255, B: 0}
)

// Hex returns the color as "#rrggbb".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rrggbb" or "rrggbb".
func ParseColor(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return Color{}, fmt.Errorf("color %q: expected 6 hex digits", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("color %q: %w", s, err)
	}
	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
