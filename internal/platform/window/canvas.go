package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// canvas is a persistent offscreen image the game draws onto.
// Filled cells get a one pixel outline in the border color.
type canvas struct {
	img      *ebiten.Image
	grid     core.Grid
	cellSize int
	border   color.RGBA
}

func newCanvas(cfg core.Config) *canvas {
	w, h := cfg.Grid.PixelSize(cfg.CellSize)
	img := ebiten.NewImage(w, h)
	img.Fill(rgba(cfg.Palette.Background))
	return &canvas{
		img:      img,
		grid:     cfg.Grid,
		cellSize: cfg.CellSize,
		border:   rgba(cfg.Palette.Border),
	}
}

// FillCell paints c and outlines it.
func (cv *canvas) FillCell(c core.Cell, col core.Color) {
	if !cv.grid.Contains(c) {
		return
	}
	r := cv.grid.CellRect(c, cv.cellSize)
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.W), float32(r.H)
	vector.DrawFilledRect(cv.img, x, y, w, h, rgba(col), false)
	vector.StrokeRect(cv.img, x+0.5, y+0.5, w-1, h-1, 1, cv.border, false)
}

// ClearCell paints c with the background, outline included.
func (cv *canvas) ClearCell(c core.Cell, bg core.Color) {
	if !cv.grid.Contains(c) {
		return
	}
	r := cv.grid.CellRect(c, cv.cellSize)
	vector.DrawFilledRect(cv.img, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), rgba(bg), false)
}

func rgba(c core.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
