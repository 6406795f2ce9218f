package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenSize(t *testing.T) {
	pal := core.DefaultPalette()
	s := core.NewScreen(6, 3, pal.Background)
	s.FillCell(core.Cell{Col: 1, Row: 0}, pal.Snake)
	s.FillCell(core.Cell{Col: 2, Row: 0}, pal.Snake)
	s.FillCell(core.Cell{Col: 5, Row: 2}, pal.Food)

	r := NewRenderer(nil, pal)
	out := r.RenderScreen(s)

	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6*cellWidth {
			t.Errorf("line %d width = %d, expected %d", i, w, 6*cellWidth)
		}
	}
}

func TestRenderBoardAddsBorder(t *testing.T) {
	pal := core.DefaultPalette()
	g := core.Grid{Width: 8, Height: 5}
	s := core.NewScreen(g.Width, g.Height, pal.Background)

	out := NewRenderer(nil, pal).RenderBoard(s)

	w, h := BoardSize(g)
	if got := lipgloss.Width(out); got != w {
		t.Errorf("board width = %d, expected %d", got, w)
	}
	// BoardSize also reserves the HUD and help lines.
	if got := lipgloss.Height(out); got != h-2 {
		t.Errorf("board height = %d, expected %d", got, h-2)
	}
}

func TestRenderStyleCache(t *testing.T) {
	pal := core.DefaultPalette()
	r := NewRenderer(nil, pal)
	s := core.NewScreen(4, 4, pal.Background)
	s.FillCell(core.Cell{Col: 0, Row: 0}, pal.Snake)

	r.RenderScreen(s)
	r.RenderScreen(s)

	if len(r.styles) != 2 {
		t.Errorf("cached styles = %d, expected 2", len(r.styles))
	}
}

func TestRenderHUD(t *testing.T) {
	r := NewRenderer(nil, core.DefaultPalette())
	out := r.RenderHUD("Snake", core.GameState{Length: 4, Best: 7, Resets: 2})

	for _, want := range []string{"Snake", "Length: 4", "Best: 7", "Resets: 2"} {
		if !strings.Contains(out, want) {
			t.Errorf("HUD %q missing %q", out, want)
		}
	}
}
