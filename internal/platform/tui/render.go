package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// cellWidth is the number of terminal columns per board cell.
// Terminal glyphs are roughly twice as tall as they are wide.
const cellWidth = 2

// Renderer turns a Screen into styled terminal output.
// Each SSH session gets its own, bound to that session's color profile.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles map[core.Color]lipgloss.Style
	border lipgloss.Style
	hud    lipgloss.Style
}

// NewRenderer creates a renderer for the given palette.
// A nil lipgloss renderer means the process default (stdout).
func NewRenderer(lg *lipgloss.Renderer, pal core.Palette) *Renderer {
	if lg == nil {
		lg = lipgloss.DefaultRenderer()
	}
	return &Renderer{
		lg:     lg,
		styles: make(map[core.Color]lipgloss.Style),
		border: lg.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(pal.Border.Hex())),
		hud: lg.NewStyle().Bold(true),
	}
}

// style returns the cached background style for col.
func (r *Renderer) style(col core.Color) lipgloss.Style {
	if st, ok := r.styles[col]; ok {
		return st
	}
	st := r.lg.NewStyle().Background(lipgloss.Color(col.Hex()))
	r.styles[col] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func (r *Renderer) RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*cellWidth*4 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		row := s.Row(y)
		x := 0
		for x < len(row) {
			start := row[x]
			n := 0
			for x < len(row) && row[x] == start {
				n++
				x++
			}
			sb.WriteString(r.style(start).Render(strings.Repeat(" ", n*cellWidth)))
		}
	}
	return sb.String()
}

// RenderBoard renders the screen inside the bordered frame.
func (r *Renderer) RenderBoard(s *core.Screen) string {
	return r.border.Render(r.RenderScreen(s))
}

// RenderHUD renders the status line above the board.
func (r *Renderer) RenderHUD(title string, st core.GameState) string {
	return r.hud.Render(fmt.Sprintf("%s  Length: %d  Best: %d  Resets: %d", title, st.Length, st.Best, st.Resets))
}

// RenderTooSmall shows a "window too small" message centered in the terminal.
func (r *Renderer) RenderTooSmall(width, height, needW, needH int) string {
	msg := fmt.Sprintf("Window too small\nNeed %dx%d, have %dx%d", needW, needH, width, height)
	return r.lg.Place(width, height, lipgloss.Center, lipgloss.Center, msg)
}

// BoardSize returns the terminal size needed for the board, its border,
// the HUD and the help line.
func BoardSize(g core.Grid) (width, height int) {
	return g.Width*cellWidth + 2, g.Height + 2 + 2
}
