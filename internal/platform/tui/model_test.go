package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func newTestModel(t *testing.T) (Model, *snake.Game) {
	t.Helper()
	cfg := core.DefaultConfig()
	cfg.Seed = 99
	game := snake.New()
	return NewModel(game, cfg), game
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelTickMovesSnake(t *testing.T) {
	m, game := newTestModel(t)

	if game.Snake().Head() != (core.Cell{Col: 16, Row: 12}) {
		t.Fatalf("head = %v, expected the center", game.Snake().Head())
	}

	m, cmd := update(t, m, TickMsg(time.Now()))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if game.Snake().Head() != (core.Cell{Col: 17, Row: 12}) {
		t.Errorf("head = %v, expected (17,12)", game.Snake().Head())
	}

	// Keys only take effect on the next tick.
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if game.Snake().Head() != (core.Cell{Col: 17, Row: 12}) {
		t.Error("a key press must not move the snake by itself")
	}
	m, _ = update(t, m, TickMsg(time.Now()))
	if game.Snake().Head() != (core.Cell{Col: 17, Row: 11}) {
		t.Errorf("head = %v, expected (17,11)", game.Snake().Head())
	}
	if m.inputFrame.Len() != 0 {
		t.Error("input frame should be cleared after a tick")
	}
	if m.State().Length != 1 {
		t.Errorf("length = %d, expected 1", m.State().Length)
	}
}

func TestModelQuit(t *testing.T) {
	m, game := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("esc should quit the program")
	}
	if !m.quitting || m.View() != "" {
		t.Error("quitting model should render nothing")
	}
	if game.Snake().Head() != (core.Cell{Col: 16, Row: 12}) {
		t.Error("quit must not step the game")
	}
}

func TestModelTooSmallPauses(t *testing.T) {
	m, game := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 20, Height: 10})
	if !strings.Contains(m.View(), "Window too small") {
		t.Errorf("expected a too-small message, got:\n%s", m.View())
	}

	m, _ = update(t, m, TickMsg(time.Now()))
	if game.Snake().Head() != (core.Cell{Col: 16, Row: 12}) {
		t.Error("the game should not advance while the window is too small")
	}

	w, h := BoardSize(core.DefaultConfig().Grid)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: w, Height: h})
	_, _ = update(t, m, TickMsg(time.Now()))
	if game.Snake().Head() != (core.Cell{Col: 17, Row: 12}) {
		t.Errorf("head = %v, expected the game to resume", game.Snake().Head())
	}
}

func TestModelView(t *testing.T) {
	m, _ := newTestModel(t)
	w, h := BoardSize(m.config.Grid)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: w + 10, Height: h + 5})

	view := m.View()
	if !strings.Contains(view, "Snake") || !strings.Contains(view, "Length: 1") {
		t.Errorf("HUD missing from view:\n%s", view)
	}
	if !strings.Contains(view, "quit") {
		t.Errorf("help line missing from view:\n%s", view)
	}
	if got := lipgloss.Height(view); got > h {
		t.Errorf("view height = %d, expected at most %d", got, h)
	}
}
