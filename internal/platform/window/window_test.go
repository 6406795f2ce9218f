package window

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

func TestMapKey(t *testing.T) {
	tests := []struct {
		key  ebiten.Key
		want core.Action
	}{
		{ebiten.KeyArrowUp, core.ActionUp},
		{ebiten.KeyW, core.ActionUp},
		{ebiten.KeyArrowDown, core.ActionDown},
		{ebiten.KeyS, core.ActionDown},
		{ebiten.KeyArrowLeft, core.ActionLeft},
		{ebiten.KeyA, core.ActionLeft},
		{ebiten.KeyArrowRight, core.ActionRight},
		{ebiten.KeyD, core.ActionRight},
		{ebiten.KeyEscape, core.ActionQuit},
		{ebiten.KeySpace, core.ActionNone},
		{ebiten.KeyQ, core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.key.String(), func(t *testing.T) {
			if got := MapKey(tc.key); got != tc.want {
				t.Errorf("MapKey(%v) = %v, expected %v", tc.key, got, tc.want)
			}
		})
	}
}

func TestNewResetsGame(t *testing.T) {
	cfg := core.DefaultConfig()
	game := snake.New()
	w := New(game, cfg, nil)

	if w.config.Seed == 0 {
		t.Error("a zero seed should be replaced")
	}
	if game.Snake().Head() != cfg.Grid.Center() {
		t.Errorf("head = %v, expected the center", game.Snake().Head())
	}
	if w.gameState.Length != 1 {
		t.Errorf("length = %d, expected 1", w.gameState.Length)
	}
}

func TestLayout(t *testing.T) {
	w := New(snake.New(), core.DefaultConfig(), nil)

	width, height := w.Layout(1920, 1080)
	if width != 640 || height != 480 {
		t.Errorf("Layout = %dx%d, expected 640x480", width, height)
	}
}
