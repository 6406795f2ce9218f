// Package window hosts the game in a desktop window with Ebiten.
// The board is drawn cell by cell at the configured pixel size,
// and the simulation runs at one step per Ebiten tick.
package window

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Window adapts a core.Game to ebiten.Game.
type Window struct {
	game   core.Game
	config core.Config
	logger *log.Logger

	canvas     *canvas
	inputFrame core.InputFrame
	keys       []ebiten.Key
	gameState  core.GameState
}

// New creates a window for game and resets it from cfg.
// A zero seed is replaced by a time-based one.
func New(game core.Game, cfg core.Config, logger *log.Logger) *Window {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game.Reset(cfg)
	return &Window{
		game:       game,
		config:     cfg,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
	}
}

// MapKey translates an Ebiten key to a game action.
func MapKey(k ebiten.Key) core.Action {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return core.ActionUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return core.ActionDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return core.ActionLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return core.ActionRight
	case ebiten.KeyEscape:
		return core.ActionQuit
	}
	return core.ActionNone
}

// Update runs one simulation step per tick.
func (w *Window) Update() error {
	// Images are created lazily, once the game loop is running.
	if w.canvas == nil {
		w.canvas = newCanvas(w.config)
		w.game.Render(w.canvas)
	}

	w.keys = inpututil.AppendJustPressedKeys(w.keys[:0])
	for _, k := range w.keys {
		action := MapKey(k)
		if action == core.ActionQuit {
			w.logger.Debug("quit requested", "key", k.String())
			return ebiten.Termination
		}
		w.inputFrame.Push(action)
	}

	result := w.game.Step(w.inputFrame)
	w.inputFrame.Clear()
	w.game.Render(w.canvas)

	if result.State.Length != w.gameState.Length {
		ebiten.SetWindowTitle(w.title(result.State))
	}
	w.gameState = result.State
	return nil
}

// Draw presents the persistent canvas.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.canvas == nil {
		return
	}
	screen.DrawImage(w.canvas.img, nil)
}

// Layout keeps the logical screen at the board's pixel size.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.config.Grid.PixelSize(w.config.CellSize)
}

func (w *Window) title(st core.GameState) string {
	return fmt.Sprintf("%s | Length: %d | Best: %d", w.game.Title(), st.Length, st.Best)
}

// Run opens the window and blocks until it is closed or Escape is pressed.
func Run(game core.Game, cfg core.Config, logger *log.Logger) error {
	w := New(game, cfg, logger)

	width, height := w.Layout(0, 0)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(w.title(w.gameState))
	ebiten.SetTPS(w.config.TickRate)

	w.logger.Info("opening window", "width", width, "height", height, "tps", w.config.TickRate)
	if err := ebiten.RunGame(w); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
