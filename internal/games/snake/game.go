// Package snake implements the grid snake game: movement with edge
// wraparound, growth on food, and a silent reset on self-collision.
package snake

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Option configures a Game.
type Option func(*Game)

// WithLogger sets the logger used for game events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// Game ties the snake, the food and the tick order together.
type Game struct {
	cfg    core.Config
	rng    *rand.Rand
	logger *log.Logger
	tick   uint64

	snake   *Snake
	food    Food
	hasFood bool

	// Cells to repaint with the background on the next render.
	stale []core.Cell

	best      int
	resets    int
	foodEaten int
}

// New creates a game. Call Reset before the first Step.
func New(opts ...Option) *Game {
	g := &Game{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset starts a fresh session from cfg.
func (g *Game) Reset(cfg core.Config) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.best = 1
	g.resets = 0
	g.foodEaten = 0
	g.stale = nil

	g.snake = NewSnake(cfg.Grid)
	g.hasFood = false
	g.placeFood()

	g.logger.Debug("game reset",
		"grid", cfg.Grid,
		"seed", cfg.Seed,
		"head", g.snake.Head(),
		"food", g.food.Position(),
	)
}

// Step runs one tick: apply intents, move, then feed or reset.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions {
		if d, ok := a.Direction(); ok {
			g.snake.SetIntent(d)
		}
	}
	g.snake.CommitDirection()

	res := g.snake.Advance(g.food.Position())

	switch {
	case res.Reset:
		g.resets++
		g.logger.Info("snake hit itself",
			"tick", g.tick,
			"resets", g.resets,
		)
		// The restarted snake may sit on the food.
		if g.snake.Occupies(g.food.Position()) {
			g.placeFood()
		}
	case res.Ate:
		g.foodEaten++
		g.best = max(g.best, g.snake.Len())
		g.logger.Debug("food eaten",
			"tick", g.tick,
			"cell", g.food.Position(),
			"length", g.snake.Len(),
		)
		g.placeFood()
	}

	return core.StepResult{
		State: g.State(),
		Ate:   res.Ate,
		Reset: res.Reset,
	}
}

// placeFood moves the food to a free cell. A full board ends the round.
func (g *Game) placeFood() {
	if g.hasFood {
		g.stale = append(g.stale, g.food.Position())
	}

	c, err := Relocate(g.rng, g.cfg.Grid, g.snake.Body())
	if errors.Is(err, ErrBoardFull) {
		g.logger.Warn("board full, starting over",
			"tick", g.tick,
			"length", g.snake.Len(),
		)
		g.snake.ResetToInitial()
		c, err = Relocate(g.rng, g.cfg.Grid, g.snake.Body())
	}
	if err != nil {
		g.logger.Error("cannot place food", "error", err)
		g.hasFood = false
		g.food.MoveTo(core.Cell{Col: -1, Row: -1})
		return
	}

	g.food.MoveTo(c)
	g.hasFood = true
	g.logger.Debug("food placed", "cell", c)
}

// Render paints what changed since the last frame: vacated cells first,
// then the food, then the snake.
func (g *Game) Render(dst core.Canvas) {
	pal := g.cfg.Palette

	for _, c := range g.stale {
		dst.ClearCell(c, pal.Background)
	}
	g.stale = nil
	for _, c := range g.snake.takeErased() {
		dst.ClearCell(c, pal.Background)
	}

	if g.hasFood {
		dst.FillCell(g.food.Position(), pal.Food)
	}
	for _, c := range g.snake.body {
		dst.FillCell(c, pal.Snake)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Length: g.snake.Len(),
		Best:   g.best,
		Resets: g.resets,
	}
}

// Snake exposes the snake for inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food returns the food cell and whether food is on the board.
func (g *Game) Food() (core.Cell, bool) {
	return g.food.Position(), g.hasFood
}

// Config returns the configuration passed to Reset.
func (g *Game) Config() core.Config {
	return g.cfg
}
