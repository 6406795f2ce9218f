package core

// Palette holds the colors used to draw the board.
type Palette struct {
	Background Color
	Border     Color
	Food       Color
	Snake      Color
}

// DefaultPalette returns the classic black board with a green snake.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBlack,
		Border:     ColorBorder,
		Food:       ColorApple,
		Snake:      ColorSnake,
	}
}

// Config is the immutable configuration handed to a game at construction.
// Games use it for board geometry and deterministic simulation.
type Config struct {
	Grid     Grid    // Board size in cells
	CellSize int     // Pixel size of a cell (window renderer only)
	TickRate int     // Simulation ticks per second (default 10)
	Seed     int64   // RNG seed for deterministic gameplay
	Palette  Palette // Board colors
}

// DefaultConfig returns a Config with the classic 640x480 board.
func DefaultConfig() Config {
	return Config{
		Grid:     Grid{Width: 32, Height: 24},
		CellSize: 20,
		TickRate: 10,
		Seed:     0, // 0 means use current time in platform layer
		Palette:  DefaultPalette(),
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Length int // Current snake length
	Best   int // Longest length reached this session
	Resets int // Self-collision resets this session
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ate   bool // Food was eaten this tick
	Reset bool // The snake collided with itself and was reset
}

// Game is the interface the platform layers drive.
// Games contain pure logic with no external dependencies.
// The platform handles input mapping, timing, and presentation.
type Game interface {
	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes the game state from cfg.
	Reset(cfg Config)

	// Step advances the simulation by one fixed tick.
	Step(in InputFrame) StepResult

	// Render draws the changes since the previous frame onto dst.
	Render(dst Canvas)

	// State returns the current game state.
	State() GameState
}
