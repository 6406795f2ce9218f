package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Length    int
	Head      core.Cell
	Dir       core.Direction
	Food      core.Cell
	HasFood   bool
	FoodEaten int
	Resets    int
	Best      int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Length:    g.snake.Len(),
		Head:      g.snake.Head(),
		Dir:       g.snake.Direction(),
		Food:      g.food.Position(),
		HasFood:   g.hasFood,
		FoodEaten: g.foodEaten,
		Resets:    g.resets,
		Best:      g.best,
	}
}
