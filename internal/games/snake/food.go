package snake

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrBoardFull is matched by every *BoardFullError.
var ErrBoardFull = errors.New("snake: no free cell for food")

// BoardFullError is returned when every cell of the board is excluded.
type BoardFullError struct {
	Grid     core.Grid
	Occupied int
}

func (e *BoardFullError) Error() string {
	return fmt.Sprintf("snake: board %dx%d is full (%d cells occupied)", e.Grid.Width, e.Grid.Height, e.Occupied)
}

// Is makes errors.Is(err, ErrBoardFull) work.
func (e *BoardFullError) Is(target error) bool {
	return target == ErrBoardFull
}

// Food holds the position of the single piece of food.
type Food struct {
	pos core.Cell
}

// Position returns the food cell.
func (f *Food) Position() core.Cell {
	return f.pos
}

// MoveTo records a new food cell.
func (f *Food) MoveTo(c core.Cell) {
	f.pos = c
}

// Relocate picks a uniformly random cell of grid that is not in excluded.
// It samples at random first and falls back to scanning the free cells, so it
// always terminates.
func Relocate(rng *rand.Rand, grid core.Grid, excluded []core.Cell) (core.Cell, error) {
	taken := make(map[core.Cell]struct{}, len(excluded))
	for _, c := range excluded {
		taken[c] = struct{}{}
	}

	for range grid.Area() {
		c := core.Cell{Col: rng.Intn(grid.Width), Row: rng.Intn(grid.Height)}
		if _, ok := taken[c]; !ok {
			return c, nil
		}
	}

	// Nearly full board: choose among what is left.
	var free []core.Cell
	for _, c := range grid.Cells() {
		if _, ok := taken[c]; !ok {
			free = append(free, c)
		}
	}
	if len(free) == 0 {
		return core.Cell{}, &BoardFullError{Grid: grid, Occupied: len(taken)}
	}
	return free[rng.Intn(len(free))], nil
}
