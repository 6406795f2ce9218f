package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// AdvanceResult reports what happened during one Snake.Advance.
type AdvanceResult struct {
	Ate   bool // The head landed on the food; the snake grew by one
	Reset bool // The head hit the trunk; the snake is back at its start
}

// Snake is the player-controlled chain of cells.
type Snake struct {
	grid core.Grid

	body          []core.Cell // Head at index 0
	direction     core.Direction
	pending       core.Direction // Zero when no intent is buffered
	growthPending int

	// Cells vacated since the last render.
	erased     []core.Cell
	lastErased core.Cell
	hasErased  bool
}

// NewSnake creates a snake of length 1 at the center of grid, facing right.
func NewSnake(grid core.Grid) *Snake {
	s := &Snake{grid: grid}
	s.ResetToInitial()
	s.erased = nil
	return s
}

// ResetToInitial puts the snake back on its starting cell. Every cell the
// snake occupied is queued for erasure.
func (s *Snake) ResetToInitial() {
	s.erased = append(s.erased, s.body...)
	s.body = []core.Cell{s.grid.Center()}
	s.direction = core.DirRight
	s.pending = core.Direction{}
	s.growthPending = 0
	s.lastErased = core.Cell{}
	s.hasErased = false
}

// SetIntent buffers d as the direction for the next move. Reversals of the
// committed direction are dropped. A later intent overwrites an earlier one.
func (s *Snake) SetIntent(d core.Direction) {
	if d.IsZero() || d.IsOpposite(s.direction) {
		return
	}
	s.pending = d
}

// CommitDirection applies the buffered intent, if any.
func (s *Snake) CommitDirection() {
	if s.pending.IsZero() {
		return
	}
	s.direction = s.pending
	s.pending = core.Direction{}
}

// Advance moves the snake one cell. food is the current food cell.
func (s *Snake) Advance(food core.Cell) AdvanceResult {
	newHead := s.grid.Step(s.body[0], s.direction)
	ate := newHead == food

	// The tail moves out of the way this tick unless the snake is growing.
	trunk := s.body
	if !ate && s.growthPending == 0 {
		trunk = s.body[:len(s.body)-1]
	}
	if slices.Contains(trunk, newHead) {
		s.ResetToInitial()
		return AdvanceResult{Reset: true}
	}

	s.body = slices.Insert(s.body, 0, newHead)
	if ate {
		s.growthPending++
	}
	if s.growthPending > 0 {
		s.growthPending--
	} else {
		tail := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		s.lastErased = tail
		s.hasErased = true
		s.erased = append(s.erased, tail)
	}

	return AdvanceResult{Ate: ate}
}

// Head returns the head cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []core.Cell {
	return slices.Clone(s.body)
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Occupies returns true if any segment is on c.
func (s *Snake) Occupies(c core.Cell) bool {
	return slices.Contains(s.body, c)
}

// Direction returns the committed direction.
func (s *Snake) Direction() core.Direction {
	return s.direction
}

// Pending returns the buffered intent and whether one exists.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, !s.pending.IsZero()
}

// LastErased returns the cell vacated by the tail on the last move.
// A growing move leaves it unchanged. The second result is false until the
// tail first moves after a reset.
func (s *Snake) LastErased() (core.Cell, bool) {
	return s.lastErased, s.hasErased
}

// takeErased returns and forgets the cells vacated since the last call.
func (s *Snake) takeErased() []core.Cell {
	out := s.erased
	s.erased = nil
	return out
}
