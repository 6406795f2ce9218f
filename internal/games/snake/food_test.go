package snake

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRelocateAvoidsExcluded(t *testing.T) {
	rng := rand.New(rand.NewSource(999))
	excluded := []core.Cell{
		{Col: 16, Row: 12}, {Col: 15, Row: 12}, {Col: 14, Row: 12},
		{Col: 14, Row: 13}, {Col: 14, Row: 14},
	}

	for i := 0; i < 500; i++ {
		c, err := Relocate(rng, classicGrid, excluded)
		if err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		if !classicGrid.Contains(c) {
			t.Fatalf("food out of bounds at %v", c)
		}
		if slices.Contains(excluded, c) {
			t.Fatalf("food placed on excluded cell %v", c)
		}
	}
}

func TestRelocateFindsLastFreeCell(t *testing.T) {
	grid := core.Grid{Width: 4, Height: 3}
	free := core.Cell{Col: 2, Row: 1}

	var excluded []core.Cell
	for _, c := range grid.Cells() {
		if c != free {
			excluded = append(excluded, c)
		}
	}

	for seed := int64(1); seed <= 20; seed++ {
		c, err := Relocate(rand.New(rand.NewSource(seed)), grid, excluded)
		if err != nil {
			t.Fatalf("seed %d: Relocate: %v", seed, err)
		}
		if c != free {
			t.Errorf("seed %d: got %v, expected %v", seed, c, free)
		}
	}
}

func TestRelocateBoardFull(t *testing.T) {
	grid := core.Grid{Width: 2, Height: 2}

	_, err := Relocate(rand.New(rand.NewSource(1)), grid, grid.Cells())

	if !errors.Is(err, ErrBoardFull) {
		t.Fatalf("expected ErrBoardFull, got %v", err)
	}
	var full *BoardFullError
	if !errors.As(err, &full) {
		t.Fatalf("expected *BoardFullError, got %T", err)
	}
	if full.Occupied != 4 || full.Grid != grid {
		t.Errorf("BoardFullError = %+v", full)
	}
}

func TestRelocateCoversBoard(t *testing.T) {
	// Every free cell must be reachable.
	grid := core.Grid{Width: 3, Height: 2}
	rng := rand.New(rand.NewSource(7))
	excluded := []core.Cell{{Col: 0, Row: 0}}

	seen := make(map[core.Cell]bool)
	for i := 0; i < 1000; i++ {
		c, err := Relocate(rng, grid, excluded)
		if err != nil {
			t.Fatalf("Relocate: %v", err)
		}
		seen[c] = true
	}
	if len(seen) != grid.Area()-len(excluded) {
		t.Errorf("reached %d cells, expected %d", len(seen), grid.Area()-len(excluded))
	}
}

func TestFoodMoveTo(t *testing.T) {
	var f Food
	f.MoveTo(core.Cell{Col: 3, Row: 4})

	if f.Position() != (core.Cell{Col: 3, Row: 4}) {
		t.Errorf("Position() = %v", f.Position())
	}
}
