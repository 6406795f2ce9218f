package core

// Canvas is the drawing surface a game renders onto. Cells keep their color
// until they are filled or cleared again, so games may draw only what changed.
type Canvas interface {
	// FillCell paints c with the given color.
	FillCell(c Cell, col Color)
	// ClearCell paints c with the background color.
	ClearCell(c Cell, bg Color)
}

// Screen is a 2D color buffer for rendering the board.
// It decouples game rendering from the terminal, allowing games to draw
// whole cells while the platform handles actual display.
type Screen struct {
	width  int
	height int
	cells  [][]Color
}

// NewScreen creates a new screen buffer filled with bg.
func NewScreen(width, height int, bg Color) *Screen {
	s := &Screen{
		width:  width,
		height: height,
	}
	s.allocate()
	s.Fill(bg)
	return s
}

// allocate creates the underlying cell storage.
func (s *Screen) allocate() {
	s.cells = make([][]Color, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Color, s.width)
	}
}

// Width returns the screen width in cells.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in cells.
func (s *Screen) Height() int {
	return s.height
}

// Fill paints the entire screen with col.
func (s *Screen) Fill(col Color) {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = col
		}
	}
}

// FillCell paints c with col. Out-of-bounds cells are silently ignored.
func (s *Screen) FillCell(c Cell, col Color) {
	if c.Col < 0 || c.Col >= s.width || c.Row < 0 || c.Row >= s.height {
		return
	}
	s.cells[c.Row][c.Col] = col
}

// ClearCell paints c with bg.
func (s *Screen) ClearCell(c Cell, bg Color) {
	s.FillCell(c, bg)
}

// Get returns the color at c. Out-of-bounds cells report the zero color.
func (s *Screen) Get(c Cell) Color {
	if c.Col < 0 || c.Col >= s.width || c.Row < 0 || c.Row >= s.height {
		return Color{}
	}
	return s.cells[c.Row][c.Col]
}

// Row returns a copy of row y.
func (s *Screen) Row(y int) []Color {
	if y < 0 || y >= s.height {
		return make([]Color, s.width)
	}
	row := make([]Color, s.width)
	copy(row, s.cells[y])
	return row
}

// Count returns how many cells currently hold col.
func (s *Screen) Count(col Color) int {
	n := 0
	for y := range s.cells {
		for x := range s.cells[y] {
			if s.cells[y][x] == col {
				n++
			}
		}
	}
	return n
}
