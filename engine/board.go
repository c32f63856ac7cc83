package engine

// Board is a fixed-size grid of locked cells
// Cells are row-major: cells[y*width + x]
type Board struct {
	width  int
	height int
	cells  []Color
}

// NewBoard creates an empty board
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  make([]Color, width*height),
	}
}

// Width returns the column count
func (b *Board) Width() int { return b.width }

// Height returns the row count
func (b *Board) Height() int { return b.height }

// InBounds reports whether (x, y) is a board cell
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell at (x, y), Empty when out of bounds
func (b *Board) Get(x, y int) Color {
	if !b.InBounds(x, y) {
		return Empty
	}
	return b.cells[y*b.width+x]
}

// Set writes c at (x, y); out of bounds writes are dropped
func (b *Board) Set(x, y int, c Color) {
	if b.InBounds(x, y) {
		b.cells[y*b.width+x] = c
	}
}

// Occupied reports whether (x, y) holds a locked cell
func (b *Board) Occupied(x, y int) bool {
	return b.Get(x, y) != Empty
}

// Reset empties every cell
func (b *Board) Reset() {
	clear(b.cells)
}

// filledCount returns the number of occupied cells
func (b *Board) filledCount() int {
	n := 0
	for _, c := range b.cells {
		if c != Empty {
			n++
		}
	}
	return n
}

// Rows returns a copy of the grid as rows of cells
func (b *Board) Rows() [][]Color {
	rows := make([][]Color, b.height)
	for y := range rows {
		row := make([]Color, b.width)
		copy(row, b.row(y))
		rows[y] = row
	}
	return rows
}

func (b *Board) row(y int) []Color {
	return b.cells[y*b.width : (y+1)*b.width]
}

func (b *Board) rowFull(y int) bool {
	for _, c := range b.row(y) {
		if c == Empty {
			return false
		}
	}
	return true
}

// collapse removes row y, shifting every row above it down by one and emptying row 0
func (b *Board) collapse(y int) {
	for yy := y; yy > 0; yy-- {
		copy(b.row(yy), b.row(yy-1))
	}
	clear(b.row(0))
}

// ClearLines removes every full row and returns how many were removed
// The cursor only moves up when the row under it is not full, since a
// collapse shifts a new row into the same index
func (b *Board) ClearLines() int {
	cleared := 0
	y := b.height - 1
	for y >= 0 {
		if !b.rowFull(y) {
			y--
			continue
		}
		b.collapse(y)
		cleared++
	}
	return cleared
}
