package engine

// Color is a board cell value: Empty or a piece color index 1..7
type Color uint8

// Empty marks an unoccupied cell
const Empty Color = 0

// MaxColor is the largest valid color index
const MaxColor Color = 7

// Valid reports whether c is a piece color index
func (c Color) Valid() bool {
	return c >= 1 && c <= MaxColor
}

// Point is a cell offset or an absolute board position
type Point struct {
	X, Y int
}

// Kind identifies one of the seven piece shapes
type Kind uint8

const (
	KindI Kind = iota
	KindJ
	KindL
	KindO
	KindS
	KindT
	KindZ

	KindCount
)

var kindNames = [KindCount]string{"I", "J", "L", "O", "S", "T", "Z"}

func (k Kind) String() string {
	if k >= KindCount {
		return "?"
	}
	return kindNames[k]
}

// Piece is a four-cell shape relative to a local origin plus its color
type Piece struct {
	Kind  Kind
	Cells [4]Point
	Color Color
}

// shapes is the canonical piece table, indexed by Kind
var shapes = [KindCount]Piece{
	KindI: {KindI, [4]Point{{0, 1}, {1, 1}, {2, 1}, {3, 1}}, 1},
	KindJ: {KindJ, [4]Point{{0, 1}, {1, 1}, {2, 1}, {2, 0}}, 2},
	KindL: {KindL, [4]Point{{0, 0}, {0, 1}, {1, 1}, {2, 1}}, 3},
	KindO: {KindO, [4]Point{{1, 0}, {1, 1}, {2, 0}, {2, 1}}, 4},
	KindS: {KindS, [4]Point{{0, 1}, {1, 1}, {1, 0}, {2, 0}}, 5},
	KindT: {KindT, [4]Point{{0, 1}, {1, 0}, {1, 1}, {2, 1}}, 6},
	KindZ: {KindZ, [4]Point{{0, 0}, {1, 0}, {1, 1}, {2, 1}}, 7},
}

// Shape returns the canonical definition of kind k
func Shape(k Kind) Piece {
	return shapes[k]
}

// Rotated returns the piece turned 90 degrees about its local origin: (x, y) -> (-y, x)
// O is unchanged: its square covers the same cells under any quarter turn
func (p Piece) Rotated() Piece {
	if p.Kind == KindO {
		return p
	}
	r := p
	for i, c := range p.Cells {
		r.Cells[i] = Point{X: -c.Y, Y: c.X}
	}
	return r
}

// At returns the absolute cells of p anchored at (x, y)
func (p Piece) At(x, y int) [4]Point {
	var abs [4]Point
	for i, c := range p.Cells {
		abs[i] = Point{X: x + c.X, Y: y + c.Y}
	}
	return abs
}
