package engine

// Snapshot is a self-contained copy of everything a renderer needs for one frame
type Snapshot struct {
	Width  int
	Height int
	Board  [][]Color

	Active      [4]Point
	ActiveColor Color

	Next Piece

	Held    Piece
	HasHeld bool

	HoldAvailable bool
	Score         int
	Speed         int
	Lines         int
	Pieces        int
	Over          bool
}

// Snapshot captures the current game state; later commands do not affect it
func (e *Engine) Snapshot() Snapshot {
	active, color := e.Active()
	return Snapshot{
		Width:         e.board.width,
		Height:        e.board.height,
		Board:         e.board.Rows(),
		Active:        active,
		ActiveColor:   color,
		Next:          e.next,
		Held:          e.held,
		HasHeld:       e.hasHeld,
		HoldAvailable: e.holdAvailable,
		Score:         e.score,
		Speed:         e.speed,
		Lines:         e.lines,
		Pieces:        e.pieces,
		Over:          e.over,
	}
}
