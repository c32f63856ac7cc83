package constant

// Screen layout, in terminal cells
const (
	// BoardOriginX, BoardOriginY locate the top-left border cell
	BoardOriginX = 0
	BoardOriginY = 0

	// HoldPaneOffset is the column offset of the hold pane past the board width
	HoldPaneOffset = 5

	// NextPaneOffset is the column offset of the next pane past the board width
	NextPaneOffset = 15

	// StatusRowOffset is the row offset of the score line past the board height
	StatusRowOffset = 3
)

// Glyphs
const (
	BorderRune = '#'
	BlockRune  = '#'
)
