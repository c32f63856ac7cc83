package constant

import "time"

// Driver Loop Timing
const (
	// TickInterval is the fixed driver tick; fall speeds are counted in these ticks
	TickInterval = 10 * time.Millisecond

	// EventBufferSize is the capacity of the polled terminal event channel
	EventBufferSize = 256
)

// Board Dimensions
const (
	// BoardWidth is the default number of columns
	BoardWidth = 20

	// BoardHeight is the default number of rows
	BoardHeight = 20

	// MinBoardWidth is the narrowest board where every piece fits at the spawn column W/2-1:
	// the I piece spans offsets 0..3, so W/2+2 < W requires W >= 5
	MinBoardWidth = 5

	// MinBoardHeight is the shortest accepted board
	MinBoardHeight = 4
)
