package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tetris/engine"
)

// pieceColors maps a cell color index to its terminal color; index 0 is unused
var pieceColors = [engine.MaxColor + 1]tcell.Color{
	tcell.ColorDefault,
	tcell.ColorAqua,    // 1 I
	tcell.ColorBlue,    // 2 J
	tcell.ColorWhite,   // 3 L
	tcell.ColorYellow,  // 4 O
	tcell.ColorGreen,   // 5 S
	tcell.ColorFuchsia, // 6 T
	tcell.ColorRed,     // 7 Z
}

var (
	defaultStyle = tcell.StyleDefault
	borderStyle  = tcell.StyleDefault
	textStyle    = tcell.StyleDefault
	overlayStyle = tcell.StyleDefault.Reverse(true).Bold(true)
)

// CellStyle returns the bold style for a color index, or the default style in mono mode
func CellStyle(c engine.Color, mono bool) tcell.Style {
	if mono || !c.Valid() {
		return defaultStyle
	}
	return tcell.StyleDefault.Foreground(pieceColors[c]).Background(tcell.ColorBlack).Bold(true)
}
