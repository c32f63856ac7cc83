// Package render draws engine snapshots onto a tcell screen
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-tetris/constant"
	"github.com/lixenwraith/vi-tetris/engine"
)

const helpText = "Press 'r' to restart, 'q' to quit, 'c' to hold piece"

// Status carries driver state that is not part of the engine snapshot
type Status struct {
	Paused bool
	Muted  bool
}

// TerminalRenderer handles all terminal rendering
type TerminalRenderer struct {
	screen tcell.Screen
	mono   bool
}

// NewTerminalRenderer creates a renderer; mono draws every cell in the default style
func NewTerminalRenderer(screen tcell.Screen, mono bool) *TerminalRenderer {
	return &TerminalRenderer{screen: screen, mono: mono}
}

// RenderFrame draws one full frame and shows it
func (r *TerminalRenderer) RenderFrame(snap engine.Snapshot, status Status) {
	r.screen.Clear()

	r.drawBorder(snap.Width, snap.Height)
	r.drawBoard(snap)
	r.drawActive(snap)
	r.drawPanes(snap)
	r.drawStatus(snap, status)

	switch {
	case snap.Over:
		r.drawOverlay(snap.Width, snap.Height, "GAME OVER")
	case status.Paused:
		r.drawOverlay(snap.Width, snap.Height, "PAUSED")
	}

	r.screen.Show()
}

// boardCell maps a board position to its screen position inside the border
func boardCell(x, y int) (int, int) {
	return constant.BoardOriginX + x + 1, constant.BoardOriginY + y + 1
}

func (r *TerminalRenderer) set(x, y int, ch rune, style tcell.Style) {
	if x < 0 || y < 0 {
		return
	}
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		r.set(x+i, y, ch, style)
	}
}

func (r *TerminalRenderer) drawBorder(w, h int) {
	for y := 0; y < h+2; y++ {
		for x := 0; x < w+2; x++ {
			if y == 0 || y == h+1 || x == 0 || x == w+1 {
				r.set(constant.BoardOriginX+x, constant.BoardOriginY+y, constant.BorderRune, borderStyle)
			}
		}
	}
}

func (r *TerminalRenderer) drawBoard(snap engine.Snapshot) {
	for y, row := range snap.Board {
		for x, c := range row {
			if c == engine.Empty {
				continue
			}
			sx, sy := boardCell(x, y)
			r.set(sx, sy, constant.BlockRune, CellStyle(c, r.mono))
		}
	}
}

// drawActive skips cells still above the visible board
func (r *TerminalRenderer) drawActive(snap engine.Snapshot) {
	style := CellStyle(snap.ActiveColor, r.mono)
	for _, c := range snap.Active {
		if c.Y < 0 {
			continue
		}
		sx, sy := boardCell(c.X, c.Y)
		r.set(sx, sy, constant.BlockRune, style)
	}
}

func (r *TerminalRenderer) drawPanes(snap engine.Snapshot) {
	holdX := constant.BoardOriginX + snap.Width + constant.HoldPaneOffset
	nextX := constant.BoardOriginX + snap.Width + constant.NextPaneOffset

	r.drawText(holdX, constant.BoardOriginY, "Hold:", textStyle)
	if snap.HasHeld {
		r.drawPreview(holdX, snap.Held)
	}

	r.drawText(nextX, constant.BoardOriginY, "Next:", textStyle)
	r.drawPreview(nextX, snap.Next)
}

// drawPreview draws the piece one row below the pane label, shifted so its
// leftmost and topmost cells sit at the pane origin
func (r *TerminalRenderer) drawPreview(x int, p engine.Piece) {
	minX, minY := p.Cells[0].X, p.Cells[0].Y
	for _, c := range p.Cells[1:] {
		minX = min(minX, c.X)
		minY = min(minY, c.Y)
	}

	style := CellStyle(p.Color, r.mono)
	for _, c := range p.Cells {
		r.set(x+c.X-minX, constant.BoardOriginY+c.Y-minY+1, constant.BlockRune, style)
	}
}

func (r *TerminalRenderer) drawStatus(snap engine.Snapshot, status Status) {
	row := constant.BoardOriginY + snap.Height + constant.StatusRowOffset

	r.drawText(constant.BoardOriginX, row,
		fmt.Sprintf("Score: %d  Lines: %d  Speed: %d", snap.Score, snap.Lines, snap.Speed), textStyle)
	r.drawText(constant.BoardOriginX, row+1, helpText, textStyle)

	if status.Muted {
		r.drawText(constant.BoardOriginX, row+2, "[muted]", textStyle)
	}
}

// drawOverlay centers msg on the board's middle row
func (r *TerminalRenderer) drawOverlay(w, h int, msg string) {
	x := constant.BoardOriginX + 1 + max((w-len(msg))/2, 0)
	y := constant.BoardOriginY + 1 + h/2
	r.drawText(x, y, msg, overlayStyle)
}
