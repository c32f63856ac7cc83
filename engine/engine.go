// Package engine holds the falling-block game state machine.
//
// Engine is synchronous and single-threaded: the caller owns it and feeds it
// one command at a time. Illegal moves are silent no-ops; the only terminal
// condition is game over, reported by Step returning false.
package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/vi-tetris/constant"
)

// ErrInvalidBoard is returned for board dimensions too small to hold a piece
var ErrInvalidBoard = errors.New("invalid board dimensions")

// Config holds engine construction parameters
type Config struct {
	Width  int
	Height int
	// Seed for the piece generator, 0 selects a time based seed
	Seed uint64
}

// DefaultConfig returns the standard 20x20 board with a time based seed
func DefaultConfig() Config {
	return Config{
		Width:  constant.BoardWidth,
		Height: constant.BoardHeight,
	}
}

// Engine is the game state: board, active/next/held pieces, score and speed
type Engine struct {
	board *Board
	rng   *rand.Rand

	active  Piece
	anchorX int
	anchorY int

	next    Piece
	held    Piece
	hasHeld bool

	holdAvailable  bool
	score          int
	speed          int
	fallMultiplier float64

	lines  int
	pieces int
	over   bool
}

// New creates an engine with a fresh board and the first piece spawned
func New(cfg Config) (*Engine, error) {
	if cfg.Width < constant.MinBoardWidth || cfg.Height < constant.MinBoardHeight {
		return nil, fmt.Errorf("board %dx%d, minimum %dx%d: %w",
			cfg.Width, cfg.Height, constant.MinBoardWidth, constant.MinBoardHeight, ErrInvalidBoard)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	e := &Engine{
		board: NewBoard(cfg.Width, cfg.Height),
		rng:   rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
	e.reset()
	return e, nil
}

// reset reinitializes everything except the random source
func (e *Engine) reset() {
	e.board.Reset()
	e.held = Piece{}
	e.hasHeld = false
	e.score = 0
	e.speed = constant.BaseFallSpeed
	e.fallMultiplier = constant.NormalFallMultiplier
	e.lines = 0
	e.pieces = 0
	e.over = false

	e.next = e.randomPiece()
	e.spawn()
	if e.Collides(0, 0) {
		e.over = true
	}
}

func (e *Engine) randomPiece() Piece {
	return shapes[e.rng.IntN(int(KindCount))]
}

func (e *Engine) spawnX() int {
	return e.board.width/2 - 1
}

// spawn promotes the next piece to active at the spawn anchor and draws a new next piece
func (e *Engine) spawn() {
	e.active = e.next
	e.anchorX = e.spawnX()
	e.anchorY = 0
	e.next = e.randomPiece()
	e.holdAvailable = true
}

// collidesAt reports whether piece p anchored at (x, y) leaves the side walls,
// passes the floor, or overlaps a locked cell. Rows above the board never collide.
func (e *Engine) collidesAt(p Piece, x, y int) bool {
	for _, c := range p.At(x, y) {
		if c.X < 0 || c.X >= e.board.width || c.Y >= e.board.height {
			return true
		}
		if c.Y >= 0 && e.board.Occupied(c.X, c.Y) {
			return true
		}
	}
	return false
}

// Collides reports whether the active piece would collide if shifted by (dx, dy)
func (e *Engine) Collides(dx, dy int) bool {
	return e.collidesAt(e.active, e.anchorX+dx, e.anchorY+dy)
}

// Move shifts the active piece by (dx, dy) unless that collides
func (e *Engine) Move(dx, dy int) {
	if e.over || e.Collides(dx, dy) {
		return
	}
	e.anchorX += dx
	e.anchorY += dy
}

// Rotate turns the active piece 90 degrees in place, rejected on collision
// There is no wall kick: a piece against a wall may be unable to turn
func (e *Engine) Rotate() {
	if e.over {
		return
	}
	rotated := e.active.Rotated()
	if e.collidesAt(rotated, e.anchorX, e.anchorY) {
		return
	}
	e.active = rotated
}

// Drop moves the active piece to the lowest free row without locking it
// The lock happens on the next Step
func (e *Engine) Drop() {
	if e.over {
		return
	}
	for !e.Collides(0, 1) {
		e.anchorY++
	}
}

// Hold stashes the active piece, or swaps it with the held one
// Usable once per lock; a swap that would collide at the spawn anchor is refused
func (e *Engine) Hold() {
	if e.over || !e.holdAvailable {
		return
	}

	if !e.hasHeld {
		e.held = e.active
		e.hasHeld = true
		e.spawn()
		if e.Collides(0, 0) {
			e.over = true
		}
		e.holdAvailable = false
		return
	}

	if e.collidesAt(e.held, e.spawnX(), 0) {
		return
	}
	e.active, e.held = e.held, e.active
	e.anchorX = e.spawnX()
	e.anchorY = 0
	e.holdAvailable = false
}

// Step applies one gravity tick. A resting piece is merged, full rows are
// cleared, and the next piece spawns. Returns false once the game is over.
func (e *Engine) Step() bool {
	if e.over {
		return false
	}

	if !e.Collides(0, 1) {
		e.anchorY++
		return true
	}

	e.merge()
	cleared := e.board.ClearLines()
	e.lines += cleared
	e.score += cleared * constant.LineClearReward
	e.speed = fallSpeed(e.score)
	e.pieces++

	e.spawn()
	if e.Collides(0, 0) {
		e.over = true
		return false
	}
	return true
}

// merge writes the active piece into the board, skipping cells above row 0
func (e *Engine) merge() {
	for _, c := range e.active.At(e.anchorX, e.anchorY) {
		if c.Y >= 0 {
			e.board.Set(c.X, c.Y, e.active.Color)
		}
	}
}

// fallSpeed maps score to a tick threshold; integer division keeps the curve a step function
func fallSpeed(score int) int {
	speed := constant.BaseFallSpeed - (score/constant.ScorePerSpeedStep)*constant.FallSpeedStep
	if speed < constant.MinFallSpeed {
		speed = constant.MinFallSpeed
	}
	return speed
}

// Restart resets the game to a fresh board, keeping the random source
func (e *Engine) Restart() {
	e.reset()
}

// SetFallMultiplier scales the threshold returned by Threshold; Speed is unaffected
func (e *Engine) SetFallMultiplier(m float64) {
	e.fallMultiplier = m
}

// FallMultiplier returns the current fall multiplier
func (e *Engine) FallMultiplier() float64 { return e.fallMultiplier }

// Speed returns the fall speed threshold in ticks
func (e *Engine) Speed() int { return e.speed }

// Threshold returns the effective tick count before the next Step is due
func (e *Engine) Threshold() float64 {
	return float64(e.speed) * e.fallMultiplier
}

// Score returns the current score
func (e *Engine) Score() int { return e.score }

// Lines returns the total rows cleared since the last restart
func (e *Engine) Lines() int { return e.lines }

// Pieces returns the number of pieces locked since the last restart
func (e *Engine) Pieces() int { return e.pieces }

// Over reports whether the game has ended
func (e *Engine) Over() bool { return e.over }

// HoldAvailable reports whether Hold would act
func (e *Engine) HoldAvailable() bool { return e.holdAvailable }

// Width returns the board column count
func (e *Engine) Width() int { return e.board.width }

// Height returns the board row count
func (e *Engine) Height() int { return e.board.height }

// Board returns a copy of the locked cells as rows
func (e *Engine) Board() [][]Color {
	return e.board.Rows()
}

// Active returns the absolute cells and color of the falling piece
func (e *Engine) Active() ([4]Point, Color) {
	return e.active.At(e.anchorX, e.anchorY), e.active.Color
}

// Anchor returns the active piece anchor
func (e *Engine) Anchor() Point {
	return Point{X: e.anchorX, Y: e.anchorY}
}

// ActivePiece returns the falling piece with its current offsets
func (e *Engine) ActivePiece() Piece { return e.active }

// Next returns the piece that spawns after the active one
func (e *Engine) Next() Piece { return e.next }

// Held returns the held piece, if any
func (e *Engine) Held() (Piece, bool) {
	return e.held, e.hasHeld
}
