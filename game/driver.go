// Package game runs the fixed-tick loop that connects terminal input, the engine, rendering and sound
package game

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-tetris/constant"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/input"
	"github.com/lixenwraith/vi-tetris/render"
)

// Sound receives game events worth an audio cue
type Sound interface {
	Lock()
	LineClear(n int)
	GameOver()
	ToggleMute() bool
}

// Driver owns the tick counter and the pause and mute state around one engine
type Driver struct {
	eng      *engine.Engine
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	keys     *input.KeyTable
	sound    Sound
	log      *logrus.Entry
	tick     time.Duration

	counter int
	paused  bool
	muted   bool
}

// NewDriver wires an engine to a screen; tick is the wall-clock length of one driver tick
func NewDriver(eng *engine.Engine, screen tcell.Screen, keys *input.KeyTable, sound Sound, logger *logrus.Entry, tick time.Duration) *Driver {
	if tick <= 0 {
		tick = constant.TickInterval
	}
	return &Driver{
		eng:      eng,
		screen:   screen,
		renderer: render.NewTerminalRenderer(screen, false),
		keys:     keys,
		sound:    sound,
		log:      logger,
		tick:     tick,
	}
}

// SetMonochrome switches the renderer to default-style cells
func (d *Driver) SetMonochrome(mono bool) {
	d.renderer = render.NewTerminalRenderer(d.screen, mono)
}

// SetMuted sets the initial mute indicator, e.g. when audio is unavailable
func (d *Driver) SetMuted(muted bool) {
	d.muted = muted
}

// Paused reports whether gravity is suspended
func (d *Driver) Paused() bool { return d.paused }

// Counter returns the ticks elapsed since the last gravity step
func (d *Driver) Counter() int { return d.counter }

// Tick runs one driver tick: the action first, then gravity when due, then a frame.
// Returns false when the session should end.
func (d *Driver) Tick(action input.Action) bool {
	wasOver := d.eng.Over()
	if !d.apply(action) {
		return false
	}

	if !d.paused && !d.eng.Over() {
		if float64(d.counter) >= d.eng.Threshold() {
			d.step()
			d.counter = 0
		}
		d.counter++
	}

	if !wasOver && d.eng.Over() {
		d.gameOver()
	}

	d.render()
	return !d.eng.Over()
}

// apply executes one action; false means quit
func (d *Driver) apply(action input.Action) bool {
	if action != input.ActionSoftDrop {
		d.eng.SetFallMultiplier(constant.NormalFallMultiplier)
	}

	switch action {
	case input.ActionQuit:
		d.log.WithField("score", d.eng.Score()).Info("quit")
		return false
	case input.ActionRestart:
		d.eng.Restart()
		d.counter = 0
		d.paused = false
		d.log.Info("restart")
		return true
	case input.ActionPause:
		d.paused = !d.paused
		d.log.WithField("paused", d.paused).Debug("pause toggled")
		return true
	case input.ActionToggleMute:
		d.muted = d.sound.ToggleMute()
		d.log.WithField("muted", d.muted).Debug("mute toggled")
		return true
	}

	if d.paused {
		return true
	}

	switch action {
	case input.ActionMoveLeft:
		d.eng.Move(-1, 0)
	case input.ActionMoveRight:
		d.eng.Move(1, 0)
	case input.ActionRotate:
		d.eng.Rotate()
	case input.ActionSoftDrop:
		d.eng.SetFallMultiplier(constant.SoftDropFallMultiplier)
	case input.ActionHardDrop:
		d.eng.Drop()
	case input.ActionHold:
		d.eng.Hold()
	}
	return true
}

// step runs one engine Step and reports what changed to the sound sink
func (d *Driver) step() {
	pieces, lines := d.eng.Pieces(), d.eng.Lines()

	d.eng.Step()

	if d.eng.Pieces() > pieces {
		d.sound.Lock()
		if cleared := d.eng.Lines() - lines; cleared > 0 {
			d.sound.LineClear(cleared)
			d.log.WithFields(logrus.Fields{
				"cleared": cleared,
				"score":   d.eng.Score(),
				"speed":   d.eng.Speed(),
			}).Debug("rows cleared")
		}
	}
}

func (d *Driver) gameOver() {
	d.sound.GameOver()
	d.log.WithFields(logrus.Fields{
		"score":  d.eng.Score(),
		"lines":  d.eng.Lines(),
		"pieces": d.eng.Pieces(),
	}).Info("game over")
}

func (d *Driver) render() {
	d.renderer.RenderFrame(d.eng.Snapshot(), render.Status{Paused: d.paused, Muted: d.muted})
}

// Run drives ticks until quit, game over or ctx is done, consuming at most one
// terminal event per tick. Returns the final score.
func (d *Driver) Run(ctx context.Context) (int, error) {
	events := make(chan tcell.Event, constant.EventBufferSize)
	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			ev := d.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(d.tick)
	defer ticker.Stop()

	d.log.WithField("tick", d.tick).Info("session started")
	d.render()

	for {
		select {
		case <-ctx.Done():
			return d.eng.Score(), ctx.Err()
		case <-ticker.C:
		}

		action := input.ActionNone
		select {
		case ev := <-events:
			action = d.handleEvent(ev)
		default:
		}

		if !d.Tick(action) {
			return d.eng.Score(), nil
		}
	}
}

func (d *Driver) handleEvent(ev tcell.Event) input.Action {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return d.keys.Resolve(ev)
	case *tcell.EventResize:
		d.screen.Sync()
	}
	return input.ActionNone
}
