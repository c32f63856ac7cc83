package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestResolveDefaults(t *testing.T) {
	kt := DefaultKeyTable()

	tests := []struct {
		name string
		ev   *tcell.EventKey
		want Action
	}{
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), ActionMoveLeft},
		{"right", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), ActionMoveRight},
		{"up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), ActionRotate},
		{"down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), ActionSoftDrop},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), ActionHardDrop},
		{"hold", tcell.NewEventKey(tcell.KeyRune, 'c', tcell.ModNone), ActionHold},
		{"restart", tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone), ActionRestart},
		{"quit", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), ActionQuit},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), ActionQuit},
		{"vi left", tcell.NewEventKey(tcell.KeyRune, 'h', tcell.ModNone), ActionMoveLeft},
		{"unbound rune", tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone), ActionNone},
		{"unbound key", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), ActionNone},
		{"nil", nil, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kt.Resolve(tt.ev))
		})
	}
}

func TestCloneIndependent(t *testing.T) {
	kt := DefaultKeyTable()
	c := kt.Clone()
	c.Runes['z'] = ActionHold
	delete(c.Keys, tcell.KeyLeft)

	_, ok := kt.Runes['z']
	assert.False(t, ok)
	assert.Equal(t, ActionMoveLeft, kt.Keys[tcell.KeyLeft])
}

func TestActionNamesRoundTrip(t *testing.T) {
	for _, name := range ActionNames() {
		a, ok := ActionByName(name)
		assert.True(t, ok)
		assert.Equal(t, name, a.String())
	}
	assert.Equal(t, "unknown", Action(200).String())
	assert.IsIncreasing(t, ActionNames())
}

func TestResolveCtrlRune(t *testing.T) {
	kt := DefaultKeyTable()
	assert.Equal(t, ActionQuit, kt.Resolve(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModCtrl)))
	assert.Equal(t, ActionQuit, kt.Resolve(tcell.NewEventKey(tcell.KeyRune, 'C', tcell.ModCtrl)))
}
