package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// KeyTable maps keys to actions
type KeyTable struct {
	// Special keys (arrows, Ctrl+*, function keys)
	Keys map[tcell.Key]Action

	// Printable rune bindings
	Runes map[rune]Action
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyLeft:  ActionMoveLeft,
			tcell.KeyRight: ActionMoveRight,
			tcell.KeyUp:    ActionRotate,
			tcell.KeyDown:  ActionSoftDrop,
			tcell.KeyCtrlC: ActionQuit,
			tcell.KeyCtrlQ: ActionQuit,
		},

		Runes: map[rune]Action{
			' ': ActionHardDrop,
			'c': ActionHold,
			'r': ActionRestart,
			'q': ActionQuit,
			'p': ActionPause,
			'm': ActionToggleMute,

			// Vi aliases
			'h': ActionMoveLeft,
			'l': ActionMoveRight,
			'k': ActionRotate,
			'j': ActionSoftDrop,
		},
	}
}

// Resolve returns the action bound to a key event, ActionNone if unbound
func (kt *KeyTable) Resolve(ev *tcell.EventKey) Action {
	if ev == nil {
		return ActionNone
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		// Some terminals report Ctrl+letter as a rune with the Ctrl modifier
		if ev.Modifiers()&tcell.ModCtrl != 0 {
			if l := unicode.ToLower(r); l >= 'a' && l <= 'z' {
				return kt.Keys[tcell.KeyCtrlA+tcell.Key(l-'a')]
			}
		}
		return kt.Runes[r]
	}
	return kt.Keys[ev.Key()]
}

// Clone returns a deep copy of the KeyTable with independent maps
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys:  cloneMap(kt.Keys),
		Runes: cloneMap(kt.Runes),
	}
}

func cloneMap[K comparable](m map[K]Action) map[K]Action {
	c := make(map[K]Action, len(m))
	for k, v := range m {
		c[k] = v
	}
	return c
}
