package input

import "slices"

// Action is a discrete player intent resolved from one key event
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionRotate
	ActionSoftDrop
	ActionHardDrop
	ActionHold
	ActionRestart
	ActionPause
	ActionToggleMute
	ActionQuit
)

// actionRegistry maps canonical action names to actions
// Used by the keymap loader to resolve TOML action strings to bindings
var actionRegistry = map[string]Action{
	// Unbind sentinel
	"none": ActionNone,

	// Piece control
	"move_left":  ActionMoveLeft,
	"move_right": ActionMoveRight,
	"rotate":     ActionRotate,
	"soft_drop":  ActionSoftDrop,
	"hard_drop":  ActionHardDrop,
	"hold":       ActionHold,

	// Session
	"restart":     ActionRestart,
	"pause":       ActionPause,
	"toggle_mute": ActionToggleMute,
	"quit":        ActionQuit,
}

var actionNames = func() map[Action]string {
	m := make(map[Action]string, len(actionRegistry))
	for name, a := range actionRegistry {
		m[a] = name
	}
	return m
}()

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ActionByName resolves a canonical action name
// Returns ActionNone and false if name is unknown
func ActionByName(name string) (Action, bool) {
	a, ok := actionRegistry[name]
	return a, ok
}

// ActionNames returns all registered action names, sorted
func ActionNames() []string {
	names := make([]string, 0, len(actionRegistry))
	for name := range actionRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
