package input

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadKeyConfig(t *testing.T) {
	data := []byte(`
[keys]
Left = "none"
ctrl-x = "quit"
page_down = "hard_drop"

[runes]
a = "move_left"
d = "move_right"
space = "hold"
c = "none"
`)

	override, err := LoadKeyConfig(data)
	require.NoError(t, err)

	assert.Equal(t, ActionNone, override.Keys[tcell.KeyLeft])
	assert.Equal(t, ActionQuit, override.Keys[tcell.KeyCtrlX])
	assert.Equal(t, ActionHardDrop, override.Keys[tcell.KeyPgDn])
	assert.Equal(t, ActionMoveLeft, override.Runes['a'])
	assert.Equal(t, ActionHold, override.Runes[' '])

	merged := MergeKeyTable(DefaultKeyTable(), override)

	_, bound := merged.Keys[tcell.KeyLeft]
	assert.False(t, bound, "none unbinds")
	_, bound = merged.Runes['c']
	assert.False(t, bound, "none unbinds")

	assert.Equal(t, ActionQuit, merged.Keys[tcell.KeyCtrlX])
	assert.Equal(t, ActionMoveRight, merged.Runes['d'])
	assert.Equal(t, ActionHold, merged.Runes[' '])
	// Untouched defaults survive
	assert.Equal(t, ActionRotate, merged.Keys[tcell.KeyUp])
	assert.Equal(t, ActionRestart, merged.Runes['r'])
}

func TestLoadKeyConfigEmpty(t *testing.T) {
	override, err := LoadKeyConfig(nil)
	require.NoError(t, err)
	assert.Nil(t, override.Keys)
	assert.Nil(t, override.Runes)

	merged := MergeKeyTable(DefaultKeyTable(), override)
	assert.Equal(t, DefaultKeyTable(), merged)
}

func TestLoadKeyConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"unknown action", "[runes]\nx = \"teleport\"\n", ErrUnknownAction},
		{"unknown key", "[keys]\nhyper = \"quit\"\n", ErrUnknownKey},
		{"multi char rune", "[runes]\nxy = \"quit\"\n", ErrUnknownKey},
		{"unknown action on key", "[keys]\nup = \"fly\"\n", ErrUnknownAction},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadKeyConfig([]byte(tt.data))
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestUnknownActionListsNames(t *testing.T) {
	_, err := LoadKeyConfig([]byte("[runes]\nx = \"teleport\"\n"))
	require.ErrorIs(t, err, ErrUnknownAction)
	assert.Contains(t, err.Error(), "hard_drop, hold, move_left")
}

func TestLoadKeyConfigMalformed(t *testing.T) {
	_, err := LoadKeyConfig([]byte("[runes\nx = "))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "keymap parse")
}

func TestParseBindingsCaseInsensitive(t *testing.T) {
	kt, err := ParseBindings(map[string]string{"PAGE-UP": " Rotate "}, nil)
	require.NoError(t, err)
	assert.Equal(t, ActionRotate, kt.Keys[tcell.KeyPgUp])
	assert.Nil(t, kt.Runes)
}

func TestMergeDoesNotMutateBase(t *testing.T) {
	base := DefaultKeyTable()
	override := &KeyTable{Runes: map[rune]Action{'q': ActionNone}}

	MergeKeyTable(base, override)
	assert.Equal(t, ActionQuit, base.Runes['q'])

	merged := MergeKeyTable(base, nil)
	assert.Equal(t, base, merged)
}
