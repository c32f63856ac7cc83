package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/vi-tetris/input"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 20, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height)
	assert.Equal(t, 10*time.Millisecond, cfg.TickInterval())
	assert.Zero(t, cfg.Game.Seed)
	assert.True(t, cfg.Audio.Enabled)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel())
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
[board]
width = 12

[timing]
tick = "25ms"

[game]
seed = 42

[audio]
enabled = false
volume = 0.25

[log]
level = "debug"
`)
	cfg, err := Parse(data)
	require.NoError(t, err)

	assert.Equal(t, 12, cfg.Board.Width)
	assert.Equal(t, 20, cfg.Board.Height, "unset fields keep defaults")
	assert.Equal(t, 25*time.Millisecond, cfg.TickInterval())
	assert.Equal(t, uint64(42), cfg.Game.Seed)
	assert.False(t, cfg.Audio.Enabled)
	assert.Equal(t, 0.25, cfg.Audio.Volume)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel())
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejects(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown_section", "[graphics]\nfps = 60\n"},
		{"unknown_field", "[board]\ndepth = 3\n"},
		{"small_board", "[board]\nwidth = 3\n"},
		{"narrow_board", "[board]\nwidth = 4\n"},
		{"short_board", "[board]\nheight = 3\n"},
		{"zero_tick", "[timing]\ntick = \"0s\"\n"},
		{"loud", "[audio]\nvolume = 1.5\n"},
		{"bad_level", "[log]\nlevel = \"chatty\"\n"},
		{"bad_action", "[runes]\nx = \"teleport\"\n"},
		{"bad_key", "[keys]\nhyper = \"quit\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseBindingErrorsKeepCause(t *testing.T) {
	_, err := Parse([]byte("[runes]\nx = \"teleport\"\n"))
	assert.ErrorIs(t, err, input.ErrUnknownAction)

	_, err = Parse([]byte("[keys]\nhyper = \"quit\"\n"))
	assert.ErrorIs(t, err, input.ErrUnknownKey)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("[board\nwidth = "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)

	_, err = Parse([]byte("[timing]\ntick = \"soon\"\n"))
	assert.Error(t, err)
}

func TestKeyTableMergesOverrides(t *testing.T) {
	cfg, err := Parse([]byte(`
[keys]
Enter = "hard_drop"
Left = "none"

[runes]
space = "rotate"
x = "hold"
`))
	require.NoError(t, err)

	kt, err := cfg.KeyTable()
	require.NoError(t, err)

	assert.Equal(t, input.ActionHardDrop, kt.Keys[tcell.KeyEnter])
	_, bound := kt.Keys[tcell.KeyLeft]
	assert.False(t, bound)
	assert.Equal(t, input.ActionRotate, kt.Runes[' '])
	assert.Equal(t, input.ActionHold, kt.Runes['x'])
	assert.Equal(t, input.ActionHold, kt.Runes['c'], "defaults survive")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vi-tetris.toml")
	require.NoError(t, os.WriteFile(path, []byte("[board]\nheight = 16\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 16, cfg.Board.Height)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadKeymapFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "keys.toml"), []byte(`
[keys]
Enter = "hard_drop"

[runes]
x = "hold"
z = "rotate"
`), 0o644))
	path := filepath.Join(dir, "vi-tetris.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[input]
keymap = "keys.toml"

[runes]
x = "move_left"
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "keys.toml"), cfg.Input.Keymap)

	kt, err := cfg.KeyTable()
	require.NoError(t, err)
	assert.Equal(t, input.ActionHardDrop, kt.Keys[tcell.KeyEnter])
	assert.Equal(t, input.ActionRotate, kt.Runes['z'])
	assert.Equal(t, input.ActionMoveLeft, kt.Runes['x'], "inline bindings win over the keymap file")
	assert.Equal(t, input.ActionHold, kt.Runes['c'], "defaults survive")
}

func TestLoadKeymapFileErrors(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vi-tetris.toml")

	require.NoError(t, os.WriteFile(path, []byte("[input]\nkeymap = \"absent.toml\"\n"), 0o644))
	_, err := Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.toml"), []byte("[runes]\nx = \"teleport\"\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("[input]\nkeymap = \"bad.toml\"\n"), 0o644))
	_, err = Load(path)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	assert.ErrorIs(t, err, input.ErrUnknownAction)
}

func TestDurationText(t *testing.T) {
	d := Duration(1500 * time.Millisecond)
	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "1.5s", string(text))

	var back Duration
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, d, back)
}
