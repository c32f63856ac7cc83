// Package config loads game settings from built-in defaults and an optional TOML file
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-tetris/constant"
	"github.com/lixenwraith/vi-tetris/input"
)

// ErrInvalidConfig is returned when a setting is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Duration is a time.Duration written as a Go duration string ("10ms") in TOML
type Duration time.Duration

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

type BoardConfig struct {
	Width  int `toml:"width"`
	Height int `toml:"height"`
}

type TimingConfig struct {
	Tick Duration `toml:"tick"`
}

type GameConfig struct {
	// Seed 0 selects a time based seed
	Seed uint64 `toml:"seed"`
}

type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

type InputConfig struct {
	// Keymap is an optional TOML file with [keys] and [runes] sections,
	// relative paths resolve against the config file's directory
	Keymap string `toml:"keymap"`
}

// Config is the full set of game settings
type Config struct {
	Board  BoardConfig  `toml:"board"`
	Timing TimingConfig `toml:"timing"`
	Game   GameConfig   `toml:"game"`
	Audio  AudioConfig  `toml:"audio"`
	Log    LogConfig    `toml:"log"`
	Input  InputConfig  `toml:"input"`

	// Key name -> action name, merged over the default key table
	Keys map[string]string `toml:"keys"`

	// Rune or rune alias -> action name
	Runes map[string]string `toml:"runes"`
}

// Default returns the built-in settings
func Default() *Config {
	return &Config{
		Board: BoardConfig{
			Width:  constant.BoardWidth,
			Height: constant.BoardHeight,
		},
		Timing: TimingConfig{Tick: Duration(constant.TickInterval)},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  constant.DefaultVolume,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads the TOML file at path over the defaults
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := decode(data)
	if err == nil {
		if km := cfg.Input.Keymap; km != "" && !filepath.IsAbs(km) {
			cfg.Input.Keymap = filepath.Join(filepath.Dir(path), km)
		}
		err = cfg.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML data over the defaults, rejecting unknown fields
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	cfg := Default()

	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("%w: %s", ErrInvalidConfig, strict.String())
		}
		return nil, fmt.Errorf("config parse: %w", err)
	}

	return cfg, nil
}

// Validate checks every setting is in range and every binding resolves
func (c *Config) Validate() error {
	if c.Board.Width < constant.MinBoardWidth || c.Board.Height < constant.MinBoardHeight {
		return fmt.Errorf("%w: board %dx%d below minimum %dx%d", ErrInvalidConfig,
			c.Board.Width, c.Board.Height, constant.MinBoardWidth, constant.MinBoardHeight)
	}
	if c.Timing.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfig, time.Duration(c.Timing.Tick))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		return fmt.Errorf("%w: volume %.2f outside [0, 1]", ErrInvalidConfig, c.Audio.Volume)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if _, err := c.KeyTable(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// TickInterval returns the driver tick as a time.Duration
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Timing.Tick)
}

// LogLevel returns the parsed log level, info when unset or invalid
func (c *Config) LogLevel() logrus.Level {
	lvl, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}

// KeyTable returns the default bindings with the keymap file applied first,
// then the inline [keys] and [runes] overrides
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()

	if c.Input.Keymap != "" {
		data, err := os.ReadFile(c.Input.Keymap)
		if err != nil {
			return nil, fmt.Errorf("read keymap: %w", err)
		}
		fromFile, err := input.LoadKeyConfig(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Input.Keymap, err)
		}
		kt = input.MergeKeyTable(kt, fromFile)
	}

	inline, err := input.ParseBindings(c.Keys, c.Runes)
	if err != nil {
		return nil, err
	}
	return input.MergeKeyTable(kt, inline), nil
}
