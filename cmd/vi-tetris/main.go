package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/lixenwraith/vi-tetris/audio"
	"github.com/lixenwraith/vi-tetris/config"
	"github.com/lixenwraith/vi-tetris/engine"
	"github.com/lixenwraith/vi-tetris/game"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	seedFlag   = flag.Uint64("seed", 0, "Random seed, 0 for time based")
	debugFlag  = flag.Bool("debug", false, "Write logs to "+logDir+"/"+logFileName)
	muteFlag   = flag.Bool("mute", false, "Disable sound")
	colorFlag  = flag.String("color", "auto", "Color mode: auto, mono")
	keymapFlag = flag.String("keymap", "", "Path to a TOML keymap file, overrides [input] keymap")
)

func main() {
	flag.Parse()

	score, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-tetris: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Game Over! Final Score: %d\n", score)
}

// loadConfig reads the config file if one was given and applies flag overrides
func loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return nil, err
		}
	}

	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	if *keymapFlag != "" {
		cfg.Input.Keymap = *keymapFlag
	}
	return cfg, nil
}

func run() (int, error) {
	switch *colorFlag {
	case "auto", "mono":
	default:
		return 0, fmt.Errorf("unknown color mode %q", *colorFlag)
	}

	cfg, err := loadConfig()
	if err != nil {
		return 0, err
	}

	logger := logrus.New()
	if logFile := setupLogging(logger, *debugFlag); logFile != nil {
		defer logFile.Close()
	}
	logger.SetLevel(cfg.LogLevel())
	log := logger.WithField("session", uuid.New().String())

	keys, err := cfg.KeyTable()
	if err != nil {
		return 0, err
	}

	eng, err := engine.New(engine.Config{
		Width:  cfg.Board.Width,
		Height: cfg.Board.Height,
		Seed:   cfg.Game.Seed,
	})
	if err != nil {
		return 0, err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return 0, errors.New("stdout is not a terminal")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return 0, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return 0, fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.WithField("panic", r).Error("crashed")
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-TETRIS CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	var sound game.Sound = audio.Silent{}
	muted := true
	if cfg.Audio.Enabled {
		sm := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sm.Initialize(); err != nil {
			log.WithError(err).Warn("continuing without audio")
		} else {
			defer sm.Cleanup()
			sound = sm
			muted = false
		}
	}

	driver := game.NewDriver(eng, screen, keys, sound, log, cfg.TickInterval())
	driver.SetMonochrome(*colorFlag == "mono" || screen.Colors() < 8)
	driver.SetMuted(muted)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.WithFields(logrus.Fields{
		"width":  cfg.Board.Width,
		"height": cfg.Board.Height,
		"seed":   cfg.Game.Seed,
	}).Info("starting")

	score, err := driver.Run(ctx)
	if errors.Is(err, context.Canceled) {
		err = nil
	}
	return score, err
}
