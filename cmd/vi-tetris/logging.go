package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	logDir      = "logs"
	logFileName = "vi-tetris.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging points logger at logs/vi-tetris.log when debug is set, otherwise discards output.
// The terminal owns stdout and stderr while the game runs, so logs never go there.
// Returns the open log file, nil when logging is disabled or the file cannot be opened.
func setupLogging(logger *logrus.Logger, debug bool) *os.File {
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "15:04:05.000",
	})

	if !debug {
		logger.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0o755); err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logPath := filepath.Join(logDir, logFileName)
	rotateErr := rotateLog(logPath, time.Now())

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.SetOutput(io.Discard)
		return nil
	}

	logger.SetOutput(f)
	if rotateErr != nil {
		logger.WithError(rotateErr).Warn("Log rotation failed, appending to current log")
	}
	return f
}

// rotateLog moves an oversized log aside under a name stamped with now.
// A missing log is not an error.
func rotateLog(logPath string, now time.Time) error {
	info, err := os.Stat(logPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat log: %w", err)
	}
	if info.Size() <= maxLogSize {
		return nil
	}
	if err := os.Rename(logPath, rotatedLogPath(logPath, now)); err != nil {
		return fmt.Errorf("rotate log: %w", err)
	}
	return nil
}

func rotatedLogPath(logPath string, now time.Time) string {
	name := filepath.Base(logPath)
	ext := filepath.Ext(name)
	base := name[:len(name)-len(ext)]
	return filepath.Join(filepath.Dir(logPath), fmt.Sprintf("%s-%s%s", base, now.Format("20060102-150405"), ext))
}
