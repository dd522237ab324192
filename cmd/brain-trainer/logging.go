package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

const (
	logFileName = "brain.log"
	maxLogSize  = 10 * 1024 * 1024 // 10MB
)

// setupLogging opens the debug log under dir, rotating a file above maxLogSize
// The terminal owns stdout and stderr, so with debug off logging is discarded
func setupLogging(debug bool, dir string, level zerolog.Level) (*os.File, zerolog.Logger) {
	if !debug {
		return nil, zerolog.Nop()
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, zerolog.Nop()
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("brain_%s.log", time.Now().Format("20060102_150405")))
		_ = os.Rename(logPath, rotated)
	}

	file, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, zerolog.Nop()
	}

	logger := zerolog.New(file).Level(level).With().Timestamp().Logger()
	return file, logger
}
