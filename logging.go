// Package main - logging.go
//
// This file configures the process-wide logger and exposes small
// convenience functions used across the bot.
//
// Behavior:
//   - Console output via charmbracelet/log with timestamps
//   - Optional mirror of all records to a log file (logs/bot.log by default)
//   - Level parsed from configuration ("debug", "info", "warn", "error")
//
// Logging Conventions:
//   - LogDebug: detailed perception info (pixel counts, OCR text, timing)
//   - LogInfo: important events (startup, state transitions, battle actions)
//   - LogWarn: non-critical issues (rejected transitions, OCR misses)
//   - LogError: serious problems (capture failures, handler errors)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	TimeFormat:      time.DateTime,
	Prefix:          "pokeone-bot",
})

var logFile *os.File

// InitLogger applies the logging configuration. When a file path is set the
// log stream is duplicated to it; the directory is created on demand.
func InitLogger(cfg LoggingConfig) error {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)

	writers := []io.Writer{}
	if cfg.Console {
		writers = append(writers, os.Stderr)
	}
	if cfg.File != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.File), 0o755); err != nil {
			return fmt.Errorf("create log directory: %w", err)
		}
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
		logFile = f
	}
	if len(writers) == 0 {
		writers = append(writers, io.Discard)
	}
	logger.SetOutput(io.MultiWriter(writers...))
	return nil
}

// CloseLogger flushes and closes the file sink, if any.
func CloseLogger() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}

// LogDebug logs debug level messages
func LogDebug(format string, v ...interface{}) {
	logger.Debugf(format, v...)
}

// LogInfo logs info level messages
func LogInfo(format string, v ...interface{}) {
	logger.Infof(format, v...)
}

// LogWarn logs warning level messages
func LogWarn(format string, v ...interface{}) {
	logger.Warnf(format, v...)
}

// LogError logs error level messages
func LogError(format string, v ...interface{}) {
	logger.Errorf(format, v...)
}
