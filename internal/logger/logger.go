// SPDX-License-Identifier: Apache-2.0

// Package logger configures the application-wide slog logger. Logs are
// written as JSON to a file under the XDG state directory, and to stderr
// as well unless the TUI is running (stderr output would corrupt the
// alternate screen).
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

var defaultLogger *slog.Logger

// getLogFilePath determines the path for the application log file based on XDG spec.
func getLogFilePath() (string, error) {
	stateDir := os.Getenv("XDG_STATE_HOME")
	if stateDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("could not get user home directory: %w", err)
		}
		stateDir = filepath.Join(homeDir, ".local", "state")
	}

	return filepath.Join(stateDir, "taxcalc", "app.log"), nil
}

// InitLogger initializes the logger based on the execution mode (TUI or CLI).
// It must be called once at the beginning of the application.
func InitLogger(isTUI bool) {
	var writers []io.Writer

	logFilePath, err := getLogFilePath()
	if err == nil {
		logDir := filepath.Dir(logFilePath)
		if mkErr := os.MkdirAll(logDir, 0750); mkErr == nil {
			file, openErr := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0640)
			if openErr == nil {
				// The OS closes the handle on exit; fine for a short-lived CLI.
				writers = append(writers, file)
			} else {
				fmt.Fprintf(os.Stderr, "Error opening log file %s: %v. File logging disabled.\n", logFilePath, openErr)
			}
		} else {
			fmt.Fprintf(os.Stderr, "Error creating log directory %s: %v. File logging disabled.\n", logDir, mkErr)
		}
	} else {
		fmt.Fprintf(os.Stderr, "Error determining log file path: %v. File logging disabled.\n", err)
	}

	if !isTUI {
		writers = append(writers, os.Stderr)
	}

	var finalWriter io.Writer
	switch len(writers) {
	case 0:
		// All writers failed; fall back to stderr so errors stay visible.
		finalWriter = os.Stderr
	case 1:
		finalWriter = writers[0]
	default:
		finalWriter = io.MultiWriter(writers...)
	}

	handler := slog.NewJSONHandler(finalWriter, &slog.HandlerOptions{Level: slog.LevelInfo})
	defaultLogger = slog.New(handler)
}

// checkLogger ensures the logger is initialized before use, preventing nil panics.
func checkLogger() {
	if defaultLogger == nil {
		fmt.Fprintln(os.Stderr, "Error: Logger accessed before InitLogger was called. Initializing with defaults.")
		InitLogger(false)
	}
}

// Info logs an informational message.
func Info(msg string, args ...any) {
	checkLogger()
	defaultLogger.Info(msg, args...)
}

// Infof logs a formatted informational message.
func Infof(format string, v ...any) {
	checkLogger()
	defaultLogger.Info(fmt.Sprintf(format, v...))
}

// Warn logs a warning message.
func Warn(msg string, args ...any) {
	checkLogger()
	defaultLogger.Warn(msg, args...)
}

// Error logs an error message.
func Error(msg string, args ...any) {
	checkLogger()
	defaultLogger.Error(msg, args...)
}

// Errorf logs a formatted error message.
func Errorf(format string, v ...any) {
	checkLogger()
	defaultLogger.Error(fmt.Sprintf(format, v...))
}
