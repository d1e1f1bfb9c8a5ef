// Package logger provides the leveled stderr logger used by the CLI.
package logger

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"
)

// LogLevel defines log severity levels.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
	LevelNone
)

// Logger writes timestamped, optionally colored log lines.
type Logger struct {
	out       io.Writer
	useColors bool
	level     LogLevel
}

// New creates a Logger. Verbose mode lowers the threshold to debug so that
// per-entry walk decisions become visible.
func New(out io.Writer, verbose bool, useColors bool) *Logger {
	level := LevelInfo
	if verbose {
		level = LevelDebug
	}
	return &Logger{out: out, useColors: useColors, level: level}
}

// WithLevel sets the level threshold and returns the logger.
func (l *Logger) WithLevel(level LogLevel) *Logger {
	l.level = level
	return l
}

func (l *Logger) logf(level LogLevel, prefix string, colorize func(string, ...interface{}) string, format string, args []interface{}) {
	if l.level > level {
		return
	}
	if l.useColors {
		prefix = colorize(prefix)
	}
	fmt.Fprintf(l.out, "[%s %s] %s\n", time.Now().Format("15:04:05.000"), prefix, fmt.Sprintf(format, args...))
}

// Debug logs a debug message.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.logf(LevelDebug, "DEBUG", color.CyanString, format, args)
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...interface{}) {
	l.logf(LevelInfo, "INFO", color.BlueString, format, args)
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.logf(LevelWarn, "WARN", color.YellowString, format, args)
}

// Error logs an error message.
func (l *Logger) Error(format string, args ...interface{}) {
	l.logf(LevelError, "ERROR", color.RedString, format, args)
}
