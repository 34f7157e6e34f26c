// Package logging provides leveled stderr logging for wslpwd.
package logging

import (
	"fmt"
	"io"
	"os"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
)

// Logger handles leveled logging
type Logger struct {
	out   io.Writer
	quiet bool
	debug bool
}

// New creates a logger writing to stderr
func New(quiet, debug bool) *Logger {
	return NewWithWriter(os.Stderr, quiet, debug)
}

// NewWithWriter creates a logger writing to w
func NewWithWriter(w io.Writer, quiet, debug bool) *Logger {
	return &Logger{out: w, quiet: quiet, debug: debug}
}

// Debug logs a debug message (only when debug mode is enabled)
func (l *Logger) Debug(format string, args ...interface{}) {
	if l.debug {
		l.printf(colorBlue+"[DEBUG]"+colorReset+" ", format, args...)
	}
}

// Warn logs a warning message (hidden in quiet mode)
func (l *Logger) Warn(format string, args ...interface{}) {
	if !l.quiet {
		l.printf(colorYellow+"[WARN]"+colorReset+" ", format, args...)
	}
}

// Success logs a success message (hidden in quiet mode)
func (l *Logger) Success(format string, args ...interface{}) {
	if !l.quiet {
		l.printf(colorGreen+"✓"+colorReset+" ", format, args...)
	}
}

func (l *Logger) printf(prefix, format string, args ...interface{}) {
	fmt.Fprintf(l.out, "%s%s\n", prefix, fmt.Sprintf(format, args...))
}
