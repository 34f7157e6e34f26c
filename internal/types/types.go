// Package types contains shared types and error definitions for wslpwd.
package types

import (
	"errors"
	"fmt"
	"strings"
)

// QuoteMode decides whether the converted path is wrapped in double quotes
type QuoteMode int

const (
	QuoteDefault QuoteMode = iota
	QuoteIfNeeded
	QuoteAlways
	QuoteNever
)

func (m QuoteMode) String() string {
	switch m {
	case QuoteIfNeeded:
		return "quote-if-needed"
	case QuoteAlways:
		return "quote-always"
	case QuoteNever:
		return "no-quote"
	default:
		return "default"
	}
}

// ResolveQuoteMode combines the quoting flags.
// no-quote beats quote-always, which beats quote-if-needed.
func ResolveQuoteMode(ifNeeded, always, never bool) QuoteMode {
	switch {
	case never:
		return QuoteNever
	case always:
		return QuoteAlways
	case ifNeeded:
		return QuoteIfNeeded
	default:
		return QuoteDefault
	}
}

// ShouldQuote reports whether path gets quoted under this mode
func (m QuoteMode) ShouldQuote(path string) bool {
	switch m {
	case QuoteAlways:
		return true
	case QuoteIfNeeded:
		return strings.Contains(path, " ")
	default:
		return false
	}
}

// Sentinel errors for fatal conditions
var (
	ErrWorkingDir = errors.New("cannot read current directory")
	ErrClipboard  = errors.New("cannot write to clipboard")
)

// ConvertError represents a fatal failure with context
type ConvertError struct {
	Op   string
	Path string
	Err  error
	Help string
}

func (e *ConvertError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *ConvertError) Unwrap() error {
	return e.Err
}

// IsWorkingDirError checks if the error came from reading the current directory
func IsWorkingDirError(err error) bool {
	return errors.Is(err, ErrWorkingDir)
}

// IsClipboardError checks if the error came from the clipboard
func IsClipboardError(err error) bool {
	return errors.Is(err, ErrClipboard)
}

// NewConvertError creates a new ConvertError wrapping cause under sentinel
func NewConvertError(op, path string, sentinel, cause error, help string) *ConvertError {
	err := sentinel
	if cause != nil {
		err = fmt.Errorf("%w: %w", sentinel, cause)
	}
	return &ConvertError{Op: op, Path: path, Err: err, Help: help}
}
