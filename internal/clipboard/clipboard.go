// Package clipboard writes text to the host clipboard.
package clipboard

import (
	"fmt"

	"github.com/atotto/clipboard"
)

// Writer places text on a clipboard
type Writer interface {
	WriteAll(text string) error
}

// WriterFunc adapts a function to Writer
type WriterFunc func(text string) error

func (f WriterFunc) WriteAll(text string) error { return f(text) }

// System is the host clipboard
type System struct{}

// NewSystem returns the host clipboard writer
func NewSystem() *System {
	return &System{}
}

// WriteAll replaces the clipboard text content
func (s *System) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("clipboard copy failed: %w", err)
	}
	return nil
}
