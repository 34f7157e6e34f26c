// Package notify shows usage and error text to the user on a best-effort basis.
//
// Windows builds show a modal message box; every other platform drops the
// message. Notify never reports failure to its caller.
package notify

// Notifier displays a titled message
type Notifier interface {
	Notify(title, message string)
}

// Null discards every message
type Null struct{}

func (Null) Notify(title, message string) {}

// Func adapts a function to Notifier
type Func func(title, message string)

func (f Func) Notify(title, message string) { f(title, message) }
