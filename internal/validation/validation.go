// Package validation checks command-line arguments for wslpwd.
package validation

import (
	"errors"
	"fmt"
)

const (
	FlagQuoteIfNeeded      = "--quote-if-needed"
	FlagQuoteIfNeededShort = "-q"
	FlagQuoteAlways        = "--quote-always"
	FlagQuoteAlwaysShort   = "-Q"
	FlagNoQuote            = "--no-quote"
	FlagNoQuoteShort       = "-n"
	FlagHelp               = "--help"
	FlagHelpShort          = "-h"
)

var ErrInvalidArgument = errors.New("invalid argument")

var recognizedFlags = map[string]bool{
	FlagQuoteIfNeeded: true, FlagQuoteIfNeededShort: true,
	FlagQuoteAlways: true, FlagQuoteAlwaysShort: true,
	FlagNoQuote: true, FlagNoQuoteShort: true,
	FlagHelp: true, FlagHelpShort: true,
}

// ArgumentError reports the first argument outside the recognized set
type ArgumentError struct {
	Arg string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("Invalid argument: %s", e.Arg)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

// IsRecognized reports whether arg is one of the accepted flags.
// Combined short flags and --flag=value forms are not accepted.
func IsRecognized(arg string) bool {
	return recognizedFlags[arg]
}

// HelpRequested reports whether any argument asks for usage
func HelpRequested(args []string) bool {
	for _, arg := range args {
		if arg == FlagHelp || arg == FlagHelpShort {
			return true
		}
	}
	return false
}

// ValidateArgs returns an *ArgumentError for the first unrecognized argument
func ValidateArgs(args []string) error {
	for _, arg := range args {
		if !IsRecognized(arg) {
			return &ArgumentError{Arg: arg}
		}
	}
	return nil
}
