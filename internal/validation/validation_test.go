package validation

import (
	"errors"
	"testing"
)

func TestIsRecognized(t *testing.T) {
	tests := []struct {
		name string
		arg  string
		want bool
	}{
		// Recognized
		{"quote if needed", "--quote-if-needed", true},
		{"quote if needed short", "-q", true},
		{"quote always", "--quote-always", true},
		{"quote always short", "-Q", true},
		{"no quote", "--no-quote", true},
		{"no quote short", "-n", true},
		{"help", "--help", true},
		{"help short", "-h", true},

		// Not recognized
		{"empty", "", false},
		{"combined shorts", "-qn", false},
		{"with value", "--no-quote=true", false},
		{"uppercase long", "--HELP", false},
		{"positional", "path", false},
		{"version", "--version", false},
		{"single dash long", "-help", false},
		{"lone dash", "-", false},
		{"double dash", "--", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRecognized(tt.arg); got != tt.want {
				t.Errorf("IsRecognized(%q) = %v, want %v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestHelpRequested(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{"none", nil, false},
		{"long", []string{"--help"}, true},
		{"short", []string{"-h"}, true},
		{"after invalid", []string{"--bogus", "-h"}, true},
		{"among flags", []string{"-q", "--help", "-n"}, true},
		{"no help", []string{"-q", "-Q"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HelpRequested(tt.args); got != tt.want {
				t.Errorf("HelpRequested(%q) = %v, want %v", tt.args, got, tt.want)
			}
		})
	}
}

func TestValidateArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantArg string
	}{
		{"no args", nil, ""},
		{"all valid", []string{"-q", "--quote-always", "-n"}, ""},
		{"single invalid", []string{"--bogus"}, "--bogus"},
		{"first invalid wins", []string{"-q", "--first", "--second"}, "--first"},
		{"positional", []string{"C:\\Users"}, "C:\\Users"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateArgs(tt.args)
			if tt.wantArg == "" {
				if err != nil {
					t.Errorf("ValidateArgs(%q) error = %v, want nil", tt.args, err)
				}
				return
			}

			var argErr *ArgumentError
			if !errors.As(err, &argErr) {
				t.Fatalf("ValidateArgs(%q) error = %v, want *ArgumentError", tt.args, err)
			}
			if argErr.Arg != tt.wantArg {
				t.Errorf("ValidateArgs(%q) reported %q, want %q", tt.args, argErr.Arg, tt.wantArg)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("errors.Is(err, ErrInvalidArgument) = false, want true")
			}
		})
	}
}

func TestArgumentErrorMessage(t *testing.T) {
	err := &ArgumentError{Arg: "--bogus"}
	if got, want := err.Error(), "Invalid argument: --bogus"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
