// Package main is the entry point for wslpwd CLI.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rjdinis/wslpwd/internal/cli"
	"github.com/rjdinis/wslpwd/internal/types"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// wslpwd is meant to be started from Explorer and shortcuts
	cobra.MousetrapHelpText = ""

	app, err := cli.NewContext()
	if err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}

	v := fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date)
	if err := cli.Execute(v, app, os.Args[1:]); err != nil {
		reportError(os.Stderr, err)
		os.Exit(1)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)

	// If it's a ConvertError with help text, print that too
	var convErr *types.ConvertError
	if errors.As(err, &convErr) && convErr.Help != "" {
		fmt.Fprintf(w, "\n%s\n", convErr.Help)
	}
}
