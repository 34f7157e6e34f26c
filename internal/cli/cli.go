// Package cli implements the command-line interface for wslpwd.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rjdinis/wslpwd/internal/clipboard"
	"github.com/rjdinis/wslpwd/internal/config"
	"github.com/rjdinis/wslpwd/internal/logging"
	"github.com/rjdinis/wslpwd/internal/notify"
	"github.com/rjdinis/wslpwd/internal/validation"
)

const (
	TitleUsage = "Usage"
	TitleError = "Error"
)

// UsageMessage is shown for --help and after an invalid argument
const UsageMessage = `Usage: wslpwd [OPTIONS]

Copies the current working directory to the clipboard in WSL-compatible format.

Options:
  -q, --quote-if-needed   Wrap the path in quotes only if it contains spaces.
  -Q, --quote-always      Always wrap the path in quotes.
  -n, --no-quote          Never wrap the path in quotes (overrides other quote options).
  -h, --help              Show this help message and exit.`

type AppContext struct {
	Config    *config.Config
	Logger    *logging.Logger
	Notifier  notify.Notifier
	Clipboard clipboard.Writer
	Getwd     func() (string, error)
}

// NewContext wires the host clipboard, notifier and working directory
func NewContext() (*AppContext, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &AppContext{
		Config:    cfg,
		Logger:    logging.New(cfg.Quiet, cfg.Debug),
		Notifier:  notify.New(),
		Clipboard: clipboard.NewSystem(),
		Getwd:     os.Getwd,
	}, nil
}

// Execute checks args against the flag set, then runs the root command.
// cobra resolves subcommands such as __complete before RunE is reached, so
// help and invalid arguments are handled here first.
func Execute(version string, app *AppContext, args []string) error {
	if handled := checkArgs(app, args); handled {
		return nil
	}

	rootCmd := NewRootCommand(version, app)
	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func NewRootCommand(version string, app *AppContext) *cobra.Command {
	var opts quoteOptions

	rootCmd := &cobra.Command{
		Use:   "wslpwd [OPTIONS]",
		Short: "Copy the current directory to the clipboard as a WSL path",
		Long: `wslpwd converts the current working directory into a WSL mount path
(C:\Users\x -> /mnt/c/Users/x/) and places it on the clipboard.

Invalid options are reported in a dialog on Windows and ignored silently
elsewhere; the exit status stays zero in both cases.`,
		Example: `  wslpwd
  wslpwd --quote-if-needed
  wslpwd -Q`,
		// Arguments are checked against the exact flag set before pflag sees them
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, args []string) error {
			app.Logger.Debug("wslpwd %s, args: %q", version, args)
			return runRoot(cmd, app, &opts, args)
		},
	}

	opts.register(rootCmd.Flags())

	return rootCmd
}

// checkArgs shows usage or the first invalid argument.
// It reports whether the run ends there.
func checkArgs(app *AppContext, args []string) bool {
	if validation.HelpRequested(args) {
		app.Notifier.Notify(TitleUsage, UsageMessage)
		return true
	}

	if err := validation.ValidateArgs(args); err != nil {
		app.Logger.Warn("%v", err)
		app.Notifier.Notify(TitleError, fmt.Sprintf("%s\n\n%s", err, UsageMessage))
		return true
	}
	return false
}

func runRoot(cmd *cobra.Command, app *AppContext, opts *quoteOptions, args []string) error {
	if checkArgs(app, args) {
		return nil
	}

	if err := cmd.Flags().Parse(args); err != nil {
		return fmt.Errorf("failed to parse flags: %w", err)
	}

	_, err := copyWorkingDir(app, opts.mode())
	return err
}
