package cli

import (
	"github.com/spf13/pflag"

	"github.com/rjdinis/wslpwd/internal/types"
	"github.com/rjdinis/wslpwd/pkg/utils"
)

const (
	workingDirHelp = "Check that the current directory still exists and is readable."
	clipboardHelp  = `On Linux the clipboard needs xclip, xsel or wl-clipboard installed
and a running display server.`
)

type quoteOptions struct {
	ifNeeded bool
	always   bool
	never    bool
}

func (o *quoteOptions) register(fs *pflag.FlagSet) {
	fs.BoolVarP(&o.ifNeeded, "quote-if-needed", "q", false, "Wrap the path in quotes only if it contains spaces")
	fs.BoolVarP(&o.always, "quote-always", "Q", false, "Always wrap the path in quotes")
	fs.BoolVarP(&o.never, "no-quote", "n", false, "Never wrap the path in quotes (overrides other quote options)")
}

func (o *quoteOptions) mode() types.QuoteMode {
	return types.ResolveQuoteMode(o.ifNeeded, o.always, o.never)
}

// copyWorkingDir converts the working directory and puts it on the clipboard.
// It returns the text written.
func copyWorkingDir(app *AppContext, mode types.QuoteMode) (string, error) {
	log := app.Logger

	cwd, err := app.Getwd()
	if err != nil {
		return "", types.NewConvertError("getwd", "", types.ErrWorkingDir, err, workingDirHelp)
	}
	log.Debug("Working directory: %s", cwd)

	wslPath := utils.ConvertWithRoot(cwd, utils.MountRoot(app.Config.MountRoot))
	result := utils.ApplyQuoting(wslPath, mode)
	log.Debug("Converted %s -> %s (%s)", cwd, result, mode)

	if err := app.Clipboard.WriteAll(result); err != nil {
		return "", types.NewConvertError("copy", result, types.ErrClipboard, err, clipboardHelp)
	}

	log.Success("Copied %s to clipboard", result)
	return result, nil
}
