//go:build windows

package notify

import (
	"golang.org/x/sys/windows"
)

const (
	mbOK              = 0x00000000
	mbIconInformation = 0x00000040
)

// MessageBox shows messages in a Win32 message box
type MessageBox struct{}

// New returns the platform notifier
func New() Notifier {
	return MessageBox{}
}

// Notify blocks until the dialog is dismissed. Errors are ignored.
func (MessageBox) Notify(title, message string) {
	text, err := windows.UTF16PtrFromString(message)
	if err != nil {
		return
	}
	caption, err := windows.UTF16PtrFromString(title)
	if err != nil {
		return
	}
	_, _ = windows.MessageBox(0, text, caption, mbOK|mbIconInformation)
}
