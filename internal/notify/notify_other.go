//go:build !windows

package notify

// New returns the platform notifier
func New() Notifier {
	return Null{}
}
