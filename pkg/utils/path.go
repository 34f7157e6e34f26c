// Package utils provides utility functions.
package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rjdinis/wslpwd/internal/types"
)

// DefaultMountRoot is where WSL mounts host drives unless wsl.conf says otherwise.
const DefaultMountRoot = "/mnt/"

// ConvertWithRoot converts a Windows directory path to a WSL mount path
// under mountRoot: C:\path\to\dir -> /mnt/c/path/to/dir/
func ConvertWithRoot(winPath, mountRoot string) string {
	path := NormalizeSeparators(winPath)
	path = EnsureTrailingSlash(path)
	return RemapDrive(path, mountRoot)
}

// NormalizeSeparators replaces every backslash with a forward slash.
func NormalizeSeparators(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

// EnsureTrailingSlash appends a slash unless the path already ends with one.
func EnsureTrailingSlash(path string) string {
	if strings.HasSuffix(path, "/") {
		return path
	}
	return path + "/"
}

// RemapDrive rewrites "X:rest" as "<root>x<rest>". Only the first colon
// counts, and only the first character before it is taken as the drive.
// Paths without a colon are prefixed with root unchanged.
func RemapDrive(path, mountRoot string) string {
	before, rest, found := strings.Cut(path, ":")
	if !found {
		return mountRoot + path
	}

	drive := ""
	if r, _ := utf8.DecodeRuneInString(before); before != "" {
		drive = string(unicode.ToLower(r))
	}
	return mountRoot + drive + rest
}

// ApplyQuoting wraps path in double quotes when mode calls for it.
// Interior quotes are not escaped.
func ApplyQuoting(path string, mode types.QuoteMode) string {
	if mode.ShouldQuote(path) {
		return `"` + path + `"`
	}
	return path
}

// MountRoot normalizes a configured mount root so it ends in a slash.
func MountRoot(root string) string {
	if root == "" {
		return DefaultMountRoot
	}
	return EnsureTrailingSlash(root)
}
