//go:build !windows

// Package startup manages the start-with-Windows shortcut in the user's
// Startup folder.
package startup

import "errors"

var errUnsupported = errors.New("startup shortcuts require Windows")

// ShortcutPath returns the .lnk path in the user's Startup folder.
func ShortcutPath() (string, error) {
	return "", errUnsupported
}

// Enabled reports whether the startup shortcut currently exists.
func Enabled() bool {
	return false
}

// Enable creates the startup shortcut.
func Enable() error {
	return errUnsupported
}

// Disable removes the startup shortcut.
func Disable() error {
	return errUnsupported
}
