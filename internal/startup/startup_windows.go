//go:build windows

// Package startup manages the start-with-Windows shortcut in the user's
// Startup folder.
package startup

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"
)

const (
	shortcutName = "SimRateMonitor"

	// launchArgs makes autostarted instances come up silently.
	launchArgs = "--startup"
)

// ShortcutPath returns the .lnk path in the user's Startup folder.
func ShortcutPath() (string, error) {
	appData := os.Getenv("APPDATA")
	if appData == "" {
		return "", errors.New("APPDATA environment variable not set")
	}

	return filepath.Join(
		appData,
		`Microsoft\Windows\Start Menu\Programs\Startup`,
		shortcutName+".lnk",
	), nil
}

// Enabled reports whether the startup shortcut currently exists.
func Enabled() bool {
	path, err := ShortcutPath()
	if err != nil {
		return false
	}

	_, err = os.Stat(path)

	return err == nil
}

// Enable creates (or rewrites) the startup shortcut pointing at the current
// executable with the silent launch flag.
func Enable() error {
	exePath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to resolve executable path: %w", err)
	}

	linkPath, err := ShortcutPath()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(linkPath), 0755); err != nil {
		return fmt.Errorf("failed to create startup folder: %w", err)
	}

	return writeShortcut(linkPath, exePath)
}

// Disable removes the startup shortcut. Missing shortcuts are not an error.
func Disable() error {
	linkPath, err := ShortcutPath()
	if err != nil {
		return err
	}

	if err := os.Remove(linkPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove startup shortcut: %w", err)
	}

	return nil
}

// writeShortcut drives WScript.Shell over COM to produce the .lnk file.
func writeShortcut(linkPath, exePath string) error {
	if err := ole.CoInitialize(0); err != nil {
		// S_FALSE means the thread was already initialized
		var oleErr *ole.OleError
		if !errors.As(err, &oleErr) || oleErr.Code() != uintptr(1) {
			return fmt.Errorf("failed to initialize COM: %w", err)
		}
	}
	defer ole.CoUninitialize()

	shellObj, err := oleutil.CreateObject("WScript.Shell")
	if err != nil {
		return fmt.Errorf("failed to create WScript.Shell: %w", err)
	}
	defer shellObj.Release()

	shell, err := shellObj.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		return fmt.Errorf("failed to query IDispatch: %w", err)
	}
	defer shell.Release()

	scV, err := oleutil.CallMethod(shell, "CreateShortcut", linkPath)
	if err != nil {
		return fmt.Errorf("failed to create shortcut object: %w", err)
	}

	sc := scV.ToIDispatch()
	defer sc.Release()

	if _, err := oleutil.PutProperty(sc, "TargetPath", exePath); err != nil {
		return fmt.Errorf("failed to set shortcut target: %w", err)
	}

	if _, err := oleutil.PutProperty(sc, "Arguments", launchArgs); err != nil {
		return fmt.Errorf("failed to set shortcut arguments: %w", err)
	}

	_, _ = oleutil.PutProperty(sc, "Description", "Sim Rate Monitor")
	_, _ = oleutil.PutProperty(sc, "IconLocation", exePath)

	if _, err := oleutil.CallMethod(sc, "Save"); err != nil {
		return fmt.Errorf("failed to save shortcut: %w", err)
	}

	return nil
}
