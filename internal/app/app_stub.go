//go:build !windows

// Package app wires the monitor together: config, SimConnect client, polling
// loop, overlay window, visibility controller and control panel.
package app

import (
	"errors"

	"github.com/fsimtools/simratemon/internal/logger"
)

// Options configures an application run.
type Options struct {
	Log logger.LoggerInterface

	// Silent starts with the control panel hidden (the --startup flag).
	Silent bool
}

// Run is Windows-only; SimConnect and the overlay have no equivalent here.
func Run(opts Options) error {
	return errors.New("this application requires Windows")
}
