// Package timeouts defines interval and delay constants for the monitor loops.
package timeouts

import "time"

const (
	// SimConnect Lifecycle

	// ReconnectInterval is the wait between failed connection attempts to the
	// simulator. The simulator may not be running at all, so this loop runs
	// for the lifetime of the application.
	ReconnectInterval = 3 * time.Second

	// RatePollInterval is the interval between SIMULATION RATE reads while
	// connected.
	RatePollInterval = 500 * time.Millisecond

	// DispatchPollInterval is the delay between SimConnect_GetNextDispatch
	// calls while waiting for a requested data block to arrive.
	DispatchPollInterval = 10 * time.Millisecond

	// RateReadTimeout is the maximum time to wait for the simulator to answer
	// a single SIMULATION RATE request before treating it as a read failure.
	RateReadTimeout = 2 * time.Second

	// Overlay Behaviour

	// OverlayHideDelay is the debounce applied before hiding the overlay after
	// focus moves away from the simulator. Rapid focus churn (alt-tab, dialog
	// popups) within this window must not cause visible flicker.
	OverlayHideDelay = 300 * time.Millisecond
)
