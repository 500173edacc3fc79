// Package interfaces defines core interfaces for dependency injection and testing.
package interfaces

// SimClient is a connection to the simulator automation interface.
// Implementations hold at most one live handle at a time.
type SimClient interface {
	// Connect establishes the connection and prepares the data definitions
	// and client events. Safe to call again after a failure.
	Connect() error

	// SimRate reads the current simulation-rate multiplier. Any failure is
	// treated by callers as a disconnection.
	SimRate() (float64, error)

	// SendEvent transmits a named client event (e.g. "SIM_RATE_INCR").
	SendEvent(name string) error

	// Close tears down the connection. Safe to call when not connected.
	Close()
}

// FocusProber samples which window currently holds input focus.
type FocusProber interface {
	// ForegroundWindowTitle returns the title of the foreground window,
	// which may be empty (borderless windows have no title).
	ForegroundWindowTitle() string
}

// OverlayView is the overlay window as seen by the visibility controller.
// Implementations must be safe to call from any goroutine; window mutation
// is marshalled onto the UI thread internally.
type OverlayView interface {
	// Show makes the overlay visible. No-op if already visible or the
	// window has been removed.
	Show()

	// Hide withdraws the overlay without destroying it, persisting its
	// screen position first. No-op if already hidden.
	Hide()

	// Visible reports whether the overlay is currently shown.
	Visible() bool
}

// RateListener receives display updates from the polling loop.
type RateListener interface {
	// RateUpdated delivers a successfully read rate along with its display
	// text (e.g. "1.00x").
	RateUpdated(rate float64, text string)

	// ConnectionChanged delivers connection state transitions. A false value
	// resets displays to the unknown placeholder.
	ConnectionChanged(connected bool)
}

// FocusSink receives focus classification results from the polling loop.
type FocusSink interface {
	FocusChanged(active bool)
}
