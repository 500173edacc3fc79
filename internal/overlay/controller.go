// Package overlay implements the always-on-top rate overlay: a visibility
// controller driven by focus classification, and the Win32 window itself.
package overlay

import (
	"sync"
	"time"

	"github.com/fsimtools/simratemon/internal/interfaces"
	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/timeouts"
)

// CancelFunc stops a pending timer. Reports false if the timer already fired.
type CancelFunc func() bool

// ControllerOptions configures a Controller. View and Log are required.
type ControllerOptions struct {
	View interfaces.OverlayView
	Log  logger.LoggerInterface

	// AutoHide hides the overlay when the simulator loses focus.
	AutoHide bool

	// HideDelay is the debounce before an actual hide. Defaults to
	// timeouts.OverlayHideDelay.
	HideDelay time.Duration

	// AfterFunc schedules a delayed call; injectable for deterministic
	// tests. Defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, fn func()) CancelFunc
}

// Controller owns overlay visibility. Focus-active shows the overlay
// immediately; focus loss schedules a debounced hide that a focus gain
// cancels. At most one pending hide timer exists at any time.
type Controller struct {
	mu        sync.Mutex
	view      interfaces.OverlayView
	log       logger.LoggerInterface
	hideDelay time.Duration
	afterFunc func(d time.Duration, fn func()) CancelFunc

	cancelHide CancelFunc // non-nil while a hide is pending

	focusActive bool
	focusKnown  bool // distinguishes "no sample yet" from inactive
	connected   bool
	autoHide    bool
	removed     bool // overlay size "hide" selected
}

// NewController creates a visibility controller.
func NewController(opts ControllerOptions) *Controller {
	c := &Controller{
		view:      opts.View,
		log:       opts.Log,
		hideDelay: opts.HideDelay,
		afterFunc: opts.AfterFunc,
		autoHide:  opts.AutoHide,
	}

	if c.hideDelay == 0 {
		c.hideDelay = timeouts.OverlayHideDelay
	}

	if c.afterFunc == nil {
		c.afterFunc = func(d time.Duration, fn func()) CancelFunc {
			return time.AfterFunc(d, fn).Stop
		}
	}

	return c
}

// FocusChanged receives focus classifications from the polling loop. Repeated
// identical samples are ignored; only transitions act.
func (c *Controller) FocusChanged(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.focusKnown && active == c.focusActive {
		return
	}

	c.focusActive = active
	c.focusKnown = true
	c.log.Debug("Focus changed", "active", active)

	if active {
		// A focus gain always cancels any pending hide
		c.cancelPendingLocked()
		c.showLocked()
		return
	}

	if !c.autoHide {
		return
	}

	if c.cancelHide == nil {
		c.cancelHide = c.afterFunc(c.hideDelay, c.hideAfterDelay)
	}
}

// ConnectionChanged tracks connection state. The overlay never appears while
// disconnected; an existing overlay stays up showing the unknown placeholder.
func (c *Controller) ConnectionChanged(connected bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connected = connected

	// Show immediately on (re)connection when focus already counts as active,
	// rather than waiting for the next focus transition.
	if connected && (c.focusActive || !c.autoHide) {
		c.showLocked()
	}
}

// SetAutoHide toggles the auto-hide setting. Turning it off shows the overlay
// regardless of focus (when connected and not removed).
func (c *Controller) SetAutoHide(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.autoHide = on

	if !on {
		c.cancelPendingLocked()
		c.showLocked()
	}
}

// SetRemoved tracks whether the "hide" overlay size is selected. While
// removed, no polling-driven update may show the overlay. Leaving the removed
// state re-shows the overlay when conditions allow.
func (c *Controller) SetRemoved(removed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.removed = removed

	if removed {
		c.cancelPendingLocked()
		return
	}

	if c.focusActive || !c.autoHide {
		c.showLocked()
	}
}

// PendingHide reports whether a hide is currently scheduled.
func (c *Controller) PendingHide() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.cancelHide != nil
}

// hideAfterDelay fires when the debounce elapses. Conditions are re-checked:
// a focus gain or disabled auto-hide in the meantime aborts the hide.
func (c *Controller) hideAfterDelay() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cancelHide = nil

	if c.focusActive || !c.autoHide {
		return
	}

	if c.view.Visible() {
		c.view.Hide()
		c.log.Debug("Overlay hidden after focus loss")
	}
}

// showLocked shows the overlay when allowed. Callers hold mu.
func (c *Controller) showLocked() {
	if c.removed || !c.connected {
		return
	}

	c.view.Show()
}

// cancelPendingLocked cancels a scheduled hide, if any. Callers hold mu.
func (c *Controller) cancelPendingLocked() {
	if c.cancelHide != nil {
		c.cancelHide()
		c.cancelHide = nil
	}
}
