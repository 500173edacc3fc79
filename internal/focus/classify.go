// Package focus determines whether the simulator (or this application) holds
// input focus, driving overlay auto-hide.
package focus

import "strings"

// Window titles that count as "active" focus alongside the simulator's own.
const (
	// PanelTitle is the control panel window title.
	PanelTitle = "Sim Rate Monitor"

	// OverlayTitle is the overlay window title. Clicking or dragging the
	// overlay makes it the foreground window, which must not arm auto-hide.
	OverlayTitle = "Sim Rate Overlay"
)

// simulatorTitleMarkers identify the simulator's main window across editions
// (windowed title vs. process-named fullscreen title).
var simulatorTitleMarkers = []string{
	"Microsoft Flight Simulator",
	"FlightSimulator",
}

// IsSimulatorTitle reports whether a window title belongs to the simulator.
func IsSimulatorTitle(title string) bool {
	for _, marker := range simulatorTitleMarkers {
		if strings.Contains(title, marker) {
			return true
		}
	}

	return false
}

// Classify reports whether focus should be treated as "active" given the
// foreground window title and current overlay visibility. Active focus keeps
// the overlay shown; inactive focus arms the auto-hide debounce.
func Classify(title string, overlayVisible bool) bool {
	if IsSimulatorTitle(title) {
		return true
	}

	if strings.Contains(title, PanelTitle) {
		return true
	}

	if strings.Contains(title, OverlayTitle) {
		return true
	}

	// Fallback for titleless foreground windows: an empty title while the
	// overlay is visible is assumed to be the overlay itself.
	if title == "" && overlayVisible {
		return true
	}

	return false
}
