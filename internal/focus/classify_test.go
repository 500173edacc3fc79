package focus_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsimtools/simratemon/internal/focus"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		title          string
		overlayVisible bool
		active         bool
	}{
		{
			name:   "Simulator windowed title",
			title:  "Microsoft Flight Simulator - 1.37.19.0",
			active: true,
		},
		{
			name:   "Simulator fullscreen process title",
			title:  "FlightSimulator",
			active: true,
		},
		{
			name:   "Control panel",
			title:  "Sim Rate Monitor",
			active: true,
		},
		{
			// Clicking or dragging the overlay makes it the foreground
			// window; that must never arm the auto-hide debounce
			name:   "Overlay window itself",
			title:  focus.OverlayTitle,
			active: true,
		},
		{
			name:           "Overlay title while overlay hidden",
			title:          focus.OverlayTitle,
			overlayVisible: false,
			active:         true,
		},
		{
			name:           "Empty title with overlay visible is the overlay",
			title:          "",
			overlayVisible: true,
			active:         true,
		},
		{
			name:           "Empty title without overlay",
			title:          "",
			overlayVisible: false,
			active:         false,
		},
		{
			name:           "Unrelated application",
			title:          "Document - Notepad",
			overlayVisible: true,
			active:         false,
		},
		{
			name:   "Browser tab mentioning the sim",
			title:  "Microsoft Flight Simulator forums - Chromium",
			active: true, // substring match is intentional; matches sim loading screens too
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.active, focus.Classify(tt.title, tt.overlayVisible))
		})
	}
}

func TestIsSimulatorTitle(t *testing.T) {
	assert.True(t, focus.IsSimulatorTitle("Microsoft Flight Simulator"))
	assert.True(t, focus.IsSimulatorTitle("FlightSimulator"))
	assert.False(t, focus.IsSimulatorTitle("X-Plane 12"))
	assert.False(t, focus.IsSimulatorTitle(""))
}
