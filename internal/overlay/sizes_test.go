package overlay_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsimtools/simratemon/internal/overlay"
)

func TestDimensionsFor(t *testing.T) {
	tests := []struct {
		name    string
		size    string
		width   int32
		buttons bool
	}{
		{"Small", "s", 80, false},
		{"Medium", "m", 120, true},
		{"Large", "l", 160, true},
		{"ExtraLarge", "xl", 200, true},
		{"Largest", "xxl", 250, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := overlay.DimensionsFor(tt.size)
			assert.Equal(t, tt.width, d.Width)
			assert.Equal(t, tt.buttons, d.Buttons)
		})
	}
}

func TestDimensionsFor_UnknownFallsBackToDefault(t *testing.T) {
	assert.Equal(t, overlay.DimensionsFor(overlay.DefaultSize), overlay.DimensionsFor("enormous"))
	assert.Equal(t, overlay.DimensionsFor(overlay.DefaultSize), overlay.DimensionsFor(""))
}

func TestWindowWidth_AddsButtonColumns(t *testing.T) {
	small := overlay.DimensionsFor("s")
	assert.Equal(t, small.Width, small.WindowWidth(), "no buttons on the smallest size")

	large := overlay.DimensionsFor("l")
	assert.Greater(t, large.WindowWidth(), large.Width)
}
