package monitor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fsimtools/simratemon/internal/monitor"
)

func TestFormatRate(t *testing.T) {
	tests := []struct {
		name string
		rate float64
		want string
	}{
		{"Real-time", 1.0, "1.00x"},
		{"Double", 2.0, "2.00x"},
		{"Quarter", 0.25, "0.25x"},
		{"Sixteen", 16.0, "16.00x"},
		{"Rounded", 1.499, "1.50x"},
		{"Zero", 0.0, "0.00x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, monitor.FormatRate(tt.rate))
		})
	}
}

func TestClassifySpeed(t *testing.T) {
	assert.Equal(t, monitor.SpeedNormal, monitor.ClassifySpeed(1.0))
	assert.Equal(t, monitor.SpeedSlow, monitor.ClassifySpeed(0.5))
	assert.Equal(t, monitor.SpeedSlow, monitor.ClassifySpeed(0.25))
	assert.Equal(t, monitor.SpeedFast, monitor.ClassifySpeed(2.0))
	assert.Equal(t, monitor.SpeedFast, monitor.ClassifySpeed(16.0))
}
