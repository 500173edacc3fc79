package monitor

import "fmt"

// RateUnknownText is shown until the first successful read and after any
// read failure.
const RateUnknownText = "-- x"

// Speed buckets a rate for display coloring.
type Speed int

const (
	// SpeedNormal is real-time (1x).
	SpeedNormal Speed = iota

	// SpeedSlow is slower than real-time (0.25x, 0.5x).
	SpeedSlow

	// SpeedFast is faster than real-time (2x, 4x, ...).
	SpeedFast
)

// FormatRate renders a rate multiplier for display: two decimal places with a
// trailing "x".
func FormatRate(rate float64) string {
	return fmt.Sprintf("%.2fx", rate)
}

// ClassifySpeed buckets a rate relative to real-time.
func ClassifySpeed(rate float64) Speed {
	switch {
	case rate < 1.0:
		return SpeedSlow
	case rate > 1.0:
		return SpeedFast
	default:
		return SpeedNormal
	}
}
