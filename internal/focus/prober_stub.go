//go:build !windows

package focus

// Prober is a no-op on non-Windows platforms; focus is never active.
type Prober struct{}

// NewProber creates a foreground-window prober.
func NewProber() *Prober {
	return &Prober{}
}

// ForegroundWindowTitle always returns an empty title off Windows.
func (p *Prober) ForegroundWindowTitle() string {
	return ""
}
