//go:build windows

package focus

import (
	"github.com/fsimtools/simratemon/internal/winapi"
)

// Prober samples the foreground window via the Win32 API.
type Prober struct{}

// NewProber creates a foreground-window prober.
func NewProber() *Prober {
	return &Prober{}
}

// ForegroundWindowTitle returns the title of the focused window.
func (p *Prober) ForegroundWindowTitle() string {
	return winapi.GetForegroundWindowTitle()
}
