package overlay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/overlay"
	"github.com/fsimtools/simratemon/internal/testutil"
)

// fakeTimer captures scheduled hides so tests can fire or drop them
// deterministically.
type fakeTimer struct {
	delay     time.Duration
	fn        func()
	cancelled bool
	fired     bool
}

// fire runs the callback the way time.AfterFunc would, unless cancelled.
func (t *fakeTimer) fire() {
	if t.cancelled || t.fired {
		return
	}

	t.fired = true
	t.fn()
}

type fakeScheduler struct {
	timers []*fakeTimer
}

func (s *fakeScheduler) afterFunc(d time.Duration, fn func()) overlay.CancelFunc {
	t := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, t)

	return func() bool {
		if t.fired {
			return false
		}
		t.cancelled = true
		return true
	}
}

// pending counts timers that are neither cancelled nor fired.
func (s *fakeScheduler) pending() int {
	n := 0
	for _, t := range s.timers {
		if !t.cancelled && !t.fired {
			n++
		}
	}

	return n
}

func newControllerHarness(autoHide bool) (*overlay.Controller, *testutil.MockOverlayView, *fakeScheduler) {
	view := testutil.NewMockOverlayView()
	sched := &fakeScheduler{}

	c := overlay.NewController(overlay.ControllerOptions{
		View:      view,
		Log:       logger.NewNoOpLogger(),
		AutoHide:  autoHide,
		AfterFunc: sched.afterFunc,
	})

	return c, view, sched
}

func TestController_ShowsOnActiveFocusWhenConnected(t *testing.T) {
	c, view, _ := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)

	assert.Equal(t, 1, view.ShowCalls)
	assert.True(t, view.Visible())
}

func TestController_NeverShowsWhileDisconnected(t *testing.T) {
	c, view, _ := newControllerHarness(true)

	c.FocusChanged(true)

	assert.Zero(t, view.ShowCalls)
}

func TestController_ShowsOnConnectWithActiveFocus(t *testing.T) {
	c, view, _ := newControllerHarness(true)

	// Focus became active while disconnected; connecting must show without
	// waiting for another focus transition.
	c.FocusChanged(true)
	c.ConnectionChanged(true)

	assert.Equal(t, 1, view.ShowCalls)
}

func TestController_FocusLossSchedulesSingleHide(t *testing.T) {
	c, view, sched := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)
	c.FocusChanged(false) // repeated samples must not stack timers

	assert.Equal(t, 1, sched.pending())
	assert.True(t, c.PendingHide())
	assert.Zero(t, view.HideCalls, "hide must wait for the debounce")
}

func TestController_FocusGainWithinDelayCancelsHide(t *testing.T) {
	c, view, sched := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)
	c.FocusChanged(true) // focus returns before the delay elapses

	require.Len(t, sched.timers, 1)
	assert.True(t, sched.timers[0].cancelled)
	assert.False(t, c.PendingHide())

	// Even if the timer were to fire, the overlay must stay up
	sched.timers[0].fire()
	assert.Zero(t, view.HideCalls)
	assert.True(t, view.Visible())
}

func TestController_HideFiresExactlyOnce(t *testing.T) {
	c, view, sched := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)

	require.Len(t, sched.timers, 1)
	sched.timers[0].fire()

	assert.Equal(t, 1, view.HideCalls)
	assert.False(t, view.Visible())
	assert.False(t, c.PendingHide())
}

func TestController_LateFocusGainAfterHideShowsAgain(t *testing.T) {
	c, view, sched := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)
	sched.timers[0].fire()
	require.Equal(t, 1, view.HideCalls)

	c.FocusChanged(true)

	assert.Equal(t, 2, view.ShowCalls)
	assert.True(t, view.Visible())
}

func TestController_AtMostOnePendingTimerAcrossChurn(t *testing.T) {
	c, _, sched := newControllerHarness(true)

	c.ConnectionChanged(true)

	for i := 0; i < 5; i++ {
		c.FocusChanged(true)
		c.FocusChanged(false)
		assert.LessOrEqual(t, sched.pending(), 1, "invariant: at most one live hide timer")
	}

	assert.Equal(t, 1, sched.pending())
}

func TestController_AutoHideDisabledNeverSchedules(t *testing.T) {
	c, view, sched := newControllerHarness(false)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)

	assert.Empty(t, sched.timers)
	assert.Zero(t, view.HideCalls)
}

func TestController_DisablingAutoHideCancelsPendingAndShows(t *testing.T) {
	c, view, sched := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)
	require.Equal(t, 1, sched.pending())

	c.SetAutoHide(false)

	assert.Zero(t, sched.pending())
	sched.timers[0].fire()
	assert.Zero(t, view.HideCalls)
	assert.True(t, view.Visible())
}

func TestController_RemovedBlocksPollingDrivenShows(t *testing.T) {
	c, view, _ := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	require.Equal(t, 1, view.ShowCalls)

	c.SetRemoved(true)

	// Polling keeps classifying focus; none of it may resurrect the overlay
	c.FocusChanged(false)
	c.FocusChanged(true)
	c.FocusChanged(false)
	c.FocusChanged(true)

	assert.Equal(t, 1, view.ShowCalls, "removed overlay must not be recreated by polling")
}

func TestController_LeavingRemovedStateShowsWhenActive(t *testing.T) {
	c, view, _ := newControllerHarness(true)

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.SetRemoved(true)
	require.Equal(t, 1, view.ShowCalls)

	c.SetRemoved(false)

	assert.Equal(t, 2, view.ShowCalls)
}

// Real-timer coverage of the debounce window.

func TestController_RealTimer_FocusChurnNeverHides(t *testing.T) {
	view := testutil.NewMockOverlayView()
	c := overlay.NewController(overlay.ControllerOptions{
		View:      view,
		Log:       logger.NewNoOpLogger(),
		AutoHide:  true,
		HideDelay: 50 * time.Millisecond,
	})

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)
	time.Sleep(10 * time.Millisecond)
	c.FocusChanged(true) // within the delay

	time.Sleep(100 * time.Millisecond)
	assert.True(t, view.Visible(), "regaining focus within the delay must keep the overlay up")
}

func TestController_RealTimer_FocusLossHidesOnce(t *testing.T) {
	view := testutil.NewMockOverlayView()
	c := overlay.NewController(overlay.ControllerOptions{
		View:      view,
		Log:       logger.NewNoOpLogger(),
		AutoHide:  true,
		HideDelay: 50 * time.Millisecond,
	})

	c.ConnectionChanged(true)
	c.FocusChanged(true)
	c.FocusChanged(false)

	time.Sleep(120 * time.Millisecond)
	assert.False(t, view.Visible(), "losing focus past the delay must hide the overlay")
}
