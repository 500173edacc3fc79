package monitor_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/monitor"
	"github.com/fsimtools/simratemon/internal/testutil"
	"github.com/fsimtools/simratemon/internal/timeouts"
)

// pollerHarness wires a poller to mocks and stops it after maxSleeps ticks.
type pollerHarness struct {
	poller   *monitor.Poller
	sim      *testutil.MockSimClient
	prober   *testutil.MockFocusProber
	listener *testutil.RecordingListener
	focus    *testutil.RecordingFocusSink
	sleeps   []time.Duration
}

func newPollerHarness(sim *testutil.MockSimClient, prober *testutil.MockFocusProber, maxSleeps int) *pollerHarness {
	h := &pollerHarness{
		sim:      sim,
		prober:   prober,
		listener: testutil.NewRecordingListener(),
		focus:    testutil.NewRecordingFocusSink(),
	}

	h.poller = monitor.NewPoller(monitor.PollerOptions{
		Sim:      sim,
		Prober:   prober,
		Listener: h.listener,
		Focus:    h.focus,
		Log:      logger.NewNoOpLogger(),
		Sleep: func(d time.Duration) {
			h.sleeps = append(h.sleeps, d)
			if len(h.sleeps) >= maxSleeps {
				h.poller.Stop()
			}
		},
	})

	return h
}

func TestPoller_PublishesFormattedRates(t *testing.T) {
	sim := testutil.NewMockSimClient().WithRates(1.0, 2.0, 0.5)
	prober := testutil.NewMockFocusProber("Microsoft Flight Simulator")

	h := newPollerHarness(sim, prober, 3)
	h.poller.Run()

	assert.Equal(t, []string{"1.00x", "2.00x", "0.50x"}, h.listener.Texts)
	assert.Equal(t, []float64{1.0, 2.0, 0.5}, h.listener.Rates)
	assert.Equal(t, []bool{true}, h.listener.Connections)
}

func TestPoller_ConnectSuccessReportsActiveFocus(t *testing.T) {
	sim := testutil.NewMockSimClient()
	prober := testutil.NewMockFocusProber("Document - Notepad")

	h := newPollerHarness(sim, prober, 1)
	h.poller.Run()

	// Connection success assumes active focus so the overlay shows right away
	require.NotEmpty(t, h.focus.States)
	assert.True(t, h.focus.States[0])
}

func TestPoller_ReadFailureTransitionsToDisconnected(t *testing.T) {
	sim := testutil.NewMockSimClient().WithRateResults(
		testutil.RateResult{Rate: 4.0},
		testutil.RateResult{Err: errors.New("read failed")},
	)
	prober := testutil.NewMockFocusProber("Microsoft Flight Simulator")

	h := newPollerHarness(sim, prober, 2)
	h.poller.Run()

	assert.Equal(t, []string{"4.00x"}, h.listener.Texts)
	assert.Equal(t, []bool{true, false}, h.listener.Connections)
	assert.GreaterOrEqual(t, sim.CloseCalls, 1, "read failure should release the handle")
}

func TestPoller_ReconnectsAfterReadFailure(t *testing.T) {
	sim := testutil.NewMockSimClient().WithRateResults(
		testutil.RateResult{Err: errors.New("read failed")},
		testutil.RateResult{Rate: 1.0},
	)
	prober := testutil.NewMockFocusProber("Microsoft Flight Simulator")

	h := newPollerHarness(sim, prober, 3)
	h.poller.Run()

	// connect, drop on failed read, connect again
	assert.Equal(t, []bool{true, false, true}, h.listener.Connections)
	assert.Equal(t, 2, sim.ConnectCalls)
}

func TestPoller_ConnectFailureRetriesAtReconnectInterval(t *testing.T) {
	sim := testutil.NewMockSimClient().WithConnectResults(
		errors.New("sim not running"),
		errors.New("sim not running"),
	)
	prober := testutil.NewMockFocusProber("")

	h := newPollerHarness(sim, prober, 2)
	h.poller.Run()

	assert.Equal(t, 2, sim.ConnectCalls)
	assert.Empty(t, h.listener.Connections, "no state change while never connected")
	require.Len(t, h.sleeps, 2)
	assert.Equal(t, timeouts.ReconnectInterval, h.sleeps[0])
	assert.Equal(t, timeouts.ReconnectInterval, h.sleeps[1])
}

func TestPoller_ConnectedTicksUseRatePollInterval(t *testing.T) {
	sim := testutil.NewMockSimClient().WithRates(1.0)
	prober := testutil.NewMockFocusProber("Microsoft Flight Simulator")

	h := newPollerHarness(sim, prober, 2)
	h.poller.Run()

	require.Len(t, h.sleeps, 2)
	assert.Equal(t, timeouts.RatePollInterval, h.sleeps[0])
	assert.Equal(t, timeouts.RatePollInterval, h.sleeps[1])
}

func TestPoller_ChecksFocusWhileDisconnected(t *testing.T) {
	sim := testutil.NewMockSimClient().WithConnectResults(errors.New("sim not running"))
	prober := testutil.NewMockFocusProber("Microsoft Flight Simulator")

	h := newPollerHarness(sim, prober, 1)
	h.poller.Run()

	require.NotEmpty(t, h.focus.States)
	assert.True(t, h.focus.Last(), "focus sampling must continue while disconnected")
	assert.GreaterOrEqual(t, prober.Calls, 1)
}

func TestPoller_StopClosesConnection(t *testing.T) {
	sim := testutil.NewMockSimClient().WithRates(1.0)
	prober := testutil.NewMockFocusProber("Microsoft Flight Simulator")

	h := newPollerHarness(sim, prober, 1)
	h.poller.Run()

	<-h.poller.Done()
	assert.GreaterOrEqual(t, sim.CloseCalls, 1, "stop while connected must release the handle")
	assert.False(t, h.poller.Connected())
}
