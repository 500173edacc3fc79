// Package monitor runs the polling/reconnection loop against the simulator.
package monitor

import (
	"log/slog"
	"sync"
	"time"

	"github.com/fsimtools/simratemon/internal/focus"
	"github.com/fsimtools/simratemon/internal/interfaces"
	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/timeouts"
)

// PollerOptions holds the dependencies of a Poller. Sim, Prober, Listener,
// FocusSink and Log are required; OverlayVisible and Sleep default to sensible
// values.
type PollerOptions struct {
	Sim      interfaces.SimClient
	Prober   interfaces.FocusProber
	Listener interfaces.RateListener
	Focus    interfaces.FocusSink
	Log      logger.LoggerInterface

	// OverlayVisible reports current overlay visibility, feeding the
	// "empty title means the overlay" focus heuristic. Defaults to never
	// visible.
	OverlayVisible func() bool

	// Sleep is injectable for tests. The default sleeps but wakes early
	// when the poller is stopped.
	Sleep func(d time.Duration)
}

// Poller owns the connection state and runs the fixed-interval loop:
// disconnected, attempt connect, on failure retry after ReconnectInterval;
// connected, read the rate every RatePollInterval, on any failure transition
// back to disconnected. The foreground window is sampled on every tick.
//
// Only the Run goroutine mutates connection state.
type Poller struct {
	sim            interfaces.SimClient
	prober         interfaces.FocusProber
	listener       interfaces.RateListener
	focusSink      interfaces.FocusSink
	log            logger.LoggerInterface
	overlayVisible func() bool
	sleep          func(d time.Duration)

	connected bool

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewPoller creates a poller from its dependencies.
func NewPoller(opts PollerOptions) *Poller {
	p := &Poller{
		sim:            opts.Sim,
		prober:         opts.Prober,
		listener:       opts.Listener,
		focusSink:      opts.Focus,
		log:            opts.Log,
		overlayVisible: opts.OverlayVisible,
		sleep:          opts.Sleep,
		stop:           make(chan struct{}),
		done:           make(chan struct{}),
	}

	if p.overlayVisible == nil {
		p.overlayVisible = func() bool { return false }
	}

	if p.sleep == nil {
		p.sleep = p.interruptibleSleep
	}

	return p
}

// Run executes the polling loop until Stop is called. It blocks; callers
// normally run it on a dedicated goroutine.
func (p *Poller) Run() {
	p.log.Info("Polling loop started")
	defer close(p.done)
	defer p.log.Info("Polling loop stopped")

	for {
		select {
		case <-p.stop:
			if p.connected {
				p.sim.Close()
				p.connected = false
			}
			return
		default:
		}

		if !p.connected {
			p.tickDisconnected()
			continue
		}

		p.tickConnected()
	}
}

// Stop requests loop termination. It does not wait; use Done for that.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() { close(p.stop) })
}

// Done is closed once Run has returned and the connection is released.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Connected reports the current connection state. Only meaningful for
// observability; the Run goroutine owns the state.
func (p *Poller) Connected() bool {
	return p.connected
}

// tickDisconnected attempts one connection, waiting ReconnectInterval on
// failure.
func (p *Poller) tickDisconnected() {
	p.log.Debug("Attempting to connect to simulator")

	if err := p.sim.Connect(); err != nil {
		p.log.Debug("Connection failed, waiting before retry", slog.Any("error", err))
		// Keep watching focus even while disconnected
		p.checkFocus()
		p.sleep(timeouts.ReconnectInterval)
		return
	}

	p.connected = true
	p.log.Info("Connected to simulator")
	p.listener.ConnectionChanged(true)

	// The user just launched something; treat focus as active so the overlay
	// appears immediately instead of waiting for the next focus sample.
	p.focusSink.FocusChanged(true)
}

// tickConnected performs one read/focus-check cycle.
func (p *Poller) tickConnected() {
	rate, err := p.sim.SimRate()
	if err != nil {
		p.handleDisconnect(err)
	} else {
		p.listener.RateUpdated(rate, FormatRate(rate))
	}

	p.checkFocus()
	p.sleep(timeouts.RatePollInterval)
}

// handleDisconnect tears down the connection and surfaces the unknown
// placeholder. The next loop iteration starts reconnecting.
func (p *Poller) handleDisconnect(err error) {
	p.log.Warn("Disconnected from simulator", slog.Any("error", err))
	p.sim.Close()
	p.connected = false
	p.listener.ConnectionChanged(false)
}

// checkFocus samples the foreground window and reports the classification.
func (p *Poller) checkFocus() {
	title := p.prober.ForegroundWindowTitle()
	p.focusSink.FocusChanged(focus.Classify(title, p.overlayVisible()))
}

// interruptibleSleep sleeps for d but wakes early on Stop.
func (p *Poller) interruptibleSleep(d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case <-t.C:
	case <-p.stop:
	}
}
