//go:build windows

// Package app wires the monitor together: config, SimConnect client, polling
// loop, overlay window, visibility controller and control panel.
package app

import (
	"sync"

	"github.com/fsimtools/simratemon/internal/config"
	"github.com/fsimtools/simratemon/internal/focus"
	"github.com/fsimtools/simratemon/internal/interfaces"
	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/monitor"
	"github.com/fsimtools/simratemon/internal/overlay"
	"github.com/fsimtools/simratemon/internal/panel"
	"github.com/fsimtools/simratemon/internal/simconnect"
	"github.com/fsimtools/simratemon/internal/startup"
)

// Options configures an application run.
type Options struct {
	Log logger.LoggerInterface

	// Silent starts with the control panel hidden (the --startup flag).
	Silent bool
}

// App owns the long-lived components and the persisted settings.
type App struct {
	log logger.LoggerInterface

	cfgMu sync.Mutex
	cfg   *config.Config

	sim        *simconnect.Client
	window     *overlay.Window
	controller *overlay.Controller
	poller     *monitor.Poller
	panel      *panel.Panel
}

// fanout forwards polling-loop updates to every display at once.
type fanout struct {
	listeners []interfaces.RateListener
	conn      []func(connected bool)
}

func (f *fanout) RateUpdated(rate float64, text string) {
	for _, l := range f.listeners {
		l.RateUpdated(rate, text)
	}
}

func (f *fanout) ConnectionChanged(connected bool) {
	for _, l := range f.listeners {
		l.ConnectionChanged(connected)
	}

	for _, fn := range f.conn {
		fn(connected)
	}
}

// Run builds the application and blocks until the control panel closes. Must
// be called from the main goroutine; the WebView2 loop runs on it.
func Run(opts Options) error {
	cfg, err := config.Load()
	if err != nil {
		opts.Log.Warn("Config unreadable, using defaults", "error", err)
	}

	a := &App{
		log: opts.Log,
		cfg: cfg,
		sim: simconnect.NewClient(opts.Log),
	}

	a.window = overlay.NewWindow(overlay.WindowOptions{
		Log:      opts.Log,
		Position: cfg.OverlayPosition,
		Size:     cfg.OverlaySize,
		OnMoved:  a.overlayMoved,
		OnAdjust: a.adjustRate,
	})

	a.controller = overlay.NewController(overlay.ControllerOptions{
		View:     a.window,
		Log:      opts.Log,
		AutoHide: cfg.AutoHide,
	})

	if cfg.OverlaySize == overlay.SizeHidden {
		a.controller.SetRemoved(true)
	}

	a.panel, err = panel.New(panel.Options{
		Log:          opts.Log,
		StateFunc:    a.snapshot,
		StartHidden:  opts.Silent,
		OnSizeChange: a.setOverlaySize,
		OnAutoHide:   a.setAutoHide,
		OnStartup:    a.setStartWithWindows,
		OnTheme:      a.setTheme,
		OnAdjust:     a.adjustRate,
	})
	if err != nil {
		return err
	}

	a.poller = monitor.NewPoller(monitor.PollerOptions{
		Sim:    a.sim,
		Prober: focus.NewProber(),
		Listener: &fanout{
			listeners: []interfaces.RateListener{a.window, a.panel},
			conn:      []func(bool){a.controller.ConnectionChanged},
		},
		Focus:          a.controller,
		Log:            opts.Log,
		OverlayVisible: a.window.Visible,
	})

	windowErr := make(chan error, 1)
	go func() { windowErr <- a.window.Run() }()

	if err := waitReady(a.window.Ready(), windowErr); err != nil {
		return err
	}

	go a.poller.Run()

	a.log.Info("Application started", "silent", opts.Silent)

	// Blocks until the panel window is closed, which exits the application
	a.panel.Run()

	a.shutdown(windowErr)

	return nil
}

func (a *App) shutdown(windowErr <-chan error) {
	a.log.Info("Shutting down")

	a.poller.Stop()
	<-a.poller.Done()

	a.window.Close()
	<-a.window.Done()

	if err := <-windowErr; err != nil {
		a.log.Error("Overlay window failed", "error", err)
	}

	a.saveConfig()
}

// snapshot returns the current settings for the panel UI. StartWithWindows
// reports whether the shortcut actually exists; the user may have deleted the
// .lnk behind our back.
func (a *App) snapshot() panel.State {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()

	return panel.State{
		OverlaySize:      a.cfg.OverlaySize,
		AutoHide:         a.cfg.AutoHide,
		StartWithWindows: startup.Enabled(),
		Theme:            a.cfg.Theme,
	}
}

// overlayMoved persists the overlay position after a drag.
func (a *App) overlayMoved(x, y int) {
	a.cfgMu.Lock()
	a.cfg.OverlayPosition = config.Position{X: x, Y: y}
	a.cfgMu.Unlock()

	a.log.Debug("Overlay moved", "x", x, "y", y)
	a.saveConfig()
}

// adjustRate transmits a rate-change client event.
func (a *App) adjustRate(delta int) {
	event := simconnect.EventSimRateIncr
	if delta < 0 {
		event = simconnect.EventSimRateDecr
	}

	if err := a.sim.SendEvent(event); err != nil {
		a.log.Warn("Failed to send rate event", "event", event, "error", err)
	}
}

func (a *App) setOverlaySize(name string) {
	if !config.ValidSize(name) {
		a.log.Warn("Ignoring unknown overlay size", "size", name)
		return
	}

	a.cfgMu.Lock()
	a.cfg.OverlaySize = name
	a.cfgMu.Unlock()

	if name == overlay.SizeHidden {
		a.controller.SetRemoved(true)
		a.window.Hide()
	} else {
		a.window.SetSize(name)
		a.controller.SetRemoved(false)
	}

	a.saveConfig()
}

func (a *App) setAutoHide(on bool) {
	a.cfgMu.Lock()
	a.cfg.AutoHide = on
	a.cfgMu.Unlock()

	a.controller.SetAutoHide(on)
	a.saveConfig()
}

// setStartWithWindows creates or removes the Startup-folder shortcut. The
// setting is only persisted when the shortcut change succeeded.
func (a *App) setStartWithWindows(on bool) error {
	var err error
	if on {
		err = startup.Enable()
	} else {
		err = startup.Disable()
	}

	if err != nil {
		return err
	}

	a.cfgMu.Lock()
	a.cfg.StartWithWindows = on
	a.cfgMu.Unlock()

	a.saveConfig()

	return nil
}

func (a *App) setTheme(name string) {
	if !panel.ValidTheme(name) {
		a.log.Warn("Ignoring unknown theme", "theme", name)
		return
	}

	a.cfgMu.Lock()
	a.cfg.Theme = name
	a.cfgMu.Unlock()

	a.saveConfig()
}

func (a *App) saveConfig() {
	a.cfgMu.Lock()
	defer a.cfgMu.Unlock()

	if err := a.cfg.Save(); err != nil {
		a.log.Error("Failed to save config", "error", err)
	}
}
