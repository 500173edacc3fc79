//go:build windows

package panel

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/jchv/go-webview2"
	"github.com/lxn/win"

	"github.com/fsimtools/simratemon/internal/logger"
)

//go:embed ui.html
var uiHTML string

const (
	panelWidth  = 340
	panelHeight = 440
)

// State is the settings snapshot rendered by the panel.
type State struct {
	OverlaySize      string `json:"overlaySize"`
	AutoHide         bool   `json:"autoHide"`
	StartWithWindows bool   `json:"startWithWindows"`
	Theme            string `json:"theme"`
}

// uiState is State plus the static theme table the page needs to render.
type uiState struct {
	State
	ThemeOrder []string         `json:"themeOrder"`
	Themes     map[string]Theme `json:"themes"`
}

// Options configures the control panel. All callbacks run on the webview's
// UI thread.
type Options struct {
	Log logger.LoggerInterface

	// StateFunc returns the current settings whenever the page (re)loads.
	StateFunc func() State

	// StartHidden keeps the panel window invisible after creation.
	StartHidden bool

	OnSizeChange func(name string)
	OnAutoHide   func(on bool)
	OnStartup    func(on bool) error
	OnTheme      func(name string)
	OnAdjust     func(delta int)
}

// Panel is the WebView2-hosted settings window. Closing it exits the
// application; Run returns when that happens.
type Panel struct {
	view webview2.WebView
	log  logger.LoggerInterface
	opts Options
}

// New creates the panel window. Must be called from the main goroutine; the
// WebView2 loader requires the process's original thread.
func New(opts Options) (*Panel, error) {
	view := webview2.NewWithOptions(webview2.WebViewOptions{
		Debug:     false,
		AutoFocus: true,
		WindowOptions: webview2.WindowOptions{
			Title:  "Sim Rate Monitor",
			Width:  panelWidth,
			Height: panelHeight,
		},
	})
	if view == nil {
		return nil, errors.New("failed to create WebView2 window, is the runtime installed?")
	}

	p := &Panel{
		view: view,
		log:  opts.Log,
		opts: opts,
	}

	hwnd := win.HWND(view.Window())

	// Fixed-size window
	style := win.GetWindowLongPtr(hwnd, win.GWL_STYLE)
	style &^= win.WS_THICKFRAME | win.WS_MAXIMIZEBOX
	win.SetWindowLongPtr(hwnd, win.GWL_STYLE, style)

	if err := p.bind(); err != nil {
		view.Destroy()
		return nil, err
	}

	view.Navigate("data:text/html," + url.PathEscape(uiHTML))

	if opts.StartHidden {
		win.ShowWindow(hwnd, win.SW_HIDE)
	}

	return p, nil
}

// Run pumps the panel's message loop until the window closes.
func (p *Panel) Run() {
	defer p.view.Destroy()
	p.view.Run()
}

// RateUpdated pushes a fresh rate reading into the page.
func (p *Panel) RateUpdated(rate float64, text string) {
	p.eval(fmt.Sprintf("updateRate(%s)", jsString(text)))
}

// ConnectionChanged swaps the readout to the placeholder while disconnected.
func (p *Panel) ConnectionChanged(connected bool) {
	p.eval(fmt.Sprintf("updateConnection(%t)", connected))
}

func (p *Panel) bind() error {
	bindings := map[string]interface{}{
		"panelReady": func() {
			p.pushState()
		},
		"setOverlaySize": func(name string) {
			if p.opts.OnSizeChange != nil {
				p.opts.OnSizeChange(name)
			}
		},
		"setAutoHide": func(on bool) {
			if p.opts.OnAutoHide != nil {
				p.opts.OnAutoHide(on)
			}
		},
		"setStartWithWindows": func(on bool) {
			if p.opts.OnStartup == nil {
				return
			}

			if err := p.opts.OnStartup(on); err != nil {
				p.log.Error("Failed to update startup shortcut", "error", err)
				// revert the checkbox
				p.pushState()
			}
		},
		"setTheme": func(name string) {
			if p.opts.OnTheme != nil {
				p.opts.OnTheme(name)
			}
		},
		"adjustRate": func(delta int) {
			if p.opts.OnAdjust != nil {
				p.opts.OnAdjust(delta)
			}
		},
	}

	for name, fn := range bindings {
		if err := p.view.Bind(name, fn); err != nil {
			return fmt.Errorf("failed to bind %s: %w", name, err)
		}
	}

	return nil
}

// pushState renders the current settings into the page.
func (p *Panel) pushState() {
	if p.opts.StateFunc == nil {
		return
	}

	state := uiState{
		State:      p.opts.StateFunc(),
		ThemeOrder: ThemeOrder,
		Themes:     Themes(),
	}

	encoded, err := json.Marshal(state)
	if err != nil {
		p.log.Error("Failed to encode panel state", "error", err)
		return
	}

	p.eval(fmt.Sprintf("applyState(%s)", encoded))
}

func (p *Panel) eval(js string) {
	p.view.Dispatch(func() {
		p.view.Eval(js)
	})
}

func jsString(s string) string {
	encoded, err := json.Marshal(s)
	if err != nil {
		return `""`
	}

	return string(encoded)
}
