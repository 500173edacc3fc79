//go:build windows

package overlay

import (
	"errors"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"github.com/lxn/win"

	"github.com/fsimtools/simratemon/internal/config"
	"github.com/fsimtools/simratemon/internal/focus"
	"github.com/fsimtools/simratemon/internal/logger"
	"github.com/fsimtools/simratemon/internal/monitor"
	"github.com/fsimtools/simratemon/internal/winapi"
)

const (
	overlayClassName = "SimRateOverlayClass"
	overlayFontFace  = "Segoe UI"

	// ~95% opaque
	overlayAlpha = 242

	// wmAppInvoke wakes the pump thread to drain the invoke queue.
	wmAppInvoke = win.WM_APP + 1
)

// GitHub-dark palette, COLORREF byte order (0x00BBGGRR).
var (
	colorBackground = rgb(0x0D, 0x11, 0x17)
	colorBorder     = rgb(0x30, 0x36, 0x3D)
	colorNormal     = rgb(0xE6, 0xED, 0xF3)
	colorSlow       = rgb(0x79, 0xC0, 0xFF)
	colorFast       = rgb(0xFF, 0xA6, 0x57)
	colorButton     = rgb(0x58, 0xA6, 0xFF)
	colorButtonFill = rgb(0x21, 0x26, 0x2D)
)

func rgb(r, g, b byte) win.COLORREF {
	return win.COLORREF(uint32(r) | uint32(g)<<8 | uint32(b)<<16)
}

// WindowOptions configures the overlay window.
type WindowOptions struct {
	Log logger.LoggerInterface

	// Position is the initial top-left corner in screen coordinates.
	Position config.Position

	// Size is the initial size preset name.
	Size string

	// OnMoved is called from the pump thread after the user drags the
	// overlay to a new position.
	OnMoved func(x, y int)

	// OnAdjust is called from the pump thread when a rate button is
	// clicked; delta is -1 for slower, +1 for faster.
	OnAdjust func(delta int)
}

// Window is the always-on-top rate overlay. All Win32 calls happen on a
// single pump goroutine; the exported methods are safe to call from any
// goroutine and marshal onto it.
type Window struct {
	mu sync.Mutex

	log      logger.LoggerInterface
	onMoved  func(x, y int)
	onAdjust func(delta int)

	hwnd    win.HWND
	font    win.HFONT
	dims    Dimensions
	pos     config.Position
	visible bool

	text  string
	speed monitor.Speed

	invokes chan func()
	ready   chan struct{}
	done    chan struct{}
}

// NewWindow prepares an overlay window. Run must be called on its own
// goroutine before the window exists on screen.
func NewWindow(opts WindowOptions) *Window {
	return &Window{
		log:      opts.Log,
		onMoved:  opts.OnMoved,
		onAdjust: opts.OnAdjust,
		dims:     DimensionsFor(opts.Size),
		pos:      opts.Position,
		text:     monitor.RateUnknownText,
		speed:    monitor.SpeedNormal,
		invokes:  make(chan func(), 16),
		ready:    make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Ready is closed once the native window exists.
func (w *Window) Ready() <-chan struct{} {
	return w.ready
}

// Done is closed when the message pump exits.
func (w *Window) Done() <-chan struct{} {
	return w.done
}

// Run creates the native window and pumps messages until the window is
// destroyed. It must run on a dedicated goroutine; the OS thread is locked
// for the lifetime of the pump.
func (w *Window) Run() error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(w.done)

	hInst := win.GetModuleHandle(nil)

	className, err := syscall.UTF16PtrFromString(overlayClassName)
	if err != nil {
		return err
	}

	wc := win.WNDCLASSEX{
		CbSize:        uint32(unsafe.Sizeof(win.WNDCLASSEX{})),
		LpfnWndProc:   syscall.NewCallback(w.wndProc),
		HInstance:     hInst,
		LpszClassName: className,
	}
	win.RegisterClassEx(&wc)

	// The title must classify as active focus; see focus.Classify
	title, err := syscall.UTF16PtrFromString(focus.OverlayTitle)
	if err != nil {
		return err
	}

	w.mu.Lock()
	dims := w.dims
	pos := w.pos
	w.mu.Unlock()

	hwnd := win.CreateWindowEx(
		win.WS_EX_TOPMOST|win.WS_EX_LAYERED|win.WS_EX_TOOLWINDOW,
		className, title,
		win.WS_POPUP,
		int32(pos.X), int32(pos.Y),
		dims.WindowWidth(), dims.Height,
		0, 0, hInst, nil,
	)
	if hwnd == 0 {
		return errors.New("failed to create overlay window")
	}

	w.mu.Lock()
	w.hwnd = hwnd
	w.font = winapi.CreateFont(dims.FontSize, overlayFontFace)
	w.mu.Unlock()

	winapi.SetWindowAlpha(uintptr(hwnd), overlayAlpha)
	close(w.ready)

	w.log.Debug("Overlay window created", "x", pos.X, "y", pos.Y)

	var msg win.MSG
	for win.GetMessage(&msg, 0, 0, 0) > 0 {
		win.TranslateMessage(&msg)
		win.DispatchMessage(&msg)
	}

	w.mu.Lock()
	if w.font != 0 {
		win.DeleteObject(win.HGDIOBJ(w.font))
		w.font = 0
	}
	w.hwnd = 0
	w.mu.Unlock()

	return nil
}

// Close destroys the window and ends the pump.
func (w *Window) Close() {
	w.post(func() {
		win.DestroyWindow(w.hwnd)
	})
}

// Show makes the overlay visible without stealing focus from the simulator.
func (w *Window) Show() {
	w.mu.Lock()
	w.visible = true
	w.mu.Unlock()

	w.post(func() {
		win.ShowWindow(w.hwnd, win.SW_SHOWNOACTIVATE)
		winapi.SetTopmost(uintptr(w.hwnd))
	})
}

// Hide removes the overlay from screen, saving its position first so a drag
// that ended just before the hide is not lost.
func (w *Window) Hide() {
	w.mu.Lock()
	w.visible = false
	w.mu.Unlock()

	w.post(func() {
		w.savePosition()
		win.ShowWindow(w.hwnd, win.SW_HIDE)
	})
}

// Visible reports the intended visibility, which may briefly lead the native
// state while an invoke is in flight.
func (w *Window) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.visible
}

// SetSize applies a size preset, recreating the font and repainting.
func (w *Window) SetSize(name string) {
	dims := DimensionsFor(name)

	w.mu.Lock()
	w.dims = dims
	w.mu.Unlock()

	w.post(func() {
		w.mu.Lock()
		if w.font != 0 {
			win.DeleteObject(win.HGDIOBJ(w.font))
		}
		w.font = winapi.CreateFont(dims.FontSize, overlayFontFace)
		w.mu.Unlock()

		win.SetWindowPos(w.hwnd, 0, 0, 0, dims.WindowWidth(), dims.Height,
			win.SWP_NOMOVE|win.SWP_NOZORDER|win.SWP_NOACTIVATE)
		win.InvalidateRect(w.hwnd, nil, true)
	})
}

// RateUpdated repaints the overlay with a freshly read rate.
func (w *Window) RateUpdated(rate float64, text string) {
	w.mu.Lock()
	w.text = text
	w.speed = monitor.ClassifySpeed(rate)
	w.mu.Unlock()

	w.post(func() {
		win.InvalidateRect(w.hwnd, nil, true)
	})
}

// ConnectionChanged swaps in the unknown-rate placeholder while disconnected.
func (w *Window) ConnectionChanged(connected bool) {
	if connected {
		return
	}

	w.mu.Lock()
	w.text = monitor.RateUnknownText
	w.speed = monitor.SpeedNormal
	w.mu.Unlock()

	w.post(func() {
		win.InvalidateRect(w.hwnd, nil, true)
	})
}

// post queues fn for the pump thread. Dropped silently before the window
// exists or after it is destroyed.
func (w *Window) post(fn func()) {
	w.mu.Lock()
	hwnd := w.hwnd
	w.mu.Unlock()

	if hwnd == 0 {
		return
	}

	select {
	case w.invokes <- fn:
		win.PostMessage(hwnd, wmAppInvoke, 0, 0)
	default:
		w.log.Warn("Overlay invoke queue full, dropping call")
	}
}

func (w *Window) wndProc(hwnd win.HWND, msg uint32, wParam, lParam uintptr) uintptr {
	switch msg {
	case wmAppInvoke:
		for {
			select {
			case fn := <-w.invokes:
				fn()
			default:
				return 0
			}
		}

	case win.WM_PAINT:
		w.paint(hwnd)
		return 0

	case win.WM_LBUTTONDOWN:
		x := int32(int16(win.LOWORD(uint32(lParam))))
		if delta, ok := w.hitButton(x); ok {
			if w.onAdjust != nil {
				w.onAdjust(delta)
			}
			return 0
		}

		winapi.BeginWindowDrag(uintptr(hwnd))
		return 0

	case win.WM_EXITSIZEMOVE:
		w.savePosition()
		return 0

	case win.WM_DESTROY:
		win.PostQuitMessage(0)
		return 0
	}

	return win.DefWindowProc(hwnd, msg, wParam, lParam)
}

// hitButton maps a client x coordinate to a rate-adjust delta.
func (w *Window) hitButton(x int32) (int, bool) {
	w.mu.Lock()
	dims := w.dims
	w.mu.Unlock()

	if !dims.Buttons {
		return 0, false
	}

	half := buttonExtraWidth / 2

	switch {
	case x < half:
		return -1, true
	case x >= dims.WindowWidth()-half:
		return 1, true
	}

	return 0, false
}

func (w *Window) savePosition() {
	x, y, ok := winapi.WindowPosition(uintptr(w.hwnd))
	if !ok {
		return
	}

	w.mu.Lock()
	moved := w.pos.X != x || w.pos.Y != y
	w.pos = config.Position{X: x, Y: y}
	w.mu.Unlock()

	if moved && w.onMoved != nil {
		w.onMoved(x, y)
	}
}

func (w *Window) paint(hwnd win.HWND) {
	var ps win.PAINTSTRUCT

	hdc := win.BeginPaint(hwnd, &ps)
	defer win.EndPaint(hwnd, &ps)

	var rc win.RECT
	win.GetClientRect(hwnd, &rc)

	w.mu.Lock()
	dims := w.dims
	text := w.text
	speed := w.speed
	font := w.font
	w.mu.Unlock()

	// 1px border: fill everything with the border colour, then the inside
	// with the background
	fillRect(hdc, rc, colorBorder)
	inner := win.RECT{Left: rc.Left + 1, Top: rc.Top + 1, Right: rc.Right - 1, Bottom: rc.Bottom - 1}
	fillRect(hdc, inner, colorBackground)

	old := win.SelectObject(hdc, win.HGDIOBJ(font))
	defer win.SelectObject(hdc, old)

	win.SetBkMode(hdc, win.TRANSPARENT)

	textLeft, textRight := rc.Left, rc.Right
	if dims.Buttons {
		half := int32(buttonExtraWidth / 2)
		textLeft += half
		textRight -= half

		w.paintButton(hdc, win.RECT{Left: inner.Left, Top: inner.Top, Right: rc.Left + half, Bottom: inner.Bottom}, "<")
		w.paintButton(hdc, win.RECT{Left: rc.Right - half, Top: inner.Top, Right: inner.Right, Bottom: inner.Bottom}, ">")
	}

	switch speed {
	case monitor.SpeedSlow:
		win.SetTextColor(hdc, colorSlow)
	case monitor.SpeedFast:
		win.SetTextColor(hdc, colorFast)
	default:
		win.SetTextColor(hdc, colorNormal)
	}

	winapi.DrawText(uintptr(hdc), text, textLeft, rc.Top, textRight, rc.Bottom,
		winapi.DT_CENTER|winapi.DT_VCENTER|winapi.DT_SINGLELINE)
}

func (w *Window) paintButton(hdc win.HDC, rc win.RECT, label string) {
	fillRect(hdc, rc, colorButtonFill)
	win.SetTextColor(hdc, colorButton)
	winapi.DrawText(uintptr(hdc), label, rc.Left, rc.Top, rc.Right, rc.Bottom,
		winapi.DT_CENTER|winapi.DT_VCENTER|winapi.DT_SINGLELINE)
}

func fillRect(hdc win.HDC, rc win.RECT, color win.COLORREF) {
	brush := win.CreateSolidBrush(color)
	defer win.DeleteObject(win.HGDIOBJ(brush))

	winapi.FillRect(uintptr(hdc), rc.Left, rc.Top, rc.Right, rc.Bottom, uintptr(brush))
}
