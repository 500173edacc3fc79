//go:build windows

package winapi

import (
	"syscall"
	"unsafe"
)

// GetForegroundWindowTitle returns the title of the window that currently has
// input focus. Returns an empty string for borderless/untitled windows or when
// no window has focus.
func GetForegroundWindowTitle() string {
	hwnd, _, _ := procGetForegroundWindow.Call()
	if hwnd == 0 {
		return ""
	}

	return GetWindowText(hwnd)
}

// GetWindowText retrieves the text of a window
func GetWindowText(hwnd uintptr) string {
	length, _, _ := procGetWindowTextLengthW.Call(hwnd)
	if length == 0 {
		return ""
	}

	buf := make([]uint16, length+1)

	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buf[0])), uintptr(len(buf)))
	if ret == 0 {
		return ""
	}

	return syscall.UTF16ToString(buf)
}

// SetWindowAlpha makes a layered window translucent (0 transparent, 255 opaque).
func SetWindowAlpha(hwnd uintptr, alpha byte) bool {
	ret, _, _ := procSetLayeredWindowAttribs.Call(hwnd, 0, uintptr(alpha), LWA_ALPHA)
	return ret != 0
}

// SetTopmost pins a window above all non-topmost windows without activating it.
func SetTopmost(hwnd uintptr) bool {
	ret, _, _ := procSetWindowPos.Call(hwnd, HWND_TOPMOST, 0, 0, 0, 0,
		SWP_NOMOVE|SWP_NOSIZE|SWP_NOACTIVATE)
	return ret != 0
}

// BeginWindowDrag hands a left-button press over to the window manager as a
// title-bar drag, letting a borderless window be moved with the mouse.
func BeginWindowDrag(hwnd uintptr) {
	procReleaseCapture.Call()
	procSendMessageW.Call(hwnd, WM_NCLBUTTONDOWN, HTCAPTION, 0)
}

// WindowPosition returns the screen coordinates of a window's top-left corner.
func WindowPosition(hwnd uintptr) (x, y int, ok bool) {
	var rect struct{ Left, Top, Right, Bottom int32 }

	ret, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect)))
	if ret == 0 {
		return 0, 0, false
	}

	return int(rect.Left), int(rect.Top), true
}

// DrawText draws single-line centered text into a rect on a device context.
func DrawText(hdc uintptr, text string, left, top, right, bottom int32, format uint32) {
	utf16, err := syscall.UTF16FromString(text)
	if err != nil {
		return
	}

	rect := struct{ Left, Top, Right, Bottom int32 }{left, top, right, bottom}
	procDrawTextW.Call(
		hdc,
		uintptr(unsafe.Pointer(&utf16[0])),
		uintptr(len(utf16)-1), // exclude NUL
		uintptr(unsafe.Pointer(&rect)),
		uintptr(format),
	)
}

// FillRect fills a rect on a device context with the given brush.
func FillRect(hdc uintptr, left, top, right, bottom int32, brush uintptr) {
	rect := struct{ Left, Top, Right, Bottom int32 }{left, top, right, bottom}
	procFillRect.Call(hdc, uintptr(unsafe.Pointer(&rect)), brush)
}

// CreateFont creates a bold ClearType font of the given pixel height.
func CreateFont(height int32, face string) uintptr {
	facePtr, err := syscall.UTF16PtrFromString(face)
	if err != nil {
		return 0
	}

	hfont, _, _ := procCreateFontW.Call(
		uintptr(uint32(-height)), // negative height selects character height
		0, 0, 0,
		FW_BOLD,
		0, 0, 0,
		0, // DEFAULT_CHARSET
		0, 0,
		CLEARTYPE_QLTY,
		0,
		uintptr(unsafe.Pointer(facePtr)),
	)

	return hfont
}
