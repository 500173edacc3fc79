//go:build windows

package winapi

import "syscall"

var (
	user32                      = syscall.NewLazyDLL("user32.dll")
	procGetForegroundWindow     = user32.NewProc("GetForegroundWindow")
	procGetWindowTextW          = user32.NewProc("GetWindowTextW")
	procGetWindowTextLengthW    = user32.NewProc("GetWindowTextLengthW")
	procSetLayeredWindowAttribs = user32.NewProc("SetLayeredWindowAttributes")
	procReleaseCapture          = user32.NewProc("ReleaseCapture")
	procSendMessageW            = user32.NewProc("SendMessageW")
	procDrawTextW               = user32.NewProc("DrawTextW")
	procGetWindowRect           = user32.NewProc("GetWindowRect")
	procSetWindowPos            = user32.NewProc("SetWindowPos")
	procFillRect                = user32.NewProc("FillRect")

	gdi32           = syscall.NewLazyDLL("gdi32.dll")
	procCreateFontW = gdi32.NewProc("CreateFontW")
)

const (
	// SetLayeredWindowAttributes flags
	LWA_ALPHA = 0x0002

	// Non-client hit test / drag
	WM_NCLBUTTONDOWN = 0x00A1
	HTCAPTION        = 2

	// DrawText format flags
	DT_CENTER     = 0x0001
	DT_VCENTER    = 0x0004
	DT_SINGLELINE = 0x0020
	DT_NOCLIP     = 0x0100

	// CreateFont weights and quality
	FW_BOLD        = 700
	CLEARTYPE_QLTY = 5

	// SetWindowPos flags
	SWP_NOSIZE     = 0x0001
	SWP_NOMOVE     = 0x0002
	SWP_NOACTIVATE = 0x0010
	SWP_SHOWWINDOW = 0x0040
	HWND_TOPMOST   = ^uintptr(0) // (HWND)-1
)
