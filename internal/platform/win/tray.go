//go:build windows

package win

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"time"
	"unsafe"

	"github.com/mj1618/taskbadge/internal/platform"
)

const (
	wmDestroy   = 0x0002
	wmTimer     = 0x0113
	wmLButtonUp = 0x0202
	wmRButtonUp = 0x0205
	wmApp       = 0x8000

	trayCallbackMsg = wmApp + 1
	trayTimerID     = 1
	trayIconUID     = 1

	nimAdd    = 0
	nimDelete = 2

	nifMessage = 0x1
	nifIcon    = 0x2
	nifTip     = 0x4

	mfChecked   = 0x8
	mfSeparator = 0x800

	trayMenuRefresh = 1
	trayMenuPause   = 2
	trayMenuClear   = 3
	trayMenuQuit    = 4

	idiApplication = 32512
)

type wndClassEx struct {
	cbSize        uint32
	style         uint32
	lpfnWndProc   uintptr
	cbClsExtra    int32
	cbWndExtra    int32
	hInstance     uintptr
	hIcon         uintptr
	hCursor       uintptr
	hbrBackground uintptr
	lpszMenuName  *uint16
	lpszClassName *uint16
	hIconSm       uintptr
}

type notifyIconData struct {
	cbSize           uint32
	hWnd             uintptr
	uID              uint32
	uFlags           uint32
	uCallbackMessage uint32
	hIcon            uintptr
	szTip            [128]uint16
	dwState          uint32
	dwStateMask      uint32
	szInfo           [256]uint16
	uVersion         uint32
	szInfoTitle      [64]uint16
	dwInfoFlags      uint32
}

type point struct {
	x, y int32
}

type winMsg struct {
	hwnd    uintptr
	message uint32
	wParam  uintptr
	lParam  uintptr
	time    uint32
	pt      point
}

// Tray runs the notification-area driver: a hidden window whose timer
// fires badge passes and whose tray icon carries the context menu.
type Tray struct{}

type trayState struct {
	opts   platform.TrayOptions
	paused bool
}

// activeTray is how the window procedure reaches its state; the window
// procedure callback is created exactly once per process.
var (
	trayMu     sync.Mutex
	activeTray *trayState
)

var trayWndProc = syscall.NewCallback(func(hwnd, msg, wparam, lparam uintptr) uintptr {
	t := activeTray
	if t == nil {
		ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wparam, lparam)
		return ret
	}
	switch msg {
	case wmTimer:
		if wparam == trayTimerID && !t.paused && t.opts.OnTick != nil {
			t.opts.OnTick()
		}
		return 0
	case trayCallbackMsg:
		switch lparam & 0xffff {
		case wmRButtonUp, wmLButtonUp:
			t.showMenu(hwnd)
		}
		return 0
	case wmDestroy:
		procKillTimer.Call(hwnd, trayTimerID)
		procPostQuitMessage.Call(0)
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, msg, wparam, lparam)
	return ret
})

// Run blocks inside the message loop until the user quits from the menu.
// The loop owns its OS thread; every callback runs on it, so passes
// never overlap.
func (Tray) Run(opts platform.TrayOptions) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	trayMu.Lock()
	if activeTray != nil {
		trayMu.Unlock()
		return errors.New("tray is already running")
	}
	st := &trayState{opts: opts}
	activeTray = st
	trayMu.Unlock()
	defer func() {
		trayMu.Lock()
		activeTray = nil
		trayMu.Unlock()
	}()

	hwnd, err := createTrayWindow()
	if err != nil {
		return err
	}
	defer procDestroyWindow.Call(hwnd)

	nid, err := newNotifyIconData(hwnd, opts.Tooltip)
	if err != nil {
		return err
	}
	if ret, _, callErr := procShellNotifyIconW.Call(nimAdd, uintptr(unsafe.Pointer(nid))); ret == 0 {
		return fmt.Errorf("failed to add tray icon: %w", callErr)
	}
	defer procShellNotifyIconW.Call(nimDelete, uintptr(unsafe.Pointer(nid)))

	interval := opts.Interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	procSetTimer.Call(hwnd, trayTimerID, uintptr(interval.Milliseconds()), 0)

	// First pass right away; the timer covers the rest.
	if opts.OnTick != nil {
		opts.OnTick()
	}

	var m winMsg
	for {
		ret, _, _ := procGetMessageW.Call(uintptr(unsafe.Pointer(&m)), 0, 0, 0)
		switch int32(ret) {
		case -1:
			return errors.New("tray message loop failed")
		case 0:
			return nil
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}

func (t *trayState) showMenu(hwnd uintptr) {
	menu, _, _ := procCreatePopupMenu.Call()
	if menu == 0 {
		return
	}
	defer procDestroyMenu.Call(menu)

	appendMenuItem(menu, trayMenuRefresh, "Refresh now", false)
	appendMenuItem(menu, trayMenuPause, "Pause updates", t.paused)
	appendMenuItem(menu, trayMenuClear, "Remove all badges", false)
	procAppendMenuW.Call(menu, mfSeparator, 0, 0)
	appendMenuItem(menu, trayMenuQuit, "Quit", false)

	var pt point
	procGetCursorPos.Call(uintptr(unsafe.Pointer(&pt)))
	// The menu will not dismiss on an outside click unless our window is
	// foreground first.
	procSetForegroundWindow.Call(hwnd)
	// TPM_RETURNCMD | TPM_RIGHTBUTTON
	cmd, _, _ := procTrackPopupMenu.Call(menu, 0x0100|0x0002, uintptr(int(pt.x)), uintptr(int(pt.y)), 0, hwnd, 0)
	switch cmd {
	case trayMenuRefresh:
		if t.opts.OnTick != nil {
			t.opts.OnTick()
		}
	case trayMenuPause:
		t.paused = !t.paused
	case trayMenuClear:
		if t.opts.OnClear != nil {
			t.opts.OnClear()
		}
	case trayMenuQuit:
		procDestroyWindow.Call(hwnd)
	}
}

func appendMenuItem(menu, id uintptr, label string, checked bool) {
	flags := uintptr(0) // MF_STRING
	if checked {
		flags |= mfChecked
	}
	p, err := syscall.UTF16PtrFromString(label)
	if err != nil {
		return
	}
	procAppendMenuW.Call(menu, flags, id, uintptr(unsafe.Pointer(p)))
}

func createTrayWindow() (uintptr, error) {
	hInstance, _, _ := procGetModuleHandleW.Call(0)
	className, err := syscall.UTF16PtrFromString("TaskbadgeTray")
	if err != nil {
		return 0, err
	}
	wc := wndClassEx{
		lpfnWndProc:   trayWndProc,
		hInstance:     hInstance,
		lpszClassName: className,
	}
	wc.cbSize = uint32(unsafe.Sizeof(wc))
	if atom, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc))); atom == 0 {
		return 0, fmt.Errorf("failed to register tray window class: %w", callErr)
	}
	// Hidden top-level window; it only exists to receive timer and tray
	// callback messages.
	hwnd, _, callErr := procCreateWindowExW.Call(0, uintptr(unsafe.Pointer(className)), 0, 0, 0, 0, 0, 0, 0, 0, hInstance, 0)
	if hwnd == 0 {
		return 0, fmt.Errorf("failed to create tray window: %w", callErr)
	}
	return hwnd, nil
}

func newNotifyIconData(hwnd uintptr, tip string) (*notifyIconData, error) {
	nid := &notifyIconData{
		hWnd:             hwnd,
		uID:              trayIconUID,
		uFlags:           nifMessage | nifIcon | nifTip,
		uCallbackMessage: trayCallbackMsg,
	}
	nid.cbSize = uint32(unsafe.Sizeof(*nid))
	// Stock application icon; the badge art belongs to the taskbar
	// windows, not to the tray.
	hicon, _, _ := procLoadIconW.Call(0, idiApplication)
	nid.hIcon = hicon
	tipUTF, err := syscall.UTF16FromString(tip)
	if err != nil {
		return nil, fmt.Errorf("bad tooltip: %w", err)
	}
	copy(nid.szTip[:len(nid.szTip)-1], tipUTF)
	return nid, nil
}
