//go:build windows

package win

import (
	"fmt"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mj1618/taskbadge/internal/badge"
)

// Enumerator lists visible top-level windows via EnumWindows.
type Enumerator struct{}

// enumAcc collects results for the EnumWindows callback. The callback is
// created exactly once (NewCallback slots are a finite process resource),
// so it reaches its accumulator through this package variable; enumMu
// serializes whole enumerations.
var (
	enumMu  sync.Mutex
	enumAcc []badge.WindowInfo
)

var enumWindowsCallback = syscall.NewCallback(func(hwnd uintptr, _ uintptr) uintptr {
	if visible, _, _ := procIsWindowVisible.Call(hwnd); visible == 0 {
		return 1 // continue enumeration
	}
	enumAcc = append(enumAcc, badge.WindowInfo{
		Ref:         badge.WindowRef(hwnd),
		Title:       windowText(hwnd),
		ProcessName: processNameOf(hwnd),
		WindowClass: className(hwnd),
	})
	return 1
})

// VisibleWindows returns a fresh snapshot of all visible top-level
// windows in enumeration order.
func (Enumerator) VisibleWindows() ([]badge.WindowInfo, error) {
	enumMu.Lock()
	defer enumMu.Unlock()
	enumAcc = nil
	if ret, _, err := procEnumWindows.Call(enumWindowsCallback, 0); ret == 0 {
		return nil, fmt.Errorf("EnumWindows failed: %w", err)
	}
	out := enumAcc
	enumAcc = nil
	return out, nil
}

func windowText(hwnd uintptr) string {
	var buffer [512]uint16
	ret, _, _ := procGetWindowTextW.Call(hwnd, uintptr(unsafe.Pointer(&buffer[0])), uintptr(len(buffer)))
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buffer[:ret])
}

func className(hwnd uintptr) string {
	var buffer [256]uint16
	ret, _, _ := procGetClassNameW.Call(hwnd, uintptr(unsafe.Pointer(&buffer[0])), uintptr(len(buffer)))
	if ret == 0 {
		return ""
	}
	return windows.UTF16ToString(buffer[:ret])
}
