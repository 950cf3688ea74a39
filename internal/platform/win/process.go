//go:build windows

package win

import (
	"path/filepath"
	"strings"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mj1618/taskbadge/internal/platform"
)

// processNameOf resolves the executable base name (extension stripped)
// of the process owning hwnd. Falls back to the sentinel name when the
// process cannot be opened, e.g. it exited or belongs to another user.
func processNameOf(hwnd uintptr) string {
	var pid uint32
	procGetWindowThreadProcessId.Call(hwnd, uintptr(unsafe.Pointer(&pid)))
	if pid == 0 {
		return platform.UnknownProcessName
	}

	// PROCESS_QUERY_INFORMATION | PROCESS_VM_READ
	hProcess, _, _ := procOpenProcess.Call(0x0400|0x0010, 0, uintptr(pid))
	if hProcess == 0 {
		return platform.UnknownProcessName
	}
	defer procCloseHandle.Call(hProcess)

	var buffer [windows.MAX_PATH]uint16
	ret, _, _ := procGetModuleFileNameExW.Call(hProcess, 0, uintptr(unsafe.Pointer(&buffer[0])), windows.MAX_PATH)
	if ret == 0 {
		return platform.UnknownProcessName
	}

	exePath := windows.UTF16ToString(buffer[:])
	if exePath == "" {
		return platform.UnknownProcessName
	}
	filename := filepath.Base(exePath)
	return strings.TrimSuffix(filename, filepath.Ext(filename))
}
