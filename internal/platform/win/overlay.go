//go:build windows

package win

import (
	"fmt"
	"runtime"
	"sync"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/mj1618/taskbadge/internal/badge"
)

var (
	clsidTaskbarList = windows.GUID{Data1: 0x56fdf344, Data2: 0xfd6d, Data3: 0x11d0, Data4: [8]byte{0x95, 0x8a, 0x00, 0x60, 0x97, 0xc9, 0xa0, 0x90}}
	iidTaskbarList3  = windows.GUID{Data1: 0xea1afb91, Data2: 0x9e28, Data3: 0x4b86, Data4: [8]byte{0x90, 0xe9, 0x9e, 0x9f, 0x8a, 0x5e, 0xef, 0xaf}}
)

// taskbarList3Vtbl mirrors the ITaskbarList3 method table, IUnknown and
// the inherited ITaskbarList/ITaskbarList2 methods included. Order must
// match the COM declaration exactly.
type taskbarList3Vtbl struct {
	QueryInterface        uintptr
	AddRef                uintptr
	Release               uintptr
	HrInit                uintptr
	AddTab                uintptr
	DeleteTab             uintptr
	ActivateTab           uintptr
	SetActiveAlt          uintptr
	MarkFullscreenWindow  uintptr
	SetProgressValue      uintptr
	SetProgressState      uintptr
	RegisterTab           uintptr
	UnregisterTab         uintptr
	SetTabOrder           uintptr
	SetTabActive          uintptr
	ThumbBarAddButtons    uintptr
	ThumbBarUpdateButtons uintptr
	ThumbBarSetImageList  uintptr
	SetOverlayIcon        uintptr
	SetThumbnailTooltip   uintptr
	SetThumbnailClip      uintptr
}

type taskbarList3 struct {
	vtbl *taskbarList3Vtbl
}

// Overlayer sets taskbar overlay icons through ITaskbarList3. The object
// is apartment-threaded, so a dedicated OS-locked goroutine creates it on
// first use, keeps it for the process lifetime, and executes every call
// against it; the taskbar holds its own copy of each icon, so handles are
// released right after every call.
type Overlayer struct {
	initOnce sync.Once
	initErr  error
	taskbar  *taskbarList3
	calls    chan func()
}

func (o *Overlayer) ensureInit() error {
	o.initOnce.Do(func() {
		o.calls = make(chan func())
		ready := make(chan error)
		go o.comLoop(ready)
		o.initErr = <-ready
	})
	return o.initErr
}

// comLoop initializes COM and the taskbar object, then executes queued
// calls until the process exits. The thread stays locked so the
// apartment and the object never outlive it.
func (o *Overlayer) comLoop(ready chan<- error) {
	runtime.LockOSThread()
	// COINIT_APARTMENTTHREADED; S_FALSE (1) means this thread was
	// already initialized, which is fine.
	hr, _, _ := procCoInitializeEx.Call(0, 0x2)
	if hr != 0 && hr != 1 {
		ready <- fmt.Errorf("CoInitializeEx failed: hresult 0x%08x", hr)
		return
	}
	var ptr *taskbarList3
	// CLSCTX_INPROC_SERVER
	hr, _, _ = procCoCreateInstance.Call(
		uintptr(unsafe.Pointer(&clsidTaskbarList)),
		0,
		0x1,
		uintptr(unsafe.Pointer(&iidTaskbarList3)),
		uintptr(unsafe.Pointer(&ptr)),
	)
	if hr != 0 {
		ready <- fmt.Errorf("failed to create TaskbarList: hresult 0x%08x", hr)
		return
	}
	if hr, _, _ := syscall.SyscallN(ptr.vtbl.HrInit, uintptr(unsafe.Pointer(ptr))); hr != 0 {
		ready <- fmt.Errorf("TaskbarList HrInit failed: hresult 0x%08x", hr)
		return
	}
	o.taskbar = ptr
	ready <- nil
	for fn := range o.calls {
		fn()
	}
}

// do runs fn on the COM thread and returns its error. Only reachable
// after ensureInit succeeds, so the loop is always draining.
func (o *Overlayer) do(fn func() error) error {
	done := make(chan error, 1)
	o.calls <- func() { done <- fn() }
	return <-done
}

// Apply loads the .ico file and sets it as the window's overlay badge.
func (o *Overlayer) Apply(ref badge.WindowRef, iconPath, label string) error {
	if err := o.ensureInit(); err != nil {
		return err
	}
	return o.do(func() error {
		hicon, err := loadIconFile(iconPath)
		if err != nil {
			return err
		}
		defer procDestroyIcon.Call(hicon)
		return o.setOverlay(uintptr(ref), hicon, label)
	})
}

// Clear removes any overlay badge from the window.
func (o *Overlayer) Clear(ref badge.WindowRef) error {
	if err := o.ensureInit(); err != nil {
		return err
	}
	return o.do(func() error {
		return o.setOverlay(uintptr(ref), 0, "")
	})
}

func (o *Overlayer) setOverlay(hwnd, hicon uintptr, label string) error {
	var desc *uint16
	if label != "" {
		d, err := syscall.UTF16PtrFromString(label)
		if err != nil {
			return fmt.Errorf("bad overlay label: %w", err)
		}
		desc = d
	}
	hr, _, _ := syscall.SyscallN(o.taskbar.vtbl.SetOverlayIcon,
		uintptr(unsafe.Pointer(o.taskbar)), hwnd, hicon, uintptr(unsafe.Pointer(desc)))
	if hr != 0 {
		return fmt.Errorf("SetOverlayIcon failed: hresult 0x%08x", hr)
	}
	return nil
}

// loadIconFile loads a .ico from disk at the small-icon system metric,
// the size the taskbar composites overlays at.
func loadIconFile(path string) (uintptr, error) {
	p, err := syscall.UTF16PtrFromString(path)
	if err != nil {
		return 0, fmt.Errorf("bad icon path: %w", err)
	}
	cx, _, _ := procGetSystemMetrics.Call(49) // SM_CXSMICON
	cy, _, _ := procGetSystemMetrics.Call(50) // SM_CYSMICON
	// IMAGE_ICON, LR_LOADFROMFILE
	hicon, _, callErr := procLoadImageW.Call(0, uintptr(unsafe.Pointer(p)), 1, cx, cy, 0x10)
	if hicon == 0 {
		return 0, fmt.Errorf("failed to load icon %s: %w", path, callErr)
	}
	return hicon, nil
}
