package platform

import "github.com/mj1618/taskbadge/internal/badge"

// Enumerator reads the visible top-level windows from the OS.
type Enumerator interface {
	// VisibleWindows returns a fresh snapshot of every visible top-level
	// window. Windows whose owning process cannot be resolved carry the
	// UnknownProcessName sentinel.
	VisibleWindows() ([]badge.WindowInfo, error)
}

// Overlayer drives the native taskbar overlay-icon API.
type Overlayer interface {
	// Apply loads the icon file and sets it as the window's overlay
	// badge, with label as its accessibility description.
	Apply(ref badge.WindowRef, iconPath, label string) error

	// Clear removes any overlay badge from the window.
	Clear(ref badge.WindowRef) error
}

// Autostart manages launching the tray driver at login.
type Autostart interface {
	Enable() error
	Disable() error
	Enabled() (bool, error)
}

// Tray runs the notification-area driver: a periodic timer firing badge
// passes plus a small context menu. Run blocks until the user quits.
type Tray interface {
	Run(opts TrayOptions) error
}
