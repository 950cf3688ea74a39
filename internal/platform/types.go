package platform

import "time"

// UnknownProcessName is the sentinel an Enumerator reports when the
// owning process of a window cannot be resolved, e.g. because it exited
// between enumeration and lookup.
const UnknownProcessName = "unknown"

// TrayOptions configures the tray driver loop. The callbacks run on the
// tray's own UI thread, one at a time; passes never overlap.
type TrayOptions struct {
	Tooltip string

	// Interval between automatic badge passes.
	Interval time.Duration

	// OnTick runs one badge pass. Fired by the timer and by the manual
	// refresh menu item.
	OnTick func()

	// OnClear removes every badge. Fired by the clear menu item.
	OnClear func()
}
