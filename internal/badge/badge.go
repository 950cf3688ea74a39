package badge

import "fmt"

// WindowRef is the opaque platform identifier of a top-level window.
// The engine only ever uses it as a map key and hands it back to the
// platform layer; it is never dereferenced here. On Windows it carries
// the HWND value.
type WindowRef uintptr

func (r WindowRef) String() string {
	return fmt.Sprintf("0x%x", uintptr(r))
}

// WindowInfo is a read-only snapshot of one visible window, produced
// fresh by the enumerator on every pass and discarded afterwards.
type WindowInfo struct {
	Ref         WindowRef `json:"ref"`
	Title       string    `json:"title"`
	ProcessName string    `json:"process"`
	WindowClass string    `json:"class"`
}
