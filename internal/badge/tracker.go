package badge

import "github.com/zeebo/xxh3"

// Tracker remembers which windows already carry a badge so repeated
// passes stay cheap. Window handles get recycled by the OS, so each
// entry also stores a hash of the title it was badged under: a recycled
// ref or a workspace switch changes the title and invalidates the entry.
// Not safe for concurrent use; the engine runs single-threaded.
type Tracker struct {
	applied map[WindowRef]uint64
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{applied: make(map[WindowRef]uint64)}
}

func titleHash(title string) uint64 {
	return xxh3.HashString(title)
}

// MarkApplied records a successful badge apply for the window under its
// current title.
func (t *Tracker) MarkApplied(ref WindowRef, title string) {
	t.applied[ref] = titleHash(title)
}

// IsApplied reports whether the window was already badged under the same
// title.
func (t *Tracker) IsApplied(ref WindowRef, title string) bool {
	h, ok := t.applied[ref]
	return ok && h == titleHash(title)
}

// Prune drops entries whose windows no longer appear in the latest
// enumeration snapshot, keeping the set bounded by open windows.
func (t *Tracker) Prune(windows []WindowInfo) {
	live := make(map[WindowRef]bool, len(windows))
	for _, w := range windows {
		live[w.Ref] = true
	}
	for ref := range t.applied {
		if !live[ref] {
			delete(t.applied, ref)
		}
	}
}

// Clear forgets everything. Drivers call this after a remove-all-badges
// action so tracker state matches the taskbar again.
func (t *Tracker) Clear() {
	t.applied = make(map[WindowRef]uint64)
}

// Len returns the number of tracked windows.
func (t *Tracker) Len() int {
	return len(t.applied)
}
