package badge

import "strings"

// Action classifies the outcome for one window within a pass.
type Action string

const (
	ActionApply          Action = "apply"
	ActionAlreadyApplied Action = "already-applied"
	ActionSkip           Action = "skip"
	ActionClear          Action = "clear"
)

// Decision records what a pass did with one window and why.
type Decision struct {
	Ref     WindowRef `json:"ref"`
	Title   string    `json:"title"`
	Process string    `json:"process"`
	Action  Action    `json:"action"`
	Stem    string    `json:"stem,omitempty"`
	Path    string    `json:"path,omitempty"`
	Reason  string    `json:"reason,omitempty"`
}

// Report sums up one pass over a window snapshot.
type Report struct {
	Decisions      []Decision
	Applied        int
	AlreadyApplied int
	Skipped        int
	Cleared        int
	Failed         int
}

// Applier puts badges on native windows and takes them off. Failures are
// per-window and expected (bad icon contents, window gone); they never
// abort a pass.
type Applier interface {
	Apply(ref WindowRef, iconPath, label string) error
	Clear(ref WindowRef) error
}

// Runner executes resolution passes. One Runner backs one driver loop;
// it is synchronous and not safe for concurrent use.
type Runner struct {
	Resolver Resolver
	Tracker  *Tracker
	Applier  Applier
	Ignore   IgnoreList
	// Tracking false re-applies on every pass regardless of prior state.
	Tracking bool
}

// Run sweeps one window snapshot: filter, resolve, apply. Windows are
// handled in enumeration order and no per-window failure stops the rest.
func (r *Runner) Run(windows []WindowInfo) Report {
	if r.Tracking && r.Tracker != nil {
		r.Tracker.Prune(windows)
	}
	var rep Report
	for _, w := range windows {
		d, failed := r.decide(w)
		rep.Decisions = append(rep.Decisions, d)
		switch {
		case failed:
			rep.Failed++
		case d.Action == ActionApply:
			rep.Applied++
		case d.Action == ActionAlreadyApplied:
			rep.AlreadyApplied++
		default:
			rep.Skipped++
		}
	}
	return rep
}

// eligible applies the gates shared by apply, clear, and preview: a
// window must have a real title and a process outside the ignore list.
func eligible(w WindowInfo, ignore IgnoreList) (string, bool) {
	if strings.TrimSpace(w.Title) == "" {
		return "empty title", false
	}
	if ignore.Ignored(w.ProcessName) {
		return "ignored process", false
	}
	return "", true
}

// Preview evaluates one window without touching the desktop: the
// eligibility gates and icon resolution of a pass, minus the apply.
func Preview(w WindowInfo, r Resolver, ignore IgnoreList) Decision {
	d := Decision{Ref: w.Ref, Title: w.Title, Process: w.ProcessName}
	if reason, ok := eligible(w, ignore); !ok {
		d.Action = ActionSkip
		d.Reason = reason
		return d
	}
	icon, ok := r.Resolve(w)
	if !ok {
		d.Action = ActionSkip
		d.Reason = "no icon"
		return d
	}
	d.Action = ActionApply
	d.Stem = icon.Stem
	d.Path = icon.Path
	return d
}

func (r *Runner) decide(w WindowInfo) (Decision, bool) {
	d := Decision{Ref: w.Ref, Title: w.Title, Process: w.ProcessName}
	if reason, ok := eligible(w, r.Ignore); !ok {
		d.Action = ActionSkip
		d.Reason = reason
		return d, false
	}
	if r.Tracking && r.Tracker != nil && r.Tracker.IsApplied(w.Ref, w.Title) {
		d.Action = ActionAlreadyApplied
		return d, false
	}
	icon, ok := r.Resolver.Resolve(w)
	if !ok {
		d.Action = ActionSkip
		d.Reason = "no icon"
		return d, false
	}
	d.Stem = icon.Stem
	d.Path = icon.Path
	if err := r.Applier.Apply(w.Ref, icon.Path, icon.Stem); err != nil {
		d.Action = ActionSkip
		d.Reason = "apply failed: " + err.Error()
		return d, true
	}
	d.Action = ActionApply
	if r.Tracking && r.Tracker != nil {
		r.Tracker.MarkApplied(w.Ref, w.Title)
	}
	return d, false
}

// ClearAll removes the badge from every eligible window. It ignores the
// tracker entirely and leaves it untouched; drivers reset tracker state
// themselves once the sweep is done.
func (r *Runner) ClearAll(windows []WindowInfo) Report {
	var rep Report
	for _, w := range windows {
		d := Decision{Ref: w.Ref, Title: w.Title, Process: w.ProcessName}
		if reason, ok := eligible(w, r.Ignore); !ok {
			d.Action = ActionSkip
			d.Reason = reason
			rep.Skipped++
		} else if err := r.Applier.Clear(w.Ref); err != nil {
			d.Action = ActionSkip
			d.Reason = "clear failed: " + err.Error()
			rep.Failed++
		} else {
			d.Action = ActionClear
			rep.Cleared++
		}
		rep.Decisions = append(rep.Decisions, d)
	}
	return rep
}
