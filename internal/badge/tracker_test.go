package badge

import "testing"

func TestTracker_MarkAndCheck(t *testing.T) {
	tr := NewTracker()
	if tr.IsApplied(1, "api (Workspace)") {
		t.Error("fresh tracker should report nothing applied")
	}
	tr.MarkApplied(1, "api (Workspace)")
	if !tr.IsApplied(1, "api (Workspace)") {
		t.Error("expected window to be tracked after mark")
	}
	if tr.IsApplied(2, "api (Workspace)") {
		t.Error("different ref must not be tracked")
	}
}

func TestTracker_TitleChangeInvalidates(t *testing.T) {
	tr := NewTracker()
	tr.MarkApplied(1, "api (Workspace)")
	if tr.IsApplied(1, "web (Workspace)") {
		t.Error("title change must invalidate the entry")
	}
	// Recycled handle with a different title looks like a new window.
	tr.MarkApplied(1, "web (Workspace)")
	if !tr.IsApplied(1, "web (Workspace)") {
		t.Error("re-mark under new title should track again")
	}
	if tr.IsApplied(1, "api (Workspace)") {
		t.Error("old title must stay invalid after re-mark")
	}
}

func TestTracker_Prune(t *testing.T) {
	tr := NewTracker()
	tr.MarkApplied(1, "a")
	tr.MarkApplied(2, "b")
	tr.MarkApplied(3, "c")

	tr.Prune([]WindowInfo{{Ref: 2, Title: "b"}})
	if tr.Len() != 1 {
		t.Fatalf("Len() = %d after prune, want 1", tr.Len())
	}
	if !tr.IsApplied(2, "b") {
		t.Error("live entry must survive prune")
	}
	if tr.IsApplied(1, "a") || tr.IsApplied(3, "c") {
		t.Error("closed windows must be dropped by prune")
	}
}

func TestTracker_Clear(t *testing.T) {
	tr := NewTracker()
	tr.MarkApplied(1, "a")
	tr.MarkApplied(2, "b")
	tr.Clear()
	if tr.Len() != 0 {
		t.Errorf("Len() = %d after clear, want 0", tr.Len())
	}
	if tr.IsApplied(1, "a") {
		t.Error("cleared tracker must report nothing applied")
	}
}
