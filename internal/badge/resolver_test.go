package badge

import (
	"os"
	"path/filepath"
	"testing"
)

func writeIcon(t *testing.T, dir, stem string) string {
	t.Helper()
	path := filepath.Join(dir, stem+".ico")
	if err := os.WriteFile(path, []byte{0, 0, 1, 0}, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolver_ProcessFallback(t *testing.T) {
	root := t.TempDir()
	want := writeIcon(t, root, "chrome")

	r := Resolver{Root: root, Capability: DefaultCapability()}
	icon, ok := r.Resolve(WindowInfo{Ref: 1, Title: "New Tab", ProcessName: "chrome"})
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if icon.Stem != "chrome" {
		t.Errorf("stem = %q, want %q", icon.Stem, "chrome")
	}
	if icon.Path != want {
		t.Errorf("path = %q, want %q", icon.Path, want)
	}
}

func TestResolver_MissingFile(t *testing.T) {
	r := Resolver{Root: t.TempDir(), Capability: DefaultCapability()}
	if _, ok := r.Resolve(WindowInfo{Ref: 1, Title: "New Tab", ProcessName: "chrome"}); ok {
		t.Error("expected resolution to fail for missing icon file")
	}
}

func TestResolver_WorkspaceName(t *testing.T) {
	root := t.TempDir()
	want := writeIcon(t, root, "api")

	r := Resolver{Root: root, Capability: DefaultCapability()}
	info := WindowInfo{Ref: 1, Title: "main.go - api (Workspace) - Visual Studio Code", ProcessName: "code", WindowClass: "Chrome_WidgetWin_1"}
	icon, ok := r.Resolve(info)
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if icon.Stem != "api" {
		t.Errorf("stem = %q, want %q", icon.Stem, "api")
	}
	if icon.Path != want {
		t.Errorf("path = %q, want %q", icon.Path, want)
	}
}

func TestResolver_WorkspaceSubdir(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "workspaces")
	if err := os.Mkdir(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	want := writeIcon(t, sub, "api")
	// A same-named icon at the root must not win.
	writeIcon(t, root, "api")

	r := Resolver{Root: root, WorkspaceSubdir: "workspaces", Capability: DefaultCapability()}
	info := WindowInfo{Ref: 1, Title: "api (Workspace)", ProcessName: "code", WindowClass: "Chrome_WidgetWin_1"}
	icon, ok := r.Resolve(info)
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if icon.Path != want {
		t.Errorf("path = %q, want %q", icon.Path, want)
	}
}

func TestResolver_WorkspaceIconMissingNoFallback(t *testing.T) {
	root := t.TempDir()
	// Process icon exists, but the workspace stem decides the lookup.
	writeIcon(t, root, "code")

	r := Resolver{Root: root, Capability: DefaultCapability()}
	info := WindowInfo{Ref: 1, Title: "api (Workspace)", ProcessName: "code", WindowClass: "Chrome_WidgetWin_1"}
	if _, ok := r.Resolve(info); ok {
		t.Error("expected resolution to fail: workspace icon absent, no process fallback")
	}
}

func TestResolver_NotCapableIgnoresMarker(t *testing.T) {
	root := t.TempDir()
	want := writeIcon(t, root, "notepad")
	writeIcon(t, root, "api")

	r := Resolver{Root: root, Capability: Capability{Processes: []string{"code"}}}
	info := WindowInfo{Ref: 1, Title: "api (Workspace)", ProcessName: "notepad"}
	icon, ok := r.Resolve(info)
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if icon.Path != want {
		t.Errorf("path = %q, want %q: marker must not apply to non-capable windows", icon.Path, want)
	}
}

func TestResolver_SharedClassUsesProcessFallback(t *testing.T) {
	root := t.TempDir()
	want := writeIcon(t, root, "chrome")
	// A stray icon matching the title's label must not be picked up.
	writeIcon(t, root, "my-repo")

	r := Resolver{Root: root, Capability: DefaultCapability()}
	info := WindowInfo{Ref: 1, Title: "my-repo (Workspace) - GitHub - Google Chrome", ProcessName: "chrome", WindowClass: "Chrome_WidgetWin_1"}
	icon, ok := r.Resolve(info)
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if icon.Stem != "chrome" || icon.Path != want {
		t.Errorf("icon = %+v, want the chrome process fallback: sharing the editor window class must not make a window workspace-capable", icon)
	}
}

func TestResolver_DirectoryIsNotAnIcon(t *testing.T) {
	root := t.TempDir()
	if err := os.Mkdir(filepath.Join(root, "chrome.ico"), 0o755); err != nil {
		t.Fatal(err)
	}
	r := Resolver{Root: root}
	if _, ok := r.Resolve(WindowInfo{Ref: 1, Title: "x", ProcessName: "chrome"}); ok {
		t.Error("expected directory named like an icon to resolve to none")
	}
}

func TestResolver_EmptyProcessName(t *testing.T) {
	r := Resolver{Root: t.TempDir()}
	if _, ok := r.Resolve(WindowInfo{Ref: 1, Title: "x", ProcessName: ""}); ok {
		t.Error("expected empty process name to resolve to none")
	}
}

func TestResolver_SanitizedProcessStem(t *testing.T) {
	root := t.TempDir()
	want := writeIcon(t, root, "weird_app")

	r := Resolver{Root: root}
	icon, ok := r.Resolve(WindowInfo{Ref: 1, Title: "x", ProcessName: "weird?app"})
	if !ok {
		t.Fatal("expected resolution to succeed")
	}
	if icon.Path != want {
		t.Errorf("path = %q, want %q", icon.Path, want)
	}
}
