package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{"icons_root": "` + escapeJSON(filepath.Join(dir, "badges")) + `", "workspace_subdir": "workspaces"}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.IconsRoot != filepath.Join(dir, "badges") {
		t.Errorf("IconsRoot = %q, want %q", cfg.IconsRoot, filepath.Join(dir, "badges"))
	}
	if cfg.WorkspaceSubdir != "workspaces" {
		t.Errorf("WorkspaceSubdir = %q, want %q", cfg.WorkspaceSubdir, "workspaces")
	}
}

func TestLoad_MissingFileFallsBack(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.json"))
	if err != nil {
		t.Fatalf("missing file must not be an error, got: %v", err)
	}
	if cfg.IconsRoot == "" {
		t.Error("expected default IconsRoot for missing file")
	}
	if !filepath.IsAbs(cfg.IconsRoot) {
		t.Errorf("IconsRoot = %q, want absolute", cfg.IconsRoot)
	}
}

func TestLoad_CorruptFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Error("expected advisory error for corrupt config")
	}
	if cfg.IconsRoot != finalize(Default()).IconsRoot {
		t.Errorf("IconsRoot = %q, want default after parse failure", cfg.IconsRoot)
	}
}

func TestLoad_RelativeRootMadeAbsolute(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"icons_root": "my-icons"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !filepath.IsAbs(cfg.IconsRoot) {
		t.Errorf("IconsRoot = %q, want absolute", cfg.IconsRoot)
	}
}

func TestLoad_EmptyRootFieldUsesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"icons_root": ""}`), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.IconsRoot != finalize(Default()).IconsRoot {
		t.Errorf("IconsRoot = %q, want default", cfg.IconsRoot)
	}
}

func TestPath_UnderUserConfigDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path, err := Path()
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if filepath.Base(path) != "config.json" {
		t.Errorf("Path = %q, want a config.json", path)
	}
	if filepath.Base(filepath.Dir(path)) != "taskbadge" {
		t.Errorf("Path = %q, want a taskbadge directory", path)
	}
}

// escapeJSON doubles backslashes so Windows paths survive embedding in a
// JSON literal.
func escapeJSON(s string) string {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' {
			out = append(out, '\\')
		}
		out = append(out, s[i])
	}
	return string(out)
}
