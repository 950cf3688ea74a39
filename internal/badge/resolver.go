package badge

import (
	"os"
	"path/filepath"
)

// Icon is a resolved badge icon: the stem that identified it and the
// absolute path of the .ico file backing it.
type Icon struct {
	Stem string `json:"stem"`
	Path string `json:"path"`
}

// Resolver maps a window to an icon file under the icons root. It holds
// no state between calls; every Resolve is re-derivable from its inputs.
type Resolver struct {
	// Root is the absolute directory holding the .ico files.
	Root string
	// WorkspaceSubdir, when set, namespaces workspace-name lookups under
	// Root. Process-name fallbacks always look in Root directly.
	WorkspaceSubdir string
	Capability      Capability
}

// Resolve picks the icon stem for a window and checks that the icon file
// exists. Workspace-capable windows with a workspace title resolve by
// workspace name; everything else falls back to the sanitized process
// name. A missing file is the common case, not an error: the result is
// simply false and the window stays unbadged this pass.
func (r Resolver) Resolve(info WindowInfo) (Icon, bool) {
	dir := r.Root
	var stem string
	if r.Capability.Capable(info) {
		if label, ok := WorkspaceLabel(info.Title); ok {
			stem = label
			if r.WorkspaceSubdir != "" {
				dir = filepath.Join(r.Root, r.WorkspaceSubdir)
			}
		}
	}
	if stem == "" {
		stem = SanitizeStem(info.ProcessName)
	}
	if stem == "" {
		return Icon{}, false
	}
	path := filepath.Join(dir, stem+".ico")
	fi, err := os.Stat(path)
	if err != nil || fi.IsDir() {
		return Icon{}, false
	}
	return Icon{Stem: stem, Path: path}, true
}
