package badge

import (
	"regexp"
	"strings"
)

// workspaceMarkerRe matches the tag VS Code-style editors append to the
// title of a window that has a named workspace open.
var workspaceMarkerRe = regexp.MustCompile(`(?i)\(workspace\)`)

// WorkspaceLabel recovers the workspace name from a window title such as
// "api - my-project.code-workspace - Visual Studio Code (Workspace)".
// Titles list breadcrumbs most-specific-last, so the segment immediately
// before the marker names the workspace. Returns false when the title
// carries no marker or the name collapses to nothing.
func WorkspaceLabel(title string) (string, bool) {
	loc := workspaceMarkerRe.FindStringIndex(title)
	if loc == nil {
		return "", false
	}
	prefix := strings.TrimRight(title[:loc[0]], " \t-")
	name := ""
	for _, seg := range strings.Split(prefix, " - ") {
		if seg = strings.TrimSpace(seg); seg != "" {
			name = seg
		}
	}
	if name == "" {
		return "", false
	}
	return SanitizeStem(name), true
}
