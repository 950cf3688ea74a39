package badge

import "strings"

// Capability decides which windows get workspace-name resolution instead
// of the plain process-name fallback. A window qualifies when its process
// is on the editor list and its window class is the expected top-level
// class; both checks are case-insensitive. Requiring both keeps out
// helper windows of listed processes and foreign apps sharing the class
// (every Electron window is Chrome_WidgetWin_1). Plain data, adjustable
// without touching the resolver.
type Capability struct {
	Processes   []string
	WindowClass string
}

// Capable reports whether the window belongs to a workspace-aware editor.
// An empty expected class leaves only the process check.
func (c Capability) Capable(info WindowInfo) bool {
	if c.WindowClass != "" && !strings.EqualFold(info.WindowClass, c.WindowClass) {
		return false
	}
	for _, p := range c.Processes {
		if strings.EqualFold(info.ProcessName, p) {
			return true
		}
	}
	return false
}

// DefaultCapability covers the VS Code family.
func DefaultCapability() Capability {
	return Capability{
		Processes:   []string{"code", "code-insiders", "vscodium", "cursor"},
		WindowClass: "Chrome_WidgetWin_1",
	}
}

// IgnoreList filters out processes whose windows never benefit from a
// badge. Keys are lowercase process names.
type IgnoreList map[string]bool

// Ignored reports whether the process is on the list.
func (l IgnoreList) Ignored(processName string) bool {
	return l[strings.ToLower(processName)]
}

// DefaultIgnoreList covers the Windows shell and system UI surfaces.
func DefaultIgnoreList() IgnoreList {
	return IgnoreList{
		"explorer":                true,
		"searchhost":              true,
		"searchapp":               true,
		"shellexperiencehost":     true,
		"startmenuexperiencehost": true,
		"textinputhost":           true,
		"applicationframehost":    true,
		"systemsettings":          true,
		"lockapp":                 true,
		"taskmgr":                 true,
	}
}
