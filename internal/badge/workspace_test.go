package badge

import "testing"

func TestWorkspaceLabel(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		want   string
		wantOK bool
	}{
		{
			"segment_before_marker",
			"my-cool-project - app.code-workspace - Visual Studio Code (Workspace) - extra",
			"Visual Studio Code",
			true,
		},
		{
			"single_segment",
			"my-project (Workspace)",
			"my-project",
			true,
		},
		{
			"case_insensitive_marker",
			"api (WORKSPACE) - Visual Studio Code",
			"api",
			true,
		},
		{
			"lowercase_marker",
			"api (workspace)",
			"api",
			true,
		},
		{
			"no_marker",
			"main.go - project - Visual Studio Code",
			"",
			false,
		},
		{
			"empty_title",
			"",
			"",
			false,
		},
		{
			"marker_only",
			"(Workspace)",
			"",
			false,
		},
		{
			"marker_at_start",
			"(Workspace) - Visual Studio Code",
			"",
			false,
		},
		{
			"trailing_dash_trimmed",
			"my-project - (Workspace)",
			"my-project",
			true,
		},
		{
			"only_dashes_before_marker",
			"- - (Workspace)",
			"",
			false,
		},
		{
			"first_marker_wins",
			"alpha (Workspace) - beta (Workspace)",
			"alpha",
			true,
		},
		{
			"label_sanitized",
			"notes: draft (Workspace)",
			"notes_ draft",
			true,
		},
		{
			"empty_segments_dropped",
			"a -  - b (Workspace)",
			"b",
			true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := WorkspaceLabel(tt.title)
			if ok != tt.wantOK {
				t.Fatalf("WorkspaceLabel(%q) ok = %v, want %v", tt.title, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("WorkspaceLabel(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}
