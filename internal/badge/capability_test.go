package badge

import "testing"

func TestCapability_Capable(t *testing.T) {
	c := Capability{
		Processes:   []string{"code", "cursor"},
		WindowClass: "Chrome_WidgetWin_1",
	}
	tests := []struct {
		name string
		info WindowInfo
		want bool
	}{
		{"process_and_class", WindowInfo{ProcessName: "code", WindowClass: "Chrome_WidgetWin_1"}, true},
		{"case_insensitive", WindowInfo{ProcessName: "Code", WindowClass: "CHROME_WIDGETWIN_1"}, true},
		{"class_without_process", WindowInfo{ProcessName: "chrome", WindowClass: "Chrome_WidgetWin_1"}, false},
		{"process_without_class", WindowInfo{ProcessName: "code", WindowClass: "Chrome_WidgetWin_0"}, false},
		{"classless_window", WindowInfo{ProcessName: "code"}, false},
		{"no_match", WindowInfo{ProcessName: "notepad", WindowClass: "Notepad"}, false},
		{"empty_info", WindowInfo{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.Capable(tt.info); got != tt.want {
				t.Errorf("Capable(%+v) = %v, want %v", tt.info, got, tt.want)
			}
		})
	}
}

func TestCapability_EmptyClassChecksProcessOnly(t *testing.T) {
	c := Capability{Processes: []string{"code"}}
	if !c.Capable(WindowInfo{ProcessName: "code", WindowClass: "AnyClassAtAll"}) {
		t.Error("empty expected class should leave only the process check")
	}
	if c.Capable(WindowInfo{ProcessName: "other", WindowClass: ""}) {
		t.Error("process outside the list must not be capable")
	}
}

func TestIgnoreList(t *testing.T) {
	l := DefaultIgnoreList()
	if !l.Ignored("explorer") {
		t.Error("explorer should be ignored")
	}
	if !l.Ignored("Explorer") {
		t.Error("ignore match should be case-insensitive")
	}
	if !l.Ignored("TextInputHost") {
		t.Error("TextInputHost should be ignored")
	}
	if l.Ignored("code") {
		t.Error("code should not be ignored")
	}
	if l.Ignored("") {
		t.Error("empty process name should not be ignored")
	}
}
