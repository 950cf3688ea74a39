package cmd

import (
	"testing"
)

func TestTrayCommand_Flags(t *testing.T) {
	flags := trayCmd.Flags()

	tests := []struct {
		name     string
		flagType string
	}{
		{"interval", "int"},
		{"always-apply", "bool"},
	}

	for _, tt := range tests {
		f := flags.Lookup(tt.name)
		if f == nil {
			t.Errorf("expected flag %q not found", tt.name)
			continue
		}
		if f.Value.Type() != tt.flagType {
			t.Errorf("flag %q: expected type %q, got %q", tt.name, tt.flagType, f.Value.Type())
		}
	}
}

func TestTrayCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "tray" {
			return
		}
	}
	t.Error("tray command not registered on root")
}
