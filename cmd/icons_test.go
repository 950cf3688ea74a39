package cmd

import (
	"testing"
)

func TestIconsCommand_IsRegistered(t *testing.T) {
	for _, c := range rootCmd.Commands() {
		if c.Name() == "icons" {
			return
		}
	}
	t.Error("icons command not registered on root")
}

func TestIconsCheck_IsSubcommand(t *testing.T) {
	for _, c := range iconsCmd.Commands() {
		if c.Name() == "check" {
			return
		}
	}
	t.Error("check not registered under icons")
}

func TestIconsCheck_ArgLimit(t *testing.T) {
	if iconsCheckCmd.Args == nil {
		t.Fatal("icons check should cap positional args")
	}
	if err := iconsCheckCmd.Args(iconsCheckCmd, []string{"a.ico", "b.ico"}); err == nil {
		t.Error("two positional args should be rejected")
	}
	if err := iconsCheckCmd.Args(iconsCheckCmd, []string{"a.ico"}); err != nil {
		t.Errorf("one positional arg should be accepted, got %v", err)
	}
}
