//go:build windows

package win

import (
	"fmt"
	"os"

	"golang.org/x/sys/windows/registry"
)

const (
	runKeyPath   = `Software\Microsoft\Windows\CurrentVersion\Run`
	runValueName = "taskbadge"
)

// Autostart manages the HKCU Run entry that launches the tray driver at
// login.
type Autostart struct{}

func (Autostart) Enable() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("failed to locate executable: %w", err)
	}
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open run key: %w", err)
	}
	defer key.Close()
	if err := key.SetStringValue(runValueName, `"`+exe+`" tray`); err != nil {
		return fmt.Errorf("failed to set run entry: %w", err)
	}
	return nil
}

func (Autostart) Disable() error {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.SET_VALUE)
	if err != nil {
		return fmt.Errorf("failed to open run key: %w", err)
	}
	defer key.Close()
	if err := key.DeleteValue(runValueName); err != nil && err != registry.ErrNotExist {
		return fmt.Errorf("failed to delete run entry: %w", err)
	}
	return nil
}

func (Autostart) Enabled() (bool, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, runKeyPath, registry.QUERY_VALUE)
	if err != nil {
		return false, fmt.Errorf("failed to open run key: %w", err)
	}
	defer key.Close()
	if _, _, err := key.GetStringValue(runValueName); err != nil {
		if err == registry.ErrNotExist {
			return false, nil
		}
		return false, fmt.Errorf("failed to read run entry: %w", err)
	}
	return true, nil
}
