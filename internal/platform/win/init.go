//go:build windows

package win

import "github.com/mj1618/taskbadge/internal/platform"

func init() {
	platform.NewProviderFunc = func() (*platform.Provider, error) {
		return &platform.Provider{
			Enumerator: Enumerator{},
			Overlayer:  &Overlayer{},
			Autostart:  Autostart{},
			Tray:       Tray{},
		}, nil
	}
}
