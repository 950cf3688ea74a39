package platform

import (
	"fmt"
	"runtime"
)

// Provider bundles the platform backends for the current OS. Autostart
// and Tray may be nil on platforms that registered only partial support.
type Provider struct {
	Enumerator Enumerator
	Overlayer  Overlayer
	Autostart  Autostart
	Tray       Tray
}

// ErrUnsupported is returned on unsupported platforms.
var ErrUnsupported = fmt.Errorf("taskbadge is not supported on %s/%s; supported: windows/amd64, windows/arm64", runtime.GOOS, runtime.GOARCH)

// NewProviderFunc is set by platform-specific packages via init().
// See internal/platform/win/init.go for the Windows registration.
var NewProviderFunc func() (*Provider, error)

// NewProvider returns a Provider for the current OS.
func NewProvider() (*Provider, error) {
	if NewProviderFunc == nil {
		return nil, ErrUnsupported
	}
	return NewProviderFunc()
}
