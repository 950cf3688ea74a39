//go:build windows

package cmd

import (
	// Registers the Windows backend with platform.NewProvider.
	_ "github.com/mj1618/taskbadge/internal/platform/win"
)
