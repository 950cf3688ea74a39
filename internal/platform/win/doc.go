//go:build windows

// Package win provides Windows platform support: window enumeration via
// user32, taskbar overlay icons via the ITaskbarList3 COM interface, the
// notification-area tray driver, and registry-based autostart.
package win
