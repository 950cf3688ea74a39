package logging

import (
	"log/slog"
	"os"
)

// Component names used in log lines.
const (
	CompPass     = "pass"
	CompWatch    = "watch"
	CompTray     = "tray"
	CompMCP      = "mcp"
	CompPlatform = "platform"
	CompConfig   = "config"
)

// Setup installs the process-wide logger. Logs go to stderr so stdout
// stays machine-parseable.
func Setup(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}

// ForComponent returns a logger tagged with the component name. Call it
// after Setup so the logger picks up the configured handler.
func ForComponent(component string) *slog.Logger {
	return slog.Default().With(slog.String("component", component))
}
