package cmd

import (
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/mj1618/taskbadge/internal/badge"
	"github.com/mj1618/taskbadge/internal/config"
	"github.com/mj1618/taskbadge/internal/logging"
	"github.com/mj1618/taskbadge/internal/output"
	"github.com/mj1618/taskbadge/internal/platform"
	"github.com/spf13/cobra"
)

// loadConfig reads the config file, honoring --config and --icons-root.
// Config problems fall back to defaults with a warning, never an abort.
func loadConfig() config.Config {
	path, _ := rootCmd.PersistentFlags().GetString("config")
	if path == "" {
		if p, err := config.Path(); err == nil {
			path = p
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		logging.ForComponent(logging.CompConfig).Warn("config_load_failed",
			slog.String("path", path), slog.String("error", err.Error()))
	}
	if override, _ := rootCmd.PersistentFlags().GetString("icons-root"); override != "" {
		if abs, absErr := filepath.Abs(override); absErr == nil {
			override = abs
		}
		cfg.IconsRoot = override
	}
	return cfg
}

// newResolver builds the icon resolver for the given config.
func newResolver(cfg config.Config) badge.Resolver {
	return badge.Resolver{
		Root:            cfg.IconsRoot,
		WorkspaceSubdir: cfg.WorkspaceSubdir,
		Capability:      badge.DefaultCapability(),
	}
}

// newRunner assembles the badge engine on top of the platform provider.
// The same runner drives one-shot passes, watch, the tray, and the MCP
// server; only the tracker lifetime differs between them.
func newRunner(cfg config.Config, tracker *badge.Tracker, tracking bool) (*badge.Runner, *platform.Provider, error) {
	provider, err := platform.NewProvider()
	if err != nil {
		return nil, nil, err
	}
	if provider.Overlayer == nil {
		return nil, nil, fmt.Errorf("overlay icons are not available on this platform")
	}
	runner := &badge.Runner{
		Resolver: newResolver(cfg),
		Tracker:  tracker,
		Applier:  provider.Overlayer,
		Ignore:   badge.DefaultIgnoreList(),
		Tracking: tracking,
	}
	return runner, provider, nil
}

// runPass executes one resolution pass over the current windows and
// prints the report.
func runPass(cmd *cobra.Command, tracking bool) error {
	cfg := loadConfig()
	runner, provider, err := newRunner(cfg, badge.NewTracker(), tracking)
	if err != nil {
		return err
	}
	windows, err := provider.Enumerator.VisibleWindows()
	if err != nil {
		return fmt.Errorf("failed to enumerate windows: %w", err)
	}
	rep := runner.Run(windows)
	return printReport(rep)
}

// printReport serializes a pass report in the selected output format.
// Per-window decisions ride along only under --verbose.
func printReport(rep badge.Report) error {
	if rep.Failed > 0 {
		logging.ForComponent(logging.CompPass).Warn("pass_had_failures",
			slog.Int("failed", rep.Failed))
	}
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	return output.Print(output.NewPassResult(rep, verbose))
}
