package cmd

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/mj1618/taskbadge/internal/badge"
	"github.com/mj1618/taskbadge/internal/logging"
	"github.com/mj1618/taskbadge/internal/platform"
	"github.com/spf13/cobra"
)

var trayCmd = &cobra.Command{
	Use:   "tray",
	Short: "Run as a tray application",
	Long: `Run resolution passes from a system tray icon. The tray menu offers
Refresh now, Pause updates, Clear overlays, and Quit.

This is the long-lived way to run taskbadge; pair it with
'taskbadge autostart --enable' to start on login.`,
	RunE: runTray,
}

func init() {
	rootCmd.AddCommand(trayCmd)
	trayCmd.Flags().Int("interval", 5000, "Pass interval in milliseconds")
	trayCmd.Flags().Bool("always-apply", false, "Re-apply overlays on every pass instead of tracking applied windows")
}

func runTray(cmd *cobra.Command, args []string) error {
	intervalMs, _ := cmd.Flags().GetInt("interval")
	alwaysApply, _ := cmd.Flags().GetBool("always-apply")
	if intervalMs <= 0 {
		return fmt.Errorf("--interval must be positive, got %d", intervalMs)
	}

	cfg := loadConfig()
	tracker := badge.NewTracker()
	runner, provider, err := newRunner(cfg, tracker, !alwaysApply)
	if err != nil {
		return err
	}
	if provider.Tray == nil {
		return fmt.Errorf("the tray is not available on this platform")
	}

	log := logging.ForComponent(logging.CompTray)

	opts := platform.TrayOptions{
		Tooltip:  "taskbadge",
		Interval: time.Duration(intervalMs) * time.Millisecond,
		OnTick: func() {
			windows, err := provider.Enumerator.VisibleWindows()
			if err != nil {
				log.Warn("enumerate_failed", slog.String("error", err.Error()))
				return
			}
			rep := runner.Run(windows)
			if rep.Applied > 0 || rep.Failed > 0 {
				log.Debug("pass_completed",
					slog.Int("windows", len(windows)),
					slog.Int("applied", rep.Applied),
					slog.Int("failed", rep.Failed))
			}
		},
		OnClear: func() {
			windows, err := provider.Enumerator.VisibleWindows()
			if err != nil {
				log.Warn("enumerate_failed", slog.String("error", err.Error()))
				return
			}
			rep := runner.ClearAll(windows)
			// Forget applied state so resuming re-badges everything.
			tracker.Clear()
			log.Debug("overlays_cleared", slog.Int("cleared", rep.Cleared))
		},
	}

	log.Debug("tray_started", slog.Int("interval_ms", intervalMs))
	return provider.Tray.Run(opts)
}
