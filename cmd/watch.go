package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mj1618/taskbadge/internal/badge"
	"github.com/mj1618/taskbadge/internal/logging"
	"github.com/mj1618/taskbadge/internal/output"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Keep badges up to date with repeated passes",
	Long: `Run resolution passes on an interval, badging new windows and re-badging
windows whose title changed. Unchanged windows are left alone between
passes, so a quiet desktop costs nothing.

Use Ctrl+C or --duration to stop. An in-flight pass always runs to
completion; the stop takes effect between passes.`,
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().Int("interval", 5000, "Pass interval in milliseconds")
	watchCmd.Flags().Int("duration", 0, "Max seconds to watch (0 = until Ctrl+C)")
	watchCmd.Flags().Bool("always-apply", false, "Re-apply overlays on every pass instead of tracking applied windows")
	watchCmd.Flags().Bool("clear-on-exit", false, "Remove all overlays when the watch stops")
}

// watchSummary aggregates counters across every pass of one watch run.
type watchSummary struct {
	Passes         int `yaml:"passes"            json:"passes"`
	Applied        int `yaml:"applied"           json:"applied"`
	AlreadyApplied int `yaml:"already_applied"   json:"already_applied"`
	Skipped        int `yaml:"skipped"           json:"skipped"`
	Cleared        int `yaml:"cleared,omitempty" json:"cleared,omitempty"`
	Failed         int `yaml:"failed,omitempty"  json:"failed,omitempty"`
}

func (s *watchSummary) add(rep badge.Report) {
	s.Passes++
	s.Applied += rep.Applied
	s.AlreadyApplied += rep.AlreadyApplied
	s.Skipped += rep.Skipped
	s.Cleared += rep.Cleared
	s.Failed += rep.Failed
}

func runWatch(cmd *cobra.Command, args []string) error {
	intervalMs, _ := cmd.Flags().GetInt("interval")
	durationSec, _ := cmd.Flags().GetInt("duration")
	alwaysApply, _ := cmd.Flags().GetBool("always-apply")
	clearOnExit, _ := cmd.Flags().GetBool("clear-on-exit")

	if intervalMs <= 0 {
		return fmt.Errorf("--interval must be positive, got %d", intervalMs)
	}

	cfg := loadConfig()
	runner, provider, err := newRunner(cfg, badge.NewTracker(), !alwaysApply)
	if err != nil {
		return err
	}

	log := logging.ForComponent(logging.CompWatch)
	log.Debug("watch_started",
		slog.Int("interval_ms", intervalMs),
		slog.String("icons_root", cfg.IconsRoot))

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	interval := time.Duration(intervalMs) * time.Millisecond
	var deadline time.Time
	if durationSec > 0 {
		deadline = time.Now().Add(time.Duration(durationSec) * time.Second)
	}

	var total watchSummary
loop:
	for {
		windows, err := provider.Enumerator.VisibleWindows()
		if err != nil {
			// Enumeration hiccups are transient; keep the loop alive.
			log.Warn("enumerate_failed", slog.String("error", err.Error()))
		} else {
			rep := runner.Run(windows)
			total.add(rep)
			if rep.Applied > 0 || rep.Failed > 0 {
				log.Debug("pass_completed",
					slog.Int("windows", len(windows)),
					slog.Int("applied", rep.Applied),
					slog.Int("failed", rep.Failed))
			}
		}

		if durationSec > 0 && time.Now().After(deadline) {
			break
		}
		select {
		case <-stop:
			log.Debug("watch_stopping")
			break loop
		case <-time.After(interval):
		}
	}

	if clearOnExit {
		if windows, err := provider.Enumerator.VisibleWindows(); err == nil {
			rep := runner.ClearAll(windows)
			runner.Tracker.Clear()
			total.Cleared += rep.Cleared
		}
	}

	return output.Print(total)
}
