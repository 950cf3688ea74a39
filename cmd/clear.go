package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove overlay badges from all windows",
	Long:  "Sweep visible windows and remove the taskbar overlay badge from every eligible one.",
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(clearCmd)
}

func runClear(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	runner, provider, err := newRunner(cfg, nil, false)
	if err != nil {
		return err
	}
	windows, err := provider.Enumerator.VisibleWindows()
	if err != nil {
		return fmt.Errorf("failed to enumerate windows: %w", err)
	}
	return printReport(runner.ClearAll(windows))
}
