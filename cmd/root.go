package cmd

import (
	"fmt"
	"os"

	"github.com/mj1618/taskbadge/internal/logging"
	"github.com/mj1618/taskbadge/internal/output"
	"github.com/mj1618/taskbadge/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "taskbadge",
	Short: "Overlay per-workspace badges on taskbar windows",
	Long:  "A CLI tool that resolves an icon for each visible window (workspace name or process name) and applies it as a taskbar overlay badge.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Assigned here rather than in the composite literal: runPass reads
	// rootCmd's flags, so referencing it from the literal would form an
	// initialization cycle.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		alwaysApply, _ := cmd.Flags().GetBool("always-apply")
		return runPass(cmd, !alwaysApply)
	}
	rootCmd.Version = fmt.Sprintf("%s (commit: %s, built: %s)", version.Version, version.Commit, version.BuildDate)
	rootCmd.PersistentFlags().String("format", "yaml", "Output format: yaml, json")
	rootCmd.PersistentFlags().Bool("pretty", false, "Pretty-print JSON output")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: <user config dir>/taskbadge/config.json)")
	rootCmd.PersistentFlags().String("icons-root", "", "Override the icon directory from the config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Debug logging and per-window decisions in output")
	rootCmd.Flags().Bool("always-apply", false, "Re-apply overlays even for windows already badged")
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
		logging.Setup(verbose)

		// Use the root persistent flag directly to avoid conflicts with
		// subcommand local flags.
		format, _ := rootCmd.PersistentFlags().GetString("format")
		switch format {
		case "yaml":
			output.OutputFormat = output.FormatYAML
		case "json":
			output.OutputFormat = output.FormatJSON
		default:
			return fmt.Errorf("unsupported format: %s (use yaml or json)", format)
		}
		pretty, _ := rootCmd.PersistentFlags().GetBool("pretty")
		output.PrettyOutput = pretty
		return nil
	}
}
