package cmd

import (
	"fmt"

	"github.com/mj1618/taskbadge/internal/output"
	"github.com/mj1618/taskbadge/internal/platform"
	"github.com/spf13/cobra"
)

var autostartCmd = &cobra.Command{
	Use:   "autostart",
	Short: "Manage launch-at-login for the tray",
	Long:  "Register or unregister the tray in the per-user Run key so badges come back after a reboot.",
	RunE:  runAutostart,
}

func init() {
	rootCmd.AddCommand(autostartCmd)
	autostartCmd.Flags().Bool("enable", false, "Register the tray to start at login")
	autostartCmd.Flags().Bool("disable", false, "Remove the login registration")
	autostartCmd.Flags().Bool("status", false, "Show the current registration state (default)")
}

// autostartState is the status output row.
type autostartState struct {
	Enabled bool `yaml:"enabled" json:"enabled"`
}

func runAutostart(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}
	if provider.Autostart == nil {
		return fmt.Errorf("autostart is not available on this platform")
	}

	enable, _ := cmd.Flags().GetBool("enable")
	disable, _ := cmd.Flags().GetBool("disable")
	if enable && disable {
		return fmt.Errorf("--enable and --disable are mutually exclusive")
	}

	switch {
	case enable:
		if err := provider.Autostart.Enable(); err != nil {
			return fmt.Errorf("failed to enable autostart: %w", err)
		}
	case disable:
		if err := provider.Autostart.Disable(); err != nil {
			return fmt.Errorf("failed to disable autostart: %w", err)
		}
	}

	enabled, err := provider.Autostart.Enabled()
	if err != nil {
		return err
	}
	return output.Print(autostartState{Enabled: enabled})
}
