package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mj1618/taskbadge/internal/config"
	"github.com/mj1618/taskbadge/internal/icons"
	"github.com/mj1618/taskbadge/internal/platform"
	"github.com/spf13/cobra"
)

// CheckResult represents the outcome of a single doctor check.
type CheckResult struct {
	Name    string
	Status  string // "✓", "⚠", "✗"
	Details string // Only shown if Status != "✓"
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Validate the badge environment",
	Long: `Health check for taskbadge.

Validates:
- Platform support (window enumeration, taskbar overlays)
- Config file readability
- Icons root existence and contents
- That every icon file decodes
- Autostart registration state

Examples:
  taskbadge doctor          # Run full health check
  taskbadge doctor --quiet  # Exit code only (0=healthy, 1=issues)`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
	doctorCmd.Flags().BoolP("quiet", "q", false, "Quiet mode - exit code only")
}

func runDoctor(cmd *cobra.Command, args []string) error {
	quiet, _ := cmd.Flags().GetBool("quiet")
	cfg := loadConfig()

	results := []CheckResult{
		checkPlatform(),
		checkConfig(),
		checkIconsRoot(cfg),
		checkIconFiles(cfg),
		checkAutostart(),
	}

	hasErrors := false
	for _, r := range results {
		if r.Status == "✗" {
			hasErrors = true
			break
		}
	}

	if !quiet {
		fmt.Println()
		fmt.Println("Check              Status")
		fmt.Println("─────────────────────────")
		for _, r := range results {
			fmt.Printf("%-18s %s\n", r.Name, statusGlyph(r.Status))
		}
		fmt.Println()

		hasDetails := false
		for _, r := range results {
			if r.Status != "✓" && r.Details != "" {
				if !hasDetails {
					fmt.Println("Details:")
					hasDetails = true
				}
				fmt.Printf("\n%s:\n%s\n", r.Name, r.Details)
			}
		}

		if hasErrors {
			fmt.Println("\n⚠ Issues found.")
		} else {
			fmt.Println("All checks passed.")
		}
	}

	if hasErrors {
		return fmt.Errorf("environment validation failed")
	}
	return nil
}

func statusGlyph(status string) string {
	switch status {
	case "✓":
		return color.New(color.FgHiGreen).Sprint(status)
	case "⚠":
		return color.New(color.FgYellow).Sprint(status)
	default:
		return color.New(color.FgRed).Sprint(status)
	}
}

// checkPlatform verifies the overlay backend is available.
func checkPlatform() CheckResult {
	provider, err := platform.NewProvider()
	if err != nil {
		return CheckResult{Name: "Platform", Status: "✗", Details: "  " + err.Error()}
	}
	if provider.Enumerator == nil || provider.Overlayer == nil {
		return CheckResult{Name: "Platform", Status: "✗", Details: "  window enumeration or overlays unavailable"}
	}
	return CheckResult{Name: "Platform", Status: "✓"}
}

// checkConfig reports on the config file without failing hard; a missing
// file is normal, a corrupt one is worth a warning.
func checkConfig() CheckResult {
	path, err := config.Path()
	if err != nil {
		return CheckResult{Name: "Config", Status: "⚠", Details: "  cannot locate user config dir: " + err.Error()}
	}
	if flagPath, _ := rootCmd.PersistentFlags().GetString("config"); flagPath != "" {
		path = flagPath
	}
	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		return CheckResult{Name: "Config", Status: "⚠", Details: "  " + path + " not found, defaults in effect"}
	}
	if _, loadErr := config.Load(path); loadErr != nil {
		return CheckResult{Name: "Config", Status: "⚠", Details: "  " + loadErr.Error()}
	}
	return CheckResult{Name: "Config", Status: "✓"}
}

// checkIconsRoot verifies the icon directory exists and holds icons.
func checkIconsRoot(cfg config.Config) CheckResult {
	info, err := os.Stat(cfg.IconsRoot)
	if os.IsNotExist(err) {
		return CheckResult{
			Name:    "Icons Root",
			Status:  "✗",
			Details: "  " + cfg.IconsRoot + " does not exist\n  Create it or set icons_root in the config file",
		}
	}
	if err != nil {
		return CheckResult{Name: "Icons Root", Status: "✗", Details: "  " + err.Error()}
	}
	if !info.IsDir() {
		return CheckResult{Name: "Icons Root", Status: "✗", Details: "  " + cfg.IconsRoot + " is not a directory"}
	}
	entries, err := icons.Inventory(cfg.IconsRoot, cfg.WorkspaceSubdir)
	if err != nil {
		return CheckResult{Name: "Icons Root", Status: "✗", Details: "  " + err.Error()}
	}
	if len(entries) == 0 {
		return CheckResult{
			Name:    "Icons Root",
			Status:  "⚠",
			Details: "  no .ico files under " + cfg.IconsRoot + "; every pass will skip with \"no icon\"",
		}
	}
	return CheckResult{Name: "Icons Root", Status: "✓"}
}

// checkIconFiles decodes every icon in the inventory.
func checkIconFiles(cfg config.Config) CheckResult {
	entries, err := icons.Inventory(cfg.IconsRoot, cfg.WorkspaceSubdir)
	if err != nil || len(entries) == 0 {
		// The icons root check already covers this state.
		return CheckResult{Name: "Icon Files", Status: "⚠", Details: "  nothing to check"}
	}
	var broken []string
	for _, e := range entries {
		if _, err := icons.CheckFile(e.Path); err != nil {
			broken = append(broken, fmt.Sprintf("%s: %v", e.Stem, err))
		}
	}
	if len(broken) > 0 {
		return CheckResult{
			Name:    "Icon Files",
			Status:  "✗",
			Details: "  " + strings.Join(broken, "\n  "),
		}
	}
	return CheckResult{Name: "Icon Files", Status: "✓"}
}

// checkAutostart reports the Run-key registration state. Informational:
// not being registered is a valid setup.
func checkAutostart() CheckResult {
	provider, err := platform.NewProvider()
	if err != nil || provider.Autostart == nil {
		return CheckResult{Name: "Autostart", Status: "⚠", Details: "  not available on this platform"}
	}
	enabled, err := provider.Autostart.Enabled()
	if err != nil {
		return CheckResult{Name: "Autostart", Status: "⚠", Details: "  " + err.Error()}
	}
	if enabled {
		return CheckResult{Name: "Autostart", Status: "✓"}
	}
	return CheckResult{Name: "Autostart", Status: "⚠", Details: "  not registered; run: taskbadge autostart --enable"}
}
