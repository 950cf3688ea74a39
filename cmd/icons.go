package cmd

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/mj1618/taskbadge/internal/icons"
	"github.com/mj1618/taskbadge/internal/output"
	"github.com/spf13/cobra"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "List badge icons under the icons root",
	Long:  "List the .ico files a pass can resolve to, with the stem each one serves.",
	RunE:  runIcons,
}

var iconsCheckCmd = &cobra.Command{
	Use:   "check [path]",
	Short: "Validate that icon files decode",
	Long:  "Parse every .ico under the icons root (or a single file) and report its frames. Broken files are listed with the decode error.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runIconsCheck,
}

func init() {
	rootCmd.AddCommand(iconsCmd)
	iconsCmd.AddCommand(iconsCheckCmd)
}

// iconEntry is one inventory row.
type iconEntry struct {
	Stem   string `yaml:"stem"             json:"stem"`
	Path   string `yaml:"path"             json:"path"`
	Size   string `yaml:"size"             json:"size"`
	Subdir string `yaml:"subdir,omitempty" json:"subdir,omitempty"`
}

func runIcons(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	entries, err := icons.Inventory(cfg.IconsRoot, cfg.WorkspaceSubdir)
	if err != nil {
		return fmt.Errorf("failed to read icons root: %w", err)
	}
	rows := make([]iconEntry, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, iconEntry{
			Stem:   e.Stem,
			Path:   e.Path,
			Size:   humanize.Bytes(uint64(e.Size)),
			Subdir: e.Subdir,
		})
	}
	return output.Print(rows)
}

// checkEntry is one validation row.
type checkEntry struct {
	Path   string        `yaml:"path"             json:"path"`
	OK     bool          `yaml:"ok"               json:"ok"`
	Frames []icons.Frame `yaml:"frames,omitempty" json:"frames,omitempty"`
	Error  string        `yaml:"error,omitempty"  json:"error,omitempty"`
}

func runIconsCheck(cmd *cobra.Command, args []string) error {
	var paths []string
	if len(args) == 1 {
		paths = []string{args[0]}
	} else {
		cfg := loadConfig()
		entries, err := icons.Inventory(cfg.IconsRoot, cfg.WorkspaceSubdir)
		if err != nil {
			return fmt.Errorf("failed to read icons root: %w", err)
		}
		for _, e := range entries {
			paths = append(paths, e.Path)
		}
	}

	rows := make([]checkEntry, 0, len(paths))
	broken := 0
	for _, p := range paths {
		frames, err := icons.CheckFile(p)
		row := checkEntry{Path: p, OK: err == nil, Frames: frames}
		if err != nil {
			row.Error = err.Error()
			broken++
		}
		rows = append(rows, row)
	}
	if err := output.Print(rows); err != nil {
		return err
	}
	if broken > 0 {
		return fmt.Errorf("%d of %d icon files failed to decode", broken, len(paths))
	}
	return nil
}
