package cmd

import (
	"strings"

	"github.com/mj1618/taskbadge/internal/badge"
	"github.com/mj1618/taskbadge/internal/output"
	"github.com/mj1618/taskbadge/internal/platform"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List visible windows and the badge each would get",
	Long:  "List visible top-level windows with title, process, and class, annotated with the icon a pass would resolve for them. Nothing is applied.",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().String("process", "", "Filter windows by process name substring")
	listCmd.Flags().Bool("eligible", false, "Only show windows that would receive a badge")
}

// windowEntry is one output row of the list command.
type windowEntry struct {
	Ref     string `yaml:"ref"               json:"ref"`
	Title   string `yaml:"title,omitempty"   json:"title,omitempty"`
	Process string `yaml:"process"           json:"process"`
	Class   string `yaml:"class,omitempty"   json:"class,omitempty"`
	Stem    string `yaml:"stem,omitempty"    json:"stem,omitempty"`
	Icon    string `yaml:"icon,omitempty"    json:"icon,omitempty"`
	Applied bool   `yaml:"applied,omitempty" json:"applied,omitempty"`
	Reason  string `yaml:"reason,omitempty"  json:"reason,omitempty"`
}

// listEntries annotates each window with the resolution a pass would
// reach for it. Pure so it can be tested without a live desktop. A nil
// tracker (one-shot CLI) leaves the applied column out; the MCP server
// passes its live tracker.
func listEntries(windows []badge.WindowInfo, resolver badge.Resolver, ignore badge.IgnoreList, tracker *badge.Tracker, processFilter string, eligibleOnly bool) []windowEntry {
	entries := []windowEntry{}
	filter := strings.ToLower(processFilter)
	for _, w := range windows {
		if filter != "" && !strings.Contains(strings.ToLower(w.ProcessName), filter) {
			continue
		}
		d := badge.Preview(w, resolver, ignore)
		if eligibleOnly && d.Action != badge.ActionApply {
			continue
		}
		entries = append(entries, windowEntry{
			Ref:     w.Ref.String(),
			Title:   w.Title,
			Process: w.ProcessName,
			Class:   w.WindowClass,
			Stem:    d.Stem,
			Icon:    d.Path,
			Applied: tracker != nil && tracker.IsApplied(w.Ref, w.Title),
			Reason:  d.Reason,
		})
	}
	return entries
}

func runList(cmd *cobra.Command, args []string) error {
	provider, err := platform.NewProvider()
	if err != nil {
		return err
	}

	processFilter, _ := cmd.Flags().GetString("process")
	eligibleOnly, _ := cmd.Flags().GetBool("eligible")

	windows, err := provider.Enumerator.VisibleWindows()
	if err != nil {
		return err
	}

	cfg := loadConfig()
	return output.Print(listEntries(windows, newResolver(cfg), badge.DefaultIgnoreList(), nil, processFilter, eligibleOnly))
}
