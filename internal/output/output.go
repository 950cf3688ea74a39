package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/mj1618/taskbadge/internal/badge"
	"gopkg.in/yaml.v3"
)

// Format represents the output format.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// OutputFormat is the current output format, set by the root command's --format flag.
var OutputFormat Format = FormatYAML

// PrettyOutput enables pretty-printing for JSON output.
var PrettyOutput bool

// DecisionEntry is one per-window outcome inside a PassResult.
type DecisionEntry struct {
	Ref     string `yaml:"ref"               json:"ref"`
	Title   string `yaml:"title,omitempty"   json:"title,omitempty"`
	Process string `yaml:"process,omitempty" json:"process,omitempty"`
	Action  string `yaml:"action"            json:"action"`
	Stem    string `yaml:"stem,omitempty"    json:"stem,omitempty"`
	Path    string `yaml:"path,omitempty"    json:"path,omitempty"`
	Reason  string `yaml:"reason,omitempty"  json:"reason,omitempty"`
}

// PassResult is the top-level output of one badge pass.
type PassResult struct {
	TS             int64           `yaml:"ts"                  json:"ts"`
	Windows        int             `yaml:"windows"             json:"windows"`
	Applied        int             `yaml:"applied"             json:"applied"`
	AlreadyApplied int             `yaml:"already_applied"     json:"already_applied"`
	Skipped        int             `yaml:"skipped"             json:"skipped"`
	Cleared        int             `yaml:"cleared,omitempty"   json:"cleared,omitempty"`
	Failed         int             `yaml:"failed,omitempty"    json:"failed,omitempty"`
	Decisions      []DecisionEntry `yaml:"decisions,omitempty" json:"decisions,omitempty"`
}

// NewPassResult flattens a pass report for serialization. Decisions are
// included only when verbose is set; summaries stay one screen tall.
func NewPassResult(rep badge.Report, verbose bool) PassResult {
	res := PassResult{
		TS:             time.Now().Unix(),
		Windows:        len(rep.Decisions),
		Applied:        rep.Applied,
		AlreadyApplied: rep.AlreadyApplied,
		Skipped:        rep.Skipped,
		Cleared:        rep.Cleared,
		Failed:         rep.Failed,
	}
	if verbose {
		res.Decisions = make([]DecisionEntry, 0, len(rep.Decisions))
		for _, d := range rep.Decisions {
			res.Decisions = append(res.Decisions, DecisionEntry{
				Ref:     d.Ref.String(),
				Title:   d.Title,
				Process: d.Process,
				Action:  string(d.Action),
				Stem:    d.Stem,
				Path:    d.Path,
				Reason:  d.Reason,
			})
		}
	}
	return res
}

// Print serializes v to stdout in the current output format.
func Print(v interface{}) error {
	switch OutputFormat {
	case FormatJSON:
		if PrettyOutput {
			return PrintPrettyJSON(v)
		}
		return PrintJSON(v)
	case FormatYAML:
		return PrintYAML(v)
	default:
		return fmt.Errorf("unsupported output format: %s", OutputFormat)
	}
}

// PrintJSON serializes v to stdout as compact single-line JSON.
func PrintJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintPrettyJSON serializes v to stdout as indented JSON.
func PrintPrettyJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

// PrintYAML serializes v to stdout as YAML.
func PrintYAML(v interface{}) error {
	enc := yaml.NewEncoder(os.Stdout)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("yaml encode: %w", err)
	}
	return enc.Close()
}
