// Package output provides formatting and output generation for check results.
package output

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/ccollicutt/extcmd/pkg/checker"
	"github.com/ccollicutt/extcmd/pkg/command"
)

// Report is the complete check output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Issues lists every line that was not accepted, in source order.
	Issues []Entry `json:"issues"`

	// Accepted lists accepted lines. Only filled for verbose checks.
	Accepted []Entry `json:"accepted,omitempty"`

	// Commands counts accepted and denied lines per command kind.
	Commands []KindCount `json:"commands"`

	// Metadata provides context about the check.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	LinesChecked int `json:"lines_checked"`
	BlankLines   int `json:"blank_lines"`
	Accepted     int `json:"accepted"`
	Malformed    int `json:"malformed"`
	Unknown      int `json:"unknown"`
	Denied       int `json:"denied"`

	// TotalIssues is malformed + unknown + denied.
	TotalIssues int `json:"total_issues"`
}

// Entry describes one checked line.
type Entry struct {
	Source     string         `json:"source,omitempty"`
	Line       int            `json:"line,omitempty"`
	Status     checker.Status `json:"status"`
	EntryTime  uint64         `json:"entry_time,omitempty"`
	Identifier string         `json:"identifier,omitempty"`
	Arguments  string         `json:"arguments,omitempty"`
	Reason     string         `json:"reason,omitempty"`
}

// KindCount is the number of lines seen for one command kind.
type KindCount struct {
	Kind  string        `json:"kind"`
	Group command.Group `json:"group"`
	Count int           `json:"count"`
}

// Metadata provides context about the check run.
type Metadata struct {
	// RunID uniquely identifies this run across reports and webhooks.
	RunID string `json:"run_id"`

	// ConfigFile is the path to the configuration file used.
	ConfigFile string `json:"config_file,omitempty"`

	// Sources lists the command files that were checked.
	Sources []string `json:"sources"`

	// CheckedAt is when the check completed.
	CheckedAt time.Time `json:"checked_at"`

	// Duration is how long the check took.
	Duration time.Duration `json:"duration"`
}

// NewReport creates a Report from check results.
func NewReport(result *checker.Result, configFile string) *Report {
	report := &Report{
		Issues: make([]Entry, 0, len(result.Issues)),
		Metadata: Metadata{
			RunID:      uuid.NewString(),
			ConfigFile: configFile,
			Sources:    result.Sources,
			CheckedAt:  result.EndTime,
			Duration:   result.EndTime.Sub(result.StartTime),
		},
		Summary: Summary{
			LinesChecked: result.Lines,
			BlankLines:   result.Blank,
			Accepted:     result.Accepted,
			Malformed:    result.Malformed,
			Unknown:      result.Unknown,
			Denied:       result.Denied,
			TotalIssues:  result.TotalIssues(),
		},
	}

	for _, lr := range result.Issues {
		report.Issues = append(report.Issues, newEntry(lr))
	}
	for _, lr := range result.AcceptedLines {
		report.Accepted = append(report.Accepted, newEntry(lr))
	}

	report.Commands = make([]KindCount, 0, len(result.ByKind))
	for k, n := range result.ByKind {
		report.Commands = append(report.Commands, KindCount{Kind: k.String(), Group: k.Group(), Count: n})
	}
	sort.Slice(report.Commands, func(i, j int) bool {
		a, b := report.Commands[i], report.Commands[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Kind < b.Kind
	})

	return report
}

func newEntry(lr *checker.LineResult) Entry {
	e := Entry{
		Source:     lr.Source,
		Line:       lr.LineNum,
		Status:     lr.Status,
		Identifier: lr.Identifier,
		Arguments:  lr.Arguments,
	}
	if lr.Command != nil {
		e.EntryTime = lr.Command.EntryTime
	}
	if lr.Err != nil {
		e.Reason = lr.Err.Error()
	}
	return e
}

// HasIssues returns true if any issues were detected.
func (r *Report) HasIssues() bool {
	return r.Summary.TotalIssues > 0
}
