// Package checker parses, classifies and audits external command lines and
// applies command policy to them.
package checker

import (
	"time"

	"github.com/ccollicutt/extcmd/pkg/command"
)

// Status is the outcome of checking a single line.
type Status string

const (
	// StatusAccepted is a well-formed line with a known or custom command.
	StatusAccepted Status = "accepted"

	// StatusMalformed is a line that does not follow the command grammar.
	StatusMalformed Status = "malformed"

	// StatusUnknown is a well-formed line whose identifier is not a command.
	StatusUnknown Status = "unknown"

	// StatusDenied is a valid command that policy does not allow.
	StatusDenied Status = "denied"
)

// LineResult is the outcome of checking one line.
type LineResult struct {
	// Source is the file the line came from, if any.
	Source string

	// LineNum is the 1-based line number within Source.
	LineNum int

	// Raw is the line as read.
	Raw string

	Status Status

	// Command is set for accepted and denied lines.
	Command *command.Command

	// Identifier and Arguments are set whenever the line was well-formed.
	Identifier string
	Arguments  string

	// Err describes why a malformed or unknown line was rejected.
	Err error
}

// IsIssue reports whether the line needs attention.
func (r *LineResult) IsIssue() bool {
	return r.Status != StatusAccepted
}

// Result summarizes a check run.
type Result struct {
	// Sources lists the command sources in the order they were first seen.
	Sources []string

	// Lines is the number of non-blank lines checked.
	Lines int

	// Blank is the number of lines skipped because they were empty after
	// normalization.
	Blank int

	Accepted  int
	Malformed int
	Unknown   int
	Denied    int

	// ByKind counts accepted and denied lines per command kind.
	ByKind map[command.Kind]int

	// Issues holds every line that is not accepted.
	Issues []*LineResult

	// Lines accepted without issues, only retained in verbose mode.
	AcceptedLines []*LineResult

	StartTime time.Time
	EndTime   time.Time
}

func newResult() *Result {
	return &Result{
		ByKind:    make(map[command.Kind]int),
		StartTime: time.Now(),
	}
}

// TotalIssues returns the number of lines that were not accepted.
func (r *Result) TotalIssues() int {
	return r.Malformed + r.Unknown + r.Denied
}

// HasIssues returns true if any line was not accepted.
func (r *Result) HasIssues() bool {
	return r.TotalIssues() > 0
}

func (r *Result) record(lr *LineResult, verbose bool) {
	r.Lines++
	switch lr.Status {
	case StatusAccepted:
		r.Accepted++
	case StatusMalformed:
		r.Malformed++
	case StatusUnknown:
		r.Unknown++
	case StatusDenied:
		r.Denied++
	}
	if lr.Command != nil {
		r.ByKind[lr.Command.Kind]++
	}
	if lr.IsIssue() {
		r.Issues = append(r.Issues, lr)
	} else if verbose {
		r.AcceptedLines = append(r.AcceptedLines, lr)
	}
}

func (r *Result) merge(other *Result) {
	seen := make(map[string]bool, len(r.Sources))
	for _, s := range r.Sources {
		seen[s] = true
	}
	for _, s := range other.Sources {
		if !seen[s] {
			seen[s] = true
			r.Sources = append(r.Sources, s)
		}
	}
	r.Lines += other.Lines
	r.Blank += other.Blank
	r.Accepted += other.Accepted
	r.Malformed += other.Malformed
	r.Unknown += other.Unknown
	r.Denied += other.Denied
	for k, n := range other.ByKind {
		r.ByKind[k] += n
	}
	r.Issues = append(r.Issues, other.Issues...)
	r.AcceptedLines = append(r.AcceptedLines, other.AcceptedLines...)
}
