package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "extcmd: %d lines checked, %d accepted, %d total issues\n",
		report.Summary.LinesChecked,
		report.Summary.Accepted,
		report.Summary.TotalIssues)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	fmt.Fprintln(w, "=== extcmd Check Report ===")
	fmt.Fprintln(w)

	if len(report.Issues) == 0 {
		fmt.Fprintln(w, "No issues detected")
		fmt.Fprintln(w)
	} else {
		fmt.Fprintf(w, "Issues: %d\n", len(report.Issues))
		for i := range report.Issues {
			f.formatEntry(&report.Issues[i], w)
		}
		fmt.Fprintln(w)
	}

	if f.opts.Verbose {
		if len(report.Accepted) > 0 {
			fmt.Fprintf(w, "Accepted: %d\n", len(report.Accepted))
			for i := range report.Accepted {
				f.formatEntry(&report.Accepted[i], w)
			}
			fmt.Fprintln(w)
		}

		if len(report.Commands) > 0 {
			fmt.Fprintln(w, "Commands:")
			for _, kc := range report.Commands {
				fmt.Fprintf(w, "  %-45s %-12s %d\n", kc.Kind, kc.Group, kc.Count)
			}
			fmt.Fprintln(w)
		}
	}

	fmt.Fprintln(w, "---")
	_, err := fmt.Fprintf(w, "Summary: %d lines checked, %d accepted, %d malformed, %d unknown, %d denied\n",
		report.Summary.LinesChecked,
		report.Summary.Accepted,
		report.Summary.Malformed,
		report.Summary.Unknown,
		report.Summary.Denied)
	if err != nil {
		return err
	}

	if f.opts.Verbose {
		fmt.Fprintf(w, "Run ID: %s\n", report.Metadata.RunID)
		fmt.Fprintf(w, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatEntry(e *Entry, w io.Writer) {
	status := strings.ToUpper(string(e.Status))
	switch {
	case e.Identifier != "":
		fmt.Fprintf(w, "  - [%s] %s;%s\n", status, e.Identifier, e.Arguments)
	case e.Reason != "":
		fmt.Fprintf(w, "  - [%s] %s\n", status, e.Reason)
	default:
		fmt.Fprintf(w, "  - [%s]\n", status)
	}

	if e.Identifier != "" && e.Reason != "" && f.opts.Verbose {
		fmt.Fprintf(w, "    Reason: %s\n", e.Reason)
	}
	if e.Source != "" {
		fmt.Fprintf(w, "    Source: %s:%d\n", e.Source, e.Line)
	}
}
