package commands

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/extcmd/pkg/audit"
	"github.com/ccollicutt/extcmd/pkg/checker"
)

// ParseOptions holds command-line options for the parse command.
type ParseOptions struct {
	Output string
}

// parseOutput is the JSON shape printed by parse --output json.
type parseOutput struct {
	EntryTime  *uint64  `json:"entry_time,omitempty"`
	Kind       string   `json:"kind,omitempty"`
	Group      string   `json:"group,omitempty"`
	Identifier string   `json:"identifier,omitempty"`
	Arguments  string   `json:"arguments"`
	Fields     []string `json:"fields,omitempty"`
	Error      string   `json:"error,omitempty"`
}

// NewParseCommand creates the parse command.
func NewParseCommand() *cobra.Command {
	opts := &ParseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <command-line>",
		Short: "Parse and classify a single external command line",
		Long: `Parse one external command line of the form

  [<entry time>] <IDENTIFIER>;<arguments>

and print "<IDENTIFIER>;<arguments>" for a known or custom command, or
"UNKNOWN COMMAND: <IDENTIFIER>;<arguments>" otherwise. Quote the line so the
shell passes it as one argument; multiple arguments are joined with spaces.

Exit codes:
  0 - Command recognized
  1 - Missing argument, malformed line or unknown command`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")

	return cmd
}

func runParse(cmd *cobra.Command, args []string, opts *ParseOptions) error {
	if opts.Output != "text" && opts.Output != "json" {
		return fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		fmt.Fprintln(out, "Not enough arguments!")
		ExitCode = 1
		return nil
	}
	line := strings.Join(args, " ")

	var sink audit.Sink = audit.Nop()
	if opts.Output == "text" {
		sink = audit.NewWriterSink(out)
	}
	if Verbose {
		sink = audit.Multi(sink, audit.NewLoggerSink(Logger))
	}

	c := checker.New(checker.WithSink(sink), checker.WithLogger(Logger))
	lr := c.CheckLine(line)

	if lr.Status != checker.StatusAccepted {
		ExitCode = 1
	}

	if opts.Output == "json" {
		return writeParseJSON(cmd, lr)
	}

	if lr.Status == checker.StatusMalformed {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", lr.Err)
	}
	return nil
}

func writeParseJSON(cmd *cobra.Command, lr *checker.LineResult) error {
	po := parseOutput{
		Identifier: lr.Identifier,
		Arguments:  lr.Arguments,
	}
	if lr.Command != nil {
		et := lr.Command.EntryTime
		po.EntryTime = &et
		po.Kind = lr.Command.Kind.String()
		po.Group = string(lr.Command.Kind.Group())
		po.Fields = lr.Command.Fields()
	}
	if lr.Err != nil {
		po.Error = lr.Err.Error()
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	if err := enc.Encode(po); err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	return nil
}
