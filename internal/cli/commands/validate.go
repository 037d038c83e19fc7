package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/extcmd/pkg/command"
	"github.com/ccollicutt/extcmd/pkg/config"
	"github.com/ccollicutt/extcmd/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate an extcmd configuration file without checking any commands.

Checks:
  - YAML syntax
  - Required fields
  - Denied command identifiers exist in the command table
  - Log level and webhook settings
  - Command source file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Command sources:  %d pattern(s)\n", len(cfg.CommandSources))
	fmt.Fprintf(out, "  Merge by time:    %t\n", cfg.MergeByEntryTime)
	fmt.Fprintf(out, "  Custom commands:  %s\n", allowedString(cfg.CustomCommandsAllowed()))
	fmt.Fprintf(out, "  Workers:          %d\n", cfg.Workers)
	fmt.Fprintf(out, "  Log level:        %s\n", cfg.LogLevel)
	fmt.Fprintf(out, "  Webhooks:         %d\n", len(cfg.Webhooks))

	if len(cfg.DeniedCommands) > 0 {
		fmt.Fprintf(out, "\nDenied commands:\n")
		for _, id := range cfg.DeniedCommands {
			kind, _ := command.Lookup(id)
			if kind.String() != id {
				fmt.Fprintf(out, "  - %s (same as %s)\n", id, kind)
			} else {
				fmt.Fprintf(out, "  - %s\n", id)
			}
		}
	}

	// Check if command sources exist (warnings only)
	files, err := parser.ExpandGlobs(cfg.CommandSources)
	if err != nil {
		fmt.Fprintf(out, "\nWarning: Error expanding command source patterns: %v\n", err)
	} else if len(files) == 0 {
		fmt.Fprintf(out, "\nWarning: No files match command source patterns\n")
	} else {
		fmt.Fprintf(out, "\nCommand files matched: %d\n", len(files))
		for _, f := range files {
			fmt.Fprintf(out, "  - %s\n", f)
		}
	}

	return nil
}

func allowedString(allowed bool) string {
	if allowed {
		return "allowed"
	}
	return "denied"
}
