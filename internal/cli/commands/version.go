package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/extcmd/pkg/command"
)

// Version is set via ldflags at build time.
var Version = "dev"

// NewVersionCommand creates the version command.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  "Print the version of extcmd and the size of its command table.",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "extcmd %s (%d command identifiers)\n", Version, len(command.Identifiers()))
		},
	}
}
