package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/extcmd/pkg/command"
)

// RenderOptions holds command-line options for the render command.
type RenderOptions struct {
	Time  int64
	Force bool
}

// NewRenderCommand creates the render command.
func NewRenderCommand() *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render <IDENTIFIER> [argument...]",
		Short: "Render an external command line",
		Long: `Render a command line suitable for writing to the command pipe:

  [<entry time>] <IDENTIFIER>;<arg1>;<arg2>...

Line breaks inside arguments are escaped as \r and \n. The entry time
defaults to now. Identifiers must be known or custom unless --force is set.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args, opts)
		},
	}

	cmd.Flags().Int64VarP(&opts.Time, "time", "t", 0, "Entry time as Unix seconds (default now)")
	cmd.Flags().BoolVar(&opts.Force, "force", false, "Render identifiers that are not in the command table")

	return cmd
}

func runRender(cmd *cobra.Command, args []string, opts *RenderOptions) error {
	identifier := args[0]

	if !opts.Force && command.Classify(identifier) == command.Unknown {
		return &command.UnknownCommandError{Identifier: identifier}
	}

	entryTime := opts.Time
	if !cmd.Flags().Changed("time") {
		entryTime = time.Now().Unix()
	}
	if entryTime < 0 {
		return fmt.Errorf("invalid entry time %d", entryTime)
	}

	line, err := command.Render(uint64(entryTime), identifier, args[1:]...)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), line)
	return nil
}
