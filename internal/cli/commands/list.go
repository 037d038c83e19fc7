package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/extcmd/pkg/command"
)

// ListOptions holds command-line options for the list command.
type ListOptions struct {
	Group    string
	Synonyms bool
}

// NewListCommand creates the list command.
func NewListCommand() *cobra.Command {
	opts := &ListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List known command identifiers",
		Long: `List every command identifier in the command table with its kind and group.

Identifiers beginning with "` + command.CustomPrefix + `" that are not listed are accepted as
custom commands.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Group, "group", "g", "", "Only list commands of this group")
	cmd.Flags().BoolVar(&opts.Synonyms, "synonyms", true, "Include synonym identifiers")

	return cmd
}

func runList(cmd *cobra.Command, opts *ListOptions) error {
	group := command.Group(opts.Group)
	if group != command.GroupNone && !validGroup(group) {
		return fmt.Errorf("unknown group %q (use one of %v)", opts.Group, command.Groups())
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "IDENTIFIER\tKIND\tGROUP")

	count := 0
	for _, def := range command.Definitions() {
		if group != command.GroupNone && def.Group != group {
			continue
		}
		names := def.Names
		if !opts.Synonyms {
			names = names[:1]
		}
		for _, name := range names {
			fmt.Fprintf(tw, "%s\t%s\t%s\n", name, def.Kind, def.Group)
			count++
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if Verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "%d identifiers\n", count)
	}
	return nil
}

func validGroup(g command.Group) bool {
	for _, known := range command.Groups() {
		if known == g {
			return true
		}
	}
	return false
}
