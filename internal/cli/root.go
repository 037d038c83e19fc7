// Package cli provides the command-line interface for extcmd.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap/zapcore"

	"github.com/ccollicutt/extcmd/internal/cli/commands"
	"github.com/ccollicutt/extcmd/pkg/config"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return Run(os.Args[1:], os.Stdout, os.Stderr)
}

// Run executes the CLI with args, writing command output to stdout and
// errors to stderr, and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	commands.ExitCode = 0

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	_ = commands.Logger.Sync()

	if err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2 // Configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "extcmd",
		Short: "Parse and check Icinga external command lines",
		Long: `extcmd parses external command lines of the form

  [<entry time>] <IDENTIFIER>;<arguments>

as written to the command pipe of an Icinga or Nagios style monitoring core.
It classifies each identifier against the table of known commands, accepts
identifiers starting with "_" as custom commands, and reports malformed,
unknown and denied commands.

Set ` + config.EnvLogLevel + ` to change the diagnostic log level.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zapcore.InfoLevel
			if env := os.Getenv(config.EnvLogLevel); env != "" {
				l, err := config.ParseLogLevel(env)
				if err != nil {
					return fmt.Errorf("%s: %w", config.EnvLogLevel, err)
				}
				level = l
			}
			if commands.Verbose {
				level = zapcore.DebugLevel
			}

			logger, err := commands.NewLogger(level)
			if err != nil {
				return err
			}
			commands.Logger = logger
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&commands.Verbose, "verbose", "v", false,
		"Debug logging, audit records on stderr and detailed reports")

	rootCmd.AddCommand(commands.NewParseCommand())
	rootCmd.AddCommand(commands.NewCheckCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewRenderCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
