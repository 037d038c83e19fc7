package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ccollicutt/extcmd/pkg/audit"
	"github.com/ccollicutt/extcmd/pkg/checker"
	"github.com/ccollicutt/extcmd/pkg/config"
	"github.com/ccollicutt/extcmd/pkg/output"
	"github.com/ccollicutt/extcmd/pkg/parser"
	"github.com/ccollicutt/extcmd/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// CheckOptions holds command-line options for the check command.
type CheckOptions struct {
	Output   string
	Quiet    bool
	Merge    bool
	AuditLog string

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	opts := &CheckOptions{}

	cmd := &cobra.Command{
		Use:   "check <config-file>",
		Short: "Check command files for malformed, unknown or denied commands",
		Long: `Check every line of the command sources named in the configuration file.

Reports:
  - Malformed lines (missing [, ] or ; delimiters)
  - Unknown command identifiers
  - Denied commands and disallowed custom commands

Exit codes:
  0 - All commands accepted
  1 - Issues detected
  2 - Configuration or runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVar(&opts.Merge, "merge", false, "Check all sources in entry time order (overrides merge_by_entry_time)")
	cmd.Flags().StringVar(&opts.AuditLog, "audit-log", "", "Append audit records for every command to this file")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_issues", "When to fire webhook (on_issues|always|never)")

	return cmd
}

func runCheck(cmd *cobra.Command, args []string, opts *CheckOptions) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	formatter, err := createFormatter(opts)
	if err != nil {
		return err
	}

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !Verbose {
		if level, err := config.ParseLogLevel(cfg.LogLevel); err == nil {
			LogLevel.SetLevel(level)
		}
	}

	files, err := parser.ExpandGlobs(cfg.CommandSources)
	if err != nil {
		return fmt.Errorf("expanding command sources: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no command files matched patterns: %v", cfg.CommandSources)
	}

	var sinks []audit.Sink
	if Verbose {
		sinks = append(sinks, audit.NewLoggerSink(Logger))
	}
	if opts.AuditLog != "" {
		f, err := os.OpenFile(opts.AuditLog, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644) // #nosec G304 -- user-provided path is expected
		if err != nil {
			return fmt.Errorf("opening audit log: %w", err)
		}
		defer func() { _ = f.Close() }()
		sinks = append(sinks, audit.NewWriterSink(f))
	}

	c := checker.New(
		checker.WithSink(audit.Multi(sinks...)),
		checker.WithLogger(Logger),
		checker.WithDenied(cfg.DeniedCommands...),
		checker.WithCustomCommands(cfg.CustomCommandsAllowed()),
		checker.WithVerbose(Verbose),
		checker.WithWorkers(cfg.Workers),
	)

	merge := cfg.MergeByEntryTime || opts.Merge
	Logger.Debug("checking command sources",
		zap.Strings("files", files),
		zap.Bool("merge", merge),
		zap.Int("workers", cfg.Workers))

	result, err := c.CheckFiles(ctx, files, merge)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	report := output.NewReport(result, configPath)

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Webhook failures are logged but don't fail the check
	webhook.NewDispatcher(nil, Logger).Dispatch(ctx, collectWebhooks(cfg, opts), report)

	if report.HasIssues() {
		ExitCode = 1
	}

	return nil
}

func createFormatter(opts *CheckOptions) (output.Formatter, error) {
	f := output.NewFormatter(opts.Output, output.FormatOptions{
		Verbose: Verbose,
		Quiet:   opts.Quiet,
	})
	if f == nil {
		return nil, fmt.Errorf("unknown output format %q (use text or json)", opts.Output)
	}
	return f, nil
}

// collectWebhooks merges config file webhooks with CLI webhook.
func collectWebhooks(cfg *config.Config, opts *CheckOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnIssues
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}
