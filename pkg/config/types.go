// Package config provides configuration loading and validation for extcmd.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// CommandSources lists command files or glob patterns. "-" reads stdin.
	CommandSources []string `yaml:"command_sources"`

	// MergeByEntryTime checks lines of all sources in entry time order
	// instead of file by file.
	MergeByEntryTime bool `yaml:"merge_by_entry_time,omitempty"`

	// AllowCustomCommands accepts identifiers with the custom prefix.
	// Defaults to true.
	AllowCustomCommands *bool `yaml:"allow_custom_commands,omitempty"`

	// DeniedCommands are identifiers reported as issues even though they
	// are valid. Synonyms of a denied identifier are denied as well.
	DeniedCommands []string `yaml:"denied_commands,omitempty"`

	// Workers bounds how many files are checked concurrently.
	Workers int `yaml:"workers,omitempty"`

	// LogLevel is the zap level for diagnostic logging (debug, info, warn,
	// error).
	LogLevel string `yaml:"log_level,omitempty"`

	Webhooks []WebhookConfig `yaml:"webhooks,omitempty"`
}

// CustomCommandsAllowed reports whether custom commands are accepted.
func (c *Config) CustomCommandsAllowed() bool {
	return c.AllowCustomCommands == nil || *c.AllowCustomCommands
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnIssues fires only when issues are detected (default).
	WebhookTriggerOnIssues WebhookTrigger = "on_issues"
	// WebhookTriggerAlways fires after every check.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending check reports.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_issues" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
