package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/extcmd/pkg/config"
	"github.com/ccollicutt/extcmd/pkg/output"
	"github.com/ccollicutt/extcmd/pkg/webhook"
)

// runCommand executes cmd with args and returns what it wrote.
func runCommand(t *testing.T, cmd *cobra.Command, args ...string) (string, string, error) {
	t.Helper()
	ExitCode = 0
	t.Cleanup(func() { ExitCode = 0 })

	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write %s: %v", name, err)
	}
	return path
}

func TestNewCommands(t *testing.T) {
	tests := []struct {
		cmd   *cobra.Command
		use   string
		flags []string
	}{
		{NewParseCommand(), "parse <command-line>", []string{"output"}},
		{NewCheckCommand(), "check <config-file>", []string{"output", "quiet", "merge", "audit-log", "webhook-url", "webhook-token", "webhook-trigger"}},
		{NewValidateCommand(), "validate <config-file>", nil},
		{NewListCommand(), "list", []string{"group", "synonyms"}},
		{NewRenderCommand(), "render <IDENTIFIER> [argument...]", []string{"time", "force"}},
		{NewVersionCommand(), "version", nil},
	}

	for _, tt := range tests {
		t.Run(tt.use, func(t *testing.T) {
			if tt.cmd.Use != tt.use {
				t.Errorf("Unexpected Use: %s", tt.cmd.Use)
			}
			for _, flag := range tt.flags {
				if tt.cmd.Flags().Lookup(flag) == nil {
					t.Errorf("Missing flag: %s", flag)
				}
			}
		})
	}
}

// ============================================================================
// parse
// ============================================================================

func TestRunParse(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		want     string
		wantCode int
	}{
		{
			name:     "service check result",
			args:     []string{"[1339511440] PROCESS_SERVICE_CHECK_RESULT;host1;service1;0;OK"},
			want:     "PROCESS_SERVICE_CHECK_RESULT;host1;service1;0;OK\n",
			wantCode: 0,
		},
		{
			name:     "synonym keeps its spelling",
			args:     []string{"[0]x;SHUTDOWN_PROGRAM;"},
			want:     "SHUTDOWN_PROGRAM;\n",
			wantCode: 0,
		},
		{
			name:     "custom command",
			args:     []string{"[5] _MY_PLUGIN_HOOK;a;b"},
			want:     "_MY_PLUGIN_HOOK;a;b\n",
			wantCode: 0,
		},
		{
			name:     "unknown command",
			args:     []string{"[5] NOT_A_REAL_COMMAND;x"},
			want:     "UNKNOWN COMMAND: NOT_A_REAL_COMMAND;x\n",
			wantCode: 1,
		},
		{
			name:     "split by the shell",
			args:     []string{"[5]", "ENABLE_NOTIFICATIONS;"},
			want:     "ENABLE_NOTIFICATIONS;\n",
			wantCode: 0,
		},
		{
			name:     "missing argument",
			args:     nil,
			want:     "Not enough arguments!\n",
			wantCode: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := runCommand(t, NewParseCommand(), tt.args...)
			if err != nil {
				t.Fatalf("parse returned error: %v", err)
			}
			if stdout != tt.want {
				t.Errorf("stdout = %q, want %q", stdout, tt.want)
			}
			if ExitCode != tt.wantCode {
				t.Errorf("ExitCode = %d, want %d", ExitCode, tt.wantCode)
			}
		})
	}
}

func TestRunParse_Malformed(t *testing.T) {
	stdout, stderr, err := runCommand(t, NewParseCommand(), "[1339511440 BOGUS;x")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty", stdout)
	}
	if !strings.Contains(stderr, "missing ] character") {
		t.Errorf("stderr = %q, want missing ] message", stderr)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunParse_JSON(t *testing.T) {
	stdout, _, err := runCommand(t, NewParseCommand(), "-o", "json", "[abc]x;DISABLE_NOTIFICATIONS;all;now")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}

	var got parseOutput
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if got.EntryTime == nil || *got.EntryTime != 0 {
		t.Errorf("EntryTime = %v, want 0", got.EntryTime)
	}
	if got.Kind != "DISABLE_NOTIFICATIONS" || got.Group != "program" {
		t.Errorf("Kind/Group = %s/%s", got.Kind, got.Group)
	}
	if got.Arguments != "all;now" {
		t.Errorf("Arguments = %q", got.Arguments)
	}
	if len(got.Fields) != 2 {
		t.Errorf("Fields = %v, want 2 fields", got.Fields)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
}

func TestRunParse_JSONUnknown(t *testing.T) {
	stdout, _, err := runCommand(t, NewParseCommand(), "--output", "json", "[1] NOPE;x")
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}

	var got parseOutput
	if err := json.Unmarshal([]byte(stdout), &got); err != nil {
		t.Fatalf("invalid JSON %q: %v", stdout, err)
	}
	if got.EntryTime != nil || got.Kind != "" {
		t.Errorf("unknown command should carry no entry time or kind: %+v", got)
	}
	if got.Identifier != "NOPE" || !strings.Contains(got.Error, "unknown command") {
		t.Errorf("got %+v", got)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunParse_BadOutput(t *testing.T) {
	_, _, err := runCommand(t, NewParseCommand(), "-o", "xml", "[1] NOPE;")
	if err == nil {
		t.Error("Expected error for unknown output format")
	}
}

// ============================================================================
// check
// ============================================================================

func writeCheckConfig(t *testing.T, extra string) (string, string) {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "a.log", strings.Join([]string{
		"[1700000000] PROCESS_HOST_CHECK_RESULT;web01;0;UP",
		"[1700000001] SHUTDOWN_PROGRAM;",
		"",
		"[1700000002] MAKE_COFFEE;large",
	}, "\n")+"\n")
	writeFile(t, dir, "b.log", strings.Join([]string{
		"[1700000003] _RELOAD;now",
		"garbage",
	}, "\n")+"\n")

	cfg := "command_sources:\n  - " + filepath.Join(dir, "*.log") + "\n" +
		"denied_commands:\n  - SHUTDOWN_PROGRAM\n" + extra
	return writeFile(t, dir, "config.yaml", cfg), dir
}

func TestRunCheck_JSON(t *testing.T) {
	configPath, _ := writeCheckConfig(t, "")

	stdout, _, err := runCommand(t, NewCheckCommand(), "-o", "json", configPath)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}

	var report output.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}

	want := output.Summary{
		LinesChecked: 5,
		BlankLines:   1,
		Accepted:     2,
		Malformed:    1,
		Unknown:      1,
		Denied:       1,
		TotalIssues:  3,
	}
	if report.Summary != want {
		t.Errorf("Summary = %+v, want %+v", report.Summary, want)
	}
	if len(report.Metadata.Sources) != 2 {
		t.Errorf("Sources = %v", report.Metadata.Sources)
	}
	if report.Metadata.RunID == "" {
		t.Error("RunID is empty")
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunCheck_CustomCommandsDisallowed(t *testing.T) {
	configPath, _ := writeCheckConfig(t, "allow_custom_commands: false\n")

	stdout, _, err := runCommand(t, NewCheckCommand(), "-o", "json", "-q", configPath)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}

	var summary output.Summary
	if err := json.Unmarshal([]byte(stdout), &summary); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, stdout)
	}
	if summary.Denied != 2 {
		t.Errorf("Denied = %d, want 2", summary.Denied)
	}
}

func TestRunCheck_Clean(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "ok.log", "[1] SAVE_STATE_INFORMATION;\n[2] READ_STATE_INFORMATION;\n")
	configPath := writeFile(t, dir, "config.yaml", "command_sources: ["+filepath.Join(dir, "ok.log")+"]\n")

	stdout, _, err := runCommand(t, NewCheckCommand(), configPath)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}
	if !strings.Contains(stdout, "No issues detected") {
		t.Errorf("stdout = %q", stdout)
	}
	if ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", ExitCode)
	}
}

func TestRunCheck_AuditLog(t *testing.T) {
	configPath, dir := writeCheckConfig(t, "merge_by_entry_time: true\n")
	auditPath := filepath.Join(dir, "audit.txt")

	_, _, err := runCommand(t, NewCheckCommand(), "-q", "--audit-log", auditPath, configPath)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}

	data, err := os.ReadFile(auditPath)
	if err != nil {
		t.Fatalf("reading audit log: %v", err)
	}
	want := "PROCESS_HOST_CHECK_RESULT;web01;0;UP\n" +
		"SHUTDOWN_PROGRAM;\n" +
		"UNKNOWN COMMAND: MAKE_COFFEE;large\n" +
		"_RELOAD;now\n"
	if string(data) != want {
		t.Errorf("audit log = %q, want %q", string(data), want)
	}
}

func TestRunCheck_Webhook(t *testing.T) {
	var calls atomic.Int32
	var runID atomic.Value
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		runID.Store(r.Header.Get(webhook.RunIDHeader))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	configPath, _ := writeCheckConfig(t, "")

	stdout, _, err := runCommand(t, NewCheckCommand(), "-o", "json", "--webhook-url", server.URL, configPath)
	if err != nil {
		t.Fatalf("check returned error: %v", err)
	}

	var report output.Report
	if err := json.Unmarshal([]byte(stdout), &report); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("webhook calls = %d, want 1", calls.Load())
	}
	if got, _ := runID.Load().(string); got != report.Metadata.RunID {
		t.Errorf("webhook run ID = %q, report run ID = %q", got, report.Metadata.RunID)
	}
}

func TestRunCheck_MissingFile(t *testing.T) {
	_, _, err := runCommand(t, NewCheckCommand(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRunCheck_NoMatchingSources(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "command_sources: []\n")

	_, _, err := runCommand(t, NewCheckCommand(), configPath)
	if err == nil {
		t.Error("Expected error for empty command_sources")
	}
}

func TestCreateFormatter(t *testing.T) {
	tests := []struct {
		output  string
		wantErr bool
	}{
		{"text", false},
		{"json", false},
		{"invalid", true},
	}

	for _, tt := range tests {
		t.Run(tt.output, func(t *testing.T) {
			_, err := createFormatter(&CheckOptions{Output: tt.output})
			if (err != nil) != tt.wantErr {
				t.Errorf("createFormatter(%q) error = %v, wantErr %v", tt.output, err, tt.wantErr)
			}
		})
	}
}

func TestCollectWebhooks(t *testing.T) {
	cfg := &config.Config{
		Webhooks: []config.WebhookConfig{
			{Name: "slack", URL: "https://slack.com/webhook"},
			{Name: "pagerduty", URL: "https://pagerduty.com/webhook"},
		},
	}

	t.Run("config only", func(t *testing.T) {
		webhooks := collectWebhooks(cfg, &CheckOptions{})
		if len(webhooks) != 2 {
			t.Errorf("got %d webhooks, want 2", len(webhooks))
		}
	})

	t.Run("config and cli", func(t *testing.T) {
		webhooks := collectWebhooks(cfg, &CheckOptions{
			WebhookURL:   "https://cli.example.com/webhook",
			WebhookToken: "cli-token",
		})
		if len(webhooks) != 3 {
			t.Fatalf("got %d webhooks, want 3", len(webhooks))
		}
		cli := webhooks[2]
		if cli.Name != "cli" || cli.Token != "cli-token" {
			t.Errorf("cli webhook = %+v", cli)
		}
		if cli.Trigger != config.WebhookTriggerOnIssues {
			t.Errorf("cli trigger = %q, want on_issues", cli.Trigger)
		}
		if cli.Timeout != config.DefaultWebhookTimeout {
			t.Errorf("cli timeout = %v", cli.Timeout)
		}
	})
}

// ============================================================================
// validate, list, render, version
// ============================================================================

func TestRunValidate_Success(t *testing.T) {
	configPath, _ := writeCheckConfig(t, "")

	stdout, _, err := runCommand(t, NewValidateCommand(), configPath)
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	for _, want := range []string{"Configuration valid!", "SHUTDOWN_PROGRAM (same as SHUTDOWN_PROCESS)", "Command files matched: 2"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("output missing %q:\n%s", want, stdout)
		}
	}
}

func TestRunValidate_InvalidConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "invalid.yaml", "invalid: yaml: content")

	_, _, err := runCommand(t, NewValidateCommand(), configPath)
	if err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestRunValidate_UnknownDeniedCommand(t *testing.T) {
	dir := t.TempDir()
	configPath := writeFile(t, dir, "config.yaml", "command_sources: [\"-\"]\ndenied_commands: [BREW_TEA]\n")

	_, _, err := runCommand(t, NewValidateCommand(), configPath)
	if err == nil || !strings.Contains(err.Error(), "BREW_TEA") {
		t.Errorf("Expected error naming BREW_TEA, got %v", err)
	}
}

func TestRunValidate_MissingFile(t *testing.T) {
	_, _, err := runCommand(t, NewValidateCommand(), "/nonexistent/config.yaml")
	if err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestRunList(t *testing.T) {
	stdout, _, err := runCommand(t, NewListCommand())
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	// header plus every identifier, synonyms included
	if len(lines) != 169 {
		t.Errorf("got %d lines, want 169", len(lines))
	}
	if !strings.HasPrefix(lines[0], "IDENTIFIER") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(stdout, "ENTER_STANDBY_MODE") {
		t.Error("synonym missing from listing")
	}
}

func TestRunList_Group(t *testing.T) {
	stdout, _, err := runCommand(t, NewListCommand(), "--group", "contactgroup", "--synonyms=false")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, line := range strings.Split(strings.TrimSpace(stdout), "\n")[1:] {
		if !strings.HasSuffix(strings.TrimSpace(line), "contactgroup") {
			t.Errorf("line outside group: %q", line)
		}
	}
}

func TestRunList_UnknownGroup(t *testing.T) {
	_, _, err := runCommand(t, NewListCommand(), "--group", "planets")
	if err == nil {
		t.Error("Expected error for unknown group")
	}
}

func TestRunRender(t *testing.T) {
	stdout, _, err := runCommand(t, NewRenderCommand(), "--time", "1339511440",
		"PROCESS_SERVICE_CHECK_RESULT", "host1", "service1", "0", "OK\nsecond line")
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	want := "[1339511440] PROCESS_SERVICE_CHECK_RESULT;host1;service1;0;OK\\nsecond line\n"
	if stdout != want {
		t.Errorf("stdout = %q, want %q", stdout, want)
	}
}

func TestRunRender_Unknown(t *testing.T) {
	_, _, err := runCommand(t, NewRenderCommand(), "-t", "1", "BREW_TEA")
	if err == nil {
		t.Fatal("Expected error for unknown identifier")
	}

	stdout, _, err := runCommand(t, NewRenderCommand(), "-t", "1", "--force", "BREW_TEA")
	if err != nil {
		t.Fatalf("render --force failed: %v", err)
	}
	if stdout != "[1] BREW_TEA;\n" {
		t.Errorf("stdout = %q", stdout)
	}
}

func TestRunRender_NegativeTime(t *testing.T) {
	_, _, err := runCommand(t, NewRenderCommand(), "--time=-5", "SAVE_STATE_INFORMATION")
	if err == nil {
		t.Error("Expected error for negative entry time")
	}
}

func TestRunVersion(t *testing.T) {
	stdout, _, err := runCommand(t, NewVersionCommand())
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "extcmd dev") {
		t.Errorf("stdout = %q", stdout)
	}
}
