package checker

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/ccollicutt/extcmd/pkg/audit"
	"github.com/ccollicutt/extcmd/pkg/command"
	"github.com/ccollicutt/extcmd/pkg/parser"
)

// mockSource is a test LineSource that returns predefined lines.
type mockSource struct {
	lines []*parser.RawLine
	index int
}

func (m *mockSource) Next(ctx context.Context) (*parser.RawLine, error) {
	if m.index >= len(m.lines) {
		return nil, io.EOF
	}
	line := m.lines[m.index]
	m.index++
	return line, nil
}

func (m *mockSource) Close() error {
	return nil
}

func sourceOf(name string, texts ...string) *mockSource {
	src := &mockSource{}
	for i, text := range texts {
		src.lines = append(src.lines, &parser.RawLine{Text: text, Source: name, LineNum: i + 1})
	}
	return src
}

func TestCheckLine(t *testing.T) {
	tests := []struct {
		name       string
		raw        string
		opts       []Option
		wantStatus Status
		wantKind   command.Kind
		wantErr    error
	}{
		{
			name:       "known command",
			raw:        "[1700000000] PROCESS_SERVICE_CHECK_RESULT;web01;http;0;OK",
			wantStatus: StatusAccepted,
			wantKind:   command.ProcessServiceCheckResult,
		},
		{
			name:       "custom command allowed by default",
			raw:        "[1] _RELOAD_PLUGINS;now",
			wantStatus: StatusAccepted,
			wantKind:   command.Custom,
		},
		{
			name:       "custom command disallowed",
			raw:        "[1] _RELOAD_PLUGINS;now",
			opts:       []Option{WithCustomCommands(false)},
			wantStatus: StatusDenied,
			wantKind:   command.Custom,
		},
		{
			name:       "denied command",
			raw:        "[1] SHUTDOWN_PROCESS;",
			opts:       []Option{WithDenied("SHUTDOWN_PROCESS")},
			wantStatus: StatusDenied,
			wantKind:   command.ShutdownProcess,
		},
		{
			name:       "denied through synonym",
			raw:        "[1] SHUTDOWN_PROGRAM;",
			opts:       []Option{WithDenied("SHUTDOWN_PROCESS")},
			wantStatus: StatusDenied,
			wantKind:   command.ShutdownProcess,
		},
		{
			name:       "unknown command",
			raw:        "[1] MAKE_COFFEE;large",
			wantStatus: StatusUnknown,
			wantErr:    command.ErrUnknownCommand,
		},
		{
			name:       "missing bracket",
			raw:        "PROCESS_HOST_CHECK_RESULT;web01;0;UP",
			wantStatus: StatusMalformed,
			wantErr:    parser.ErrMissingEntryTime,
		},
		{
			name:       "blank line",
			raw:        " \t ",
			wantStatus: StatusMalformed,
			wantErr:    parser.ErrNoInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.opts...)
			lr := c.CheckLine(tt.raw)

			assert.Equal(t, tt.wantStatus, lr.Status)
			if tt.wantErr != nil {
				assert.ErrorIs(t, lr.Err, tt.wantErr)
			}
			if lr.Command != nil {
				assert.Equal(t, tt.wantKind, lr.Command.Kind)
			}
			assert.Equal(t, tt.wantStatus != StatusAccepted, lr.IsIssue())
		})
	}
}

func TestCheckLine_UnknownKeepsFields(t *testing.T) {
	lr := New().CheckLine("[5] MAKE_COFFEE;large;oat")

	require.Equal(t, StatusUnknown, lr.Status)
	assert.Equal(t, "MAKE_COFFEE", lr.Identifier)
	assert.Equal(t, "large;oat", lr.Arguments)
	assert.Nil(t, lr.Command)
}

func TestCheckLine_AuditRecords(t *testing.T) {
	var buf bytes.Buffer
	c := New(WithSink(audit.NewWriterSink(&buf)), WithDenied("RESTART_PROGRAM"))

	c.CheckLine("[1] ENABLE_NOTIFICATIONS;")
	c.CheckLine("[2] RESTART_PROCESS;")
	c.CheckLine("[3] NOPE;a")
	c.CheckLine("garbage")

	// Denied commands are still valid and audited; malformed lines are not.
	assert.Equal(t,
		"ENABLE_NOTIFICATIONS;\nRESTART_PROCESS;\nUNKNOWN COMMAND: NOPE;a\n",
		buf.String())
}

func TestCheck(t *testing.T) {
	src := sourceOf("commands.log",
		"[1] ENTER_STANDBY_MODE;",
		"",
		"[2] DISABLE_NOTIFICATIONS;",
		"[3] ACKNOWLEDGE_HOST_PROBLEM;web01;1;1;1;admin;looking",
		"[4] NOT_A_COMMAND;",
		"no brackets here",
		"   ",
	)

	c := New()
	result, err := c.Check(context.Background(), src)
	require.NoError(t, err)

	assert.Equal(t, []string{"commands.log"}, result.Sources)
	assert.Equal(t, 5, result.Lines)
	assert.Equal(t, 2, result.Blank)
	assert.Equal(t, 3, result.Accepted)
	assert.Equal(t, 1, result.Unknown)
	assert.Equal(t, 1, result.Malformed)
	assert.Equal(t, 0, result.Denied)
	assert.Equal(t, 2, result.TotalIssues())
	assert.True(t, result.HasIssues())

	assert.Equal(t, 2, result.ByKind[command.DisableNotifications])
	assert.Equal(t, 1, result.ByKind[command.AcknowledgeHostProblem])

	require.Len(t, result.Issues, 2)
	assert.Equal(t, 5, result.Issues[0].LineNum)
	assert.Equal(t, 6, result.Issues[1].LineNum)
	assert.Empty(t, result.AcceptedLines)
}

func TestCheck_Verbose(t *testing.T) {
	src := sourceOf("a", "[1] SAVE_STATE_INFORMATION;", "[2] READ_STATE_INFORMATION;")

	result, err := New(WithVerbose(true)).Check(context.Background(), src)
	require.NoError(t, err)

	assert.Len(t, result.AcceptedLines, 2)
	assert.False(t, result.HasIssues())
}

func TestCheck_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New().Check(ctx, sourceOf("a", "[1] SAVE_STATE_INFORMATION;"))
	assert.ErrorIs(t, err, context.Canceled)
}

type failingSource struct{}

func (failingSource) Next(context.Context) (*parser.RawLine, error) {
	return nil, errors.New("disk on fire")
}

func (failingSource) Close() error { return nil }

func TestCheck_SourceError(t *testing.T) {
	_, err := New().Check(context.Background(), failingSource{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading command source")
}

func TestCheckFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	files := []string{
		writeCommandFile(t, dir, "a.log",
			"[30] SAVE_STATE_INFORMATION;",
			"[10] SHUTDOWN_PROGRAM;"),
		writeCommandFile(t, dir, "b.log",
			"[20] UNKNOWN_THING;",
			"[40] _CUSTOM;x"),
		writeCommandFile(t, dir, "c.log",
			"[5] PROCESS_FILE;/tmp/cmds;1"),
	}

	var buf bytes.Buffer
	c := New(
		WithSink(audit.NewWriterSink(&buf)),
		WithDenied("SHUTDOWN_PROCESS"),
		WithWorkers(2),
	)

	result, err := c.CheckFiles(context.Background(), files, false)
	require.NoError(t, err)

	assert.Equal(t, files, result.Sources)
	assert.Equal(t, 5, result.Lines)
	assert.Equal(t, 3, result.Accepted)
	assert.Equal(t, 1, result.Denied)
	assert.Equal(t, 1, result.Unknown)
	assert.Equal(t, 5, strings.Count(buf.String(), "\n"))

	require.Len(t, result.Issues, 2)
	assert.Equal(t, files[0], result.Issues[0].Source)
	assert.Equal(t, files[1], result.Issues[1].Source)
}

func TestCheckFiles_MergeByEntryTime(t *testing.T) {
	dir := t.TempDir()
	files := []string{
		writeCommandFile(t, dir, "a.log",
			"[10] SAVE_STATE_INFORMATION;",
			"[30] READ_STATE_INFORMATION;"),
		writeCommandFile(t, dir, "b.log",
			"[20] ENABLE_FLAP_DETECTION;",
			"[40] DISABLE_FLAP_DETECTION;"),
	}

	var buf bytes.Buffer
	c := New(WithSink(audit.NewWriterSink(&buf)))

	result, err := c.CheckFiles(context.Background(), files, true)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Accepted)
	assert.Equal(t,
		"SAVE_STATE_INFORMATION;\nENABLE_FLAP_DETECTION;\nREAD_STATE_INFORMATION;\nDISABLE_FLAP_DETECTION;\n",
		buf.String())
}

func TestCheckFiles_MissingFile(t *testing.T) {
	defer goleak.VerifyNone(t)

	_, err := New().CheckFiles(context.Background(),
		[]string{filepath.Join(t.TempDir(), "missing.log")}, false)
	assert.Error(t, err)
}

func TestCheckFiles_Empty(t *testing.T) {
	result, err := New().CheckFiles(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Lines)
	assert.False(t, result.HasIssues())
}

func writeCommandFile(t *testing.T, dir, name string, lines ...string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	content := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write command file: %v", err)
	}
	return path
}
