// Package audit records the outcome of classifying external commands.
package audit

import (
	"fmt"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/ccollicutt/extcmd/pkg/command"
)

// Sink receives one record per classified command line.
type Sink interface {
	// Accepted is called for commands that classified to a known or custom
	// kind.
	Accepted(cmd *command.Command)

	// Unknown is called for identifiers that did not classify.
	Unknown(identifier, arguments string)
}

// WriterSink writes plain text records:
//
//	<identifier>;<arguments>
//	UNKNOWN COMMAND: <identifier>;<arguments>
//
// It is safe for concurrent use.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Accepted writes the identifier and arguments.
func (s *WriterSink) Accepted(cmd *command.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "%s;%s\n", cmd.Identifier, cmd.Arguments)
}

// Unknown writes an UNKNOWN COMMAND record.
func (s *WriterSink) Unknown(identifier, arguments string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, "UNKNOWN COMMAND: %s;%s\n", identifier, arguments)
}

// LoggerSink emits structured audit records through zap.
type LoggerSink struct {
	logger *zap.Logger
}

// NewLoggerSink creates a sink logging to logger under the "audit" name.
func NewLoggerSink(logger *zap.Logger) *LoggerSink {
	return &LoggerSink{logger: logger.Named("audit")}
}

// Accepted logs the command at info level.
func (s *LoggerSink) Accepted(cmd *command.Command) {
	s.logger.Info("external command",
		zap.Uint64("entry_time", cmd.EntryTime),
		zap.Stringer("kind", cmd.Kind),
		zap.String("identifier", cmd.Identifier),
		zap.String("arguments", cmd.Arguments))
}

// Unknown logs the rejected identifier at warn level.
func (s *LoggerSink) Unknown(identifier, arguments string) {
	s.logger.Warn("unknown command",
		zap.String("identifier", identifier),
		zap.String("arguments", arguments))
}

type multiSink []Sink

// Multi fans records out to all sinks in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

func (m multiSink) Accepted(cmd *command.Command) {
	for _, s := range m {
		s.Accepted(cmd)
	}
}

func (m multiSink) Unknown(identifier, arguments string) {
	for _, s := range m {
		s.Unknown(identifier, arguments)
	}
}

type nopSink struct{}

// Nop returns a sink that discards every record.
func Nop() Sink {
	return nopSink{}
}

func (nopSink) Accepted(*command.Command) {}

func (nopSink) Unknown(string, string) {}
