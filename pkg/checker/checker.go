package checker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ccollicutt/extcmd/pkg/audit"
	"github.com/ccollicutt/extcmd/pkg/command"
	"github.com/ccollicutt/extcmd/pkg/parser"
)

// DefaultWorkers bounds concurrent file checks when no limit is configured.
const DefaultWorkers = 4

// Checker classifies command lines, reports them to an audit sink and
// applies the denied-command policy. A Checker holds no per-line state and
// is safe for concurrent use when its sink is.
type Checker struct {
	sink        audit.Sink
	logger      *zap.Logger
	denied      map[command.Kind]bool
	allowCustom bool
	verbose     bool
	workers     int
}

// Option configures checker behavior.
type Option func(*Checker)

// WithSink sets the audit sink. Defaults to audit.Nop().
func WithSink(s audit.Sink) Option {
	return func(c *Checker) {
		if s != nil {
			c.sink = s
		}
	}
}

// WithLogger sets the diagnostic logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(c *Checker) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithDenied denies the given command identifiers. Synonyms share a kind,
// so denying one denies all of them. Identifiers that are not in the
// command table are ignored.
func WithDenied(identifiers ...string) Option {
	return func(c *Checker) {
		for _, id := range identifiers {
			if k, ok := command.Lookup(id); ok {
				c.denied[k] = true
			}
		}
	}
}

// WithCustomCommands controls whether custom commands are accepted.
func WithCustomCommands(allow bool) Option {
	return func(c *Checker) {
		c.allowCustom = allow
	}
}

// WithVerbose keeps accepted lines in the result.
func WithVerbose(v bool) Option {
	return func(c *Checker) {
		c.verbose = v
	}
}

// WithWorkers bounds how many files CheckFiles reads concurrently.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.workers = n
		}
	}
}

// New creates a checker.
func New(opts ...Option) *Checker {
	c := &Checker{
		sink:        audit.Nop(),
		logger:      zap.NewNop(),
		denied:      make(map[command.Kind]bool),
		allowCustom: true,
		workers:     DefaultWorkers,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckLine parses and classifies a single line, emits the audit record and
// applies policy. Blank lines come back as malformed with parser.ErrNoInput.
func (c *Checker) CheckLine(raw string) *LineResult {
	lr := &LineResult{Raw: raw}
	c.checkLine(lr)
	return lr
}

func (c *Checker) checkLine(lr *LineResult) {
	cmd, err := command.Parse(lr.Raw)

	var unknown *command.UnknownCommandError
	switch {
	case errors.As(err, &unknown):
		lr.Status = StatusUnknown
		lr.Identifier = unknown.Identifier
		lr.Arguments = unknown.Arguments
		lr.Err = err
		c.sink.Unknown(unknown.Identifier, unknown.Arguments)
		return
	case err != nil:
		lr.Status = StatusMalformed
		lr.Err = err
		c.logger.Debug("malformed command line",
			zap.String("source", lr.Source),
			zap.Int("line", lr.LineNum),
			zap.Error(err))
		return
	}

	lr.Command = cmd
	lr.Identifier = cmd.Identifier
	lr.Arguments = cmd.Arguments
	c.sink.Accepted(cmd)

	switch {
	case c.denied[cmd.Kind]:
		lr.Status = StatusDenied
		lr.Err = fmt.Errorf("command %s is denied", cmd.Identifier)
	case cmd.IsCustom() && !c.allowCustom:
		lr.Status = StatusDenied
		lr.Err = fmt.Errorf("custom command %s is not allowed", cmd.Identifier)
	default:
		lr.Status = StatusAccepted
	}
}

// Check processes every line of source. Lines that are blank after
// normalization are counted but not checked.
func (c *Checker) Check(ctx context.Context, source parser.LineSource) (*Result, error) {
	result := newResult()
	sourcesMap := make(map[string]bool)

	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading command source: %w", err)
		}

		if !sourcesMap[line.Source] {
			sourcesMap[line.Source] = true
			result.Sources = append(result.Sources, line.Source)
		}

		if parser.Strip(line.Text) == "" {
			result.Blank++
			continue
		}

		lr := &LineResult{
			Source:  line.Source,
			LineNum: line.LineNum,
			Raw:     line.Text,
		}
		c.checkLine(lr)
		result.record(lr, c.verbose)
	}

	result.EndTime = time.Now()
	c.logger.Debug("check finished",
		zap.Strings("sources", result.Sources),
		zap.Int("lines", result.Lines),
		zap.Int("issues", result.TotalIssues()),
		zap.Duration("elapsed", result.EndTime.Sub(result.StartTime)))

	return result, nil
}

// CheckFiles checks the given files. With merge set, all files are read as
// one stream in entry time order. Otherwise each file gets its own source
// and files are checked concurrently, bounded by the worker limit; the
// result lists files in the given order either way.
func (c *Checker) CheckFiles(ctx context.Context, files []string, merge bool) (*Result, error) {
	if merge {
		sources := make([]parser.LineSource, len(files))
		for i, f := range files {
			sources[i] = parser.NewFileSource([]string{f})
		}
		src := parser.NewMergedSource(sources...)
		defer func() { _ = src.Close() }()
		return c.Check(ctx, src)
	}

	results := make([]*Result, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, f := range files {
		i, f := i, f
		g.Go(func() error {
			src := parser.NewFileSource([]string{f})
			defer func() { _ = src.Close() }()

			c.logger.Debug("checking command file", zap.String("file", f))
			r, err := c.Check(gctx, src)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := newResult()
	for _, r := range results {
		total.merge(r)
	}
	for _, r := range results {
		if r.StartTime.Before(total.StartTime) {
			total.StartTime = r.StartTime
		}
	}
	total.EndTime = time.Now()
	return total, nil
}
