package command

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ccollicutt/extcmd/pkg/parser"
)

// ErrUnknownCommand matches every *UnknownCommandError.
var ErrUnknownCommand = errors.New("unknown command")

// UnknownCommandError is returned for identifiers that are neither in the
// command table nor custom commands.
type UnknownCommandError struct {
	Identifier string
	Arguments  string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s;%s", e.Identifier, e.Arguments)
}

func (e *UnknownCommandError) Unwrap() error {
	return ErrUnknownCommand
}

// Command is a parsed and classified external command. It is immutable
// once returned by Parse.
type Command struct {
	EntryTime  uint64 `json:"entry_time"`
	Kind       Kind   `json:"kind"`
	Identifier string `json:"identifier"`
	Arguments  string `json:"arguments"`
}

// Parse normalizes, parses and classifies a single command line.
// Grammar errors wrap the parser sentinel errors; unknown identifiers
// return an *UnknownCommandError.
func Parse(raw string) (*Command, error) {
	line, err := parser.ParseLine(raw)
	if err != nil {
		return nil, err
	}

	kind := Classify(line.Identifier)
	if kind == Unknown {
		return nil, &UnknownCommandError{
			Identifier: line.Identifier,
			Arguments:  line.Arguments,
		}
	}

	return &Command{
		EntryTime:  line.EntryTime,
		Kind:       kind,
		Identifier: line.Identifier,
		Arguments:  line.Arguments,
	}, nil
}

// Time returns the entry time as a UTC time.Time.
func (c *Command) Time() time.Time {
	return time.Unix(int64(c.EntryTime), 0).UTC()
}

// IsCustom reports whether the command is a user-defined custom command.
func (c *Command) IsCustom() bool {
	return c.Kind == Custom
}

// Fields splits the arguments on semicolons. The meaning of each field
// depends on the command kind. A command without arguments has no fields.
func (c *Command) Fields() []string {
	if c.Arguments == "" {
		return nil
	}
	return parser.Split(c.Arguments, ";")
}

// String renders the command as "<identifier>;<arguments>".
func (c *Command) String() string {
	var sb strings.Builder
	sb.Grow(len(c.Identifier) + 1 + len(c.Arguments))
	sb.WriteString(c.Identifier)
	sb.WriteByte(';')
	sb.WriteString(c.Arguments)
	return sb.String()
}
