package command

import (
	"errors"
	"strconv"
	"strings"
)

// ErrEmptyIdentifier is returned by Render for an empty identifier.
var ErrEmptyIdentifier = errors.New("identifier must not be empty")

var lineBreakEscaper = strings.NewReplacer("\r", `\r`, "\n", `\n`)

// Render formats a command line as written to a command file:
//
//	[<entry time>] <IDENTIFIER>;<arg1>;<arg2>
//
// Carriage returns and newlines inside arguments are escaped as the
// two-character sequences \r and \n so that the command stays on one line.
// A command without arguments still ends with a semicolon.
func Render(entryTime uint64, identifier string, args ...string) (string, error) {
	if identifier == "" {
		return "", ErrEmptyIdentifier
	}

	var sb strings.Builder
	sb.WriteByte('[')
	sb.WriteString(strconv.FormatUint(entryTime, 10))
	sb.WriteString("] ")
	sb.WriteString(identifier)
	sb.WriteByte(';')
	sb.WriteString(strings.Join(args, ";"))

	return lineBreakEscaper.Replace(sb.String()), nil
}
