package parser

import "strings"

// stripSet is the exact set of bytes removed from both ends of a line.
// It is deliberately narrower than unicode.IsSpace.
const stripSet = " \n\r\t"

// Strip removes spaces, newlines, carriage returns and tabs from both ends of
// line. Interior characters are never touched.
func Strip(line string) string {
	return strings.Trim(line, stripSet)
}
