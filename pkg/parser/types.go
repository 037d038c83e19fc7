// Package parser reads external command lines and splits them into their
// entry time, command identifier and argument fields.
package parser

import "time"

// RawLine is one untouched input record.
type RawLine struct {
	// Text is the line content without the trailing newline.
	Text string

	// Source names where the line came from (file path or "-").
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// Line is a syntactically valid external command line.
type Line struct {
	// EntryTime is the bracketed submission time in seconds since the epoch.
	EntryTime uint64

	// Identifier is the command name, e.g. PROCESS_SERVICE_CHECK_RESULT.
	Identifier string

	// Arguments is the verbatim remainder after the identifier. Its
	// semicolon separated sub-fields depend on the command and are not split
	// here.
	Arguments string
}

// Time returns the entry time as a UTC time.Time.
func (l *Line) Time() time.Time {
	return time.Unix(int64(l.EntryTime), 0).UTC()
}
