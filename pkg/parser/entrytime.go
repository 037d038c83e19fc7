package parser

import (
	"math"
	"strings"
)

// ParseEntryTime converts the bracketed entry time to seconds. Parsing is
// lenient in the way strtoul is: leading blanks and an optional sign are
// accepted, digits are consumed up to the first non-digit, overflow
// saturates, and text without leading digits yields 0. It never fails.
func ParseEntryTime(s string) uint64 {
	s = strings.TrimLeft(s, " \t\n\v\f\r")

	negative := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		s = s[1:]
	}

	var n uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			break
		}
		d := uint64(c - '0')
		if n > (math.MaxUint64-d)/10 {
			return math.MaxUint64
		}
		n = n*10 + d
	}

	if negative {
		// strtoul negates in unsigned arithmetic.
		return -n
	}
	return n
}

// EntryTimeOf returns the entry time of a raw line without validating the
// rest of the grammar. Lines without a bracketed time yield 0.
func EntryTimeOf(raw string) uint64 {
	t := NewTokenizer(Strip(raw))
	if open, ok := t.Next('['); !ok || !open.Terminated {
		return 0
	}
	closing, ok := t.Next(']')
	if !ok || !closing.Terminated {
		return 0
	}
	return ParseEntryTime(closing.Text)
}
