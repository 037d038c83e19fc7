package parser

import "strings"

// Token is a field returned by Tokenizer.Next.
type Token struct {
	// Text is the field content, excluding the delimiter.
	Text string

	// Terminated reports whether the field ended at the requested
	// delimiter. It is false when the field is the remainder of the buffer.
	Terminated bool
}

// Tokenizer extracts delimiter-bounded fields from a line, one delimiter at
// a time. Unlike strings.FieldsFunc it keeps empty fields between adjacent
// delimiters.
//
// A Tokenizer owns its copy of the line. It is not safe for concurrent use;
// give each parse its own Tokenizer.
type Tokenizer struct {
	buf string
	pos int
}

// NewTokenizer returns a Tokenizer positioned at the start of line.
func NewTokenizer(line string) *Tokenizer {
	t := &Tokenizer{}
	t.Reset(line)
	return t
}

// Reset discards any previous state and starts tokenizing line.
func (t *Tokenizer) Reset(line string) {
	t.buf = strings.Clone(line)
	t.pos = 0
}

// Next returns the field up to the first occurrence of delim and advances
// past the delimiter. When delim does not occur, the rest of the buffer is
// returned and the tokenizer is exhausted. Once the remaining buffer is
// empty, Next returns false.
func (t *Tokenizer) Next(delim byte) (Token, bool) {
	if t.pos >= len(t.buf) {
		return Token{}, false
	}

	rest := t.buf[t.pos:]
	i := strings.IndexByte(rest, delim)
	if i < 0 {
		t.pos = len(t.buf)
		return Token{Text: rest}, true
	}

	t.pos += i + 1
	return Token{Text: rest[:i], Terminated: true}, true
}

// Remaining returns the part of the buffer that has not been consumed.
func (t *Tokenizer) Remaining() string {
	return t.buf[t.pos:]
}

// Splitter cuts a string into fields separated by any byte of a delimiter
// set. It follows strsep semantics: a string with k delimiters yields
// exactly k+1 fields, and joining them with the delimiter restores the
// input.
type Splitter struct {
	rest string
	done bool
}

// NewSplitter returns a Splitter over s.
func NewSplitter(s string) *Splitter {
	return &Splitter{rest: s}
}

// Next returns the field up to the first byte contained in delims. After the
// final field has been returned, Next returns false.
func (s *Splitter) Next(delims string) (string, bool) {
	if s.done {
		return "", false
	}

	i := indexAnyByte(s.rest, delims)
	if i < 0 {
		field := s.rest
		s.rest = ""
		s.done = true
		return field, true
	}

	field := s.rest[:i]
	s.rest = s.rest[i+1:]
	return field, true
}

// indexAnyByte is strings.IndexAny for byte-sized delimiters, so that a
// delimiter set is never interpreted as UTF-8.
func indexAnyByte(s, delims string) int {
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(delims, s[i]) >= 0 {
			return i
		}
	}
	return -1
}

// Split returns all fields of s separated by any byte in delims.
func Split(s, delims string) []string {
	var fields []string
	sp := NewSplitter(s)
	for {
		field, ok := sp.Next(delims)
		if !ok {
			return fields
		}
		fields = append(fields, field)
	}
}
