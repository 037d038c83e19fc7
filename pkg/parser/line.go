package parser

// ParseLine parses one external command line of the form
//
//	[<entry time>] <IDENTIFIER>;<arguments>
//
// The line is normalized with Strip first. Bytes before the opening bracket
// are ignored, a non-numeric entry time parses as 0, and the arguments are
// returned verbatim (possibly empty).
func ParseLine(raw string) (*Line, error) {
	line := Strip(raw)
	if line == "" {
		return nil, &SyntaxError{Err: ErrNoInput}
	}

	t := NewTokenizer(line)

	if open, ok := t.Next('['); !ok || !open.Terminated {
		return nil, &SyntaxError{Line: line, Err: ErrMissingEntryTime}
	}

	closing, ok := t.Next(']')
	if !ok || !closing.Terminated {
		return nil, &SyntaxError{Line: line, Err: ErrMissingClosingBracket}
	}

	head, ok := t.Next(';')
	if !ok || !head.Terminated {
		return nil, &SyntaxError{Line: line, Err: ErrMissingCommandIdentifier}
	}

	// The field between ']' and ';' starts with one separator byte (normally
	// the space after the bracket) that is not part of the identifier.
	// When that byte is the whole field, as in "[0]x;NAME;args", the
	// identifier is the next field instead.
	var identifier string
	if len(head.Text) > 1 {
		identifier = head.Text[1:]
	} else if next, ok := t.Next(';'); ok {
		identifier = next.Text
	}

	var arguments string
	if rest, ok := t.Next('\n'); ok {
		arguments = rest.Text
	}

	return &Line{
		EntryTime:  ParseEntryTime(closing.Text),
		Identifier: identifier,
		Arguments:  arguments,
	}, nil
}
