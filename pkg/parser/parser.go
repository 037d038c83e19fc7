package parser

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
)

// maxLineSize bounds a single command line.
const maxLineSize = 1024 * 1024

// StdinName is the source name used for standard input.
const StdinName = "-"

// FileSource implements LineSource for reading command files in order.
// The path "-" reads standard input.
type FileSource struct {
	files []string
	stdin io.Reader

	currentFile    *os.File
	currentScanner *bufio.Scanner
	currentSource  string
	currentLine    int
	fileIndex      int
}

// NewFileSource creates a LineSource that reads the given files one after
// another.
func NewFileSource(files []string) *FileSource {
	return &FileSource{
		files:     files,
		stdin:     os.Stdin,
		fileIndex: -1,
	}
}

// Next returns the next raw line.
// Returns io.EOF when all files have been exhausted.
func (s *FileSource) Next(ctx context.Context) (*RawLine, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		if s.currentScanner == nil {
			if err := s.openNextFile(); err != nil {
				return nil, err
			}
		}

		if s.currentScanner.Scan() {
			s.currentLine++
			return &RawLine{
				Text:    s.currentScanner.Text(),
				Source:  s.currentSource,
				LineNum: s.currentLine,
			}, nil
		}

		if err := s.currentScanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.currentSource, err)
		}

		// Current file exhausted, try next
		if err := s.closeCurrentFile(); err != nil {
			return nil, err
		}
		s.currentScanner = nil
	}
}

// Close releases resources.
func (s *FileSource) Close() error {
	return s.closeCurrentFile()
}

func (s *FileSource) openNextFile() error {
	s.fileIndex++
	if s.fileIndex >= len(s.files) {
		return io.EOF
	}

	path := s.files[s.fileIndex]
	s.currentSource = path
	s.currentLine = 0

	if path == StdinName {
		s.currentScanner = newLineScanner(s.stdin)
		return nil
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return fmt.Errorf("opening command file %s: %w", path, err)
	}

	s.currentFile = f
	s.currentScanner = newLineScanner(f)
	return nil
}

func (s *FileSource) closeCurrentFile() error {
	s.currentScanner = nil
	if s.currentFile != nil {
		err := s.currentFile.Close()
		s.currentFile = nil
		return err
	}
	return nil
}

// ReaderSource implements LineSource over an arbitrary reader.
type ReaderSource struct {
	name    string
	scanner *bufio.Scanner
	lineNum int
}

// NewReaderSource creates a LineSource reading lines from r. The name is
// reported as the Source of each line.
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{
		name:    name,
		scanner: newLineScanner(r),
	}
}

// Next returns the next raw line or io.EOF.
func (s *ReaderSource) Next(ctx context.Context) (*RawLine, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return nil, fmt.Errorf("reading %s: %w", s.name, err)
		}
		return nil, io.EOF
	}
	s.lineNum++
	return &RawLine{
		Text:    s.scanner.Text(),
		Source:  s.name,
		LineNum: s.lineNum,
	}, nil
}

// Close is a no-op; the caller owns the reader.
func (s *ReaderSource) Close() error {
	return nil
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return sc
}
