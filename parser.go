// FILE: lixenwraith/smolconf/parser.go
package smolconf

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Read creates a store and fills it from the line config file at path.
//
// On error the partially filled store is returned along with the error; it
// holds only the entries of lines before the failure and must be treated as a
// failed read.
func Read(path string) (*Store, error) {
	s := New(DefaultCapacity)
	return s, s.AppendFile(path)
}

// ParseString creates a store from line config text.
// The partial store is returned on error, as with Read.
func ParseString(text string) (*Store, error) {
	s := New(DefaultCapacity)
	return s, s.Parse(strings.NewReader(text))
}

// AppendFile parses the line config file at path into s.
// Keys already present in s keep their value.
func (s *Store) AppendFile(path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w '%s': %w", ErrFileOpen, path, err)
	}
	defer file.Close()

	if err := s.parse(file); err != nil {
		var synErr *SyntaxError
		if errors.As(err, &synErr) {
			synErr.Path = path
			return synErr
		}
		return fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	return nil
}

// Parse reads line config text from r into s, stopping at the first syntax error.
func (s *Store) Parse(r io.Reader) error {
	return s.parse(r)
}

func (s *Store) parse(r io.Reader) error {
	reader := bufio.NewReader(r)
	lineNum := 0

	for {
		raw, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}
		if raw == "" && readErr != nil {
			return nil
		}
		lineNum++

		key, value, reason := splitLine(raw)
		if reason != 0 {
			return &SyntaxError{Line: lineNum, Reason: reason}
		}
		if key != "" {
			s.Insert(key, value)
		}

		if readErr != nil {
			return nil
		}
	}
}

// splitLine extracts the pair of one raw line. Blank and comment-only lines
// yield an empty key and no reason.
func splitLine(raw string) (key, value string, reason SyntaxReason) {
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")
	line = strings.TrimLeft(line, " ")

	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	if line == "" {
		return "", "", 0
	}

	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		return "", "", ReasonMissingEquals
	}

	key, value = line[:eq], line[eq+1:]
	if key == "" || value == "" {
		return "", "", ReasonMalformedPair
	}
	if !isValidKey(key) {
		return "", "", ReasonInvalidKey
	}
	if !isPrintable(value) {
		return "", "", ReasonInvalidValue
	}
	return key, value, 0
}
