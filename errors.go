// FILE: lixenwraith/smolconf/errors.go
package smolconf

import (
	"errors"
	"fmt"
)

var (
	// ErrFileOpen is returned when a source or destination file cannot be opened.
	ErrFileOpen = errors.New("failed to open file")

	// ErrSyntax is wrapped by every *SyntaxError.
	ErrSyntax = errors.New("syntax error")

	// ErrKeyNotFound is returned by accessors when the key is absent.
	ErrKeyNotFound = errors.New("key not found")

	// ErrWrongType is returned by accessors when the value does not fully parse
	// as the requested type, or a path value does not refer to a readable file.
	ErrWrongType = errors.New("wrong type")

	// ErrConfigNotFound is returned by the Builder when the configuration file
	// does not exist. It is not fatal: the built store is still returned.
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrCLIParse wraps errors from command-line argument parsing.
	ErrCLIParse = errors.New("failed to parse command-line arguments")

	// ErrUnsupportedFormat is returned for unknown or undetectable file formats.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// SyntaxReason categorizes a syntax error found by the line parser.
type SyntaxReason int

const (
	// ReasonMissingEquals means the line has content but no '=' sign.
	ReasonMissingEquals SyntaxReason = iota + 1
	// ReasonMalformedPair means the key or the value is empty.
	ReasonMalformedPair
	// ReasonInvalidKey means the key holds a character outside [A-Za-z0-9_].
	ReasonInvalidKey
	// ReasonInvalidValue means the value holds a non-printable character.
	ReasonInvalidValue
)

// String returns a short diagnostic for the reason.
func (r SyntaxReason) String() string {
	switch r {
	case ReasonMissingEquals:
		return "missing '=' sign"
	case ReasonMalformedPair:
		return "key/value pair malformed"
	case ReasonInvalidKey:
		return "key is non-alphanumeric"
	case ReasonInvalidValue:
		return "value is not a printable character"
	default:
		return "unknown syntax error"
	}
}

// SyntaxError reports the first malformed line of a parsed source.
type SyntaxError struct {
	Path   string // empty when parsing from a reader
	Line   int    // 1-based
	Reason SyntaxReason
}

func (e *SyntaxError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("error at line %d, %s", e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: error at line %d, %s", e.Path, e.Line, e.Reason)
}

// Unwrap lets errors.Is(err, ErrSyntax) match.
func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}
