package stl

import "fmt"

// ErrorKind classifies decoder failures.
type ErrorKind int

const (
	// MalformedHeader indicates the input is too short or malformed to
	// carry a valid STL header.
	MalformedHeader ErrorKind = iota
	// TruncatedData indicates the input ended before the declared number
	// of triangle records was read.
	TruncatedData
	// InvalidNumericToken indicates a field that should hold a number
	// could not be parsed as one.
	InvalidNumericToken
	// UnterminatedBlock indicates a structural fault in an ASCII file:
	// a facet block with the wrong vertex count, a vertex outside a facet,
	// or a missing endfacet/endsolid.
	UnterminatedBlock
)

// String returns a human-readable name for the error kind.
func (k ErrorKind) String() string {
	switch k {
	case MalformedHeader:
		return "malformed header"
	case TruncatedData:
		return "truncated data"
	case InvalidNumericToken:
		return "invalid numeric token"
	case UnterminatedBlock:
		return "unterminated block"
	}
	return "unknown error"
}

// ParseError describes a fatal decoding failure. Exactly one of Offset
// (binary input, byte position) or Line (ASCII input, 1-based line number)
// identifies where the failure was detected.
type ParseError struct {
	Kind   ErrorKind
	Offset int64 // byte offset for binary input, -1 when not applicable
	Line   int   // line number for ASCII input, 0 when not applicable
	Msg    string
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s at line %d: %s", e.Kind, e.Line, e.Msg)
	}
	return fmt.Sprintf("%s at byte %d: %s", e.Kind, e.Offset, e.Msg)
}

func binaryError(kind ErrorKind, offset int64, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Offset: offset, Line: 0, Msg: fmt.Sprintf(format, args...)}
}

func asciiError(kind ErrorKind, line int, format string, args ...any) *ParseError {
	return &ParseError{Kind: kind, Offset: -1, Line: line, Msg: fmt.Sprintf(format, args...)}
}
