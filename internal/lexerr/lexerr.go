// Package lexerr defines the error values the lexer can return. Rendering
// them into a human-facing diagnostic (source snippet, caret, color) is
// left to a downstream package; this one only carries what a renderer
// would need.
package lexerr

import (
	"fmt"

	"github.com/anvilware/tslex/internal/source"
)

// Kind identifies the category of a lexical error, matching spec.md §6.
type Kind int

const (
	// UnexpectedEnd means a scanning primitive ran out of bytes before it
	// could complete (e.g. an unterminated string, comment, or regex).
	UnexpectedEnd Kind = iota
	// ExpectedNotFound means the anchored pattern matcher found no pattern
	// at the cursor.
	ExpectedNotFound
	// LineTerminatorInString means a '\n' appeared inside a string literal.
	LineTerminatorInString
	// LineTerminatorInRegex means a '\n' appeared inside a regex literal.
	LineTerminatorInRegex
)

// String returns the Kind's name.
func (k Kind) String() string {
	switch k {
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case ExpectedNotFound:
		return "ExpectedNotFound"
	case LineTerminatorInString:
		return "LineTerminatorInString"
	case LineTerminatorInRegex:
		return "LineTerminatorInRegex"
	default:
		return "Unknown"
	}
}

// SyntaxError is returned by any lexer operation that fails. It carries the
// Source handle and the byte offset at which the failure was detected, per
// spec.md §7, so a caller can build a diagnostic without re-lexing.
type SyntaxError struct {
	Kind   Kind
	Source *source.Source
	Offset int
}

// New builds a SyntaxError at the given offset.
func New(kind Kind, src *source.Source, offset int) *SyntaxError {
	return &SyntaxError{Kind: kind, Source: src, Offset: offset}
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}
