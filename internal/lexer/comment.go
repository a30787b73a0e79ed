package lexer

import (
	"bytes"

	"github.com/anvilware/tslex/internal/lexerr"
)

// lexMultipleComment consumes a /* ... */ comment. It does not emit a
// token; the dispatch loop swallows comments and keeps scanning.
func (l *Lexer) lexMultipleComment() error {
	l.skipExpect(2) // "/*"
	rest := l.src.Code()[l.next:]
	idx := bytes.Index(rest, []byte("*/"))
	if idx < 0 {
		return l.errorAt(lexerr.UnexpectedEnd)
	}
	l.skipExpect(idx + 2)
	return nil
}

// lexSingleComment consumes a // comment through and including the next
// newline. A // comment with no following newline is UnexpectedEnd: this
// lexer only recognizes '\n' as a line terminator (spec.md §9).
func (l *Lexer) lexSingleComment() error {
	l.skipExpect(2) // "//"
	m, err := l.throughChar('\n')
	if err != nil {
		return err
	}
	l.consume(m)
	return nil
}
