package lexer

import (
	"github.com/anvilware/tslex/internal/lexerr"
	"github.com/anvilware/tslex/internal/token"
)

// lexString reads a single- or double-quoted string literal. Escape
// sequences are not decoded here, only skipped over; a '\n' may never
// appear unescaped inside one (spec.md §7, §9).
func (l *Lexer) lexString(precededByLineTerminator bool) (token.Token, error) {
	cp := l.Checkpoint()
	quote, err := l.Peek(0)
	if err != nil {
		return token.Token{}, err
	}
	l.skipExpect(1)
	for {
		l.consume(l.whileNot3Chars('\\', '\n', quote))
		c, err := l.Peek(0)
		if err != nil {
			return token.Token{}, err
		}
		switch {
		case c == '\\':
			m, err := l.n(2)
			if err != nil {
				return token.Token{}, err
			}
			l.consume(m)
		case c == '\n':
			return token.Token{}, l.errorAt(lexerr.LineTerminatorInString)
		case c == quote:
			l.skipExpect(1)
			return token.New(l.SinceCheckpoint(cp), token.LITERAL_STRING, precededByLineTerminator), nil
		}
	}
}
