package lexer

import (
	"github.com/anvilware/tslex/internal/charfilter"
	"github.com/anvilware/tslex/internal/lexerr"
	"github.com/anvilware/tslex/internal/token"
)

// lexRegex reads a regex literal: /pattern/flags. A '/' inside a character
// class ([...]) does not terminate the literal. Validation of the regex
// body's grammar is left to a downstream parser (spec.md §9).
func (l *Lexer) lexRegex(precededByLineTerminator bool) (token.Token, error) {
	cp := l.Checkpoint()
	m, err := l.n(1) // consume the opening slash
	if err != nil {
		return token.Token{}, err
	}
	l.consume(m)

	inCharset := false
	for {
		c, err := l.Peek(0)
		if err != nil {
			return token.Token{}, err
		}
		switch {
		case c == '\\':
			l.skipExpect(1)
			next, err := l.Peek(1)
			if err != nil {
				return token.Token{}, err
			}
			if next == '\n' {
				return token.Token{}, l.errorAt(lexerr.LineTerminatorInRegex)
			}
			l.skipExpect(1)
		case c == '/' && !inCharset:
			l.skipExpect(1)
			l.consume(l.whileChars(charfilter.ID_CONTINUE)) // flags
			return token.New(l.SinceCheckpoint(cp), token.LITERAL_REGEX, precededByLineTerminator), nil
		case c == '[':
			l.skipExpect(1)
			inCharset = true
		case c == ']' && inCharset:
			l.skipExpect(1)
			inCharset = false
		case c == '\n':
			return token.Token{}, l.errorAt(lexerr.LineTerminatorInRegex)
		default:
			l.skipExpect(1)
		}
	}
}
