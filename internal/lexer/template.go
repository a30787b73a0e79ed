package lexer

import (
	"github.com/anvilware/tslex/internal/token"
)

// LexTemplateStringContinue reads a template literal's next string chunk:
// from right after a previous "${...}" interpolation hole (or right after
// the opening backtick) up to either the closing backtick or the next "${".
// A parser calls this directly, by name, after it has lexed the expression
// inside a hole back to its closing '}' — that resumption point is why this
// is exported rather than folded into the dispatch loop (spec.md §4.8).
func (l *Lexer) LexTemplateStringContinue(precededByLineTerminator bool) (token.Token, error) {
	cp := l.Checkpoint()
	for {
		l.consume(l.whileNot3Chars('\\', '`', '$'))
		c, err := l.Peek(0)
		if err != nil {
			return token.Token{}, err
		}
		switch c {
		case '\\':
			m, err := l.n(2)
			if err != nil {
				return token.Token{}, err
			}
			l.consume(m)
		case '`':
			rng := l.SinceCheckpoint(cp)
			l.skipExpect(1)
			return token.New(rng, token.LITERAL_TEMPLATE_PART_STRING_END, precededByLineTerminator), nil
		case '$':
			next, err := l.Peek(1)
			if err != nil {
				return token.Token{}, err
			}
			if next == '{' {
				rng := l.SinceCheckpoint(cp)
				l.skipExpect(2)
				return token.New(rng, token.LITERAL_TEMPLATE_PART_STRING, precededByLineTerminator), nil
			}
			l.skipExpect(1)
		}
	}
}

// lexTemplate reads the first chunk of a template literal, starting at its
// opening backtick.
func (l *Lexer) lexTemplate(precededByLineTerminator bool) (token.Token, error) {
	l.skipExpect(1) // "`"
	return l.LexTemplateStringContinue(precededByLineTerminator)
}
