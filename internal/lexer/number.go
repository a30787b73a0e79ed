package lexer

import (
	"github.com/anvilware/tslex/internal/charfilter"
	"github.com/anvilware/tslex/internal/token"
)

// lexNumber reads a decimal literal: an integer part, an optional
// fractional part, and an optional exponent. Validation of the exact
// grammar (e.g. rejecting "1.2.3") is left to a downstream parser
// (spec.md §9).
func (l *Lexer) lexNumber(precededByLineTerminator bool) (token.Token, error) {
	cp := l.Checkpoint()
	l.consume(l.whileChars(charfilter.DIGIT))
	l.consume(l.ifChar('.'))
	l.consume(l.whileChars(charfilter.DIGIT))
	if c, ok := l.PeekOrEOF(0); ok && (c == 'e' || c == 'E') {
		l.skipExpect(1)
		if c, err := l.Peek(0); err != nil {
			return token.Token{}, err
		} else if c == '+' || c == '-' {
			l.skipExpect(1)
		}
		l.consume(l.whileChars(charfilter.DIGIT))
	}
	return token.New(l.SinceCheckpoint(cp), token.LITERAL_NUMBER, precededByLineTerminator), nil
}

// lexNumberBin reads a binary literal after its "0b"/"0B" prefix.
func (l *Lexer) lexNumberBin(precededByLineTerminator bool) (token.Token, error) {
	return l.lexNumberRadix(charfilter.DIGIT_BIN, precededByLineTerminator)
}

// lexNumberHex reads a hexadecimal literal after its "0x"/"0X" prefix.
func (l *Lexer) lexNumberHex(precededByLineTerminator bool) (token.Token, error) {
	return l.lexNumberRadix(charfilter.DIGIT_HEX, precededByLineTerminator)
}

// lexNumberOct reads an octal literal after its "0o"/"0O" prefix.
func (l *Lexer) lexNumberOct(precededByLineTerminator bool) (token.Token, error) {
	return l.lexNumberRadix(charfilter.DIGIT_OCT, precededByLineTerminator)
}

func (l *Lexer) lexNumberRadix(digits *charfilter.Filter, precededByLineTerminator bool) (token.Token, error) {
	cp := l.Checkpoint()
	l.skipExpect(2) // radix prefix, e.g. "0x"
	l.consume(l.whileChars(digits))
	return token.New(l.SinceCheckpoint(cp), token.LITERAL_NUMBER, precededByLineTerminator), nil
}
