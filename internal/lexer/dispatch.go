package lexer

import (
	"bytes"

	"github.com/anvilware/tslex/internal/charfilter"
	"github.com/anvilware/tslex/internal/matcher"
	"github.com/anvilware/tslex/internal/source"
	"github.com/anvilware/tslex/internal/token"
)

// eofRange returns the empty range at the end of the source, the range
// carried by the EOF token.
func (l *Lexer) eofRange() source.Range {
	return l.src.Range(l.end(), l.end())
}

// LexNext is the dispatch loop (spec.md §4.3): it skips whitespace and
// comments, tracking whether a line terminator appeared in what it
// skipped, then runs the pattern matcher once and routes to whichever
// sub-lexer the matched pattern names. mode tells it whether a leading '/'
// starts a regex literal or the division operator; the caller (a parser)
// knows this from its own grammar position, not from anything the lexer
// can see on its own.
func (l *Lexer) LexNext(mode Mode) (token.Token, error) {
	precededByLineTerminator := false
	for {
		ws := l.whileChars(charfilter.WHITESPACE)
		wsBytes := l.src.Code()[l.next : l.next+ws.len]
		l.consume(ws)
		if bytes.IndexByte(wsBytes, '\n') >= 0 {
			precededByLineTerminator = true
		}

		if l.AtEnd() {
			return token.New(l.eofRange(), token.EOF, precededByLineTerminator), nil
		}

		m, err := l.matchPattern()
		if err != nil {
			return token.Token{}, err
		}

		switch m.Type {
		case token.COMMENT_MULTIPLE:
			cp := l.Checkpoint()
			if err := l.lexMultipleComment(); err != nil {
				return token.Token{}, err
			}
			if bytes.IndexByte(l.Slice(l.SinceCheckpoint(cp)), '\n') >= 0 {
				precededByLineTerminator = true
			}
			continue
		case token.COMMENT_SINGLE:
			if err := l.lexSingleComment(); err != nil {
				return token.Token{}, err
			}
			// A single-line comment always runs through its terminating '\n'.
			precededByLineTerminator = true
			continue
		}

		return l.emit(m, mode, precededByLineTerminator)
	}
}

// emit routes a single matched pattern (anything other than a comment
// opener) to its sub-lexer or, for tokens that need no further scanning,
// directly builds the Token — after applying the three reclassifications
// the dispatch loop is responsible for (spec.md §4.3).
func (l *Lexer) emit(m matcher.Match, mode Mode, precededByLineTerminator bool) (token.Token, error) {
	switch m.Type {
	case token.IDENT:
		return l.lexIdentifier(precededByLineTerminator)
	case token.LITERAL_NUMBER:
		return l.lexNumber(precededByLineTerminator)
	case token.LITERAL_NUMBER_BIN:
		return l.lexNumberBin(precededByLineTerminator)
	case token.LITERAL_NUMBER_HEX:
		return l.lexNumberHex(precededByLineTerminator)
	case token.LITERAL_NUMBER_OCT:
		return l.lexNumberOct(precededByLineTerminator)
	case token.LITERAL_STRING:
		return l.lexString(precededByLineTerminator)
	case token.LITERAL_TEMPLATE_PART_STRING:
		return l.lexTemplate(precededByLineTerminator)
	case token.SLASH, token.SLASH_EQUALS:
		if mode == SlashIsRegex {
			return l.lexRegex(precededByLineTerminator)
		}
	}

	typ := m.Type
	length := m.Len

	switch {
	case typ == token.CHEVRON_LEFT && charfilter.ID_CONTINUE_OR_PARENTHESIS_CLOSE_OR_BRACKET_CLOSE.Has(l.PrevChar()):
		typ = token.CHEVRON_LEFT_AS_TYPE_ARGUMENTS_LIST
	case typ == token.QUESTION && length != 1:
		// Matched "?." followed by a digit: only the '?' itself belongs to
		// this token, so that the following ".digit" can be read as a
		// number (spec.md §4.2's ?.0-?.9 disambiguation clique).
		length = 1
	case typ.IsKeyword():
		if c, ok := l.PeekOrEOF(length); ok && charfilter.ID_CONTINUE.Has(c) {
			// Matched a keyword that's actually just a prefix of a longer
			// identifier (e.g. "instanceof" at the start of "instanceofx").
			return l.lexIdentifier(precededByLineTerminator)
		}
	}

	rng := l.rangeOf(match{len: length})
	l.consume(match{len: length})
	return token.New(rng, typ, precededByLineTerminator), nil
}
