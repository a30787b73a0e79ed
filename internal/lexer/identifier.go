package lexer

import (
	"github.com/anvilware/tslex/internal/charfilter"
	"github.com/anvilware/tslex/internal/token"
)

// lexIdentifier reads a full identifier starting at the cursor: one
// ID_START byte followed by any number of ID_CONTINUE bytes.
func (l *Lexer) lexIdentifier(precededByLineTerminator bool) (token.Token, error) {
	cp := l.Checkpoint()
	l.skipExpect(1) // the ID_START byte already matched by the dispatcher
	l.consume(l.whileChars(charfilter.ID_CONTINUE))
	return token.New(l.SinceCheckpoint(cp), token.IDENT, precededByLineTerminator), nil
}
