// Package lexer implements the JavaScript/TypeScript-family lexer core:
// the source cursor, the longest-match dispatch loop, and the sub-lexers
// for identifiers, numbers, strings, regexes, and template literals
// (spec.md §1-§4).
package lexer

import (
	"bytes"

	"github.com/anvilware/tslex/internal/charfilter"
	"github.com/anvilware/tslex/internal/lexerr"
	"github.com/anvilware/tslex/internal/matcher"
	"github.com/anvilware/tslex/internal/source"
)

// sharedMatcher is the process-wide pattern matcher (spec.md §5): built
// once, read concurrently without synchronization by any number of Lexer
// instances.
var sharedMatcher = matcher.New()

// Mode selects how the dispatch loop treats a leading '/': as the start of
// a regex literal, or as the division operator. The parser supplies this
// per call based on its own expression/statement context (spec.md §4.3).
type Mode int

const (
	// Standard lexes '/' and '/=' as operators.
	Standard Mode = iota
	// SlashIsRegex lexes a leading '/' as the start of a regex literal.
	SlashIsRegex
)

// Checkpoint is an opaque snapshot of the lexer's cursor, for O(1)
// backtracking (spec.md §3).
type Checkpoint struct {
	next int
}

// match is the lexer's internal scanning-primitive result: a length
// relative to the current cursor. It must be consumed (or discarded)
// before the cursor advances for any other reason (spec.md §3).
type match struct {
	len int
}

// Lexer holds the byte buffer being scanned and the single mutable cursor
// offset into it (spec.md §3). It is not safe for concurrent use; each
// goroutine lexing a Source needs its own Lexer.
type Lexer struct {
	src  *source.Source
	next int
}

// New constructs a Lexer positioned at the start of code.
func New(code []byte) *Lexer {
	return &Lexer{src: source.New(code)}
}

// NewFromString constructs a Lexer over a string's bytes.
func NewFromString(code string) *Lexer {
	return &Lexer{src: source.NewFromString(code)}
}

// SourceRange returns the range covering the whole source.
func (l *Lexer) SourceRange() source.Range {
	return l.src.Range(0, l.end())
}

// Slice returns the bytes a SourceRange covers within this lexer's source.
func (l *Lexer) Slice(r source.Range) []byte {
	return r.Bytes()
}

func (l *Lexer) end() int { return l.src.Len() }

func (l *Lexer) remaining() int { return l.end() - l.next }

func (l *Lexer) errorAt(kind lexerr.Kind) *lexerr.SyntaxError {
	return lexerr.New(kind, l.src, l.next)
}

// AtEnd reports whether the cursor has reached the end of the source.
func (l *Lexer) AtEnd() bool {
	return l.next >= l.end()
}

// PrevChar returns the byte immediately before the cursor, or the sentinel
// 0xFF if the cursor is at the start. 0xFF never appears inside valid UTF-8
// and never satisfies any CharFilter used for context checks (spec.md §4.1).
func (l *Lexer) PrevChar() byte {
	if l.next == 0 {
		return 0xFF
	}
	return l.src.Code()[l.next-1]
}

// PeekOrEOF returns the byte n positions ahead of the cursor, or false if
// that position is out of bounds.
func (l *Lexer) PeekOrEOF(n int) (byte, bool) {
	idx := l.next + n
	if idx < 0 || idx >= l.end() {
		return 0, false
	}
	return l.src.Code()[idx], true
}

// Peek returns the byte n positions ahead of the cursor, failing with
// UnexpectedEnd if out of bounds.
func (l *Lexer) Peek(n int) (byte, error) {
	b, ok := l.PeekOrEOF(n)
	if !ok {
		return 0, l.errorAt(lexerr.UnexpectedEnd)
	}
	return b, nil
}

// Checkpoint snapshots the current cursor position.
func (l *Lexer) Checkpoint() Checkpoint {
	return Checkpoint{next: l.next}
}

// SinceCheckpoint returns the range from cp to the current cursor position,
// without moving the cursor.
func (l *Lexer) SinceCheckpoint(cp Checkpoint) source.Range {
	return l.src.Range(cp.next, l.next)
}

// ApplyCheckpoint restores the cursor to a previously taken Checkpoint.
func (l *Lexer) ApplyCheckpoint(cp Checkpoint) {
	l.next = cp.next
}

// n returns a match of length k, failing UnexpectedEnd if insufficient
// bytes remain.
func (l *Lexer) n(k int) (match, error) {
	if l.next+k > l.end() {
		return match{}, l.errorAt(lexerr.UnexpectedEnd)
	}
	return match{len: k}, nil
}

// ifChar returns a length-1 match if the byte at the cursor equals c, else
// a length-0 match.
func (l *Lexer) ifChar(c byte) match {
	if !l.AtEnd() && l.src.Code()[l.next] == c {
		return match{len: 1}
	}
	return match{len: 0}
}

// throughChar returns the match from the cursor up to and including the
// next occurrence of c, failing UnexpectedEnd if c does not appear.
func (l *Lexer) throughChar(c byte) (match, error) {
	rest := l.src.Code()[l.next:]
	idx := bytes.IndexByte(rest, c)
	if idx < 0 {
		return match{}, l.errorAt(lexerr.UnexpectedEnd)
	}
	return match{len: idx + 1}, nil
}

// whileNot2Chars returns the length of the prefix containing neither a nor
// b (up to EOF).
func (l *Lexer) whileNot2Chars(a, b byte) match {
	rest := l.src.Code()[l.next:]
	idx := bytes.IndexAny(rest, string([]byte{a, b}))
	if idx < 0 {
		return match{len: l.remaining()}
	}
	return match{len: idx}
}

// whileNot3Chars returns the length of the prefix containing none of a, b,
// or c (up to EOF).
func (l *Lexer) whileNot3Chars(a, b, c byte) match {
	rest := l.src.Code()[l.next:]
	idx := bytes.IndexAny(rest, string([]byte{a, b, c}))
	if idx < 0 {
		return match{len: l.remaining()}
	}
	return match{len: idx}
}

// whileChars returns the length of the prefix all of whose bytes satisfy
// filter.
func (l *Lexer) whileChars(filter *charfilter.Filter) match {
	code := l.src.Code()
	length := 0
	for l.next+length < l.end() && filter.Has(code[l.next+length]) {
		length++
	}
	return match{len: length}
}

// matchPattern runs the shared anchored longest-leftmost matcher at the
// cursor, failing ExpectedNotFound if nothing matches.
func (l *Lexer) matchPattern() (matcher.Match, error) {
	m, ok := sharedMatcher.Match(l.src.Code()[l.next:])
	if !ok {
		return matcher.Match{}, l.errorAt(lexerr.ExpectedNotFound)
	}
	return m, nil
}

// rangeOf builds the SourceRange [next, next+m.len) without advancing.
func (l *Lexer) rangeOf(m match) source.Range {
	return l.src.Range(l.next, l.next+m.len)
}

// consume advances the cursor by m.len.
func (l *Lexer) consume(m match) {
	l.next += m.len
}

// skipExpect advances the cursor by n bytes unconditionally; the caller
// guarantees this stays within bounds.
func (l *Lexer) skipExpect(n int) {
	l.next += n
}
