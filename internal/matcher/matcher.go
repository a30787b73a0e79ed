// Package matcher builds the lexer's pattern tables and the anchored,
// longest-leftmost multi-pattern matcher that drives the dispatch loop
// (spec.md §4.2).
//
// The original minify-js lexer this spec is distilled from builds this
// matcher with Rust's aho-corasick crate
// (AhoCorasickBuilder::anchored(true).dfa(true).match_kind(LeftmostLongest)).
// No Go library in the retrieval pack exposes an equivalent, verifiable API
// (see DESIGN.md), so this package builds the same anchored longest-match
// automaton directly as a byte trie, which spec.md §9 calls out as an
// acceptable substitute ("any substring matcher with the same contract
// works").
package matcher

import (
	"sort"

	"github.com/anvilware/tslex/internal/charfilter"
	"github.com/anvilware/tslex/internal/token"
)

// Match is the result of a successful matcher lookup: the pattern's token
// type and how many bytes of the input it covers.
type Match struct {
	Type token.TokenType
	Len  int
}

type node struct {
	children map[byte]*node
	terminal bool
	typ      token.TokenType
}

func newNode() *node {
	return &node{children: make(map[byte]*node)}
}

// Matcher is an anchored, longest-leftmost multi-pattern matcher: Match
// only ever considers patterns starting at byte 0 of the slice it is given,
// and among all patterns that match it returns the longest.
type Matcher struct {
	root *node
}

func (m *Matcher) insert(pattern []byte, typ token.TokenType) {
	n := m.root
	for _, b := range pattern {
		child, ok := n.children[b]
		if !ok {
			child = newNode()
			n.children[b] = child
		}
		n = child
	}
	// A pattern already present keeps its original type; every pattern in
	// the table is distinct, so this never triggers in practice (see
	// DESIGN.md), but first-inserted-wins gives a deterministic tie-break.
	if !n.terminal {
		n.terminal = true
		n.typ = typ
	}
}

// Match finds the longest pattern that matches a prefix of data. It reports
// ok=false if no pattern matches at all (spec.md's ExpectedNotFound case).
func (m *Matcher) Match(data []byte) (Match, bool) {
	n := m.root
	best := Match{}
	found := false
	for i := 0; i < len(data); i++ {
		child, ok := n.children[data[i]]
		if !ok {
			break
		}
		n = child
		if n.terminal {
			best = Match{Type: n.typ, Len: i + 1}
			found = true
		}
	}
	return best, found
}

// New builds the unified pattern table described in spec.md §4.2 and
// compiles it into a Matcher.
func New() *Matcher {
	m := &Matcher{root: newNode()}

	// Operators and keywords, in deterministic (sorted) order. Order never
	// affects the result here since every pattern byte string in the table
	// is unique, but a stable build order keeps the trie deterministic to
	// inspect and test.
	for _, typ := range sortedKeys(token.Operators) {
		m.insert(token.Operators[typ], typ)
	}
	for _, typ := range sortedKeys(token.Keywords) {
		m.insert(token.Keywords[typ], typ)
	}

	// Comment openers.
	m.insert([]byte("/*"), token.COMMENT_MULTIPLE)
	m.insert([]byte("//"), token.COMMENT_SINGLE)

	// One single-byte pattern per identifier-start byte.
	for b := 0; b < 256; b++ {
		if charfilter.ID_START.Has(byte(b)) {
			m.insert([]byte{byte(b)}, token.IDENT)
		}
	}

	// Digit bytes, one pattern each.
	for b := byte('0'); b <= '9'; b++ {
		m.insert([]byte{b}, token.LITERAL_NUMBER)
	}

	// Numeric radix prefixes.
	m.insert([]byte("0b"), token.LITERAL_NUMBER_BIN)
	m.insert([]byte("0B"), token.LITERAL_NUMBER_BIN)
	m.insert([]byte("0x"), token.LITERAL_NUMBER_HEX)
	m.insert([]byte("0X"), token.LITERAL_NUMBER_HEX)
	m.insert([]byte("0o"), token.LITERAL_NUMBER_OCT)
	m.insert([]byte("0O"), token.LITERAL_NUMBER_OCT)

	// String/template delimiters.
	m.insert([]byte(`"`), token.LITERAL_STRING)
	m.insert([]byte("'"), token.LITERAL_STRING)
	m.insert([]byte("`"), token.LITERAL_TEMPLATE_PART_STRING)

	// Disambiguation cliques (spec.md §4.2): a '.' directly followed by a
	// digit is a number, never the DOT operator; a '?' directly followed by
	// '.digit' is the standalone '?' operator, never QUESTION_DOT, because
	// optional chaining cannot be followed by a digit.
	for d := byte('0'); d <= '9'; d++ {
		m.insert([]byte{'.', d}, token.LITERAL_NUMBER)
		m.insert([]byte{'?', '.', d}, token.QUESTION)
	}

	return m
}

func sortedKeys(patterns map[token.TokenType][]byte) []token.TokenType {
	keys := make([]token.TokenType, 0, len(patterns))
	for t := range patterns {
		keys = append(keys, t)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
