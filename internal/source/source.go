// Package source holds the raw byte buffer a lexer reads from and the
// zero-copy ranges that point into it.
package source

// Source is the immutable byte buffer a Lexer scans. It is shared by
// reference: every SourceRange built from it holds the same handle, so
// ranges stay valid for as long as the Source itself is reachable, even
// after the Lexer that produced them is discarded.
type Source struct {
	code []byte
}

// New wraps code as a Source. The caller must not mutate code afterwards;
// Source treats it as immutable.
func New(code []byte) *Source {
	return &Source{code: code}
}

// NewFromString wraps a copy of a string's bytes as a Source.
func NewFromString(code string) *Source {
	return &Source{code: []byte(code)}
}

// Code returns the full underlying byte buffer.
func (s *Source) Code() []byte {
	return s.code
}

// Len returns the number of bytes in the buffer.
func (s *Source) Len() int {
	return len(s.code)
}

// Range builds a SourceRange over this Source for [start, end).
func (s *Source) Range(start, end int) Range {
	return Range{source: s, start: start, end: end}
}

// Range is a half-open byte interval [Start, End) over a Source. It carries
// no bytes of its own, only offsets plus the shared Source handle, so
// copying a Range is O(1) and never duplicates source text.
type Range struct {
	source *Source
	start  int
	end    int
}

// Start returns the inclusive start offset.
func (r Range) Start() int { return r.start }

// End returns the exclusive end offset.
func (r Range) End() int { return r.end }

// Len returns End-Start.
func (r Range) Len() int { return r.end - r.start }

// Source returns the Source this range points into.
func (r Range) Source() *Source { return r.source }

// Bytes returns the byte slice this range covers. The slice aliases the
// Source's buffer; callers must not mutate it.
func (r Range) Bytes() []byte {
	return r.source.code[r.start:r.end]
}

// String returns the range's text as a string (one copy).
func (r Range) String() string {
	return string(r.Bytes())
}
