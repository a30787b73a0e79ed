// Package charfilter provides 256-entry byte classification tables used by
// the lexer's scanning primitives. Each filter is built once at package
// init and is immutable afterwards.
package charfilter

// Filter is a 256-entry boolean lookup table over byte values.
type Filter [256]bool

// Has reports whether b satisfies the filter.
func (f *Filter) Has(b byte) bool {
	return f[b]
}

func build(set func(b byte) bool) *Filter {
	var f Filter
	for b := 0; b < 256; b++ {
		f[b] = set(byte(b))
	}
	return &f
}

func isASCIIDigit(b byte) bool { return b >= '0' && b <= '9' }

// Named filters, matching spec.md §3. The identifier filters accept ASCII
// letters, '_', and '$' only — identifier scanning beyond byte-level
// filters (full Unicode ID_Start/ID_Continue) is out of scope (spec.md
// §1 Non-goals).
var (
	// DIGIT matches the decimal digits 0-9.
	DIGIT = build(isASCIIDigit)

	// DIGIT_BIN matches the binary digits 0-1.
	DIGIT_BIN = build(func(b byte) bool { return b == '0' || b == '1' })

	// DIGIT_OCT matches the octal digits 0-7.
	DIGIT_OCT = build(func(b byte) bool { return b >= '0' && b <= '7' })

	// DIGIT_HEX matches hexadecimal digits, both cases.
	DIGIT_HEX = build(func(b byte) bool {
		return isASCIIDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
	})

	// ID_START matches bytes that may begin an identifier: ASCII letters,
	// '_', and '$'.
	ID_START = build(func(b byte) bool {
		return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_' || b == '$'
	})

	// ID_CONTINUE matches bytes that may continue an identifier after its
	// first byte: everything ID_START accepts, plus digits.
	ID_CONTINUE = build(func(b byte) bool {
		return ID_START.Has(b) || isASCIIDigit(b)
	})

	// WHITESPACE matches bytes skipped between tokens. '\n' must be
	// included so the dispatch loop's whitespace skip also consumes
	// newlines (spec.md §6).
	WHITESPACE = build(func(b byte) bool {
		switch b {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			return true
		default:
			return false
		}
	})

	// ID_CONTINUE_OR_PARENTHESIS_CLOSE_OR_BRACKET_CLOSE is used to decide
	// whether a '<' following this byte should be reclassified as the
	// opener of a type-arguments list (spec.md §4.3).
	ID_CONTINUE_OR_PARENTHESIS_CLOSE_OR_BRACKET_CLOSE = build(func(b byte) bool {
		return ID_CONTINUE.Has(b) || b == ')' || b == ']'
	})
)
