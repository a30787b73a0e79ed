// Package token defines the TokenType enumeration, the Token value the
// lexer emits, and the static operator/keyword tables the matcher is built
// from.
package token

import "github.com/anvilware/tslex/internal/source"

// TokenType is a tagged enumeration over every category of token the lexer
// can emit (spec.md §3).
type TokenType int

const (
	// Special tokens.
	ILLEGAL TokenType = iota
	EOF
	COMMENT_SINGLE
	COMMENT_MULTIPLE

	literalStart
	IDENT
	LITERAL_NUMBER
	// LITERAL_NUMBER_BIN, LITERAL_NUMBER_HEX, and LITERAL_NUMBER_OCT exist
	// only to label pattern-table entries so the dispatch loop can route to
	// the right radix sub-lexer; every Token the lexer actually emits for a
	// numeric literal uses LITERAL_NUMBER, matching spec.md §9 and §4.5.
	LITERAL_NUMBER_BIN
	LITERAL_NUMBER_HEX
	LITERAL_NUMBER_OCT
	LITERAL_STRING
	LITERAL_REGEX
	LITERAL_TEMPLATE_PART_STRING
	LITERAL_TEMPLATE_PART_STRING_END
	literalEnd

	keywordStart
	KEYWORD_AS
	KEYWORD_ASYNC
	KEYWORD_AWAIT
	KEYWORD_BREAK
	KEYWORD_CASE
	KEYWORD_CATCH
	KEYWORD_CLASS
	KEYWORD_CONST
	KEYWORD_CONSTRUCTOR
	KEYWORD_CONTINUE
	KEYWORD_DEBUGGER
	KEYWORD_DEFAULT
	KEYWORD_DELETE
	KEYWORD_DO
	KEYWORD_ELSE
	KEYWORD_EXPORT
	KEYWORD_EXTENDS
	KEYWORD_FINALLY
	KEYWORD_FOR
	KEYWORD_FROM
	KEYWORD_FUNCTION
	KEYWORD_GET
	KEYWORD_IF
	KEYWORD_IMPORT
	KEYWORD_IN
	KEYWORD_INSTANCEOF
	KEYWORD_LET
	KEYWORD_NEW
	KEYWORD_OF
	KEYWORD_RETURN
	KEYWORD_SET
	KEYWORD_STATIC
	KEYWORD_SUPER
	KEYWORD_SWITCH
	KEYWORD_THIS
	KEYWORD_THROW
	KEYWORD_TRY
	KEYWORD_TYPEOF
	KEYWORD_VAR
	KEYWORD_VOID
	KEYWORD_WHILE
	KEYWORD_WITH
	KEYWORD_YIELD
	LITERAL_TRUE
	LITERAL_FALSE
	LITERAL_NULL
	LITERAL_UNDEFINED
	keywordEnd

	// Punctuators and delimiters.
	BRACE_OPEN  // {
	BRACE_CLOSE // }
	PARENTHESIS_OPEN
	PARENTHESIS_CLOSE
	BRACKET_OPEN
	BRACKET_CLOSE
	SEMICOLON
	COMMA
	DOT
	DOT_DOT_DOT
	COLON

	// Operators.
	AMPERSAND
	AMPERSAND_AMPERSAND
	AMPERSAND_AMPERSAND_EQUALS
	AMPERSAND_EQUALS
	ASTERISK
	ASTERISK_ASTERISK
	ASTERISK_ASTERISK_EQUALS
	ASTERISK_EQUALS
	BAR
	BAR_BAR
	BAR_BAR_EQUALS
	BAR_EQUALS
	CARET
	CARET_EQUALS
	CHEVRON_LEFT
	CHEVRON_LEFT_AS_TYPE_ARGUMENTS_LIST
	CHEVRON_LEFT_CHEVRON_LEFT
	CHEVRON_LEFT_CHEVRON_LEFT_EQUALS
	CHEVRON_LEFT_EQUALS
	CHEVRON_RIGHT
	CHEVRON_RIGHT_CHEVRON_RIGHT
	CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT
	CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS
	CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS
	CHEVRON_RIGHT_EQUALS
	EQUALS
	EQUALS_CHEVRON_RIGHT
	EQUALS_EQUALS
	EQUALS_EQUALS_EQUALS
	EXCLAMATION
	EXCLAMATION_EQUALS
	EXCLAMATION_EQUALS_EQUALS
	HYPHEN
	HYPHEN_EQUALS
	HYPHEN_HYPHEN
	PERCENT
	PERCENT_EQUALS
	PLUS
	PLUS_EQUALS
	PLUS_PLUS
	QUESTION
	QUESTION_DOT
	QUESTION_QUESTION
	SLASH
	SLASH_EQUALS
	TILDE

	tokenTypeCount
)

// IsLiteral reports whether tt is one of the literal token families
// (identifier, number, string, regex, template part).
func (tt TokenType) IsLiteral() bool { return tt > literalStart && tt < literalEnd }

// IsKeyword reports whether tt is a reserved word or reserved literal
// keyword (true/false/null/undefined).
func (tt TokenType) IsKeyword() bool { return tt > keywordStart && tt < keywordEnd }

// String returns the TokenType's name.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenTypeStrings) {
		if s := tokenTypeStrings[tt]; s != "" {
			return s
		}
	}
	return "UNKNOWN"
}

// Token is the triple the lexer emits for every lexical unit: its exact
// byte span, its classified type, and whether any line terminator appeared
// in the whitespace/comments skipped immediately before it (spec.md §3,
// used by a downstream parser for automatic semicolon insertion).
type Token struct {
	Range                    source.Range
	Type                     TokenType
	PrecededByLineTerminator bool
}

// New constructs a Token.
func New(rng source.Range, typ TokenType, precededByLineTerminator bool) Token {
	return Token{Range: rng, Type: typ, PrecededByLineTerminator: precededByLineTerminator}
}

// Literal returns the token's source text.
func (t Token) Literal() string {
	return t.Range.String()
}
