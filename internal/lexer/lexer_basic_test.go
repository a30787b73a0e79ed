package lexer

import (
	"testing"

	"github.com/anvilware/tslex/internal/token"
)

func TestNextTokenOperatorsAndKeywords(t *testing.T) {
	input := `const x = 5;
	x = x + 10;`

	tests := []struct {
		expectedLiteral string
		expectedType    token.TokenType
	}{
		{"const", token.KEYWORD_CONST},
		{"x", token.IDENT},
		{"=", token.EQUALS},
		{"5", token.LITERAL_NUMBER},
		{";", token.SEMICOLON},
		{"x", token.IDENT},
		{"=", token.EQUALS},
		{"x", token.IDENT},
		{"+", token.PLUS},
		{"10", token.LITERAL_NUMBER},
		{";", token.SEMICOLON},
		{"", token.EOF},
	}

	l := NewFromString(input)
	for i, tt := range tests {
		tok, err := l.LexNext(Standard)
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (literal=%q)",
				i, tt.expectedType, tok.Type, tok.Literal())
		}
		if tok.Literal() != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal())
		}
	}
}

func TestKeywords(t *testing.T) {
	input := `class extends implements interface
		function return async await yield
		true false null undefined
		try catch finally throw
		instanceof typeof delete void`

	tests := []struct {
		literal string
		typ     token.TokenType
	}{
		{"class", token.KEYWORD_CLASS},
		{"extends", token.KEYWORD_EXTENDS},
		// "implements" and "interface" are not part of this lexer's reserved
		// word set; they lex as identifiers.
		{"implements", token.IDENT},
		{"interface", token.IDENT},
		{"function", token.KEYWORD_FUNCTION},
		{"return", token.KEYWORD_RETURN},
		{"async", token.KEYWORD_ASYNC},
		{"await", token.KEYWORD_AWAIT},
		{"yield", token.KEYWORD_YIELD},
		{"true", token.LITERAL_TRUE},
		{"false", token.LITERAL_FALSE},
		{"null", token.LITERAL_NULL},
		{"undefined", token.LITERAL_UNDEFINED},
		{"try", token.KEYWORD_TRY},
		{"catch", token.KEYWORD_CATCH},
		{"finally", token.KEYWORD_FINALLY},
		{"throw", token.KEYWORD_THROW},
		{"instanceof", token.KEYWORD_INSTANCEOF},
		{"typeof", token.KEYWORD_TYPEOF},
		{"delete", token.KEYWORD_DELETE},
		{"void", token.KEYWORD_VOID},
	}

	l := NewFromString(input)
	for i, tt := range tests {
		tok, err := l.LexNext(Standard)
		if err != nil {
			t.Fatalf("tests[%d] - unexpected error: %v", i, err)
		}
		if tok.Type != tt.typ {
			t.Fatalf("tests[%d] - tokentype wrong for %q. expected=%s, got=%s",
				i, tt.literal, tt.typ, tok.Type)
		}
		if tok.Literal() != tt.literal {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.literal, tok.Literal())
		}
	}
}

func TestKeywordPrefixOfIdentifier(t *testing.T) {
	// "in" and "constructor" are keywords on their own, but "infinity" and
	// "constructorName" merely start with them and must lex as whole
	// identifiers rather than be cut short.
	tests := []struct {
		input string
		typ   token.TokenType
		lit   string
	}{
		{"in", token.KEYWORD_IN, "in"},
		{"infinity", token.IDENT, "infinity"},
		{"constructor", token.KEYWORD_CONSTRUCTOR, "constructor"},
		{"constructorName", token.IDENT, "constructorName"},
	}
	for _, tt := range tests {
		l := NewFromString(tt.input)
		tok, err := l.LexNext(Standard)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if tok.Type != tt.typ || tok.Literal() != tt.lit {
			t.Fatalf("input %q: got type=%s literal=%q, want type=%s literal=%q",
				tt.input, tok.Type, tok.Literal(), tt.typ, tt.lit)
		}
	}
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		input string
		lit   string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{"1e10", "1e10"},
		{"1.5e-3", "1.5e-3"},
		{"0b101", "0b101"},
		{"0x1F", "0x1F"},
		{"0o17", "0o17"},
	}
	for _, tt := range tests {
		l := NewFromString(tt.input)
		tok, err := l.LexNext(Standard)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if tok.Type != token.LITERAL_NUMBER {
			t.Fatalf("input %q: expected LITERAL_NUMBER, got %s", tt.input, tok.Type)
		}
		if tok.Literal() != tt.lit {
			t.Fatalf("input %q: literal wrong. expected=%q, got=%q", tt.input, tt.lit, tok.Literal())
		}
	}
}

func TestDotDigitIsNumberNotDotOperator(t *testing.T) {
	l := NewFromString(".5")
	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.LITERAL_NUMBER || tok.Literal() != ".5" {
		t.Fatalf("got type=%s literal=%q, want LITERAL_NUMBER \".5\"", tok.Type, tok.Literal())
	}
}

func TestQuestionDotDigitIsQuestionThenNumber(t *testing.T) {
	l := NewFromString("?.5")
	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.QUESTION || tok.Literal() != "?" {
		t.Fatalf("first token: got type=%s literal=%q, want QUESTION \"?\"", tok.Type, tok.Literal())
	}
	tok, err = l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.LITERAL_NUMBER || tok.Literal() != ".5" {
		t.Fatalf("second token: got type=%s literal=%q, want LITERAL_NUMBER \".5\"", tok.Type, tok.Literal())
	}
}

func TestQuestionDotWithoutDigitIsOptionalChaining(t *testing.T) {
	l := NewFromString("?.x")
	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.QUESTION_DOT || tok.Literal() != "?." {
		t.Fatalf("got type=%s literal=%q, want QUESTION_DOT \"?.\"", tok.Type, tok.Literal())
	}
}

func TestChevronLeftAfterIdentifierIsTypeArgumentsList(t *testing.T) {
	l := NewFromString("Array<")
	tok, err := l.LexNext(Standard)
	if err != nil || tok.Type != token.IDENT {
		t.Fatalf("expected identifier first, got %s (%v)", tok.Type, err)
	}
	tok, err = l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.CHEVRON_LEFT_AS_TYPE_ARGUMENTS_LIST {
		t.Fatalf("got type=%s, want CHEVRON_LEFT_AS_TYPE_ARGUMENTS_LIST", tok.Type)
	}
}

func TestChevronLeftAfterOperatorIsComparison(t *testing.T) {
	l := NewFromString("x + <")
	l.LexNext(Standard) // "x"
	l.LexNext(Standard) // "+"
	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.CHEVRON_LEFT {
		t.Fatalf("got type=%s, want CHEVRON_LEFT", tok.Type)
	}
}

func TestSlashModeDivisionVsRegex(t *testing.T) {
	l := NewFromString("/a+b/g")
	tok, err := l.LexNext(Standard)
	if err != nil || tok.Type != token.SLASH {
		t.Fatalf("Standard mode: expected SLASH, got %s (%v)", tok.Type, err)
	}

	l = NewFromString("/a+b/g")
	tok, err = l.LexNext(SlashIsRegex)
	if err != nil {
		t.Fatalf("SlashIsRegex mode: unexpected error: %v", err)
	}
	if tok.Type != token.LITERAL_REGEX || tok.Literal() != "/a+b/g" {
		t.Fatalf("SlashIsRegex mode: got type=%s literal=%q, want LITERAL_REGEX \"/a+b/g\"",
			tok.Type, tok.Literal())
	}
}

func TestRegexCharsetDoesNotTerminateOnSlash(t *testing.T) {
	l := NewFromString("/[a/b]c/")
	tok, err := l.LexNext(SlashIsRegex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.LITERAL_REGEX || tok.Literal() != "/[a/b]c/" {
		t.Fatalf("got type=%s literal=%q, want LITERAL_REGEX \"/[a/b]c/\"", tok.Type, tok.Literal())
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input string
		lit   string
	}{
		{`"hello"`, `"hello"`},
		{`'world'`, `'world'`},
		{`"esc\"aped"`, `"esc\"aped"`},
	}
	for _, tt := range tests {
		l := NewFromString(tt.input)
		tok, err := l.LexNext(Standard)
		if err != nil {
			t.Fatalf("input %q: unexpected error: %v", tt.input, err)
		}
		if tok.Type != token.LITERAL_STRING || tok.Literal() != tt.lit {
			t.Fatalf("input %q: got type=%s literal=%q", tt.input, tok.Type, tok.Literal())
		}
	}
}

func TestStringUnterminatedByLineTerminatorIsError(t *testing.T) {
	l := NewFromString("\"abc\ndef\"")
	_, err := l.LexNext(Standard)
	if err == nil {
		t.Fatal("expected an error for a line terminator inside a string literal")
	}
}

func TestComments(t *testing.T) {
	l := NewFromString("// line comment\nx")
	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.IDENT || tok.Literal() != "x" {
		t.Fatalf("got type=%s literal=%q, want IDENT \"x\"", tok.Type, tok.Literal())
	}
	if !tok.PrecededByLineTerminator {
		t.Fatal("expected PrecededByLineTerminator to be true after a line comment")
	}

	l = NewFromString("/* block\ncomment */x")
	tok, err = l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.IDENT || !tok.PrecededByLineTerminator {
		t.Fatalf("got type=%s precededByLineTerminator=%v, want IDENT with line terminator",
			tok.Type, tok.PrecededByLineTerminator)
	}
}

func TestTemplateLiteralWithInterpolation(t *testing.T) {
	l := NewFromString("`a${x}b`")

	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.LITERAL_TEMPLATE_PART_STRING || tok.Literal() != "a" {
		t.Fatalf("got type=%s literal=%q, want LITERAL_TEMPLATE_PART_STRING \"a\"",
			tok.Type, tok.Literal())
	}

	tok, err = l.LexNext(Standard)
	if err != nil || tok.Type != token.IDENT || tok.Literal() != "x" {
		t.Fatalf("expected identifier \"x\", got %s %q (%v)", tok.Type, tok.Literal(), err)
	}

	tok, err = l.LexNext(Standard)
	if err != nil || tok.Type != token.BRACE_CLOSE {
		t.Fatalf("expected \"}\", got %s (%v)", tok.Type, err)
	}

	tok, err = l.LexTemplateStringContinue(false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.LITERAL_TEMPLATE_PART_STRING_END || tok.Literal() != "b" {
		t.Fatalf("got type=%s literal=%q, want LITERAL_TEMPLATE_PART_STRING_END \"b\"",
			tok.Type, tok.Literal())
	}
}

func TestTemplateLiteralWithoutInterpolation(t *testing.T) {
	l := NewFromString("`hello world`")
	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.LITERAL_TEMPLATE_PART_STRING_END || tok.Literal() != "hello world" {
		t.Fatalf("got type=%s literal=%q, want LITERAL_TEMPLATE_PART_STRING_END \"hello world\"",
			tok.Type, tok.Literal())
	}
}

func TestEOF(t *testing.T) {
	l := NewFromString("  ")
	tok, err := l.LexNext(Standard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tok.Type != token.EOF {
		t.Fatalf("got type=%s, want EOF", tok.Type)
	}
}
