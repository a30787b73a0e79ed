package token

// Operators maps every punctuator/operator TokenType to its fixed byte
// literal (spec.md §4.2, §6). Built once; read-only after init.
var Operators = map[TokenType][]byte{
	AMPERSAND:                  []byte("&"),
	AMPERSAND_AMPERSAND:        []byte("&&"),
	AMPERSAND_AMPERSAND_EQUALS: []byte("&&="),
	AMPERSAND_EQUALS:           []byte("&="),
	ASTERISK:                   []byte("*"),
	ASTERISK_ASTERISK:          []byte("**"),
	ASTERISK_ASTERISK_EQUALS:   []byte("**="),
	ASTERISK_EQUALS:            []byte("*="),
	BAR:                        []byte("|"),
	BAR_BAR:                    []byte("||"),
	BAR_BAR_EQUALS:             []byte("||="),
	BAR_EQUALS:                 []byte("|="),
	BRACE_CLOSE:                []byte("}"),
	BRACE_OPEN:                 []byte("{"),
	BRACKET_CLOSE:              []byte("]"),
	BRACKET_OPEN:               []byte("["),
	CARET:                      []byte("^"),
	CARET_EQUALS:               []byte("^="),
	CHEVRON_LEFT:               []byte("<"),
	CHEVRON_LEFT_CHEVRON_LEFT:         []byte("<<"),
	CHEVRON_LEFT_CHEVRON_LEFT_EQUALS:  []byte("<<="),
	CHEVRON_LEFT_EQUALS:               []byte("<="),
	CHEVRON_RIGHT:                     []byte(">"),
	CHEVRON_RIGHT_CHEVRON_RIGHT:       []byte(">>"),
	CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT:        []byte(">>>"),
	CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS:  []byte(">>>="),
	CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS: []byte(">>="),
	CHEVRON_RIGHT_EQUALS:               []byte(">="),
	COLON:                 []byte(":"),
	COMMA:                 []byte(","),
	DOT:                   []byte("."),
	DOT_DOT_DOT:           []byte("..."),
	EQUALS:                []byte("="),
	EQUALS_CHEVRON_RIGHT:  []byte("=>"),
	EQUALS_EQUALS:         []byte("=="),
	EQUALS_EQUALS_EQUALS:  []byte("==="),
	EXCLAMATION:           []byte("!"),
	EXCLAMATION_EQUALS:    []byte("!="),
	EXCLAMATION_EQUALS_EQUALS: []byte("!=="),
	HYPHEN:                []byte("-"),
	HYPHEN_EQUALS:         []byte("-="),
	HYPHEN_HYPHEN:         []byte("--"),
	PARENTHESIS_CLOSE:     []byte(")"),
	PARENTHESIS_OPEN:      []byte("("),
	PERCENT:               []byte("%"),
	PERCENT_EQUALS:        []byte("%="),
	PLUS:                  []byte("+"),
	PLUS_EQUALS:           []byte("+="),
	PLUS_PLUS:             []byte("++"),
	QUESTION:              []byte("?"),
	QUESTION_DOT:          []byte("?."),
	QUESTION_QUESTION:     []byte("??"),
	SEMICOLON:             []byte(";"),
	SLASH:                 []byte("/"),
	SLASH_EQUALS:          []byte("/="),
	TILDE:                 []byte("~"),
}

// Keywords maps every reserved word and reserved literal keyword
// (true/false/null/undefined) to its fixed ASCII literal (spec.md §4.2, §6).
var Keywords = map[TokenType][]byte{
	KEYWORD_AS:          []byte("as"),
	KEYWORD_ASYNC:       []byte("async"),
	KEYWORD_AWAIT:       []byte("await"),
	KEYWORD_BREAK:       []byte("break"),
	KEYWORD_CASE:        []byte("case"),
	KEYWORD_CATCH:       []byte("catch"),
	KEYWORD_CLASS:       []byte("class"),
	KEYWORD_CONST:       []byte("const"),
	KEYWORD_CONSTRUCTOR: []byte("constructor"),
	KEYWORD_CONTINUE:    []byte("continue"),
	KEYWORD_DEBUGGER:    []byte("debugger"),
	KEYWORD_DEFAULT:     []byte("default"),
	KEYWORD_DELETE:      []byte("delete"),
	KEYWORD_DO:          []byte("do"),
	KEYWORD_ELSE:        []byte("else"),
	KEYWORD_EXPORT:      []byte("export"),
	KEYWORD_EXTENDS:     []byte("extends"),
	KEYWORD_FINALLY:     []byte("finally"),
	KEYWORD_FOR:         []byte("for"),
	KEYWORD_FROM:        []byte("from"),
	KEYWORD_FUNCTION:    []byte("function"),
	KEYWORD_GET:         []byte("get"),
	KEYWORD_IF:          []byte("if"),
	KEYWORD_IMPORT:      []byte("import"),
	KEYWORD_IN:          []byte("in"),
	KEYWORD_INSTANCEOF:  []byte("instanceof"),
	KEYWORD_LET:         []byte("let"),
	KEYWORD_NEW:         []byte("new"),
	KEYWORD_OF:          []byte("of"),
	KEYWORD_RETURN:      []byte("return"),
	KEYWORD_SET:         []byte("set"),
	KEYWORD_STATIC:      []byte("static"),
	KEYWORD_SUPER:       []byte("super"),
	KEYWORD_SWITCH:      []byte("switch"),
	KEYWORD_THIS:        []byte("this"),
	KEYWORD_THROW:       []byte("throw"),
	KEYWORD_TRY:         []byte("try"),
	KEYWORD_TYPEOF:      []byte("typeof"),
	KEYWORD_VAR:         []byte("var"),
	KEYWORD_VOID:        []byte("void"),
	KEYWORD_WHILE:       []byte("while"),
	KEYWORD_WITH:        []byte("with"),
	KEYWORD_YIELD:       []byte("yield"),
	LITERAL_FALSE:       []byte("false"),
	LITERAL_NULL:        []byte("null"),
	LITERAL_TRUE:        []byte("true"),
	LITERAL_UNDEFINED:   []byte("undefined"),
}

// tokenTypeStrings maps TokenType values to their string representations,
// following the teacher's array-indexed-by-enum style.
var tokenTypeStrings = [...]string{
	ILLEGAL:          "ILLEGAL",
	EOF:              "EOF",
	COMMENT_SINGLE:   "COMMENT_SINGLE",
	COMMENT_MULTIPLE: "COMMENT_MULTIPLE",

	IDENT:                            "IDENT",
	LITERAL_NUMBER:                   "LITERAL_NUMBER",
	LITERAL_NUMBER_BIN:               "LITERAL_NUMBER_BIN",
	LITERAL_NUMBER_HEX:               "LITERAL_NUMBER_HEX",
	LITERAL_NUMBER_OCT:               "LITERAL_NUMBER_OCT",
	LITERAL_STRING:                   "LITERAL_STRING",
	LITERAL_REGEX:                    "LITERAL_REGEX",
	LITERAL_TEMPLATE_PART_STRING:     "LITERAL_TEMPLATE_PART_STRING",
	LITERAL_TEMPLATE_PART_STRING_END: "LITERAL_TEMPLATE_PART_STRING_END",

	KEYWORD_AS:          "KEYWORD_AS",
	KEYWORD_ASYNC:       "KEYWORD_ASYNC",
	KEYWORD_AWAIT:       "KEYWORD_AWAIT",
	KEYWORD_BREAK:       "KEYWORD_BREAK",
	KEYWORD_CASE:        "KEYWORD_CASE",
	KEYWORD_CATCH:       "KEYWORD_CATCH",
	KEYWORD_CLASS:       "KEYWORD_CLASS",
	KEYWORD_CONST:       "KEYWORD_CONST",
	KEYWORD_CONSTRUCTOR: "KEYWORD_CONSTRUCTOR",
	KEYWORD_CONTINUE:    "KEYWORD_CONTINUE",
	KEYWORD_DEBUGGER:    "KEYWORD_DEBUGGER",
	KEYWORD_DEFAULT:     "KEYWORD_DEFAULT",
	KEYWORD_DELETE:      "KEYWORD_DELETE",
	KEYWORD_DO:          "KEYWORD_DO",
	KEYWORD_ELSE:        "KEYWORD_ELSE",
	KEYWORD_EXPORT:      "KEYWORD_EXPORT",
	KEYWORD_EXTENDS:     "KEYWORD_EXTENDS",
	KEYWORD_FINALLY:     "KEYWORD_FINALLY",
	KEYWORD_FOR:         "KEYWORD_FOR",
	KEYWORD_FROM:        "KEYWORD_FROM",
	KEYWORD_FUNCTION:    "KEYWORD_FUNCTION",
	KEYWORD_GET:         "KEYWORD_GET",
	KEYWORD_IF:          "KEYWORD_IF",
	KEYWORD_IMPORT:      "KEYWORD_IMPORT",
	KEYWORD_IN:          "KEYWORD_IN",
	KEYWORD_INSTANCEOF:  "KEYWORD_INSTANCEOF",
	KEYWORD_LET:         "KEYWORD_LET",
	KEYWORD_NEW:         "KEYWORD_NEW",
	KEYWORD_OF:          "KEYWORD_OF",
	KEYWORD_RETURN:      "KEYWORD_RETURN",
	KEYWORD_SET:         "KEYWORD_SET",
	KEYWORD_STATIC:      "KEYWORD_STATIC",
	KEYWORD_SUPER:       "KEYWORD_SUPER",
	KEYWORD_SWITCH:      "KEYWORD_SWITCH",
	KEYWORD_THIS:        "KEYWORD_THIS",
	KEYWORD_THROW:       "KEYWORD_THROW",
	KEYWORD_TRY:         "KEYWORD_TRY",
	KEYWORD_TYPEOF:      "KEYWORD_TYPEOF",
	KEYWORD_VAR:         "KEYWORD_VAR",
	KEYWORD_VOID:        "KEYWORD_VOID",
	KEYWORD_WHILE:       "KEYWORD_WHILE",
	KEYWORD_WITH:        "KEYWORD_WITH",
	KEYWORD_YIELD:       "KEYWORD_YIELD",
	LITERAL_TRUE:        "LITERAL_TRUE",
	LITERAL_FALSE:       "LITERAL_FALSE",
	LITERAL_NULL:        "LITERAL_NULL",
	LITERAL_UNDEFINED:   "LITERAL_UNDEFINED",

	BRACE_OPEN:         "BRACE_OPEN",
	BRACE_CLOSE:        "BRACE_CLOSE",
	PARENTHESIS_OPEN:   "PARENTHESIS_OPEN",
	PARENTHESIS_CLOSE:  "PARENTHESIS_CLOSE",
	BRACKET_OPEN:       "BRACKET_OPEN",
	BRACKET_CLOSE:      "BRACKET_CLOSE",
	SEMICOLON:          "SEMICOLON",
	COMMA:              "COMMA",
	DOT:                "DOT",
	DOT_DOT_DOT:        "DOT_DOT_DOT",
	COLON:              "COLON",

	AMPERSAND:                  "AMPERSAND",
	AMPERSAND_AMPERSAND:        "AMPERSAND_AMPERSAND",
	AMPERSAND_AMPERSAND_EQUALS: "AMPERSAND_AMPERSAND_EQUALS",
	AMPERSAND_EQUALS:           "AMPERSAND_EQUALS",
	ASTERISK:                   "ASTERISK",
	ASTERISK_ASTERISK:          "ASTERISK_ASTERISK",
	ASTERISK_ASTERISK_EQUALS:   "ASTERISK_ASTERISK_EQUALS",
	ASTERISK_EQUALS:            "ASTERISK_EQUALS",
	BAR:                        "BAR",
	BAR_BAR:                    "BAR_BAR",
	BAR_BAR_EQUALS:             "BAR_BAR_EQUALS",
	BAR_EQUALS:                 "BAR_EQUALS",
	CARET:                      "CARET",
	CARET_EQUALS:               "CARET_EQUALS",
	CHEVRON_LEFT:                             "CHEVRON_LEFT",
	CHEVRON_LEFT_AS_TYPE_ARGUMENTS_LIST:      "CHEVRON_LEFT_AS_TYPE_ARGUMENTS_LIST",
	CHEVRON_LEFT_CHEVRON_LEFT:                "CHEVRON_LEFT_CHEVRON_LEFT",
	CHEVRON_LEFT_CHEVRON_LEFT_EQUALS:         "CHEVRON_LEFT_CHEVRON_LEFT_EQUALS",
	CHEVRON_LEFT_EQUALS:                      "CHEVRON_LEFT_EQUALS",
	CHEVRON_RIGHT:                            "CHEVRON_RIGHT",
	CHEVRON_RIGHT_CHEVRON_RIGHT:              "CHEVRON_RIGHT_CHEVRON_RIGHT",
	CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT: "CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT",
	CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS: "CHEVRON_RIGHT_CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS",
	CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS:               "CHEVRON_RIGHT_CHEVRON_RIGHT_EQUALS",
	CHEVRON_RIGHT_EQUALS:                             "CHEVRON_RIGHT_EQUALS",
	EQUALS:                    "EQUALS",
	EQUALS_CHEVRON_RIGHT:      "EQUALS_CHEVRON_RIGHT",
	EQUALS_EQUALS:             "EQUALS_EQUALS",
	EQUALS_EQUALS_EQUALS:      "EQUALS_EQUALS_EQUALS",
	EXCLAMATION:               "EXCLAMATION",
	EXCLAMATION_EQUALS:        "EXCLAMATION_EQUALS",
	EXCLAMATION_EQUALS_EQUALS: "EXCLAMATION_EQUALS_EQUALS",
	HYPHEN:                    "HYPHEN",
	HYPHEN_EQUALS:             "HYPHEN_EQUALS",
	HYPHEN_HYPHEN:             "HYPHEN_HYPHEN",
	PERCENT:                   "PERCENT",
	PERCENT_EQUALS:            "PERCENT_EQUALS",
	PLUS:                      "PLUS",
	PLUS_EQUALS:               "PLUS_EQUALS",
	PLUS_PLUS:                 "PLUS_PLUS",
	QUESTION:                  "QUESTION",
	QUESTION_DOT:              "QUESTION_DOT",
	QUESTION_QUESTION:         "QUESTION_QUESTION",
	SLASH:                     "SLASH",
	SLASH_EQUALS:              "SLASH_EQUALS",
	TILDE:                     "TILDE",
}
