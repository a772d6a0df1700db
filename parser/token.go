package parser

import "fmt"

type Position struct {
	FilePath    string
	Line        int // 0-based
	ColumnStart int // inclusive, in characters
	ColumnEnd   int // exclusive
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.FilePath, p.Line+1, p.ColumnStart+1)
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	KindUnknown TokenKind = iota

	// Literals
	KindInt
	KindFloat
	KindBool
	KindStr

	KindIdentifier

	// Type keywords
	KindKeywordInt
	KindKeywordFloat
	KindKeywordBool
	KindKeywordStr

	// Punctuation
	KindColon
	KindSemicolon
	KindAssign
	KindQuote
	KindOpenParen
	KindCloseParen
	KindOpenBracket
	KindCloseBracket
	KindOpenBrace
	KindCloseBrace
	KindComma
	KindArrow
	KindFatArrow
	KindConcat
	KindUnderscore
	KindPipe
	KindPlus
	KindMinus
	KindStar
	KindSlash
	KindGreater

	// Whitespace
	KindSpace
	KindTab
	KindNewline

	KindComment
	KindEOF
)

var tokenKindNames = map[TokenKind]string{
	KindUnknown:      "Unknown",
	KindInt:          "Int",
	KindFloat:        "Float",
	KindBool:         "Bool",
	KindStr:          "Str",
	KindIdentifier:   "Identifier",
	KindKeywordInt:   "KeywordInt",
	KindKeywordFloat: "KeywordFloat",
	KindKeywordBool:  "KeywordBool",
	KindKeywordStr:   "KeywordStr",
	KindColon:        "Colon",
	KindSemicolon:    "Semicolon",
	KindAssign:       "Assign",
	KindQuote:        "Quote",
	KindOpenParen:    "OpenParen",
	KindCloseParen:   "CloseParen",
	KindOpenBracket:  "OpenBracket",
	KindCloseBracket: "CloseBracket",
	KindOpenBrace:    "OpenBrace",
	KindCloseBrace:   "CloseBrace",
	KindComma:        "Comma",
	KindArrow:        "Arrow",
	KindFatArrow:     "FatArrow",
	KindConcat:       "Concat",
	KindUnderscore:   "Underscore",
	KindPipe:         "Pipe",
	KindPlus:         "Plus",
	KindMinus:        "Minus",
	KindStar:         "Star",
	KindSlash:        "Slash",
	KindGreater:      "Greater",
	KindSpace:        "Space",
	KindTab:          "Tab",
	KindNewline:      "Newline",
	KindComment:      "Comment",
	KindEOF:          "EOF",
}

func (k TokenKind) String() string {
	if name, ok := tokenKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

type Token struct {
	Kind     TokenKind
	Lexeme   string
	Location Position
}

var keywords = map[string]TokenKind{
	"int":   KindKeywordInt,
	"float": KindKeywordFloat,
	"bool":  KindKeywordBool,
	"str":   KindKeywordStr,
	"true":  KindBool,
	"false": KindBool,
}

var punctuation = map[string]TokenKind{
	":":  KindColon,
	";":  KindSemicolon,
	"=":  KindAssign,
	"\"": KindQuote,
	"(":  KindOpenParen,
	")":  KindCloseParen,
	"[":  KindOpenBracket,
	"]":  KindCloseBracket,
	"{":  KindOpenBrace,
	"}":  KindCloseBrace,
	",":  KindComma,
	"->": KindArrow,
	"=>": KindFatArrow,
	"++": KindConcat,
	"_":  KindUnderscore,
	"|":  KindPipe,
	"+":  KindPlus,
	"-":  KindMinus,
	"*":  KindStar,
	"/":  KindSlash,
	">":  KindGreater,
	" ":  KindSpace,
	"\t": KindTab,
	"\n": KindNewline,
}

// ClassifyLexeme maps any lexeme to a token kind: keywords first, then
// punctuation, then numeric shapes, identifier as the fallback. It is
// total so the lexer never has to fail classification.
func ClassifyLexeme(lexeme string) TokenKind {
	if kind, ok := keywords[lexeme]; ok {
		return kind
	}
	if kind, ok := punctuation[lexeme]; ok {
		return kind
	}
	if lexeme == "" {
		return KindEOF
	}
	allDigits := true
	hasDigit := false
	hasDot := false
	for _, r := range lexeme {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.':
			hasDot = true
			allDigits = false
		default:
			allDigits = false
		}
	}
	if allDigits {
		return KindInt
	}
	if hasDot && hasDigit {
		return KindFloat
	}
	return KindIdentifier
}

// IsLiteral reports whether k is a literal token kind, the set that can
// begin an expression.
func (k TokenKind) IsLiteral() bool {
	switch k {
	case KindInt, KindFloat, KindBool, KindStr:
		return true
	}
	return false
}

// IsTypeName reports whether k can stand in type position: a plain
// identifier or one of the reserved type keywords.
func (k TokenKind) IsTypeName() bool {
	switch k {
	case KindIdentifier, KindKeywordInt, KindKeywordFloat, KindKeywordBool, KindKeywordStr:
		return true
	}
	return false
}
