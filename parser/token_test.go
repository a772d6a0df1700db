package parser

import "testing"

func TestClassifyLexeme(t *testing.T) {
	tests := []struct {
		lexeme string
		kind   TokenKind
	}{
		{"int", KindKeywordInt},
		{"float", KindKeywordFloat},
		{"bool", KindKeywordBool},
		{"str", KindKeywordStr},
		{"true", KindBool},
		{"false", KindBool},
		{"x", KindIdentifier},
		{"_x_int", KindIdentifier},
		{"abc123", KindIdentifier},
		{"integer", KindIdentifier},
		{"_", KindUnderscore},
		{":", KindColon},
		{";", KindSemicolon},
		{"=", KindAssign},
		{"->", KindArrow},
		{"=>", KindFatArrow},
		{"++", KindConcat},
		{"|", KindPipe},
		{"(", KindOpenParen},
		{")", KindCloseParen},
		{"[", KindOpenBracket},
		{"]", KindCloseBracket},
		{",", KindComma},
		{"0", KindInt},
		{"123", KindInt},
		{"1.5", KindFloat},
		{"10.", KindFloat},
		{" ", KindSpace},
		{"\t", KindTab},
		{"\n", KindNewline},
		{"", KindEOF},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			if got := ClassifyLexeme(tt.lexeme); got != tt.kind {
				t.Errorf("ClassifyLexeme(%q) = %v, want %v", tt.lexeme, got, tt.kind)
			}
		})
	}
}

func TestTokenKindString(t *testing.T) {
	if got := KindKeywordInt.String(); got != "KeywordInt" {
		t.Errorf("String = %q, want %q", got, "KeywordInt")
	}
	if got := TokenKind(-1).String(); got != "Unknown" {
		t.Errorf("String = %q, want %q for out-of-range kind", got, "Unknown")
	}
}

func TestTokenKindPredicates(t *testing.T) {
	for _, kind := range []TokenKind{KindInt, KindFloat, KindBool, KindStr} {
		if !kind.IsLiteral() {
			t.Errorf("%v.IsLiteral() = false", kind)
		}
	}
	if KindIdentifier.IsLiteral() {
		t.Error("Identifier counted as literal")
	}
	for _, kind := range []TokenKind{KindIdentifier, KindKeywordInt, KindKeywordStr} {
		if !kind.IsTypeName() {
			t.Errorf("%v.IsTypeName() = false", kind)
		}
	}
	if KindInt.IsTypeName() {
		t.Error("Int literal counted as type name")
	}
}

func TestPositionString(t *testing.T) {
	p := Position{FilePath: "a.fs", Line: 2, ColumnStart: 4, ColumnEnd: 7}
	if got := p.String(); got != "a.fs:3:5" {
		t.Errorf("String = %q, want %q", got, "a.fs:3:5")
	}
}
