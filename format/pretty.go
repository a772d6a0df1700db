package format

import (
	"strings"

	"github.com/dhamidi/funs/parser"
)

// PrettyPrint formats source text into canonical form: a space after
// ":" and ",", spaces around "=" and "->", none inside parens or
// brackets. Line structure is untouched, so blank lines and comments
// stay where they were written.
func PrettyPrint(source []byte) ([]byte, error) {
	return PrettyPrintFile(source, "")
}

func PrettyPrintFile(source []byte, filename string) ([]byte, error) {
	src := parser.NewSource(filename, string(source))
	tree, err := parser.ParseFile(src).Finish()
	if err != nil {
		return nil, err
	}
	return PrettyPrintTree(tree), nil
}

// PrettyPrintTree renders the token leaves of a parse tree with
// canonical spacing. Every significant token of the input is a leaf of
// the tree, so files with parse errors come through intact too.
func PrettyPrintTree(tree *parser.Node) []byte {
	if tree == nil {
		return nil
	}
	tokens := tree.Tokens()
	var sb strings.Builder
	for i, tok := range tokens {
		if i > 0 && needsSpace(tokens[i-1].Kind, tok.Kind) {
			sb.WriteByte(' ')
		}
		sb.WriteString(tok.Lexeme)
	}
	out := sb.String()
	if out != "" && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return []byte(out)
}

func needsSpace(prev, next parser.TokenKind) bool {
	switch {
	case prev == parser.KindNewline || next == parser.KindNewline:
		return false
	case prev == parser.KindOpenParen || prev == parser.KindOpenBracket || prev == parser.KindOpenBrace:
		return false
	case next == parser.KindCloseParen || next == parser.KindCloseBracket || next == parser.KindCloseBrace:
		return false
	case next == parser.KindComma || next == parser.KindColon || next == parser.KindSemicolon:
		return false
	default:
		return true
	}
}
