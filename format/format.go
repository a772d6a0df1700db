// Package format renders lexer and parser output for the command line
// tools: token streams, parse trees, declaration listings, and canonical
// source text.
package format

import (
	"encoding"

	"github.com/dhamidi/funs/ast"
	"github.com/dhamidi/funs/parser"
)

// TreeEncoder renders a parse tree.
type TreeEncoder interface {
	encoding.TextMarshaler
	Encode(node *parser.Node) error
}

// TokenEncoder renders a token stream.
type TokenEncoder interface {
	encoding.TextMarshaler
	Encode(tokens []parser.Token) error
}

// FileEncoder renders the typed declaration view of a file.
type FileEncoder interface {
	encoding.TextMarshaler
	Encode(file *ast.File) error
}
