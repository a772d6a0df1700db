package codebase

import (
	"fmt"
	"strings"

	"github.com/dhamidi/funs/ast"
	"github.com/dhamidi/funs/parser"
)

// TokenAt returns the token leaf whose span contains the 0-based
// point, or nil. Spans are half open, so zero-width leaves (newlines,
// end of file) never match.
func TokenAt(root *parser.Node, line, col int) *parser.Node {
	if root == nil || !containsPoint(root.Span, line, col) {
		return nil
	}
	if root.Token != nil {
		return root
	}
	for _, child := range root.Children {
		if found := TokenAt(child, line, col); found != nil {
			return found
		}
	}
	return nil
}

// NodePathAt returns the chain of internal nodes containing the point,
// outermost first. Token leaves are not part of the chain.
func NodePathAt(root *parser.Node, line, col int) []*parser.Node {
	if root == nil || root.Token != nil || !containsPoint(root.Span, line, col) {
		return nil
	}
	path := []*parser.Node{root}
	for _, child := range root.Children {
		if inner := NodePathAt(child, line, col); inner != nil {
			return append(path, inner...)
		}
	}
	return path
}

func containsPoint(span parser.Span, line, col int) bool {
	if line < span.Start.Line || line > span.End.Line {
		return false
	}
	if line == span.Start.Line && col < span.Start.ColumnStart {
		return false
	}
	if line == span.End.Line && col >= span.End.ColumnEnd {
		return false
	}
	return true
}

// HoverAt builds the hover text for the point: the token under the
// cursor, the signature of the declaration it names (if any), and the
// node chain around it. The returned span covers the token.
func (c *Codebase) HoverAt(path string, line, col int) (string, parser.Span, bool) {
	file := c.GetFile(path)
	if file == nil || file.Tree == nil {
		return "", parser.Span{}, false
	}

	leaf := TokenAt(file.Tree, line, col)
	if leaf == nil {
		return "", parser.Span{}, false
	}
	tok := leaf.Token

	var sb strings.Builder
	fmt.Fprintf(&sb, "`%s` **%s**", tok.Lexeme, tok.Kind)

	if tok.Kind == parser.KindIdentifier && file.File != nil {
		if sig := signatureOf(file.File, tok.Lexeme); sig != "" {
			fmt.Fprintf(&sb, "\n\n%s", sig)
		}
	}

	if chain := NodePathAt(file.Tree, line, col); len(chain) > 0 {
		names := make([]string, len(chain))
		for i, n := range chain {
			names[i] = n.Kind.String()
		}
		fmt.Fprintf(&sb, "\n\n%s", strings.Join(names, " > "))
	}

	return sb.String(), leaf.Span, true
}

// signatureOf renders the declaration named name, or "" when the file
// does not declare it.
func signatureOf(file *ast.File, name string) string {
	for _, stmt := range file.Statements {
		switch decl := stmt.(type) {
		case *ast.VarDecl:
			if decl.Name == name {
				return fmt.Sprintf("%s: %s", decl.Name, decl.Type)
			}
		case *ast.FunDecl:
			if decl.Name == name {
				params := make([]string, len(decl.ParamTypes))
				for i, t := range decl.ParamTypes {
					params[i] = t.String()
				}
				return fmt.Sprintf("%s: (%s) -> %s",
					decl.Name, strings.Join(params, ", "), decl.ReturnType)
			}
		}
	}
	return ""
}
