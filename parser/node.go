package parser

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	KindErrorTree NodeKind = iota
	KindFile
	KindStmtVarDecl
	KindStmtFunDecl
	KindStmtExpr
	KindTypeExpr
	KindParams
	KindExprLiteral
	KindToken
)

var nodeKindNames = map[NodeKind]string{
	KindErrorTree:   "ErrorTree",
	KindFile:        "File",
	KindStmtVarDecl: "StmtVarDecl",
	KindStmtFunDecl: "StmtFunDecl",
	KindStmtExpr:    "StmtExpr",
	KindTypeExpr:    "TypeExpr",
	KindParams:      "Params",
	KindExprLiteral: "ExprLiteral",
	KindToken:       "Token",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Error is the payload of an ErrorTree node produced during recovery.
type Error struct {
	Message string
	Got     *Token
}

// Node is one node of the parse tree. Internal nodes carry a kind and
// children; token leaves have kind KindToken and carry the token
// itself. Every significant token of the input appears in exactly one
// leaf, in source order.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []*Node
	Token    *Token
	Error    *Error
}

// AddChild appends a child node, ignoring nil.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.Children = append(n.Children, child)
}

func (n *Node) IsError() bool { return n.Kind == KindErrorTree }

// IsLeaf reports whether n is a token leaf.
func (n *Node) IsLeaf() bool { return n.Token != nil }

// FirstChildOfKind returns the first direct child with the given kind,
// or nil.
func (n *Node) FirstChildOfKind(kind NodeKind) *Node {
	for _, child := range n.Children {
		if child.Kind == kind {
			return child
		}
	}
	return nil
}

// ChildrenOfKind returns all direct children with the given kind.
func (n *Node) ChildrenOfKind(kind NodeKind) []*Node {
	var out []*Node
	for _, child := range n.Children {
		if child.Kind == kind {
			out = append(out, child)
		}
	}
	return out
}

// FirstTokenOfKind returns the first direct token leaf with the given
// token kind, or nil.
func (n *Node) FirstTokenOfKind(kind TokenKind) *Token {
	for _, child := range n.Children {
		if child.Token != nil && child.Token.Kind == kind {
			return child.Token
		}
	}
	return nil
}

// Tokens returns the token leaves under n in source order.
func (n *Node) Tokens() []Token {
	var out []Token
	n.Walk(func(node *Node) {
		if node.Token != nil {
			out = append(out, *node.Token)
		}
	})
	return out
}

// Text concatenates the lexemes of all token leaves under n. Spacing
// between significant tokens is not preserved in the tree, so this is a
// normalized rendering, not the original source slice.
func (n *Node) Text() string {
	var sb strings.Builder
	for _, tok := range n.Tokens() {
		sb.WriteString(tok.Lexeme)
	}
	return sb.String()
}

// Walk visits n and every descendant in depth-first source order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// CountErrors returns the number of ErrorTree nodes under n, itself
// included.
func (n *Node) CountErrors() int {
	count := 0
	n.Walk(func(node *Node) {
		if node.IsError() {
			count++
		}
	})
	return count
}

func (n *Node) String() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0, false)
	return sb.String()
}

// StringWithPositions renders the tree with 0-based line:column spans
// on every node.
func (n *Node) StringWithPositions() string {
	var sb strings.Builder
	n.stringIndent(&sb, 0, true)
	return sb.String()
}

func (n *Node) stringIndent(sb *strings.Builder, indent int, positions bool) {
	sb.WriteString(strings.Repeat("  ", indent))
	if n.Token != nil {
		fmt.Fprintf(sb, "%s %q", n.Token.Kind, n.Token.Lexeme)
	} else {
		sb.WriteString(n.Kind.String())
		if n.Error != nil {
			fmt.Fprintf(sb, " (%s)", n.Error.Message)
		}
	}
	if positions {
		fmt.Fprintf(sb, " [%d:%d-%d:%d]",
			n.Span.Start.Line, n.Span.Start.ColumnStart,
			n.Span.End.Line, n.Span.End.ColumnEnd)
	}
	sb.WriteString("\n")
	for _, child := range n.Children {
		child.stringIndent(sb, indent+1, positions)
	}
}

// computeSpan fills in spans bottom-up after the tree is built: an
// internal node covers its first child's start through its last child's
// end. Leaves already carry their token's location.
func (n *Node) computeSpan(path string) {
	for _, child := range n.Children {
		child.computeSpan(path)
	}
	if n.Token != nil {
		return
	}
	if len(n.Children) == 0 {
		n.Span = Span{Start: Position{FilePath: path}, End: Position{FilePath: path}}
		return
	}
	n.Span = Span{
		Start: n.Children[0].Span.Start,
		End:   n.Children[len(n.Children)-1].Span.End,
	}
}
