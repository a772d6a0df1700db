// Package ast projects the generic parse tree into typed declarations.
// The projection is best effort: statements that did not parse stay in
// the file as BadStmt entries, and malformed sub-structure comes out as
// nil fields rather than failing the whole projection.
package ast

import (
	"strings"

	"github.com/dhamidi/funs/parser"
)

// File is the typed view of one parsed source file, statements in
// source order.
type File struct {
	Path       string
	Statements []Stmt
}

// Stmt is implemented by every statement form.
type Stmt interface {
	stmt()
}

// VarDecl is a variable declaration: name ":" type "=" value.
type VarDecl struct {
	Name  string
	Type  *TypeRef
	Value *Literal
	Span  parser.Span
}

// FunDecl is a function declaration: name, parameter types, return
// type, parameter names and the body expression.
type FunDecl struct {
	Name       string
	ParamTypes []*TypeRef
	ReturnType *TypeRef
	Params     []string
	Body       *Literal
	Span       parser.Span
}

// ExprStmt is a bare expression statement.
type ExprStmt struct {
	Value *Literal
	Span  parser.Span
}

// Comment is a full-line comment kept at file level.
type Comment struct {
	Text string
	Span parser.Span
}

// BadStmt marks a statement the parser wrapped in an error node.
type BadStmt struct {
	Message string
	Span    parser.Span
}

func (*VarDecl) stmt()  {}
func (*FunDecl) stmt()  {}
func (*ExprStmt) stmt() {}
func (*Comment) stmt()  {}
func (*BadStmt) stmt()  {}

// TypeRef is a type expression: exactly one of Name, List, or Tuple is
// set. A nil TypeRef stands for a type that did not parse.
type TypeRef struct {
	Name  string
	List  *TypeRef
	Tuple []*TypeRef
	Span  parser.Span
}

func (t *TypeRef) String() string {
	switch {
	case t == nil:
		return "?"
	case t.List != nil:
		return "[" + t.List.String() + "]"
	case t.Tuple != nil:
		parts := make([]string, len(t.Tuple))
		for i, part := range t.Tuple {
			parts[i] = part.String()
		}
		return "(" + strings.Join(parts, ", ") + ")"
	default:
		return t.Name
	}
}

// Literal is a literal expression value.
type Literal struct {
	Kind  parser.TokenKind
	Value string
	Span  parser.Span
}

// VarDecls returns the variable declarations of the file in order.
func (f *File) VarDecls() []*VarDecl {
	var out []*VarDecl
	for _, stmt := range f.Statements {
		if decl, ok := stmt.(*VarDecl); ok {
			out = append(out, decl)
		}
	}
	return out
}

// FunDecls returns the function declarations of the file in order.
func (f *File) FunDecls() []*FunDecl {
	var out []*FunDecl
	for _, stmt := range f.Statements {
		if decl, ok := stmt.(*FunDecl); ok {
			out = append(out, decl)
		}
	}
	return out
}
