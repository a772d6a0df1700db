package ast

import (
	"github.com/dhamidi/funs/parser"
)

// FromTree builds the typed view of a parse tree produced by
// parser.ParseFile.
func FromTree(path string, root *parser.Node) *File {
	file := &File{Path: path}
	if root == nil {
		return file
	}
	for _, child := range root.Children {
		if stmt := stmtFromNode(child); stmt != nil {
			file.Statements = append(file.Statements, stmt)
		}
	}
	return file
}

func stmtFromNode(node *parser.Node) Stmt {
	switch node.Kind {
	case parser.KindStmtVarDecl:
		return varDeclFromNode(node)
	case parser.KindStmtFunDecl:
		return funDeclFromNode(node)
	case parser.KindStmtExpr:
		return exprStmtFromNode(node)
	case parser.KindErrorTree:
		return badStmtFromNode(node)
	case parser.KindToken:
		if node.Token != nil && node.Token.Kind == parser.KindComment {
			return &Comment{Text: node.Token.Lexeme, Span: node.Span}
		}
		// Blank lines separate statements but carry no meaning here.
		return nil
	default:
		return nil
	}
}

func varDeclFromNode(node *parser.Node) *VarDecl {
	decl := &VarDecl{Span: node.Span}
	if name := node.FirstTokenOfKind(parser.KindIdentifier); name != nil {
		decl.Name = name.Lexeme
	}
	if typeNode := node.FirstChildOfKind(parser.KindTypeExpr); typeNode != nil {
		decl.Type = typeRefFromNode(typeNode)
	}
	if valueNode := node.FirstChildOfKind(parser.KindExprLiteral); valueNode != nil {
		decl.Value = literalFromNode(valueNode)
	}
	return decl
}

func funDeclFromNode(node *parser.Node) *FunDecl {
	decl := &FunDecl{Span: node.Span}
	if name := node.FirstTokenOfKind(parser.KindIdentifier); name != nil {
		decl.Name = name.Lexeme
	}
	// The first TypeExpr groups the parameter types, the second is the
	// return type.
	typeNodes := node.ChildrenOfKind(parser.KindTypeExpr)
	if len(typeNodes) > 0 {
		for _, paramType := range typeNodes[0].ChildrenOfKind(parser.KindTypeExpr) {
			decl.ParamTypes = append(decl.ParamTypes, typeRefFromNode(paramType))
		}
	}
	if len(typeNodes) > 1 {
		decl.ReturnType = typeRefFromNode(typeNodes[1])
	}
	if params := node.FirstChildOfKind(parser.KindParams); params != nil {
		for _, child := range params.Children {
			if child.Token != nil && child.Token.Kind == parser.KindIdentifier {
				decl.Params = append(decl.Params, child.Token.Lexeme)
			}
		}
	}
	if body := node.FirstChildOfKind(parser.KindExprLiteral); body != nil {
		decl.Body = literalFromNode(body)
	}
	return decl
}

func exprStmtFromNode(node *parser.Node) *ExprStmt {
	stmt := &ExprStmt{Span: node.Span}
	if valueNode := node.FirstChildOfKind(parser.KindExprLiteral); valueNode != nil {
		stmt.Value = literalFromNode(valueNode)
	}
	return stmt
}

func badStmtFromNode(node *parser.Node) *BadStmt {
	stmt := &BadStmt{Span: node.Span}
	if node.Error != nil {
		stmt.Message = node.Error.Message
	}
	return stmt
}

func typeRefFromNode(node *parser.Node) *TypeRef {
	if node == nil {
		return nil
	}
	switch {
	case node.FirstTokenOfKind(parser.KindOpenBracket) != nil:
		return &TypeRef{
			List: typeRefFromNode(node.FirstChildOfKind(parser.KindTypeExpr)),
			Span: node.Span,
		}
	case node.FirstTokenOfKind(parser.KindOpenParen) != nil:
		ref := &TypeRef{Tuple: []*TypeRef{}, Span: node.Span}
		for _, element := range node.ChildrenOfKind(parser.KindTypeExpr) {
			ref.Tuple = append(ref.Tuple, typeRefFromNode(element))
		}
		return ref
	}
	for _, child := range node.Children {
		if child.Token != nil && child.Token.Kind.IsTypeName() {
			return &TypeRef{Name: child.Token.Lexeme, Span: node.Span}
		}
	}
	return nil
}

func literalFromNode(node *parser.Node) *Literal {
	for _, child := range node.Children {
		if child.Token != nil && child.Token.Kind.IsLiteral() {
			return &Literal{Kind: child.Token.Kind, Value: child.Token.Lexeme, Span: node.Span}
		}
	}
	return nil
}
