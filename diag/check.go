package diag

import (
	"fmt"

	"github.com/dhamidi/funs/ast"
	"github.com/dhamidi/funs/parser"
)

// Check runs the file-level checks the grammar cannot express: type
// names that are neither builtin nor declared anywhere, and names
// declared more than once. Unknown types are warnings, since a name may
// be declared in another file; redeclarations are errors.
func Check(file *ast.File) []Diagnostic {
	var out []Diagnostic
	out = append(out, checkTypes(file)...)
	out = append(out, checkRedeclarations(file)...)
	return out
}

func checkTypes(file *ast.File) []Diagnostic {
	var out []Diagnostic
	visit := func(ref *ast.TypeRef) {
		if ref == nil || ref.Name == "" || IsBuiltinType(ref.Name) {
			return
		}
		d := Diagnostic{
			File:        ref.Span.Start.FilePath,
			Line:        ref.Span.Start.Line,
			ColumnStart: ref.Span.Start.ColumnStart,
			ColumnEnd:   ref.Span.End.ColumnEnd,
			Severity:    SeverityWarning,
			Message:     fmt.Sprintf("unknown type %q", ref.Name),
			Suggestion:  NearestType(ref.Name),
		}
		out = append(out, d)
	}
	for _, stmt := range file.Statements {
		switch decl := stmt.(type) {
		case *ast.VarDecl:
			walkTypeRef(decl.Type, visit)
		case *ast.FunDecl:
			for _, ref := range decl.ParamTypes {
				walkTypeRef(ref, visit)
			}
			walkTypeRef(decl.ReturnType, visit)
		}
	}
	return out
}

func walkTypeRef(ref *ast.TypeRef, visit func(*ast.TypeRef)) {
	if ref == nil {
		return
	}
	visit(ref)
	walkTypeRef(ref.List, visit)
	for _, element := range ref.Tuple {
		walkTypeRef(element, visit)
	}
}

func checkRedeclarations(file *ast.File) []Diagnostic {
	var out []Diagnostic
	seen := make(map[string]parser.Span)
	declare := func(name string, span parser.Span) {
		if name == "" {
			return
		}
		if first, ok := seen[name]; ok {
			out = append(out, Diagnostic{
				File:        span.Start.FilePath,
				Line:        span.Start.Line,
				ColumnStart: span.Start.ColumnStart,
				ColumnEnd:   span.Start.ColumnEnd,
				Severity:    SeverityError,
				Message: fmt.Sprintf("%q redeclared, first declared on line %d",
					name, first.Start.Line+1),
			})
			return
		}
		seen[name] = span
	}
	for _, stmt := range file.Statements {
		switch decl := stmt.(type) {
		case *ast.VarDecl:
			declare(decl.Name, decl.Span)
		case *ast.FunDecl:
			declare(decl.Name, decl.Span)
		}
	}
	return out
}
