package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/funs/ast"
)

// DeclsLineEncoder lists declarations one per line, tab separated, for
// grep-friendly output.
type DeclsLineEncoder struct {
	w    io.Writer
	file *ast.File
}

func NewDeclsLineEncoder(w io.Writer) *DeclsLineEncoder {
	return &DeclsLineEncoder{w: w}
}

func (e *DeclsLineEncoder) Encode(file *ast.File) error {
	e.file = file
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *DeclsLineEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, stmt := range e.file.Statements {
		switch decl := stmt.(type) {
		case *ast.VarDecl:
			fmt.Fprintf(&sb, "var\t%s\t%s\t%s\n",
				decl.Name, decl.Type.String(), literalStr(decl.Value))
		case *ast.FunDecl:
			fmt.Fprintf(&sb, "fun\t%s\t%s\t%s\t%s\n",
				decl.Name,
				typeRefsStr(decl.ParamTypes),
				decl.ReturnType.String(),
				paramsStr(decl.Params))
		}
	}
	return []byte(sb.String()), nil
}

func literalStr(lit *ast.Literal) string {
	if lit == nil {
		return "-"
	}
	return lit.Value
}

func typeRefsStr(refs []*ast.TypeRef) string {
	if len(refs) == 0 {
		return "-"
	}
	var parts []string
	for _, ref := range refs {
		parts = append(parts, ref.String())
	}
	return strings.Join(parts, ",")
}

func paramsStr(params []string) string {
	if len(params) == 0 {
		return "-"
	}
	return strings.Join(params, ",")
}

type DeclsJSONEncoder struct {
	w    io.Writer
	file *ast.File
}

func NewDeclsJSONEncoder(w io.Writer) *DeclsJSONEncoder {
	return &DeclsJSONEncoder{w: w}
}

func (e *DeclsJSONEncoder) Encode(file *ast.File) error {
	e.file = file
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

type jsonDecl struct {
	Kind       string   `json:"kind"`
	Name       string   `json:"name"`
	Type       string   `json:"type,omitempty"`
	Value      string   `json:"value,omitempty"`
	ParamTypes []string `json:"param_types,omitempty"`
	ReturnType string   `json:"return_type,omitempty"`
	Params     []string `json:"params,omitempty"`
}

type jsonFile struct {
	Path  string     `json:"path"`
	Decls []jsonDecl `json:"decls"`
}

func (e *DeclsJSONEncoder) MarshalText() ([]byte, error) {
	data := jsonFile{Path: e.file.Path, Decls: []jsonDecl{}}
	for _, stmt := range e.file.Statements {
		switch decl := stmt.(type) {
		case *ast.VarDecl:
			data.Decls = append(data.Decls, jsonDecl{
				Kind:  "var",
				Name:  decl.Name,
				Type:  decl.Type.String(),
				Value: literalValue(decl.Value),
			})
		case *ast.FunDecl:
			var paramTypes []string
			for _, ref := range decl.ParamTypes {
				paramTypes = append(paramTypes, ref.String())
			}
			data.Decls = append(data.Decls, jsonDecl{
				Kind:       "fun",
				Name:       decl.Name,
				ParamTypes: paramTypes,
				ReturnType: decl.ReturnType.String(),
				Params:     decl.Params,
			})
		}
	}
	return json.MarshalIndent(data, "", "  ")
}

func literalValue(lit *ast.Literal) string {
	if lit == nil {
		return ""
	}
	return lit.Value
}
