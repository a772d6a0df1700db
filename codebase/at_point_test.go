package codebase

import (
	"strings"
	"testing"

	"github.com/dhamidi/funs/parser"
)

func parseTree(t *testing.T, text string) *parser.Node {
	t.Helper()
	p := parser.ParseFile(parser.NewSource("test.fs", text))
	tree, err := p.Finish()
	if err != nil {
		t.Fatalf("Finish: %v", err)
	}
	return tree
}

func TestTokenAt(t *testing.T) {
	tree := parseTree(t, "x: int = 42\n")

	tests := []struct {
		name string
		line int
		col  int
		want string
	}{
		{"start of identifier", 0, 0, "x"},
		{"start of type keyword", 0, 3, "int"},
		{"inside type keyword", 0, 5, "int"},
		{"inside literal", 0, 10, "42"},
		{"on a space", 0, 2, ""},
		{"past end of line", 0, 40, ""},
		{"line out of range", 5, 0, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			leaf := TokenAt(tree, tt.line, tt.col)
			got := ""
			if leaf != nil {
				got = leaf.Token.Lexeme
			}
			if got != tt.want {
				t.Errorf("TokenAt(%d, %d) = %q, want %q", tt.line, tt.col, got, tt.want)
			}
		})
	}
}

func TestNodePathAt(t *testing.T) {
	tree := parseTree(t, "x: int = 42\n")

	chain := NodePathAt(tree, 0, 9)
	kinds := make([]string, len(chain))
	for i, n := range chain {
		kinds[i] = n.Kind.String()
	}
	got := strings.Join(kinds, " > ")
	want := "File > StmtVarDecl > ExprLiteral"
	if got != want {
		t.Errorf("NodePathAt(0, 9) = %q, want %q", got, want)
	}

	if chain := NodePathAt(tree, 5, 0); chain != nil {
		t.Errorf("NodePathAt out of range = %v, want nil", chain)
	}
}

func TestHoverAtVarDecl(t *testing.T) {
	c := New(".", nil)
	if err := c.UpdateFile("test.fs", []byte("x: int = 42\n")); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	content, span, ok := c.HoverAt("test.fs", 0, 0)
	if !ok {
		t.Fatal("HoverAt(0, 0) not ok")
	}
	if !strings.Contains(content, "`x` **Identifier**") {
		t.Errorf("hover %q does not name the token", content)
	}
	if !strings.Contains(content, "x: int") {
		t.Errorf("hover %q does not show the declaration", content)
	}
	if span.Start.ColumnStart != 0 || span.End.ColumnEnd != 1 {
		t.Errorf("span = %+v, want columns 0-1", span)
	}
}

func TestHoverAtLiteral(t *testing.T) {
	c := New(".", nil)
	if err := c.UpdateFile("test.fs", []byte("x: int = 42\n")); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	content, _, ok := c.HoverAt("test.fs", 0, 9)
	if !ok {
		t.Fatal("HoverAt(0, 9) not ok")
	}
	if !strings.Contains(content, "**Int**") {
		t.Errorf("hover %q does not name the token kind", content)
	}
	if !strings.Contains(content, "File > StmtVarDecl > ExprLiteral") {
		t.Errorf("hover %q does not show the node chain", content)
	}
}

func TestHoverAtFunName(t *testing.T) {
	c := New(".", nil)
	text := "add: (int, int) -> int = (x, y) -> 0\n"
	if err := c.UpdateFile("test.fs", []byte(text)); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	content, _, ok := c.HoverAt("test.fs", 0, 1)
	if !ok {
		t.Fatal("HoverAt(0, 1) not ok")
	}
	if !strings.Contains(content, "add: (int, int) -> int") {
		t.Errorf("hover %q does not show the signature", content)
	}
}

func TestHoverAtMisses(t *testing.T) {
	c := New(".", nil)
	if err := c.UpdateFile("test.fs", []byte("x: int = 42\n")); err != nil {
		t.Fatalf("UpdateFile: %v", err)
	}

	if _, _, ok := c.HoverAt("missing.fs", 0, 0); ok {
		t.Error("HoverAt on an unindexed path reported ok")
	}
	if _, _, ok := c.HoverAt("test.fs", 0, 2); ok {
		t.Error("HoverAt on a space reported ok")
	}
}
