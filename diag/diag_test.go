package diag

import (
	"bytes"
	"strings"
	"testing"

	"github.com/dhamidi/funs/ast"
	"github.com/dhamidi/funs/parser"
)

func collect(input string) []Diagnostic {
	return Collect(parser.ParseFile(parser.NewSource("test.fs", input)))
}

func checkFile(t *testing.T, input string) []Diagnostic {
	t.Helper()
	tree, err := parser.ParseFile(parser.NewSource("test.fs", input)).Finish()
	if err != nil {
		t.Fatalf("Finish() error = %v", err)
	}
	return Check(ast.FromTree("test.fs", tree))
}

func TestCollectClean(t *testing.T) {
	diags := collect("x: int = 0\n")
	if len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0: %+v", len(diags), diags)
	}
}

func TestCollectMergesTreeAndSideChannel(t *testing.T) {
	diags := collect("x: int 0\n;\n")
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(diags), diags)
	}

	missing := diags[0]
	if missing.Line != 0 || missing.ColumnStart != 7 {
		t.Errorf("missing-token position = %d:%d, want 0:7", missing.Line, missing.ColumnStart)
	}
	if missing.Message != "expected Assign, got Int" {
		t.Errorf("missing-token message = %q", missing.Message)
	}

	wrapped := diags[1]
	if wrapped.Line != 1 || wrapped.ColumnStart != 0 || wrapped.ColumnEnd != 1 {
		t.Errorf("wrapped-token span = %d:%d-%d, want 1:0-1",
			wrapped.Line, wrapped.ColumnStart, wrapped.ColumnEnd)
	}
	if wrapped.Message != `expected statement, got ";"` {
		t.Errorf("wrapped-token message = %q", wrapped.Message)
	}
}

func TestCollectEmbeddedTypeError(t *testing.T) {
	diags := collect("x: ? = 1\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Message != `expected type, got "?"` {
		t.Errorf("message = %q", diags[0].Message)
	}
	if diags[0].ColumnStart != 3 || diags[0].ColumnEnd != 4 {
		t.Errorf("span = %d-%d, want 3-4", diags[0].ColumnStart, diags[0].ColumnEnd)
	}
}

func TestHasErrors(t *testing.T) {
	if HasErrors(nil) {
		t.Error("HasErrors(nil) = true")
	}
	warnings := []Diagnostic{{Severity: SeverityWarning}}
	if HasErrors(warnings) {
		t.Error("HasErrors(warnings) = true")
	}
	mixed := append(warnings, Diagnostic{Severity: SeverityError})
	if !HasErrors(mixed) {
		t.Error("HasErrors(mixed) = false")
	}
}

func TestCheckUnknownType(t *testing.T) {
	diags := checkFile(t, "x: itn = 0\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	d := diags[0]
	if d.Severity != SeverityWarning {
		t.Errorf("Severity = %v, want warning", d.Severity)
	}
	if d.Message != `unknown type "itn"` {
		t.Errorf("Message = %q", d.Message)
	}
	if d.Suggestion != "int" {
		t.Errorf("Suggestion = %q, want int", d.Suggestion)
	}
	if d.Line != 0 || d.ColumnStart != 3 || d.ColumnEnd != 6 {
		t.Errorf("span = %d:%d-%d, want 0:3-6", d.Line, d.ColumnStart, d.ColumnEnd)
	}
}

func TestCheckNestedTypeRefs(t *testing.T) {
	diags := checkFile(t, "p: (int, flot) -> int = (a, b) -> 0\nxs: [blo] = 0\n")
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(diags), diags)
	}
	if diags[0].Suggestion != "float" {
		t.Errorf("tuple suggestion = %q, want float", diags[0].Suggestion)
	}
	if diags[1].Suggestion != "bool" {
		t.Errorf("list suggestion = %q, want bool", diags[1].Suggestion)
	}
}

func TestCheckRedeclared(t *testing.T) {
	diags := checkFile(t, "x: int = 0\nx: float = 1\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	d := diags[0]
	if d.Severity != SeverityError {
		t.Errorf("Severity = %v, want error", d.Severity)
	}
	if d.Message != `"x" redeclared, first declared on line 1` {
		t.Errorf("Message = %q", d.Message)
	}
	if d.Line != 1 {
		t.Errorf("Line = %d, want 1", d.Line)
	}
}

func TestCheckFunVarCollision(t *testing.T) {
	diags := checkFile(t, "f: int = 0\nf: (int) -> int = (x) -> 0\n")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if !strings.Contains(diags[0].Message, "redeclared") {
		t.Errorf("Message = %q", diags[0].Message)
	}
}

func TestCheckCleanFile(t *testing.T) {
	input := "x: int = 0\n" +
		"y: float = 1.5\n" +
		"ok: bool = true\n" +
		"name: str = \"funs\"\n" +
		"xs: [int] = 0\n" +
		"pairs: [(int, str)] = 0\n" +
		"add: (int, int) -> int = (a, b) -> 0\n"
	diags := checkFile(t, input)
	if len(diags) != 0 {
		t.Errorf("got %d diagnostics, want 0: %+v", len(diags), diags)
	}
}

func TestNearestType(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"itn", "int"},
		{"in", "int"},
		{"flot", "float"},
		{"bol", "bool"},
		{"strr", "str"},
		{"xyz", ""},
		{"point", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NearestType(tt.name); got != tt.want {
				t.Errorf("NearestType(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRendererPlain(t *testing.T) {
	src := parser.NewSource("test.fs", "x: itn = 0\n")
	d := Diagnostic{
		File:        "test.fs",
		Line:        0,
		ColumnStart: 3,
		ColumnEnd:   6,
		Severity:    SeverityWarning,
		Message:     `unknown type "itn"`,
		Suggestion:  "int",
	}
	var buf bytes.Buffer
	if err := NewRenderer(&buf).Render(src, []Diagnostic{d}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "test.fs:1:4: warning: unknown type \"itn\"\n" +
		"  x: itn = 0\n" +
		"     ^^^\n" +
		"  did you mean \"int\"?\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestRendererZeroWidthSpan(t *testing.T) {
	src := parser.NewSource("test.fs", "x: int = 0\n")
	d := Diagnostic{File: "test.fs", Line: 0, ColumnStart: 10, ColumnEnd: 10, Message: "expected Newline, got EOF"}
	var buf bytes.Buffer
	if err := NewRenderer(&buf).Render(src, []Diagnostic{d}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(buf.String(), "^") {
		t.Errorf("output has no caret:\n%s", buf.String())
	}
}

func TestRendererWithoutSource(t *testing.T) {
	d := Diagnostic{File: "test.fs", Line: 2, ColumnStart: 1, Message: "boom"}
	var buf bytes.Buffer
	if err := NewRenderer(&buf).Render(nil, []Diagnostic{d}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "test.fs:3:2: error: boom\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}
