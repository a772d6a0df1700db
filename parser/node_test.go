package parser

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestNodeString(t *testing.T) {
	_, root := parseAll(t, "x: int = 0\n")

	out := root.String()
	if !strings.HasPrefix(out, "File\n  StmtVarDecl\n") {
		t.Errorf("String output does not start with the tree shape:\n%s", out)
	}
	for _, want := range []string{`Identifier "x"`, `KeywordInt "int"`, `Int "0"`, "TypeExpr", "ExprLiteral"} {
		if !strings.Contains(out, want) {
			t.Errorf("String output missing %q:\n%s", want, out)
		}
	}
}

func TestNodeStringWithPositions(t *testing.T) {
	_, root := parseAll(t, "x: int = 0\n")

	out := root.StringWithPositions()
	if !strings.Contains(out, "[0:0-") {
		t.Errorf("positions missing from output:\n%s", out)
	}
}

func TestNodeStringShowsErrorMessage(t *testing.T) {
	_, root := parseAll(t, ";\n")

	out := root.String()
	if !strings.Contains(out, "ErrorTree (expected statement)") {
		t.Errorf("error message missing from output:\n%s", out)
	}
}

func TestNodeWalkOrder(t *testing.T) {
	_, root := parseAll(t, "x: int = 0\n")

	var kinds []NodeKind
	root.Walk(func(n *Node) { kinds = append(kinds, n.Kind) })
	if kinds[0] != KindFile || kinds[1] != KindStmtVarDecl {
		t.Errorf("walk order starts with %v, %v; want File, StmtVarDecl", kinds[0], kinds[1])
	}

	tokens := root.Tokens()
	if len(tokens) == 0 || tokens[0].Lexeme != "x" {
		t.Errorf("first token leaf = %v, want x", tokens)
	}
	if last := tokens[len(tokens)-1]; last.Kind != KindNewline {
		t.Errorf("last token leaf = %v, want the newline", last.Kind)
	}
}

func TestNodeJSON(t *testing.T) {
	_, root := parseAll(t, "x: int = 0\n")

	data, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded struct {
		Kind     string `json:"kind"`
		Children []struct {
			Kind     string `json:"kind"`
			Children []struct {
				Kind     string `json:"kind"`
				Lexeme   string `json:"lexeme"`
				Location *struct {
					FilePath    string `json:"file_path"`
					Line        int    `json:"line"`
					ColumnStart int    `json:"column_start"`
					ColumnEnd   int    `json:"column_end"`
				} `json:"location"`
			} `json:"children"`
		} `json:"children"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.Kind != "File" {
		t.Errorf("kind = %q, want File", decoded.Kind)
	}
	if len(decoded.Children) != 1 || decoded.Children[0].Kind != "StmtVarDecl" {
		t.Fatalf("children = %+v, want one StmtVarDecl", decoded.Children)
	}

	leaf := decoded.Children[0].Children[0]
	if leaf.Kind != "Identifier" || leaf.Lexeme != "x" {
		t.Errorf("first leaf = %+v, want Identifier x", leaf)
	}
	if leaf.Location == nil {
		t.Fatal("token leaf has no location record")
	}
	if leaf.Location.FilePath != "test.fs" || leaf.Location.ColumnEnd != 1 {
		t.Errorf("leaf location = %+v", leaf.Location)
	}
}

func TestTokenJSON(t *testing.T) {
	tok := Token{
		Kind:   KindIdentifier,
		Lexeme: "x",
		Location: Position{
			FilePath: "a.fs", Line: 3, ColumnStart: 1, ColumnEnd: 2,
		},
	}
	data, err := json.Marshal(tok)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"kind":"Identifier","lexeme":"x","location":{"file_path":"a.fs","line":3,"column_start":1,"column_end":2}}`
	if string(data) != want {
		t.Errorf("JSON = %s, want %s", data, want)
	}
}
