package grammar

import (
	"strings"
	"testing"
)

func TestVerify(t *testing.T) {
	if err := Verify(); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestParseProductions(t *testing.T) {
	g, err := Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	for _, name := range []string{Start, "VarDecl", "FunDecl", "Type", "Params", "Literal"} {
		if _, ok := g[name]; !ok {
			t.Errorf("grammar has no production %q", name)
		}
	}
}

func TestDefinitionRoundTrips(t *testing.T) {
	def := Definition()
	if !strings.HasPrefix(def, "File") {
		t.Errorf("Definition() starts with %q, want the File production", def[:min(20, len(def))])
	}
	if !strings.HasSuffix(strings.TrimRight(def, "\n"), ".") {
		t.Errorf("Definition() does not end with a production terminator")
	}
}
