package codebase

import (
	"testing"

	"github.com/dhamidi/funs/diag"
	"github.com/dhamidi/funs/parser"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestURIToPath(t *testing.T) {
	tests := []struct {
		uri  string
		want string
	}{
		{"file:///tmp/project/main.fs", "/tmp/project/main.fs"},
		{"file:///tmp/project/../main.fs", "/tmp/main.fs"},
		{"/plain/path.fs", "/plain/path.fs"},
	}
	for _, tt := range tests {
		got, err := uriToPath(tt.uri)
		if err != nil {
			t.Errorf("uriToPath(%q) error: %v", tt.uri, err)
			continue
		}
		if got != tt.want {
			t.Errorf("uriToPath(%q) = %q, want %q", tt.uri, got, tt.want)
		}
	}
}

func TestToProtocolDiagnostic(t *testing.T) {
	d := diag.Diagnostic{
		File:        "test.fs",
		Line:        2,
		ColumnStart: 3,
		ColumnEnd:   6,
		Severity:    diag.SeverityWarning,
		Message:     `unknown type "itn"`,
		Suggestion:  "int",
	}
	got := toProtocolDiagnostic(d)

	if got.Severity == nil || *got.Severity != protocol.DiagnosticSeverityWarning {
		t.Errorf("Severity = %v, want warning", got.Severity)
	}
	if got.Range.Start.Line != 2 || got.Range.Start.Character != 3 {
		t.Errorf("Range.Start = %+v, want 2:3", got.Range.Start)
	}
	if got.Range.End.Character != 6 {
		t.Errorf("Range.End.Character = %d, want 6", got.Range.End.Character)
	}
	want := `unknown type "itn" (did you mean "int"?)`
	if got.Message != want {
		t.Errorf("Message = %q, want %q", got.Message, want)
	}
	if got.Source == nil || *got.Source != "funs" {
		t.Errorf("Source = %v, want funs", got.Source)
	}
}

func TestToProtocolDiagnosticWidensEmptyRange(t *testing.T) {
	d := diag.Diagnostic{Line: 1, ColumnStart: 4, ColumnEnd: 4, Severity: diag.SeverityError, Message: "boom"}
	got := toProtocolDiagnostic(d)
	if got.Range.End.Character != 5 {
		t.Errorf("Range.End.Character = %d, want 5", got.Range.End.Character)
	}
	if got.Severity == nil || *got.Severity != protocol.DiagnosticSeverityError {
		t.Errorf("Severity = %v, want error", got.Severity)
	}
}

func TestSpanToRange(t *testing.T) {
	span := parser.Span{
		Start: parser.Position{Line: 1, ColumnStart: 2, ColumnEnd: 5},
		End:   parser.Position{Line: 3, ColumnStart: 0, ColumnEnd: 7},
	}
	got := spanToRange(span)
	if got.Start.Line != 1 || got.Start.Character != 2 {
		t.Errorf("Start = %+v, want 1:2", got.Start)
	}
	if got.End.Line != 3 || got.End.Character != 7 {
		t.Errorf("End = %+v, want 3:7", got.End)
	}
}
