package ui

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/dhamidi/funs/codebase"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	c := codebase.New("/workspace", nil)
	if err := c.UpdateFile("a.fs", []byte("x: int = 0\n")); err != nil {
		t.Fatal(err)
	}
	if err := c.UpdateFile("b.fs", []byte("y: itn = 1\n;\n")); err != nil {
		t.Fatal(err)
	}
	return NewServer(c)
}

func get(t *testing.T, s *Server, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest("GET", target, nil))
	return rec
}

func TestFilesEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/files")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp filesResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Root != "/workspace" {
		t.Errorf("root = %q, want /workspace", resp.Root)
	}
	if len(resp.Files) != 2 {
		t.Fatalf("files = %v, want 2 entries", resp.Files)
	}
	if resp.Files[0].Path != "a.fs" || resp.Files[0].Errors != 0 || resp.Files[0].Warnings != 0 {
		t.Errorf("a.fs summary = %+v, want clean", resp.Files[0])
	}
	if resp.Files[1].Path != "b.fs" || resp.Files[1].Errors == 0 || resp.Files[1].Warnings == 0 {
		t.Errorf("b.fs summary = %+v, want an error and a warning", resp.Files[1])
	}
}

func TestFileEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/api/file?path=b.fs")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp struct {
		Path   string `json:"path"`
		Tokens []struct {
			Kind   string `json:"kind"`
			Lexeme string `json:"lexeme"`
		} `json:"tokens"`
		Tree *struct {
			Kind string `json:"kind"`
		} `json:"tree"`
		Diagnostics []jsonDiagnostic `json:"diagnostics"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Path != "b.fs" {
		t.Errorf("path = %q, want b.fs", resp.Path)
	}
	if len(resp.Tokens) == 0 {
		t.Error("tokens are empty")
	}
	if resp.Tree == nil || resp.Tree.Kind != "File" {
		t.Errorf("tree = %+v, want kind File", resp.Tree)
	}
	if len(resp.Diagnostics) != 2 {
		t.Fatalf("diagnostics = %+v, want 2", resp.Diagnostics)
	}
	if resp.Diagnostics[0].Severity != "warning" || resp.Diagnostics[0].Suggestion != "int" {
		t.Errorf("diagnostics[0] = %+v, want the unknown-type warning", resp.Diagnostics[0])
	}
	if resp.Diagnostics[1].Severity != "error" {
		t.Errorf("diagnostics[1] = %+v, want the parse error", resp.Diagnostics[1])
	}
}

func TestFileEndpointRejectsBadRequests(t *testing.T) {
	s := newTestServer(t)
	if rec := get(t, s, "/api/file"); rec.Code != 400 {
		t.Errorf("missing path: status = %d, want 400", rec.Code)
	}
	if rec := get(t, s, "/api/file?path=missing.fs"); rec.Code != 404 {
		t.Errorf("unindexed path: status = %d, want 404", rec.Code)
	}
}

func TestIndexEndpoint(t *testing.T) {
	s := newTestServer(t)
	rec := get(t, s, "/")
	if rec.Code != 200 {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp["name"] != "funs" {
		t.Errorf("name = %v, want funs", resp["name"])
	}

	if rec := get(t, s, "/nope"); rec.Code != 404 {
		t.Errorf("unknown path: status = %d, want 404", rec.Code)
	}
}
