// Package ui serves a JSON inspection API over the workspace index:
// the indexed files with their diagnostic counts, and per file the
// token stream, parse tree, and diagnostics.
package ui

import (
	"encoding/json"
	"net/http"

	"github.com/dhamidi/funs/codebase"
	"github.com/dhamidi/funs/diag"
	"github.com/dhamidi/funs/parser"
	"github.com/tliron/commonlog"
)

type Server struct {
	codebase *codebase.Codebase
	mux      *http.ServeMux
	log      commonlog.Logger
}

func NewServer(c *codebase.Codebase) *Server {
	s := &Server{
		codebase: c,
		mux:      http.NewServeMux(),
		log:      commonlog.GetLogger("funs.ui"),
	}

	s.mux.HandleFunc("/api/files", getOnly(s.handleFiles))
	s.mux.HandleFunc("/api/file", getOnly(s.handleFile))
	s.mux.HandleFunc("/", getOnly(s.handleIndex))

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// getOnly restricts a route to GET and HEAD requests. The routes were
// declared with Go 1.22+ "GET /path" ServeMux method patterns; the go1.21
// toolchain's ServeMux predates method patterns, so the method restriction
// (405 with Allow, HEAD matching GET) is applied here instead.
func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			w.Header().Set("Allow", "GET, HEAD")
			http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
			return
		}
		h(w, r)
	}
}

type fileSummary struct {
	Path     string `json:"path"`
	Errors   int    `json:"errors"`
	Warnings int    `json:"warnings"`
}

type filesResponse struct {
	Root  string        `json:"root"`
	Files []fileSummary `json:"files"`
}

func (s *Server) handleFiles(w http.ResponseWriter, r *http.Request) {
	resp := filesResponse{
		Root:  s.codebase.RootDir(),
		Files: []fileSummary{},
	}
	for _, path := range s.codebase.Files() {
		info := s.codebase.GetFile(path)
		if info == nil {
			continue
		}
		errors := info.Errors()
		resp.Files = append(resp.Files, fileSummary{
			Path:     path,
			Errors:   errors,
			Warnings: len(info.Diags) - errors,
		})
	}
	s.writeJSON(w, http.StatusOK, resp)
}

type jsonDiagnostic struct {
	File        string `json:"file"`
	Line        int    `json:"line"`
	ColumnStart int    `json:"column_start"`
	ColumnEnd   int    `json:"column_end"`
	Severity    string `json:"severity"`
	Message     string `json:"message"`
	Suggestion  string `json:"suggestion,omitempty"`
}

type fileResponse struct {
	Path        string           `json:"path"`
	Tokens      []parser.Token   `json:"tokens"`
	Tree        *parser.Node     `json:"tree"`
	Diagnostics []jsonDiagnostic `json:"diagnostics"`
}

func (s *Server) handleFile(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		http.Error(w, "missing path parameter", http.StatusBadRequest)
		return
	}
	info := s.codebase.GetFile(path)
	if info == nil {
		http.Error(w, "file not indexed", http.StatusNotFound)
		return
	}

	// A fresh source per request: lexing normalizes the source text in
	// place, so the indexed one is not shared with handlers.
	tokens := parser.Tokenize(parser.NewSource(info.Path, string(info.Content)))

	resp := fileResponse{
		Path:        info.Path,
		Tokens:      tokens,
		Tree:        info.Tree,
		Diagnostics: make([]jsonDiagnostic, 0, len(info.Diags)),
	}
	for _, d := range info.Diags {
		resp.Diagnostics = append(resp.Diagnostics, toJSONDiagnostic(d))
	}
	s.writeJSON(w, http.StatusOK, resp)
}

func toJSONDiagnostic(d diag.Diagnostic) jsonDiagnostic {
	return jsonDiagnostic{
		File:        d.File,
		Line:        d.Line,
		ColumnStart: d.ColumnStart,
		ColumnEnd:   d.ColumnEnd,
		Severity:    d.Severity.String(),
		Message:     d.Message,
		Suggestion:  d.Suggestion,
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.writeJSON(w, http.StatusOK, map[string]any{
		"name":      "funs",
		"root":      s.codebase.RootDir(),
		"files":     s.codebase.Len(),
		"endpoints": []string{"/api/files", "/api/file?path="},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Errorf("encode response: %s", err.Error())
	}
}
