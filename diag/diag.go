// Package diag collects, checks, and renders diagnostics for funs
// source files. Parse errors come from two places: ErrorTree nodes
// embedded in the tree where a token was consumed, and the parser's
// side channel where a token was missing. Collect merges both into one
// report, and Check adds findings the grammar cannot express.
package diag

import (
	"fmt"
	"sort"

	"github.com/dhamidi/funs/parser"
)

type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "warning"
	}
	return "error"
}

// Diagnostic is one finding against a source file. Line and columns are
// 0-based, the column range is half open.
type Diagnostic struct {
	File        string
	Line        int
	ColumnStart int
	ColumnEnd   int
	Severity    Severity
	Message     string
	Suggestion  string
}

// Position renders the 1-based file:line:column prefix.
func (d Diagnostic) Position() string {
	return fmt.Sprintf("%s:%d:%d", d.File, d.Line+1, d.ColumnStart+1)
}

// Collect merges the parse errors of one file into a single report
// sorted by source position: ErrorTree nodes from the tree, then the
// parser's missing-token side channel. A failed parse (an internal
// parser error, not bad input) becomes a single diagnostic for the
// whole file.
func Collect(p *parser.Parser) []Diagnostic {
	var out []Diagnostic
	tree, err := p.Finish()
	if err != nil {
		return []Diagnostic{{
			File:     p.Source().Path,
			Severity: SeverityError,
			Message:  err.Error(),
		}}
	}
	tree.Walk(func(n *parser.Node) {
		if !n.IsError() {
			return
		}
		d := Diagnostic{
			File:        n.Span.Start.FilePath,
			Line:        n.Span.Start.Line,
			ColumnStart: n.Span.Start.ColumnStart,
			ColumnEnd:   n.Span.End.ColumnEnd,
			Severity:    SeverityError,
			Message:     "syntax error",
		}
		if n.Error != nil {
			d.Message = n.Error.Message
			if n.Error.Got != nil {
				d.Message = fmt.Sprintf("%s, got %q", n.Error.Message, n.Error.Got.Lexeme)
			}
		}
		out = append(out, d)
	})
	for _, pd := range p.Diagnostics() {
		out = append(out, Diagnostic{
			File:        pd.Location.FilePath,
			Line:        pd.Location.Line,
			ColumnStart: pd.Location.ColumnStart,
			ColumnEnd:   pd.Location.ColumnEnd,
			Severity:    SeverityError,
			Message:     pd.Message,
		})
	}
	Sort(out)
	return out
}

// Sort orders diagnostics by line, then column, keeping the insertion
// order of equal positions.
func Sort(diags []Diagnostic) {
	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Line != diags[j].Line {
			return diags[i].Line < diags[j].Line
		}
		return diags[i].ColumnStart < diags[j].ColumnStart
	})
}

// HasErrors reports whether any diagnostic is an error.
func HasErrors(diags []Diagnostic) bool {
	for _, d := range diags {
		if d.Severity == SeverityError {
			return true
		}
	}
	return false
}
