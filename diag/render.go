package diag

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dhamidi/funs/parser"
)

var (
	positionStyle   = lipgloss.NewStyle().Bold(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#EF4444"))
	warningStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	caretStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

// Renderer writes diagnostics in compiler style: position, severity and
// message on one line, then the offending source line with a caret
// under the span, then the suggestion if there is one.
type Renderer struct {
	w     io.Writer
	Color bool
}

func NewRenderer(w io.Writer) *Renderer {
	return &Renderer{w: w}
}

// Render writes the diagnostics in order. src supplies the quoted
// source lines and may be nil.
func (r *Renderer) Render(src *parser.Source, diags []Diagnostic) error {
	for _, d := range diags {
		if err := r.renderOne(src, d); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderOne(src *parser.Source, d Diagnostic) error {
	pos := d.Position()
	sev := d.Severity.String()
	if r.Color {
		pos = positionStyle.Render(pos)
		if d.Severity == SeverityWarning {
			sev = warningStyle.Render(sev)
		} else {
			sev = errorStyle.Render(sev)
		}
	}
	if _, err := fmt.Fprintf(r.w, "%s: %s: %s\n", pos, sev, d.Message); err != nil {
		return err
	}

	if src != nil {
		if line := src.Line(d.Line); line != "" {
			width := d.ColumnEnd - d.ColumnStart
			if width < 1 {
				width = 1
			}
			caret := strings.Repeat(" ", d.ColumnStart) + strings.Repeat("^", width)
			if r.Color {
				caret = caretStyle.Render(caret)
			}
			if _, err := fmt.Fprintf(r.w, "  %s\n  %s\n", line, caret); err != nil {
				return err
			}
		}
	}

	if d.Suggestion != "" {
		hint := fmt.Sprintf("did you mean %q?", d.Suggestion)
		if r.Color {
			hint = suggestionStyle.Render(hint)
		}
		if _, err := fmt.Fprintf(r.w, "  %s\n", hint); err != nil {
			return err
		}
	}
	return nil
}
