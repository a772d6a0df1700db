package parser

import "encoding/json"

// The wire format keeps two node shapes: internal nodes serialize as
// {kind, span, children}, token leaves as the token record
// {kind, lexeme, location}. Position fields are 0-based, columns in
// characters.

type jsonPosition struct {
	FilePath    string `json:"file_path"`
	Line        int    `json:"line"`
	ColumnStart int    `json:"column_start"`
	ColumnEnd   int    `json:"column_end"`
}

type jsonSpan struct {
	Start jsonPosition `json:"start"`
	End   jsonPosition `json:"end"`
}

type jsonToken struct {
	Kind     string       `json:"kind"`
	Lexeme   string       `json:"lexeme"`
	Location jsonPosition `json:"location"`
}

type jsonError struct {
	Message string     `json:"message"`
	Got     *jsonToken `json:"got,omitempty"`
}

type jsonNode struct {
	Kind     string        `json:"kind"`
	Span     *jsonSpan     `json:"span,omitempty"`
	Lexeme   *string       `json:"lexeme,omitempty"`
	Location *jsonPosition `json:"location,omitempty"`
	Error    *jsonError    `json:"error,omitempty"`
	Children []*jsonNode   `json:"children,omitempty"`
}

func positionToJSON(p Position) jsonPosition {
	return jsonPosition{
		FilePath:    p.FilePath,
		Line:        p.Line,
		ColumnStart: p.ColumnStart,
		ColumnEnd:   p.ColumnEnd,
	}
}

func (t *Token) toJSON() *jsonToken {
	return &jsonToken{
		Kind:     t.Kind.String(),
		Lexeme:   t.Lexeme,
		Location: positionToJSON(t.Location),
	}
}

func (t Token) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.toJSON())
}

func (n *Node) toJSON() *jsonNode {
	if n.Token != nil {
		loc := positionToJSON(n.Token.Location)
		lexeme := n.Token.Lexeme
		return &jsonNode{
			Kind:     n.Token.Kind.String(),
			Lexeme:   &lexeme,
			Location: &loc,
		}
	}
	out := &jsonNode{
		Kind: n.Kind.String(),
		Span: &jsonSpan{
			Start: positionToJSON(n.Span.Start),
			End:   positionToJSON(n.Span.End),
		},
	}
	if n.Error != nil {
		out.Error = &jsonError{Message: n.Error.Message}
		if n.Error.Got != nil {
			out.Error.Got = n.Error.Got.toJSON()
		}
	}
	for _, child := range n.Children {
		out.Children = append(out.Children, child.toJSON())
	}
	return out
}

func (n *Node) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.toJSON())
}
