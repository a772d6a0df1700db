package format

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/funs/parser"
)

type TreeJSONEncoder struct {
	w    io.Writer
	node *parser.Node
}

func NewTreeJSONEncoder(w io.Writer) *TreeJSONEncoder {
	return &TreeJSONEncoder{w: w}
}

func (e *TreeJSONEncoder) Encode(node *parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeJSONEncoder) MarshalText() ([]byte, error) {
	return json.MarshalIndent(e.node, "", "  ")
}

// TreeTextEncoder renders the indented tree listing. Set Positions for
// line:column spans on every node.
type TreeTextEncoder struct {
	w         io.Writer
	node      *parser.Node
	Positions bool
}

func NewTreeTextEncoder(w io.Writer) *TreeTextEncoder {
	return &TreeTextEncoder{w: w}
}

func (e *TreeTextEncoder) Encode(node *parser.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeTextEncoder) MarshalText() ([]byte, error) {
	if e.node == nil {
		return nil, nil
	}
	if e.Positions {
		return []byte(e.node.StringWithPositions()), nil
	}
	return []byte(e.node.String()), nil
}
