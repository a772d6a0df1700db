package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dhamidi/funs/parser"
)

type TokensJSONEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewTokensJSONEncoder(w io.Writer) *TokensJSONEncoder {
	return &TokensJSONEncoder{w: w}
}

func (e *TokensJSONEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TokensJSONEncoder) MarshalText() ([]byte, error) {
	tokens := e.tokens
	if tokens == nil {
		tokens = []parser.Token{}
	}
	return json.MarshalIndent(tokens, "", "  ")
}

type TokensTextEncoder struct {
	w      io.Writer
	tokens []parser.Token
}

func NewTokensTextEncoder(w io.Writer) *TokensTextEncoder {
	return &TokensTextEncoder{w: w}
}

func (e *TokensTextEncoder) Encode(tokens []parser.Token) error {
	e.tokens = tokens
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

// MarshalText renders one token per line: kind, quoted lexeme, and the
// half-open column range on the token's line.
func (e *TokensTextEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	for _, tok := range e.tokens {
		fmt.Fprintf(&sb, "%-12s %q %d:%d-%d\n",
			tok.Kind, tok.Lexeme,
			tok.Location.Line, tok.Location.ColumnStart, tok.Location.ColumnEnd)
	}
	return []byte(sb.String()), nil
}
