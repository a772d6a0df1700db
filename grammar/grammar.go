// Package grammar carries the funs grammar in EBNF form. The grammar is
// documentation with teeth: Verify checks that every production is
// defined and reachable, so the file cannot silently rot as the parser
// evolves.
package grammar

import (
	_ "embed"
	"strings"

	"golang.org/x/exp/ebnf"
)

//go:embed grammar.ebnf
var source string

// Start is the root production.
const Start = "File"

// Definition returns the grammar text as shipped.
func Definition() string {
	return source
}

// Parse parses the embedded grammar.
func Parse() (ebnf.Grammar, error) {
	return ebnf.Parse("grammar.ebnf", strings.NewReader(source))
}

// Verify parses the embedded grammar and checks it is well formed:
// every name used is defined, and every production is reachable from
// Start.
func Verify() error {
	g, err := Parse()
	if err != nil {
		return err
	}
	return ebnf.Verify(g, Start)
}
