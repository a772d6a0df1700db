// Package parser turns funs source text into tokens and parse trees.
//
// # Architecture
//
// Parsing runs in two independent phases. The lexer is a state machine
// driven by a cursor over the shared source text; the parser consumes
// the significant tokens and records tree-shape events that are
// replayed into a tree at the end.
//
//	+--------+     +--------+     +-----------+     +-----------+
//	| Source |---->| Cursor |---->|   Lexer   |---->|  Parser   |
//	+--------+     +--------+     | (states)  |     | (events)  |
//	                              +-----------+     +-----------+
//	                                    |                 |
//	                                    v                 v
//	                                 Tokens         Node tree +
//	                                                Diagnostics
//
// The lexer emits a token for every character of the input, whitespace
// and comments included, so the concatenated lexemes reproduce the
// source text. Carriage returns are the one exception: they are deleted
// from the shared source while scanning, which makes the round trip
// exact after normalization. Newline and end-of-file tokens are
// zero-width.
//
// The parser is an event parser: grammar rules open subtrees before
// they know what they are parsing, and assign the node kind
// retroactively when the rule commits. The event log is replayed into a
// tree by Finish, which checks that exactly one root came out and every
// token was placed.
//
// # Error handling
//
// Bad input never stops a parse. Unexpected characters become Unknown
// tokens, unexpected tokens are wrapped one at a time in ErrorTree
// nodes, and missing tokens are recorded as side-channel diagnostics.
// A parse only fails as a whole when the parser itself is broken: a
// rule that stops consuming tokens runs out of fuel, and Finish reports
// ErrOutOfFuel instead of looping forever.
//
// # Usage
//
//	src := parser.NewSource("example.fs", "x: int = 0\n")
//	p := parser.ParseFile(src)
//	tree, err := p.Finish()
//	if err != nil {
//		// parser bug, not bad input
//	}
//	for _, d := range p.Diagnostics() {
//		fmt.Println(d.Location, d.Message)
//	}
//
// The token stream alone is available through Tokenize or by pulling a
// Lexer by hand:
//
//	lexer := parser.NewLexer(src)
//	for {
//		tok, ok := lexer.Next()
//		if !ok {
//			break
//		}
//		fmt.Printf("%s %q\n", tok.Kind, tok.Lexeme)
//	}
package parser
