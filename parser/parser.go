package parser

import (
	"errors"
	"fmt"
)

// initialFuel bounds how many lookahead probes the parser may make
// without consuming a token. Running dry means a grammar rule failed to
// make progress, which is a bug in the parser, never a property of the
// input.
const initialFuel = 256

// ErrOutOfFuel is reported by Finish when the parse aborted because a
// rule stopped making progress.
var ErrOutOfFuel = errors.New("parser: out of fuel")

// exhausted is the panic value used to unwind out of a stuck parse; it
// is recovered inside ParseFile and never escapes the package.
type exhausted struct{}

type eventKind int

const (
	eventOpen eventKind = iota
	eventClose
	eventAdvance
)

// event is one entry of the append-only parse log. Open events start
// out as ErrorTree and are overwritten in place when the rule that
// opened them decides what it parsed.
type event struct {
	kind eventKind
	node NodeKind
	err  *Error
}

// mark addresses an Open event so its kind can be assigned
// retroactively.
type mark int

// Diagnostic is a missing-token report recorded by expect. These stay
// on a side channel because no token was consumed that a tree node
// could wrap; consumed-token errors are embedded in the tree as
// ErrorTree nodes instead.
type Diagnostic struct {
	Location Position
	Message  string
	Expected []TokenKind
	Got      TokenKind
}

// Parser builds a parse tree over the significant tokens of one source
// file. It records Open/Close/Advance events while the grammar rules
// run and replays them into a tree when Finish is called.
type Parser struct {
	src     *Source
	tokens  []Token
	pos     int
	fuel    int
	events  []event
	diags   []Diagnostic
	failure error
}

// ParseFile lexes src and parses the whole file. The parse itself never
// fails: errors become ErrorTree nodes and diagnostics. Call Finish for
// the tree and Diagnostics for the side channel.
func ParseFile(src *Source) *Parser {
	p := &Parser{
		src:    src,
		tokens: tokenize(src),
		fuel:   initialFuel,
	}
	p.run()
	return p
}

// tokenize materializes the significant token stream: everything the
// lexer emits except spaces, tabs, and the end-of-file sentinel.
// Newlines and comments stay, the grammar sees both.
func tokenize(src *Source) []Token {
	var tokens []Token
	lexer := NewLexer(src)
	for {
		tok, ok := lexer.Next()
		if !ok {
			return tokens
		}
		switch tok.Kind {
		case KindSpace, KindTab, KindEOF:
		default:
			tokens = append(tokens, tok)
		}
	}
}

func (p *Parser) run() {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(exhausted); ok {
				p.failure = ErrOutOfFuel
				return
			}
			panic(r)
		}
	}()
	p.parseFile()
}

// Finish replays the event log into the parse tree. It reports
// ErrOutOfFuel when the parse aborted, or an invariant violation when
// the log is malformed; both indicate parser bugs, not bad input.
func (p *Parser) Finish() (*Node, error) {
	if p.failure != nil {
		return nil, p.failure
	}
	return p.buildTree()
}

// Diagnostics returns the side-channel reports in source order.
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diags
}

// Source returns the source text this parser read, shared by reference.
func (p *Parser) Source() *Source {
	return p.src
}

// Tokens returns the significant tokens the grammar rules consumed.
func (p *Parser) Tokens() []Token {
	return p.tokens
}

// nth returns the token kind at the given lookahead, synthesizing EOF
// past the end of the stream. Every probe burns fuel; advance refills
// it.
func (p *Parser) nth(lookahead int) TokenKind {
	if p.fuel == 0 {
		panic(exhausted{})
	}
	p.fuel--
	if p.pos+lookahead >= len(p.tokens) {
		return KindEOF
	}
	return p.tokens[p.pos+lookahead].Kind
}

func (p *Parser) at(kind TokenKind) bool {
	return p.nth(0) == kind
}

func (p *Parser) eof() bool {
	return p.pos == len(p.tokens)
}

func (p *Parser) advance() {
	if p.eof() {
		return
	}
	p.fuel = initialFuel
	p.events = append(p.events, event{kind: eventAdvance})
	p.pos++
}

// open pushes an Open event and returns its mark. The kind starts as
// ErrorTree so an interrupted rule still closes into something valid.
func (p *Parser) open() mark {
	m := mark(len(p.events))
	p.events = append(p.events, event{kind: eventOpen, node: KindErrorTree})
	return m
}

// close ends the subtree opened at m and retroactively assigns its
// kind.
func (p *Parser) close(m mark, kind NodeKind) {
	p.events[m] = event{kind: eventOpen, node: kind}
	p.events = append(p.events, event{kind: eventClose})
}

func (p *Parser) closeError(m mark, err *Error) {
	p.events[m] = event{kind: eventOpen, node: KindErrorTree, err: err}
	p.events = append(p.events, event{kind: eventClose})
}

func (p *Parser) eat(kind TokenKind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or records a missing-token
// diagnostic without advancing, so one missing token costs exactly one
// report and the rule keeps going.
func (p *Parser) expect(kind TokenKind) {
	if p.eat(kind) {
		return
	}
	got, loc := p.current()
	p.diags = append(p.diags, Diagnostic{
		Location: loc,
		Message:  fmt.Sprintf("expected %s, got %s", kind, got),
		Expected: []TokenKind{kind},
		Got:      got,
	})
}

// advanceWithError wraps exactly one unexpected token in an ErrorTree
// node so the surrounding statements still parse.
func (p *Parser) advanceWithError(message string) {
	m := p.open()
	var got *Token
	if !p.eof() {
		tok := p.tokens[p.pos]
		got = &tok
	}
	p.advance()
	p.closeError(m, &Error{Message: message, Got: got})
}

// current reads the lookahead token without burning fuel, for
// diagnostics only. Past the end it reports EOF at a zero-width
// position after the last token.
func (p *Parser) current() (TokenKind, Position) {
	if p.pos < len(p.tokens) {
		tok := p.tokens[p.pos]
		return tok.Kind, tok.Location
	}
	loc := Position{FilePath: p.src.Path}
	if n := len(p.tokens); n > 0 {
		loc = p.tokens[n-1].Location
		loc.ColumnStart = loc.ColumnEnd
	}
	return KindEOF, loc
}

// buildTree is the second pass: it replays the event log against the
// token stream. The trailing Close belongs to the root File and is
// dropped first so the root survives on the stack.
func (p *Parser) buildTree() (*Node, error) {
	events := p.events
	if len(events) == 0 {
		return nil, errors.New("parser: empty event log")
	}
	if events[len(events)-1].kind != eventClose {
		return nil, errors.New("parser: event log does not end with a close")
	}
	events = events[:len(events)-1]

	var stack []*Node
	next := 0
	for _, ev := range events {
		switch ev.kind {
		case eventOpen:
			stack = append(stack, &Node{Kind: ev.node, Error: ev.err})
		case eventClose:
			if len(stack) < 2 {
				return nil, errors.New("parser: close without matching open")
			}
			done := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			stack[len(stack)-1].AddChild(done)
		case eventAdvance:
			if len(stack) == 0 {
				return nil, errors.New("parser: token outside any tree")
			}
			if next >= len(p.tokens) {
				return nil, errors.New("parser: advance past end of tokens")
			}
			tok := p.tokens[next]
			next++
			stack[len(stack)-1].AddChild(leafNode(tok))
		}
	}
	if len(stack) != 1 {
		return nil, fmt.Errorf("parser: %d trees left open", len(stack))
	}
	if next != len(p.tokens) {
		return nil, fmt.Errorf("parser: %d tokens not consumed", len(p.tokens)-next)
	}
	root := stack[0]
	root.computeSpan(p.src.Path)
	return root, nil
}

func leafNode(tok Token) *Node {
	return &Node{
		Kind:  KindToken,
		Span:  Span{Start: tok.Location, End: tok.Location},
		Token: &tok,
	}
}

// parseFile is the grammar entry point. One file is a sequence of
// statements; blank lines and comments are leaves of the file itself.
func (p *Parser) parseFile() {
	m := p.open()
	for !p.eof() {
		switch p.nth(0) {
		case KindComment, KindNewline:
			p.advance()
		case KindIdentifier:
			switch {
			case p.nth(1) == KindColon && p.nth(2) == KindOpenParen:
				p.parseFunDecl()
			case p.nth(1) == KindColon:
				p.parseVarDecl()
			default:
				p.advanceWithError("expected statement")
			}
		case KindInt, KindFloat, KindBool, KindStr:
			p.parseStmtExpr()
		default:
			p.advanceWithError("expected statement")
		}
	}
	p.close(m, KindFile)
}

// parseVarDecl parses
//
//	name ":" Type "=" Expr "\n"
func (p *Parser) parseVarDecl() {
	m := p.open()
	p.expect(KindIdentifier)
	p.expect(KindColon)
	p.parseType()
	p.expect(KindAssign)
	p.parseExpr()
	p.expect(KindNewline)
	p.close(m, KindStmtVarDecl)
}

// parseFunDecl parses
//
//	name ":" "(" Type,* ")" "->" Type "=" "(" param,* ")" "->" Expr "\n"
func (p *Parser) parseFunDecl() {
	m := p.open()
	p.expect(KindIdentifier)
	p.expect(KindColon)
	p.parseTypeParams()
	p.expect(KindArrow)
	p.parseType()
	p.expect(KindAssign)
	p.parseParams()
	p.expect(KindArrow)
	p.parseExpr()
	p.expect(KindNewline)
	p.close(m, KindStmtFunDecl)
}

// parseType parses a named type, a list type in brackets, or a tuple
// type in parens. The reserved type keywords are valid type names.
func (p *Parser) parseType() {
	m := p.open()
	switch kind := p.nth(0); {
	case kind.IsTypeName():
		p.advance()
	case kind == KindOpenBracket:
		p.advance()
		p.parseType()
		p.expect(KindCloseBracket)
	case kind == KindOpenParen:
		p.advance()
		if !p.at(KindCloseParen) {
			p.parseType()
			for p.at(KindComma) {
				p.advance()
				p.parseType()
			}
		}
		p.expect(KindCloseParen)
	default:
		p.advanceWithError("expected type")
	}
	p.close(m, KindTypeExpr)
}

// parseTypeParams parses the parenthesized parameter type list of a
// function declaration. An empty list is allowed.
func (p *Parser) parseTypeParams() {
	m := p.open()
	p.expect(KindOpenParen)
	if !p.at(KindCloseParen) {
		p.parseType()
		for p.at(KindComma) {
			p.advance()
			p.parseType()
		}
	}
	p.expect(KindCloseParen)
	p.close(m, KindTypeExpr)
}

// parseParams parses the parenthesized parameter name list of a
// function declaration.
func (p *Parser) parseParams() {
	m := p.open()
	p.expect(KindOpenParen)
	if !p.at(KindCloseParen) {
		p.expect(KindIdentifier)
		for p.at(KindComma) {
			p.advance()
			p.expect(KindIdentifier)
		}
	}
	p.expect(KindCloseParen)
	p.close(m, KindParams)
}

// parseStmtExpr parses a bare expression statement terminated by a line
// break.
func (p *Parser) parseStmtExpr() {
	m := p.open()
	p.parseExpr()
	p.expect(KindNewline)
	p.close(m, KindStmtExpr)
}

// parseExpr parses an expression. Literals are the whole expression
// grammar for now.
func (p *Parser) parseExpr() {
	m := p.open()
	if p.nth(0).IsLiteral() {
		p.advance()
	} else {
		p.advanceWithError("expected expression")
	}
	p.close(m, KindExprLiteral)
}
