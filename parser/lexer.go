package parser

// lexState is the closed set of states of the lexical state machine.
type lexState int

const (
	stateStart lexState = iota
	stateString
	stateComment
	stateNumber
	stateWord
	stateSymbol
	stateEOF
	stateEnd
)

// lexAction is what a transition does to the cursor after the next
// state is chosen. Tokens attached to a transition are built before the
// action runs, so they snapshot the pre-action location.
type lexAction int

const (
	actNone lexAction = iota
	actConsume      // step over one character, window stays empty
	actAdvance      // widen the window by one character
	actAlign        // commit the window after emitting
	actAdvanceAlign // widen by one, then commit (closing string quote)
	actNewLine      // line bookkeeping after emitting a newline token
	actRemoveCR     // delete the \r at the read offset
	actEnd          // terminal, no further tokens
)

type transition struct {
	next   lexState
	action lexAction
	token  *Token
}

// Lexer turns a Source into a stream of tokens. It is lazy and
// single-pass: each Next call runs state transitions until one of them
// emits, and once the stream is exhausted it cannot be restarted.
//
// Every character of the input ends up in exactly one lexeme, including
// whitespace and comments, so concatenating all lexemes reproduces the
// source (carriage returns excepted, they are deleted during the scan).
type Lexer struct {
	cursor *Cursor
	state  lexState
}

func NewLexer(src *Source) *Lexer {
	return &Lexer{cursor: NewCursor(src), state: stateStart}
}

// Tokenize drains a fresh Lexer over src and returns the materialized
// stream, end-of-file token included.
func Tokenize(src *Source) []Token {
	lexer := NewLexer(src)
	var tokens []Token
	for {
		tok, ok := lexer.Next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

// Next returns the next token in the stream. It reports false once the
// end-of-file token has been emitted and the machine has halted.
func (l *Lexer) Next() (Token, bool) {
	for {
		t := l.visit()
		l.state = t.next
		l.apply(t.action)
		if t.token != nil {
			return *t.token, true
		}
		if t.action == actEnd {
			return Token{}, false
		}
	}
}

func (l *Lexer) visit() transition {
	switch l.state {
	case stateStart:
		return l.visitStart()
	case stateString:
		return l.visitString()
	case stateComment:
		return l.visitComment()
	case stateNumber:
		return l.visitNumber()
	case stateWord:
		return l.visitWord()
	case stateSymbol:
		return l.visitSymbol()
	case stateEOF:
		return l.visitEOF()
	default:
		return transition{next: stateEnd, action: actEnd}
	}
}

func (l *Lexer) apply(a lexAction) {
	switch a {
	case actConsume:
		l.cursor.Consume()
	case actAdvance:
		l.cursor.AdvanceOffset()
	case actAlign:
		l.cursor.Align()
	case actAdvanceAlign:
		l.cursor.AdvanceOffset()
		l.cursor.Align()
	case actNewLine:
		l.cursor.NewLine()
	case actRemoveCR:
		l.cursor.RemoveCarriageReturn()
	}
}

func (l *Lexer) visitStart() transition {
	ch, ok := l.cursor.Peek()
	if !ok {
		return transition{next: stateEOF, action: actNone}
	}
	switch {
	case ch == ' ':
		return transition{next: stateStart, action: actConsume, token: l.charToken(KindSpace, " ")}
	case ch == '\t':
		return transition{next: stateStart, action: actConsume, token: l.charToken(KindTab, "\t")}
	case ch == '\r':
		return transition{next: stateStart, action: actRemoveCR}
	case ch == '"':
		return transition{next: stateString, action: actAdvance}
	case isWordStart(ch):
		return transition{next: stateWord, action: actAdvance}
	case isDigit(ch):
		return transition{next: stateNumber, action: actAdvance}
	case ch == '#':
		return transition{next: stateComment, action: actAdvance}
	case isSymbolChar(ch):
		return transition{next: stateSymbol, action: actNone}
	default:
		// Lexing is resilient: an unexpected character becomes an
		// Unknown token and the scan continues after it.
		return transition{next: stateStart, action: actConsume, token: l.charToken(KindUnknown, string(ch))}
	}
}

func (l *Lexer) visitString() transition {
	ch, ok := l.cursor.Peek()
	if !ok || ch == '\n' {
		// Unterminated string. The whole pending lexeme, opening quote
		// included, becomes one Unknown token so nothing is lost.
		return transition{next: stateStart, action: actAlign, token: l.windowToken(KindUnknown)}
	}
	if ch == '"' {
		return transition{next: stateStart, action: actAdvanceAlign, token: l.stringToken()}
	}
	return transition{next: stateString, action: actAdvance}
}

func (l *Lexer) visitComment() transition {
	ch, ok := l.cursor.Peek()
	if !ok || ch == '\n' || ch == '\r' {
		// The line break is not part of the comment; it is re-examined
		// and emits its own token.
		return transition{next: stateStart, action: actAlign, token: l.windowToken(KindComment)}
	}
	return transition{next: stateComment, action: actAdvance}
}

func (l *Lexer) visitNumber() transition {
	ch, ok := l.cursor.Peek()
	if ok && (isDigit(ch) || ch == '.') {
		return transition{next: stateNumber, action: actAdvance}
	}
	return transition{next: stateStart, action: actAlign, token: l.classifiedToken()}
}

func (l *Lexer) visitWord() transition {
	ch, ok := l.cursor.Peek()
	if ok && isWordChar(ch) {
		return transition{next: stateWord, action: actAdvance}
	}
	return transition{next: stateStart, action: actAlign, token: l.classifiedToken()}
}

// endOfLineValid is the set of token kinds allowed to sit directly
// before a line break. Emitting one of them returns the machine to
// Start; any other symbol stays in Symbol so the newline token is
// emitted on the next pull. The token streams are identical either way.
var endOfLineValid = map[TokenKind]bool{
	KindAssign: true,
}

func (l *Lexer) visitSymbol() transition {
	pending := l.cursor.Pending()
	ch, ok := l.cursor.Peek()

	if !ok {
		if pending == "" {
			return transition{next: stateEOF, action: actNone}
		}
		// Flush the pending symbol before the end-of-file token.
		return transition{next: stateEOF, action: actAlign, token: l.classifiedToken()}
	}

	if pending == "" {
		if ch == '\n' {
			return transition{next: stateStart, action: actNewLine, token: l.newlineToken()}
		}
		return transition{next: stateSymbol, action: actAdvance}
	}

	if ch == '\n' {
		tok := l.classifiedToken()
		next := stateSymbol
		if endOfLineValid[tok.Kind] {
			next = stateStart
		}
		return transition{next: next, action: actAlign, token: tok}
	}

	if twoCharSymbols[pending+string(ch)] {
		return transition{next: stateSymbol, action: actAdvance}
	}

	return transition{next: stateStart, action: actAlign, token: l.classifiedToken()}
}

func (l *Lexer) visitEOF() transition {
	return transition{next: stateEnd, action: actAlign, token: l.eofToken()}
}

// charToken builds a single-character token emitted together with a
// Consume action: the cursor still sits before the character, so the
// span is widened by hand.
func (l *Lexer) charToken(kind TokenKind, lexeme string) *Token {
	loc := l.cursor.Location()
	loc.ColumnEnd++
	return &Token{Kind: kind, Lexeme: lexeme, Location: loc}
}

func (l *Lexer) windowToken(kind TokenKind) *Token {
	return &Token{Kind: kind, Lexeme: l.cursor.Pending(), Location: l.cursor.Location()}
}

func (l *Lexer) classifiedToken() *Token {
	lexeme := l.cursor.Pending()
	return &Token{Kind: ClassifyLexeme(lexeme), Lexeme: lexeme, Location: l.cursor.Location()}
}

// stringToken covers the pending window plus the closing quote the
// cursor has not advanced over yet.
func (l *Lexer) stringToken() *Token {
	loc := l.cursor.Location()
	loc.ColumnEnd++
	return &Token{Kind: KindStr, Lexeme: l.cursor.Pending() + `"`, Location: loc}
}

// newlineToken records the line break as a zero-width token at the end
// of the line it terminates. The lexeme is still "\n" so the stream
// concatenates back to the source.
func (l *Lexer) newlineToken() *Token {
	return &Token{Kind: KindNewline, Lexeme: "\n", Location: l.cursor.Location()}
}

func (l *Lexer) eofToken() *Token {
	return &Token{Kind: KindEOF, Lexeme: "", Location: l.cursor.Location()}
}

var twoCharSymbols = map[string]bool{
	"->": true,
	"=>": true,
	"++": true,
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isLetter(ch rune) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z'
}

func isWordStart(ch rune) bool {
	return isLetter(ch) || ch == '_'
}

func isWordChar(ch rune) bool {
	return isLetter(ch) || isDigit(ch) || ch == '_'
}

func isSymbolChar(ch rune) bool {
	switch ch {
	case ':', ';', '=', '(', ')', '[', ']', '{', '}', ',', '-', '>', '+', '|', '*', '/', '\n':
		return true
	}
	return false
}
