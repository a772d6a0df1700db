package parser

// Cursor tracks a read position over a Source. It keeps two offsets:
// index marks the start of the lexeme window being built, offset the
// next unread character. States widen the window with AdvanceOffset,
// commit it with Align, and index never passes offset.
type Cursor struct {
	src    *Source
	loc    Position
	index  int
	offset int
}

func NewCursor(src *Source) *Cursor {
	return &Cursor{src: src, loc: Position{FilePath: src.Path}}
}

// Peek returns the next unread character, and false at end of input.
func (c *Cursor) Peek() (rune, bool) {
	if c.AtEOF() {
		return 0, false
	}
	return c.src.At(c.offset), true
}

// AtEOF reports whether every character has been read.
func (c *Cursor) AtEOF() bool { return c.offset >= c.src.Len() }

// Location returns the position of the current lexeme window. Both
// column markers sit on the same spot while the window is empty.
func (c *Cursor) Location() Position { return c.loc }

// Pending returns the lexeme window accumulated so far.
func (c *Cursor) Pending() string { return c.src.Slice(c.index, c.offset) }

// Consume steps over one character in a single move: both column
// markers, the committed index, and the read offset advance together.
//
//	before:  t e s t        after:   t e s t
//	         ^ index/offset            ^ index/offset
//	         ^ columns                 ^ columns
func (c *Cursor) Consume() {
	if c.AtEOF() {
		return
	}
	c.loc.ColumnStart++
	c.loc.ColumnEnd++
	c.index++
	c.offset++
}

// AdvanceOffset widens the window by one character: the end column and
// the read offset move while index and the start column stay put.
//
//	before:  t e s t        after:   t e s t
//	         ^ index                 ^ index
//	         ^ offset                  ^ offset
func (c *Cursor) AdvanceOffset() {
	if c.AtEOF() {
		return
	}
	c.loc.ColumnEnd++
	c.offset++
}

// Align commits the window after a token is emitted: the start column
// jumps to the end column and index catches up with offset.
func (c *Cursor) Align() {
	c.loc.ColumnStart = c.loc.ColumnEnd
	c.index = c.offset
}

// NewLine steps over a line break: the line counter advances, both
// column markers reset to zero, and index catches up past the newline
// so the next window starts empty on the fresh line.
func (c *Cursor) NewLine() {
	if c.AtEOF() {
		return
	}
	c.loc.Line++
	c.loc.ColumnStart = 0
	c.loc.ColumnEnd = 0
	c.offset++
	c.index = c.offset
}

// RemoveCarriageReturn deletes the \r at the read offset from the
// shared source text without moving the cursor. The deletion point is
// never before an emitted token, so recorded positions stay valid; the
// round-trip guarantee is therefore modulo carriage returns.
func (c *Cursor) RemoveCarriageReturn() {
	if c.AtEOF() {
		return
	}
	if c.src.At(c.offset) == '\r' {
		c.src.removeAt(c.offset)
	}
}
