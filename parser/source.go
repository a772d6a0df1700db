package parser

// Source is one source file loaded for lexing. Content is held as runes
// so that columns count characters, not bytes. A single Source is shared
// by reference between the cursor that reads it and the diagnostics that
// quote it.
type Source struct {
	Path    string
	content []rune
}

// NewSource wraps already-loaded file content. Reading files from disk
// is the caller's business.
func NewSource(path, text string) *Source {
	return &Source{Path: path, content: []rune(text)}
}

// Len returns the number of characters left in the source. It shrinks
// when carriage returns are removed during lexing.
func (s *Source) Len() int { return len(s.content) }

// At returns the character at offset i. Callers guard the bounds.
func (s *Source) At(i int) rune { return s.content[i] }

// Slice returns the text between two character offsets.
func (s *Source) Slice(from, to int) string { return string(s.content[from:to]) }

// String returns the remaining content. After lexing this is the
// original text minus any carriage returns.
func (s *Source) String() string { return string(s.content) }

// Line returns the text of the 0-based line n without its newline, or
// "" when the source has no such line. Diagnostics use it to quote the
// offending line.
func (s *Source) Line(n int) string {
	start := 0
	for line := 0; line < n; line++ {
		next := s.indexOfNewline(start)
		if next < 0 {
			return ""
		}
		start = next + 1
	}
	end := s.indexOfNewline(start)
	if end < 0 {
		end = len(s.content)
	}
	return string(s.content[start:end])
}

// removeAt deletes the character at offset i in place. The only caller
// is the cursor's carriage-return removal; text before i never moves,
// so positions recorded by already-emitted tokens stay valid.
func (s *Source) removeAt(i int) {
	s.content = append(s.content[:i], s.content[i+1:]...)
}

func (s *Source) indexOfNewline(from int) int {
	for i := from; i < len(s.content); i++ {
		if s.content[i] == '\n' {
			return i
		}
	}
	return -1
}
