package rfc822

import "strings"

// Scanner is a backtracking cursor over a header value. It holds a borrowed
// view of the input for its whole lifetime; tokens are sub-slices of the
// input except where a caller lowercases them for comparison. A Scanner is
// single-writer state and must not be shared between goroutines, but
// independent Scanners over the same input are safe.
//
// Grammar consumers (the date-time parser here, address and structured
// header parsers elsewhere) build on exactly this operation set.
type Scanner struct {
	input string
	pos   int
	marks []int
}

// NewScanner returns a scanner positioned at the start of s.
func NewScanner(s string) *Scanner {
	return &Scanner{input: s}
}

// Eof reports whether the whole input has been consumed.
func (s *Scanner) Eof() bool { return s.pos >= len(s.input) }

// Remainder returns the unconsumed tail of the input.
func (s *Scanner) Remainder() string { return s.input[s.pos:] }

// PushPosition saves the cursor so a speculative parse can be rolled back.
// Every push must be paired with exactly one PopPosition or DiscardPosition.
func (s *Scanner) PushPosition() {
	s.marks = append(s.marks, s.pos)
}

// PopPosition rewinds the cursor to the most recently pushed position.
// Popping without a matching push is a programming error and panics.
func (s *Scanner) PopPosition() {
	n := len(s.marks)
	if n == 0 {
		panic("rfc822: PopPosition without matching PushPosition")
	}
	s.pos = s.marks[n-1]
	s.marks = s.marks[:n-1]
}

// DiscardPosition drops the most recently pushed position without moving
// the cursor, committing the speculative parse since that push.
func (s *Scanner) DiscardPosition() {
	n := len(s.marks)
	if n == 0 {
		panic("rfc822: DiscardPosition without matching PushPosition")
	}
	s.marks = s.marks[:n-1]
}

// ConsumeChar advances past one character. At end of input it does nothing.
func (s *Scanner) ConsumeChar() {
	if s.pos < len(s.input) {
		s.pos++
	}
}

// AssertChar checks that the character at the cursor is c, without
// consuming it. Callers consume it with ConsumeChar after a nil return.
func (s *Scanner) AssertChar(c byte) error {
	if s.Eof() {
		return parseErrorf("expected %q, got end of input", c)
	}
	if s.input[s.pos] != c {
		return parseErrorf("expected %q, got %q", c, s.input[s.pos])
	}
	return nil
}

// ConsumeWhile advances over the maximal run of characters satisfying pred,
// returning the run. The run may be empty.
func (s *Scanner) ConsumeWhile(pred func(byte) bool) string {
	start := s.pos
	for s.pos < len(s.input) && pred(s.input[s.pos]) {
		s.pos++
	}
	return s.input[start:s.pos]
}

// ConsumeLinearWhitespace consumes folding whitespace: runs of space and
// tab, and line folds (CRLF, or a bare LF, followed by space or tab) per
// RFC 5322 3.2.2.
func (s *Scanner) ConsumeLinearWhitespace() {
	for s.pos < len(s.input) {
		switch s.input[s.pos] {
		case ' ', '\t':
			s.pos++
		case '\r':
			if strings.HasPrefix(s.input[s.pos:], "\r\n") && s.pos+2 < len(s.input) && isWSP(s.input[s.pos+2]) {
				s.pos += 3
				continue
			}
			return
		case '\n':
			if s.pos+1 < len(s.input) && isWSP(s.input[s.pos+1]) {
				s.pos += 2
				continue
			}
			return
		default:
			return
		}
	}
}

// ConsumeWord returns the next word: a maximal run of atom characters, or,
// when allowQuoted is set and the cursor is at a double quote, an RFC 5322
// quoted-string with its backslash escapes processed and the surrounding
// quotes removed. Returns ok=false without moving the cursor when no word
// starts at the cursor (end of input, whitespace, or a separator).
func (s *Scanner) ConsumeWord(allowQuoted bool) (word string, ok bool) {
	if allowQuoted && !s.Eof() && s.input[s.pos] == '"' {
		return s.consumeQuotedString()
	}
	w := s.ConsumeWhile(isAtext)
	if w == "" {
		return "", false
	}
	return w, true
}

// An unterminated quoted-string yields no word and restores the cursor.
func (s *Scanner) consumeQuotedString() (string, bool) {
	start := s.pos
	s.pos++ // opening quote
	var b strings.Builder
	for s.pos < len(s.input) {
		switch c := s.input[s.pos]; c {
		case '"':
			s.pos++
			return b.String(), true
		case '\\':
			if s.pos+1 >= len(s.input) {
				s.pos = start
				return "", false
			}
			b.WriteByte(s.input[s.pos+1])
			s.pos += 2
		default:
			b.WriteByte(c)
			s.pos++
		}
	}
	s.pos = start
	return "", false
}

func isWSP(c byte) bool { return c == ' ' || c == '\t' }

func isWhitespace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// atext per RFC 5322 3.2.3. Notably excludes ':' and ',', which is what
// lets the grammar see the separators after an hour or a day name.
func isAtext(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	switch c {
	case '!', '#', '$', '%', '&', '\'', '*', '+', '-', '/', '=', '?', '^', '_', '`', '{', '|', '}', '~':
		return true
	}
	return false
}
