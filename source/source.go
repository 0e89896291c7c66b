// Package source defines source buffer and rune cursor used by parser.
package source

import (
	"bytes"
	"unicode/utf8"
)

// Source holds the whole content of a single file.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new Source. content must not be modified afterwards.
func New(name string, content []byte) *Source {
	s := &Source{name: name, content: content}
	lineCnt := bytes.Count(content, []byte("\n")) + 1
	s.lineStarts = make([]int, lineCnt)
	j := 1
	for i := 0; i < len(content) && j < lineCnt; i++ {
		if content[i] == '\n' {
			s.lineStarts[j] = i + 1
			j++
		}
	}

	return s
}

// NewString creates new unnamed Source.
func NewString(content string) *Source {
	return New("", []byte(content))
}

func (s *Source) Name() string {
	return s.name
}

// Lines returns the number of lines, an empty source has one empty line.
func (s *Source) Lines() int {
	return len(s.lineStarts)
}

// LineText returns the text of 1-based line without line terminator.
// Returns nil if there is no such line.
func (s *Source) LineText(line int) []byte {
	if line <= 0 || line > s.Lines() {
		return nil
	}

	start := s.lineStarts[line-1]
	end := len(s.content)
	if line < len(s.lineStarts) {
		end = s.lineStarts[line] - 1
	}
	return bytes.TrimSuffix(s.content[start:end], []byte("\r"))
}

// Cursor reads runes from Source with one rune lookahead.
// Line counter starts at 1 and is incremented for every newline consumed.
type Cursor struct {
	src  *Source
	pos  int
	line int
}

func NewCursor(s *Source) *Cursor {
	return &Cursor{src: s, line: 1}
}

// Line returns current 1-based line number.
func (c *Cursor) Line() int {
	return c.line
}

// Peek returns next rune without consuming it, ok is false at the end of source.
// Invalid UTF-8 bytes are returned as utf8.RuneError.
func (c *Cursor) Peek() (r rune, ok bool) {
	if c.pos >= len(c.src.content) {
		return 0, false
	}

	r, _ = utf8.DecodeRune(c.src.content[c.pos:])
	return r, true
}

// Next consumes and returns next rune, ok is false at the end of source.
func (c *Cursor) Next() (r rune, ok bool) {
	if c.pos >= len(c.src.content) {
		return 0, false
	}

	r, size := utf8.DecodeRune(c.src.content[c.pos:])
	c.pos += size
	if r == '\n' {
		c.line++
	}
	return r, true
}

// Skip consumes runes while accept returns true and returns the number of consumed runes.
// i is the index of the rune in the skipped run.
func (c *Cursor) Skip(accept func(i int, r rune) bool) int {
	count := 0
	for {
		r, ok := c.Peek()
		if !ok || !accept(count, r) {
			return count
		}

		c.Next()
		count++
	}
}

// Read consumes runes while accept returns true and returns them as a string.
// Returns empty string if nothing is accepted.
func (c *Cursor) Read(accept func(i int, r rune) bool) string {
	start := c.pos
	c.Skip(accept)
	return string(c.src.content[start:c.pos])
}
