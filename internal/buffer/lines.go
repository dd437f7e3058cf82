// internal/buffer/lines.go
package buffer

import (
	"bytes"
	"fmt"
)

// Lines is the ordered line collection of a document. It is a plain
// growable slice; every edit is a positional insert or remove.
type Lines struct {
	lines []*Line
}

// NewLines creates a collection holding a single empty line.
func NewLines() *Lines {
	return &Lines{lines: []*Line{EmptyLine()}}
}

// LinesFromStrings builds a collection from raw text, one Line per string.
// An empty input yields a single empty line.
func LinesFromStrings(text ...string) (*Lines, error) {
	ls := &Lines{lines: make([]*Line, 0, len(text))}
	for i, s := range text {
		l, err := NewLine(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		ls.lines = append(ls.lines, l)
	}
	if len(ls.lines) == 0 {
		ls.lines = append(ls.lines, EmptyLine())
	}
	return ls, nil
}

// Len returns the number of lines.
func (ls *Lines) Len() int {
	return len(ls.lines)
}

// At returns line y. It panics if y is out of range, like a slice index.
func (ls *Lines) At(y int) *Line {
	return ls.lines[y]
}

// All returns the underlying slice for read-only iteration.
func (ls *Lines) All() []*Line {
	return ls.lines
}

// Push appends a line at the end.
func (ls *Lines) Push(l *Line) {
	ls.lines = append(ls.lines, l)
}

// Pop removes and returns the last line.
func (ls *Lines) Pop() *Line {
	last := ls.lines[len(ls.lines)-1]
	ls.lines[len(ls.lines)-1] = nil
	ls.lines = ls.lines[:len(ls.lines)-1]
	return last
}

// Insert places l at index y, shifting later lines down. y may equal Len().
func (ls *Lines) Insert(y int, l *Line) {
	if y == len(ls.lines) {
		ls.Push(l)
		return
	}
	ls.lines = append(ls.lines, nil)
	copy(ls.lines[y+1:], ls.lines[y:])
	ls.lines[y] = l
}

// Remove deletes line y and returns it.
func (ls *Lines) Remove(y int) *Line {
	if y == len(ls.lines)-1 {
		return ls.Pop()
	}
	removed := ls.lines[y]
	copy(ls.lines[y:], ls.lines[y+1:])
	ls.lines[len(ls.lines)-1] = nil
	ls.lines = ls.lines[:len(ls.lines)-1]
	return removed
}

// Strings returns the raw content of every line.
func (ls *Lines) Strings() []string {
	out := make([]string, len(ls.lines))
	for i, l := range ls.lines {
		out[i] = l.Content()
	}
	return out
}

// Bytes returns the content as it would be written to disk: every line
// followed by exactly one newline.
func (ls *Lines) Bytes() []byte {
	var buf bytes.Buffer
	for _, l := range ls.lines {
		buf.WriteString(l.Content())
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
