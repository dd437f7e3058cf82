// internal/buffer/line.go
package buffer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// TabStop is the column multiple a tab expands to.
const TabStop = 4

// widthCond measures characters the way CJK terminals draw them:
// ambiguous-width characters take two cells.
var widthCond = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = true
	return c
}()

// Line is one line of document text.
//
// content is the raw text as stored on disk. rendered is the display form
// (tabs expanded). offsets maps character index to byte offset and is nil
// when every character is a single byte, in which case both coincide.
// Both derived fields are recomputed on every mutation.
type Line struct {
	content  string
	rendered string
	offsets  []int
}

// EmptyLine returns a line with no content.
func EmptyLine() *Line {
	return &Line{}
}

// NewLine creates a line from raw text. It fails with an *InvalidCharError
// if the text is not valid UTF-8 or contains a character without a display
// width.
func NewLine(text string) (*Line, error) {
	l := &Line{}
	if err := l.set(text); err != nil {
		return nil, err
	}
	return l, nil
}

// MustLine is NewLine for text already known to be valid (e.g. text that
// was previously stored in a Line). It panics otherwise.
func MustLine(text string) *Line {
	l, err := NewLine(text)
	if err != nil {
		panic(err)
	}
	return l
}

// charWidth returns the display width of r, or false if r is a control
// character. Tab is handled by the caller.
func charWidth(r rune) (int, bool) {
	if unicode.IsControl(r) {
		return 0, false
	}
	return widthCond.RuneWidth(r), true
}

// CharWidth returns the number of screen cells r occupies in rendered
// text. Control characters report 0.
func CharWidth(r rune) int {
	w, _ := charWidth(r)
	return w
}

// set replaces the content and recomputes derived state. On error the line
// is left untouched.
func (l *Line) set(content string) error {
	if !utf8.ValidString(content) {
		return &InvalidCharError{Char: utf8.RuneError}
	}

	var rb strings.Builder
	rb.Grow(len(content))
	col := 0
	numChars := 0

	for _, r := range content {
		if r == '\t' {
			for {
				rb.WriteByte(' ')
				col++
				if col%TabStop == 0 {
					break
				}
			}
		} else if w, ok := charWidth(r); ok {
			col += w
			rb.WriteRune(r)
		} else {
			return &InvalidCharError{Char: r}
		}
		numChars++
	}

	var offsets []int
	if numChars != len(content) {
		offsets = make([]int, 0, numChars)
		for i := range content {
			offsets = append(offsets, i)
		}
	}

	l.content = content
	l.rendered = rb.String()
	l.offsets = offsets
	return nil
}

// Len returns the length of the line in characters.
func (l *Line) Len() int {
	if l.offsets == nil {
		return len(l.content)
	}
	return len(l.offsets)
}

// Content returns the raw text.
func (l *Line) Content() string { return l.content }

// Rendered returns the display text.
func (l *Line) Rendered() string { return l.rendered }

// CharToByte converts a character index to a byte offset. The index one past
// the last character maps to the byte length.
func (l *Line) CharToByte(at int) int {
	if l.offsets == nil {
		return at
	}
	if at == len(l.offsets) {
		return len(l.content)
	}
	return l.offsets[at]
}

// CharAt returns the character at index at.
func (l *Line) CharAt(at int) rune {
	r, _ := utf8.DecodeRuneInString(l.content[l.CharToByte(at):])
	return r
}

// Slice returns the text between character indices start and end.
func (l *Line) Slice(start, end int) string {
	return l.content[l.CharToByte(start):l.CharToByte(end)]
}

// From returns the text from character index at to the end of the line.
func (l *Line) From(at int) string {
	return l.content[l.CharToByte(at):]
}

// InsertChar inserts r before character index at. An index at or past the
// end appends.
func (l *Line) InsertChar(at int, r rune) error {
	if at >= l.Len() {
		return l.set(l.content + string(r))
	}
	b := l.CharToByte(at)
	return l.set(l.content[:b] + string(r) + l.content[b:])
}

// RemoveChar removes the character at index at.
func (l *Line) RemoveChar(at int) {
	b := l.CharToByte(at)
	_, size := utf8.DecodeRuneInString(l.content[b:])
	l.mustSet(l.content[:b] + l.content[b+size:])
}

// Append adds text to the end of the line.
func (l *Line) Append(text string) error {
	if text == "" {
		return nil
	}
	return l.set(l.content + text)
}

// Truncate drops everything from character index at onwards.
func (l *Line) Truncate(at int) {
	if at < l.Len() {
		l.mustSet(l.content[:l.CharToByte(at)])
	}
}

// Remove deletes the characters in [start, end).
func (l *Line) Remove(start, end int) {
	if start < end {
		l.mustSet(l.content[:l.CharToByte(start)] + l.content[l.CharToByte(end):])
	}
}

// mustSet is used by removals, which cannot introduce invalid characters.
func (l *Line) mustSet(content string) {
	if err := l.set(content); err != nil {
		panic(err)
	}
}

// DisplayColumn converts character column cx to a screen column, expanding
// tabs to the next tab stop and summing character widths.
func (l *Line) DisplayColumn(cx int) int {
	rx := 0
	for _, r := range l.content[:l.CharToByte(cx)] {
		if r == '\t' {
			rx += TabStop - rx%TabStop
		} else {
			w, _ := charWidth(r)
			rx += w
		}
	}
	return rx
}

// String implements fmt.Stringer for debugging.
func (l *Line) String() string {
	return l.content
}
