// Package history records reversible document edits and groups them into
// undo transactions.
package history

import (
	"fmt"
	"unicode/utf8"

	"github.com/bethropolis/kite/internal/buffer"
)

// Direction selects which way a Change is applied.
type Direction int

const (
	Forward  Direction = iota // perform the edit (also redo)
	Backward                  // revert the edit (undo)
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Kind identifies one of the reversible edit primitives.
type Kind int

const (
	InsertChar Kind = iota // insert Char at (X, Y)
	DeleteChar             // remove the character before (X, Y); Char is that character
	Append                 // append Text to line Y
	Truncate               // drop the trailing Text from line Y
	Newline                // push an empty line at the end
	InsertLine             // insert a line holding Text at index Y
	DeleteLine             // remove line Y, whose content is Text
)

var kindNames = [...]string{
	InsertChar: "InsertChar",
	DeleteChar: "DeleteChar",
	Append:     "Append",
	Truncate:   "Truncate",
	Newline:    "Newline",
	InsertLine: "InsertLine",
	DeleteLine: "DeleteLine",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Change is a single reversible edit. It carries exactly the data needed to
// apply it in either direction; which fields are meaningful depends on Kind.
type Change struct {
	Kind Kind
	X    int
	Y    int
	Char rune
	Text string
}

// Constructors for each kind keep call sites readable.

func NewInsertChar(x, y int, c rune) Change { return Change{Kind: InsertChar, X: x, Y: y, Char: c} }
func NewDeleteChar(x, y int, c rune) Change { return Change{Kind: DeleteChar, X: x, Y: y, Char: c} }
func NewAppend(y int, s string) Change      { return Change{Kind: Append, Y: y, Text: s} }
func NewTruncate(y int, s string) Change    { return Change{Kind: Truncate, Y: y, Text: s} }
func NewNewline() Change                    { return Change{Kind: Newline} }
func NewInsertLine(y int, s string) Change  { return Change{Kind: InsertLine, Y: y, Text: s} }
func NewDeleteLine(y int, s string) Change  { return Change{Kind: DeleteLine, Y: y, Text: s} }

func (c Change) String() string {
	switch c.Kind {
	case InsertChar, DeleteChar:
		return fmt.Sprintf("%s(%d, %d, %q)", c.Kind, c.X, c.Y, c.Char)
	case Newline:
		return "Newline"
	default:
		return fmt.Sprintf("%s(%d, %q)", c.Kind, c.Y, c.Text)
	}
}

// Apply mutates lines according to the change and direction and returns the
// resulting cursor position. Applying Forward then Backward (or the reverse,
// starting from the state the change was recorded against) restores lines
// exactly.
//
// Apply assumes the preconditions under which the change was produced; a
// violated precondition is a programming error and panics.
func (c Change) Apply(lines *buffer.Lines, dir Direction) (x, y int) {
	switch c.Kind {
	case InsertChar:
		row := lines.At(c.Y)
		if dir == Forward {
			mustEdit(row.InsertChar(c.X, c.Char))
			return c.X + 1, c.Y
		}
		row.RemoveChar(c.X)
		return c.X, c.Y

	case DeleteChar:
		row := lines.At(c.Y)
		if dir == Forward {
			row.RemoveChar(c.X - 1)
			return c.X - 1, c.Y
		}
		mustEdit(row.InsertChar(c.X-1, c.Char))
		return c.X, c.Y

	case Append:
		row := lines.At(c.Y)
		if dir == Forward {
			n := row.Len()
			mustEdit(row.Append(c.Text))
			return n, c.Y
		}
		n := row.Len()
		row.Remove(n-utf8.RuneCountInString(c.Text), n)
		return row.Len(), c.Y

	case Truncate:
		row := lines.At(c.Y)
		count := utf8.RuneCountInString(c.Text)
		if dir == Forward {
			at := row.Len() - count
			row.Truncate(at)
			return at, c.Y
		}
		mustEdit(row.Append(c.Text))
		return row.Len() - count, c.Y

	case Newline:
		if dir == Forward {
			lines.Push(buffer.EmptyLine())
			return 0, lines.Len() - 1
		}
		if last := lines.At(lines.Len() - 1); last.Len() != 0 {
			panic(fmt.Sprintf("history: undoing Newline but last line is %q", last.Content()))
		}
		lines.Pop()
		return 0, lines.Len()

	case InsertLine:
		if dir == Forward {
			lines.Insert(c.Y, buffer.MustLine(c.Text))
			return 0, c.Y
		}
		lines.Remove(c.Y)
		return lines.At(c.Y - 1).Len(), c.Y - 1

	case DeleteLine:
		if dir == Forward {
			lines.Remove(c.Y)
			return lines.At(c.Y - 1).Len(), c.Y - 1
		}
		lines.Insert(c.Y, buffer.MustLine(c.Text))
		return 0, c.Y
	}
	panic(fmt.Sprintf("history: unknown change kind %v", c.Kind))
}

// mustEdit turns a line mutation error into a panic. Changes are only
// recorded after their text was validated, so this cannot fire in practice.
func mustEdit(err error) {
	if err != nil {
		panic(fmt.Sprintf("history: applying recorded change: %v", err))
	}
}
