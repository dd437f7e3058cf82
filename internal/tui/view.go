package tui

import (
	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/types"
)

// View is the scroll position of one document: the first visible line and
// the first visible display column.
type View struct {
	RowOff int
	ColOff int
}

// Scroll adjusts the view so the cursor is visible with scrollOff lines of
// context above and below. It reports whether the view moved.
func (v *View) Scroll(lines *buffer.Lines, cursor types.Position, textW, textH, scrollOff int) bool {
	if textW <= 0 || textH <= 0 {
		return false
	}
	old := *v

	if limit := (textH - 1) / 2; scrollOff > limit {
		scrollOff = limit
	}

	cy := cursor.Line
	if cy < v.RowOff+scrollOff {
		v.RowOff = cy - scrollOff
		if v.RowOff < 0 {
			v.RowOff = 0
		}
	}
	if cy >= v.RowOff+textH-scrollOff {
		v.RowOff = cy - textH + scrollOff + 1
	}

	rx := 0
	if cy < lines.Len() {
		rx = lines.At(cy).DisplayColumn(cursor.Col)
	}
	if rx < v.ColOff {
		v.ColOff = rx
	}
	if rx >= v.ColOff+textW {
		v.ColOff = rx - textW + 1
	}

	return *v != old
}
