package core

import "github.com/bethropolis/kite/internal/types"

// MoveCursor moves the cursor one step, wrapping across line ends for
// left/right. The column is clamped to the target line; on the append
// position it is 0. Moving never records an edit.
func (d *Document) MoveCursor(dir types.CursorDir) {
	count := d.lines.Len()

	switch dir {
	case types.DirUp:
		if d.cy > 0 {
			d.cy--
		}
	case types.DirDown:
		if d.cy < count {
			d.cy++
		}
	case types.DirLeft:
		if d.cx > 0 {
			d.cx--
		} else if d.cy > 0 {
			d.cy--
			d.cx = d.lines.At(d.cy).Len()
		}
	case types.DirRight:
		if y, ok := d.row().Line(); ok {
			if d.cx < d.lines.At(y).Len() {
				d.cx++
			} else {
				// Wrap to the start of the next line (or the append position).
				d.cy++
				d.cx = 0
			}
		}
	}

	maxCol := 0
	if y, ok := d.row().Line(); ok {
		maxCol = d.lines.At(y).Len()
	}
	if d.cx > maxCol {
		d.cx = maxCol
	}
}
