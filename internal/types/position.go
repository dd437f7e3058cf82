// internal/types/position.go
package types

// Position represents a cursor or text position within a document.
// Line is the 0-based line index; it may equal the line count, meaning the
// cursor sits just past the last line.
// Col is the 0-based character (rune) index within the line.
type Position struct {
	Line int
	Col  int // Rune index
}

// CursorDir is a single-step cursor movement.
type CursorDir int

const (
	DirLeft CursorDir = iota
	DirRight
	DirUp
	DirDown
)

func (d CursorDir) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	}
	return "unknown"
}
