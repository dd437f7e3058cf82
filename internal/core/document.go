// internal/core/document.go
package core

import (
	"fmt"
	"strings"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/core/history"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
)

// noDirty marks an empty dirty floor.
const noDirty = -1

// Document is one editing buffer: its lines, cursor, file binding and undo
// history. All mutation goes through its methods; callers process one input
// event at a time and call FinishEdit after each.
type Document struct {
	cx, cy int // cy == lines.Len() is the append position
	file   *FilePath
	lines  *buffer.Lines

	history *history.Manager
	// unsaved counts sealed transactions since the last save. Undoing past
	// the save point makes it negative.
	unsaved int
	// modified is set by every recorded change and cleared whenever a
	// transaction boundary is drawn.
	modified bool
	// closedThisKey latches the first transaction close of an input event so
	// a multi-change action is neither split nor double counted.
	closedThisKey bool
	// structuralOpen is set while the open transaction holds a structural
	// edit; the next typed character must not merge into it.
	structuralOpen bool

	dirtyFloor int

	eventManager *event.Manager
	lastCursor   types.Position

	existed bool // the bound file was on disk when opened
}

// NewDocument creates an unnamed document with a single empty line.
func NewDocument() *Document {
	return NewDocumentFromLines(buffer.NewLines())
}

// NewDocumentFromLines creates an unnamed document owning lines.
func NewDocumentFromLines(lines *buffer.Lines) *Document {
	return &Document{
		lines:      lines,
		history:    history.NewManager(),
		dirtyFloor: 0,
	}
}

// OpenDocument loads path into a new document bound to it. A missing file
// yields an empty document bound to path; any other failure is returned.
func OpenDocument(path string) (*Document, error) {
	lines, exists, err := buffer.Load(path)
	if err != nil {
		return nil, err
	}
	d := NewDocumentFromLines(lines)
	d.file = newFilePath(path)
	d.existed = exists
	if exists {
		logger.Infof("Document: loaded '%s' (%d lines)", path, lines.Len())
	} else {
		logger.Infof("Document: '%s' does not exist, starting empty", path)
	}
	return d, nil
}

// Existed reports whether the document was read from an existing file.
func (d *Document) Existed() bool {
	return d.existed
}

// SetEventManager sets the event manager used to announce saves, redraws and
// cursor movement. It may be nil.
func (d *Document) SetEventManager(mgr *event.Manager) {
	d.eventManager = mgr
}

// Cursor returns the cursor. Line may equal the line count.
func (d *Document) Cursor() types.Position {
	return types.Position{Line: d.cy, Col: d.cx}
}

// SetCursor places the cursor without clamping; used by undo/redo and
// tests that set up state.
func (d *Document) SetCursor(x, y int) {
	d.cx, d.cy = x, y
}

// Lines gives read access to the line collection.
func (d *Document) Lines() *buffer.Lines {
	return d.lines
}

// LineCount returns the number of lines.
func (d *Document) LineCount() int {
	return d.lines.Len()
}

// row resolves the cursor row against the current line count.
func (d *Document) row() types.Row {
	return types.ResolveRow(d.cy, d.lines.Len())
}

// CurrentLine returns the raw text of the cursor line, or "" on the append
// position.
func (d *Document) CurrentLine() string {
	if y, ok := d.row().Line(); ok {
		return d.lines.At(y).Content()
	}
	return ""
}

// Modified reports whether the document differs from what was last saved.
func (d *Document) Modified() bool {
	return d.unsaved != 0 || d.modified
}

// UnsavedTransactions returns the signed number of sealed transactions since
// the last save.
func (d *Document) UnsavedTransactions() int {
	return d.unsaved
}

// IsScratch reports whether the document is an unnamed, empty buffer.
func (d *Document) IsScratch() bool {
	return d.file == nil && d.lines.Len() == 1 && d.lines.At(0).Len() == 0
}

// History exposes the undo history for status queries.
func (d *Document) History() *history.Manager {
	return d.history
}

func (d *Document) markDirty(y int) {
	if d.dirtyFloor == noDirty || y < d.dirtyFloor {
		d.dirtyFloor = y
	}
}

// applyChange performs c, moves the cursor and records c in the active
// transaction.
func (d *Document) applyChange(c history.Change) {
	x, y := c.Apply(d.lines, history.Forward)
	d.SetCursor(x, y)
	d.markDirty(y)
	d.modified = true
	d.history.Record(c)
}

// closeTransaction draws an undo boundary once per input event.
func (d *Document) closeTransaction() {
	if d.closedThisKey {
		return
	}
	if d.history.CloseActive() {
		d.unsaved++
	}
	d.modified = false
	d.closedThisKey = true
	d.structuralOpen = false
}

// structural records changes that must form their own undo step.
func (d *Document) structural(changes ...history.Change) {
	d.closeTransaction()
	for _, c := range changes {
		d.applyChange(c)
	}
	d.structuralOpen = true
}

// InsertChar types r at the cursor. On the append position a new line is
// created first. Consecutive typing accumulates in one transaction.
func (d *Document) InsertChar(r rune) error {
	if err := buffer.CheckChar(r); err != nil {
		return err
	}
	if d.structuralOpen {
		d.closeTransaction()
	}
	if d.row().IsPastEnd() {
		d.applyChange(history.NewNewline())
	}
	d.applyChange(history.NewInsertChar(d.cx, d.cy, r))
	return nil
}

// InsertText inserts s as if typed, with "\n" splitting lines. The whole
// text is validated first and becomes a single undo step.
func (d *Document) InsertText(s string) error {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if err := buffer.CheckText(strings.ReplaceAll(s, "\n", "")); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	d.closeTransaction()
	for _, r := range s {
		if r == '\n' {
			d.InsertLine()
			continue
		}
		if err := d.InsertChar(r); err != nil {
			return fmt.Errorf("insert text: %w", err) // unreachable after CheckText
		}
	}
	d.structuralOpen = true
	return nil
}

// DeleteChar removes the character left of the cursor, joining with the
// previous line at column 0. It does nothing at the start of the buffer or
// on the append position.
func (d *Document) DeleteChar() {
	y, ok := d.row().Line()
	if !ok || d.cx == 0 && y == 0 {
		return
	}
	if d.cx > 0 {
		deleted := d.lines.At(y).CharAt(d.cx - 1)
		d.structural(history.NewDeleteChar(d.cx, y, deleted))
		return
	}
	d.joinWithPrevious()
}

// joinWithPrevious moves the cursor to the end of the previous line and
// appends the cursor line to it.
func (d *Document) joinWithPrevious() {
	d.cy--
	d.cx = d.lines.At(d.cy).Len()
	removed := d.lines.At(d.cy + 1).Content()
	d.structural(
		history.NewDeleteLine(d.cy+1, removed),
		history.NewAppend(d.cy, removed),
	)
}

// DeleteRightChar deletes the character under the cursor, joining the next
// line at end of line. It does nothing at the end of the buffer.
func (d *Document) DeleteRightChar() {
	y, ok := d.row().Line()
	if !ok {
		return
	}
	if y == d.lines.Len()-1 && d.cx == d.lines.At(y).Len() {
		return
	}
	d.MoveCursor(types.DirRight)
	d.DeleteChar()
}

// InsertLine breaks the line at the cursor.
func (d *Document) InsertLine() {
	y, ok := d.row().Line()
	switch {
	case !ok:
		d.structural(history.NewNewline())
	case d.cx >= d.lines.At(y).Len():
		d.structural(history.NewInsertLine(y+1, ""))
	default:
		suffix := d.lines.At(y).From(d.cx)
		d.structural(
			history.NewTruncate(y, suffix),
			history.NewInsertLine(y+1, suffix),
		)
	}
}

// Save writes the document to its bound file. For an unnamed document it
// returns an empty message and writes nothing. On failure the unsaved state
// is kept.
func (d *Document) Save() (string, error) {
	d.closeTransaction()

	if d.file == nil {
		return "", nil
	}

	n, err := buffer.Write(d.file.Path, d.lines)
	if err != nil {
		logger.Errorf("Document: save to '%s' failed: %v", d.file.Path, err)
		return "", err
	}

	d.unsaved = 0
	d.modified = false
	logger.Infof("Document: %d bytes written to '%s'", n, d.file.Path)
	if d.eventManager != nil {
		d.eventManager.Dispatch(event.TypeBufferSaved, event.BufferSavedData{FilePath: d.file.Path, Bytes: n})
	}
	return fmt.Sprintf("%d bytes written to %s", n, d.file.Display), nil
}

// Undo reverts the last transaction. It returns false if there was nothing
// to undo.
func (d *Document) Undo() bool {
	out, ok := d.history.Undo(d.lines)
	if !ok {
		return false
	}
	if !out.WasOpen {
		d.unsaved--
	}
	d.afterUndoRedo(out)
	return true
}

// Redo reapplies the last undone transaction. It returns false if there
// was nothing to redo.
func (d *Document) Redo() bool {
	out, ok := d.history.Redo(d.lines)
	if !ok {
		return false
	}
	if !out.WasOpen {
		d.unsaved++
	}
	d.afterUndoRedo(out)
	return true
}

func (d *Document) afterUndoRedo(out history.Outcome) {
	d.modified = false
	d.structuralOpen = false
	d.SetCursor(out.X, out.Y)
	d.markDirty(out.DirtyFloor)
}

// FinishEdit ends the processing of one input event. It resets the
// per-event transaction latch and returns the dirty floor, clearing it.
func (d *Document) FinishEdit() (int, bool) {
	d.closedThisKey = false
	floor := d.dirtyFloor
	d.dirtyFloor = noDirty

	if d.eventManager != nil {
		if floor != noDirty {
			d.eventManager.Dispatch(event.TypeBufferModified, event.BufferModifiedData{DirtyFloor: floor})
		}
		if cur := d.Cursor(); cur != d.lastCursor {
			d.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: cur})
		}
	}
	d.lastCursor = d.Cursor()

	return floor, floor != noDirty
}
