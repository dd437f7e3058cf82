package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/types"
)

func docWith(t *testing.T, text ...string) *Document {
	t.Helper()
	ls, err := buffer.LinesFromStrings(text...)
	require.NoError(t, err)
	return NewDocumentFromLines(ls)
}

// typeString feeds s one character per input event.
func typeString(t *testing.T, d *Document, s string) {
	t.Helper()
	for _, r := range s {
		require.NoError(t, d.InsertChar(r))
		d.FinishEdit()
	}
}

func pos(x, y int) types.Position {
	return types.Position{Line: y, Col: x}
}

func TestTypingAndUndoSteps(t *testing.T) {
	d := NewDocument()
	typeString(t, d, "ab")
	d.InsertLine()
	d.FinishEdit()
	typeString(t, d, "c")

	assert.Equal(t, []string{"ab", "c"}, d.Lines().Strings())
	assert.Equal(t, pos(1, 1), d.Cursor())

	require.True(t, d.Undo())
	assert.Equal(t, []string{"ab", ""}, d.Lines().Strings())
	assert.Equal(t, pos(0, 1), d.Cursor())

	require.True(t, d.Undo())
	assert.Equal(t, []string{"ab"}, d.Lines().Strings())
	assert.Equal(t, pos(2, 0), d.Cursor())

	require.True(t, d.Undo())
	assert.Equal(t, []string{""}, d.Lines().Strings())
	assert.Equal(t, pos(0, 0), d.Cursor())
	assert.False(t, d.Modified(), "back at the loaded state")

	assert.False(t, d.Undo())
}

func TestRedoRestoresEdits(t *testing.T) {
	d := NewDocument()
	typeString(t, d, "ab")
	d.InsertLine()
	d.FinishEdit()
	typeString(t, d, "c")

	for d.Undo() {
	}
	for d.Redo() {
	}
	assert.Equal(t, []string{"ab", "c"}, d.Lines().Strings())
	assert.Equal(t, pos(1, 1), d.Cursor())
	assert.True(t, d.Modified())
}

func TestDeleteCharJoinsLines(t *testing.T) {
	d := docWith(t, "ab", "cd")
	d.SetCursor(0, 1)

	d.DeleteChar()
	assert.Equal(t, []string{"abcd"}, d.Lines().Strings())
	assert.Equal(t, pos(2, 0), d.Cursor())
	floor, ok := d.FinishEdit()
	require.True(t, ok)
	assert.Equal(t, 0, floor)

	require.True(t, d.Undo())
	assert.Equal(t, []string{"ab", "cd"}, d.Lines().Strings())
	assert.Equal(t, pos(0, 1), d.Cursor())
}

func TestDeleteCharNoOps(t *testing.T) {
	d := docWith(t, "ab")
	d.DeleteChar()
	assert.Equal(t, []string{"ab"}, d.Lines().Strings())

	d.SetCursor(0, 1)
	d.DeleteChar()
	assert.Equal(t, []string{"ab"}, d.Lines().Strings(), "append position")
	assert.False(t, d.History().CanUndo())
}

func TestEachBackspaceIsOneStep(t *testing.T) {
	d := docWith(t, "abc")
	d.SetCursor(3, 0)
	for i := 0; i < 2; i++ {
		d.DeleteChar()
		d.FinishEdit()
	}
	assert.Equal(t, []string{"a"}, d.Lines().Strings())

	require.True(t, d.Undo())
	assert.Equal(t, []string{"ab"}, d.Lines().Strings())
	assert.Equal(t, pos(2, 0), d.Cursor())
}

func TestDeleteRightChar(t *testing.T) {
	d := docWith(t, "abc", "de")
	d.SetCursor(1, 0)
	d.DeleteRightChar()
	assert.Equal(t, []string{"ac", "de"}, d.Lines().Strings())
	assert.Equal(t, pos(1, 0), d.Cursor())
	d.FinishEdit()

	d.SetCursor(2, 0)
	d.DeleteRightChar()
	assert.Equal(t, []string{"acde"}, d.Lines().Strings())
	assert.Equal(t, pos(2, 0), d.Cursor())
	d.FinishEdit()

	d.SetCursor(4, 0)
	d.DeleteRightChar()
	assert.Equal(t, []string{"acde"}, d.Lines().Strings(), "end of buffer")
	assert.Equal(t, pos(4, 0), d.Cursor())
}

func TestInsertLineSplits(t *testing.T) {
	d := docWith(t, "abcd")
	d.SetCursor(2, 0)
	d.InsertLine()
	assert.Equal(t, []string{"ab", "cd"}, d.Lines().Strings())
	assert.Equal(t, pos(0, 1), d.Cursor())
	d.FinishEdit()

	require.True(t, d.Undo())
	assert.Equal(t, []string{"abcd"}, d.Lines().Strings())
	assert.Equal(t, pos(2, 0), d.Cursor())
}

func TestInsertAtAppendPosition(t *testing.T) {
	d := docWith(t, "a")
	d.SetCursor(0, 1)

	require.NoError(t, d.InsertChar('x'))
	assert.Equal(t, []string{"a", "x"}, d.Lines().Strings())
	assert.Equal(t, pos(1, 1), d.Cursor())
	d.FinishEdit()

	require.True(t, d.Undo())
	assert.Equal(t, []string{"a"}, d.Lines().Strings())
	assert.Equal(t, pos(0, 1), d.Cursor())

	d.InsertLine()
	assert.Equal(t, []string{"a", ""}, d.Lines().Strings())
	assert.Equal(t, pos(0, 1), d.Cursor())
}

func TestInvalidCharLeavesStateUnchanged(t *testing.T) {
	d := docWith(t, "ab")
	d.SetCursor(0, 1)

	err := d.InsertChar('\x03')
	require.Error(t, err)
	assert.ErrorIs(t, err, buffer.ErrInvalidChar)
	assert.Equal(t, []string{"ab"}, d.Lines().Strings())
	assert.Equal(t, pos(0, 1), d.Cursor())
	assert.Equal(t, 0, d.History().ActiveLen())
	assert.False(t, d.Modified())
}

func TestInsertText(t *testing.T) {
	d := NewDocument()
	require.NoError(t, d.InsertText("x\r\ny"))
	d.FinishEdit()
	assert.Equal(t, []string{"x", "y"}, d.Lines().Strings())
	assert.Equal(t, pos(1, 1), d.Cursor())

	typeString(t, d, "z")
	require.True(t, d.Undo())
	assert.Equal(t, []string{"x", "y"}, d.Lines().Strings(), "typing after a paste is its own step")

	require.True(t, d.Undo())
	assert.Equal(t, []string{""}, d.Lines().Strings(), "paste is one step")

	assert.ErrorIs(t, d.InsertText("ok\x01"), buffer.ErrInvalidChar)
	assert.Equal(t, []string{""}, d.Lines().Strings())
}

func TestMoveCursor(t *testing.T) {
	d := docWith(t, "abc", "d")

	d.SetCursor(3, 0)
	d.MoveCursor(types.DirRight)
	assert.Equal(t, pos(0, 1), d.Cursor(), "right wraps")

	d.MoveCursor(types.DirLeft)
	assert.Equal(t, pos(3, 0), d.Cursor(), "left wraps")

	d.MoveCursor(types.DirDown)
	assert.Equal(t, pos(1, 1), d.Cursor(), "column clamped")

	d.MoveCursor(types.DirDown)
	assert.Equal(t, pos(0, 2), d.Cursor(), "append position")
	d.MoveCursor(types.DirDown)
	assert.Equal(t, pos(0, 2), d.Cursor())

	d.SetCursor(0, 0)
	d.MoveCursor(types.DirUp)
	d.MoveCursor(types.DirLeft)
	assert.Equal(t, pos(0, 0), d.Cursor())

	d.SetCursor(1, 1)
	d.MoveCursor(types.DirRight)
	assert.Equal(t, pos(0, 2), d.Cursor())
	d.MoveCursor(types.DirRight)
	assert.Equal(t, pos(0, 2), d.Cursor(), "right is a no-op on the append position")
}

func TestMovingDoesNotRecord(t *testing.T) {
	d := docWith(t, "abc")
	d.MoveCursor(types.DirRight)
	d.FinishEdit()
	assert.False(t, d.History().CanUndo())
	assert.False(t, d.Modified())
}

func TestDirtyFloor(t *testing.T) {
	d := docWith(t, "a", "b", "c")

	floor, ok := d.FinishEdit()
	require.True(t, ok, "a fresh document needs a full paint")
	assert.Equal(t, 0, floor)

	_, ok = d.FinishEdit()
	assert.False(t, ok)

	d.SetCursor(1, 2)
	require.NoError(t, d.InsertChar('x'))
	d.SetCursor(1, 1)
	require.NoError(t, d.InsertChar('y'))
	floor, ok = d.FinishEdit()
	require.True(t, ok)
	assert.Equal(t, 1, floor, "lowest modified line")
}

func TestSaveWithoutFile(t *testing.T) {
	d := NewDocument()
	typeString(t, d, "hi")

	msg, err := d.Save()
	require.NoError(t, err)
	assert.Empty(t, msg)
	assert.False(t, d.HasFile())
	assert.Equal(t, "[No Name]", d.Filename())
	assert.True(t, d.Modified())
}

func TestSaveAndUnsavedCounter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	d, err := OpenDocument(path)
	require.NoError(t, err)
	assert.False(t, d.Modified())

	typeString(t, d, "hi")
	assert.True(t, d.Modified())

	msg, err := d.Save()
	require.NoError(t, err)
	assert.Equal(t, "3 bytes written to "+path, msg)
	assert.False(t, d.Modified())
	assert.Equal(t, 0, d.UnsavedTransactions())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))

	require.True(t, d.Undo())
	assert.Equal(t, -1, d.UnsavedTransactions(), "undo past the save point")
	assert.True(t, d.Modified())

	require.True(t, d.Redo())
	assert.Equal(t, 0, d.UnsavedTransactions())
	assert.False(t, d.Modified())
}

func TestOpenDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	d, err := OpenDocument(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two"}, d.Lines().Strings())
	assert.Equal(t, path, d.Filename())
	assert.False(t, d.IsScratch())

	d.SetCursor(3, 1)
	typeString(t, d, "!")
	_, err = d.Save()
	require.NoError(t, err)

	reloaded, err := OpenDocument(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two!"}, reloaded.Lines().Strings())
}

func TestOpenDocumentInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bin.dat")
	require.NoError(t, os.WriteFile(path, []byte("ok\n\x00\n"), 0o644))

	_, err := OpenDocument(path)
	assert.ErrorIs(t, err, buffer.ErrInvalidChar)
}

func TestOpenDocumentInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "latin1.txt")
	raw := []byte("a\xffb\n")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, err := OpenDocument(path)
	assert.ErrorIs(t, err, buffer.ErrInvalidChar)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, raw, data, "file left alone")
}

func TestUndoRedoNoOpsLeaveState(t *testing.T) {
	d := docWith(t, "ab", "cd")
	d.SetCursor(1, 1)
	d.FinishEdit()

	assert.False(t, d.Undo())
	assert.False(t, d.Redo())
	assert.Equal(t, pos(1, 1), d.Cursor())
	assert.Equal(t, []string{"ab", "cd"}, d.Lines().Strings())
	_, ok := d.FinishEdit()
	assert.False(t, ok, "nothing to repaint")

	// Same once both stacks have been used up.
	typeString(t, d, "x")
	require.True(t, d.Undo())
	d.FinishEdit()
	require.True(t, d.Redo())
	d.FinishEdit()
	cur := d.Cursor()

	assert.False(t, d.Redo())
	assert.Equal(t, cur, d.Cursor())
	assert.Equal(t, []string{"ab", "cxd"}, d.Lines().Strings())
	_, ok = d.FinishEdit()
	assert.False(t, ok)
	assert.True(t, d.Modified(), "redone edit is still unsaved")
}

func TestIsScratch(t *testing.T) {
	d := NewDocument()
	assert.True(t, d.IsScratch())

	typeString(t, d, "a")
	assert.False(t, d.IsScratch())

	d2 := NewDocument()
	d2.SetFile("x.txt")
	assert.False(t, d2.IsScratch())
	d2.SetUnnamed()
	assert.True(t, d2.IsScratch())
}

func TestEventsDispatched(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ev.txt")
	d := NewDocument()
	d.SetFile(path)

	mgr := event.NewManager()
	var got []event.Type
	for _, typ := range []event.Type{event.TypeBufferModified, event.TypeCursorMoved, event.TypeBufferSaved} {
		mgr.Subscribe(typ, func(e event.Event) bool {
			got = append(got, e.Type)
			return false
		})
	}
	d.SetEventManager(mgr)

	d.FinishEdit()
	require.NoError(t, d.InsertChar('a'))
	d.FinishEdit()
	_, err := d.Save()
	require.NoError(t, err)

	assert.Equal(t, []event.Type{
		event.TypeBufferModified,
		event.TypeBufferModified, event.TypeCursorMoved,
		event.TypeBufferSaved,
	}, got)
}

func TestCurrentLine(t *testing.T) {
	d := docWith(t, "first", "second")
	d.SetCursor(0, 1)
	assert.Equal(t, "second", d.CurrentLine())
	d.SetCursor(0, 2)
	assert.Equal(t, "", d.CurrentLine())
}
