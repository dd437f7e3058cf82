package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoEmptyHistory(t *testing.T) {
	m := NewManager()
	lines := mkLines(t, "abc")

	_, ok := m.Undo(lines)
	assert.False(t, ok)
	_, ok = m.Redo(lines)
	assert.False(t, ok)
	assert.Equal(t, []string{"abc"}, lines.Strings())
}

func TestUndoRevertsTransactionInReverse(t *testing.T) {
	m := NewManager()
	lines := mkLines(t, "")

	for i, r := range "abc" {
		c := NewInsertChar(i, 0, r)
		c.Apply(lines, Forward)
		m.Record(c)
	}
	require.Equal(t, []string{"abc"}, lines.Strings())
	assert.Equal(t, 3, m.ActiveLen())
	assert.True(t, m.CanUndo())

	out, ok := m.Undo(lines)
	require.True(t, ok)
	assert.True(t, out.WasOpen, "undo sealed the open transaction")
	assert.Equal(t, []string{""}, lines.Strings())
	assert.Equal(t, 0, out.X)
	assert.Equal(t, 0, out.Y)
	assert.Equal(t, 0, m.UndoDepth())
	assert.Equal(t, 1, m.RedoDepth())

	out, ok = m.Redo(lines)
	require.True(t, ok)
	assert.False(t, out.WasOpen)
	assert.Equal(t, []string{"abc"}, lines.Strings())
	assert.Equal(t, 3, out.X)
	assert.False(t, m.CanRedo())
}

func TestTransactionsAreSeparatedByClose(t *testing.T) {
	m := NewManager()
	lines := mkLines(t, "ab")

	c1 := NewTruncate(0, "b")
	c1.Apply(lines, Forward)
	m.Record(c1)
	c2 := NewInsertLine(1, "b")
	c2.Apply(lines, Forward)
	m.Record(c2)
	assert.True(t, m.CloseActive())
	assert.False(t, m.CloseActive(), "closing an empty transaction is a no-op")

	c3 := NewInsertChar(1, 1, 'c')
	c3.Apply(lines, Forward)
	m.Record(c3)
	require.Equal(t, []string{"a", "bc"}, lines.Strings())

	out, ok := m.Undo(lines)
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b"}, lines.Strings())
	assert.Equal(t, 1, out.DirtyFloor)

	out, ok = m.Undo(lines)
	require.True(t, ok)
	assert.False(t, out.WasOpen)
	assert.Equal(t, []string{"ab"}, lines.Strings())
	assert.Equal(t, 0, out.DirtyFloor)
	assert.Equal(t, 1, out.X)
	assert.Equal(t, 0, out.Y)
}

func TestRecordClearsRedo(t *testing.T) {
	m := NewManager()
	lines := mkLines(t, "")

	c := NewInsertChar(0, 0, 'a')
	c.Apply(lines, Forward)
	m.Record(c)
	_, ok := m.Undo(lines)
	require.True(t, ok)
	require.True(t, m.CanRedo())

	c = NewInsertChar(0, 0, 'b')
	c.Apply(lines, Forward)
	m.Record(c)
	assert.False(t, m.CanRedo())

	_, ok = m.Redo(lines)
	assert.False(t, ok)
	assert.Equal(t, []string{"b"}, lines.Strings())
}

func TestClear(t *testing.T) {
	m := NewManager()
	m.Record(NewNewline())
	m.CloseActive()
	m.Record(NewNewline())
	m.Clear()
	assert.False(t, m.CanUndo())
	assert.False(t, m.CanRedo())
	assert.Equal(t, 0, m.ActiveLen())
}
