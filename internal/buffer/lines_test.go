package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLinesHasOneEmptyLine(t *testing.T) {
	ls := NewLines()
	require.Equal(t, 1, ls.Len())
	assert.Equal(t, "", ls.At(0).Content())
	assert.Equal(t, []byte("\n"), ls.Bytes())
}

func TestLinesFromStrings(t *testing.T) {
	ls, err := LinesFromStrings("a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, ls.Strings())

	ls, err = LinesFromStrings()
	require.NoError(t, err)
	assert.Equal(t, 1, ls.Len())

	_, err = LinesFromStrings("ok", "\x01")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
	assert.ErrorIs(t, err, ErrInvalidChar)
}

func TestLinesPositionalEdits(t *testing.T) {
	ls, err := LinesFromStrings("a", "c")
	require.NoError(t, err)

	ls.Insert(1, MustLine("b"))
	ls.Insert(3, MustLine("d"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, ls.Strings())

	removed := ls.Remove(0)
	assert.Equal(t, "a", removed.Content())

	ls.Push(MustLine("e"))
	popped := ls.Pop()
	assert.Equal(t, "e", popped.Content())
	assert.Equal(t, []string{"b", "c", "d"}, ls.Strings())

	assert.Equal(t, []byte("b\nc\nd\n"), ls.Bytes())
}
