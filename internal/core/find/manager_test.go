package find

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/types"
)

func testLines(t *testing.T, text ...string) *buffer.Lines {
	t.Helper()
	ls, err := buffer.LinesFromStrings(text...)
	require.NoError(t, err)
	return ls
}

func TestNextForwardWraps(t *testing.T) {
	lines := testLines(t, "foo bar", "baz", "bar foo")
	m := NewManager()
	require.NoError(t, m.SetTerm("foo"))

	pos, ok := m.Next(lines, types.Position{Line: 0, Col: 1}, true)
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 2, Col: 4}, pos)

	pos, ok = m.Next(lines, pos, true)
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 0, Col: 0}, pos, "wraps to the top")
}

func TestNextBackward(t *testing.T) {
	lines := testLines(t, "ab ab", "x")
	m := NewManager()
	require.NoError(t, m.SetTerm("ab"))

	pos, ok := m.Next(lines, types.Position{Line: 0, Col: 5}, false)
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 0, Col: 3}, pos)

	pos, ok = m.Next(lines, pos, false)
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 0, Col: 0}, pos)
}

func TestMultibyteColumns(t *testing.T) {
	lines := testLines(t, "日本語 text")
	m := NewManager()
	require.NoError(t, m.SetTerm("text"))

	pos, ok := m.Next(lines, types.Position{}, true)
	require.True(t, ok)
	assert.Equal(t, 4, pos.Col)
}

func TestNoMatchAndInvalidPattern(t *testing.T) {
	lines := testLines(t, "abc")
	m := NewManager()

	_, ok := m.Next(lines, types.Position{}, true)
	assert.False(t, ok, "no term set")

	require.NoError(t, m.SetTerm("zzz"))
	_, ok = m.Next(lines, types.Position{}, true)
	assert.False(t, ok)

	assert.Error(t, m.SetTerm("("))
	assert.Equal(t, "zzz", m.Term(), "failed compile keeps the previous term")
}

func TestSearchFromAppendPosition(t *testing.T) {
	lines := testLines(t, "needle", "hay")
	m := NewManager()
	require.NoError(t, m.SetTerm("needle"))

	pos, ok := m.Next(lines, types.Position{Line: 2, Col: 0}, true)
	require.True(t, ok)
	assert.Equal(t, types.Position{Line: 0, Col: 0}, pos)
}

func TestRepeatZeroWidthMatches(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []types.Position
	}{
		{"line end", "$", []types.Position{{Line: 0, Col: 2}, {Line: 1, Col: 3}, {Line: 0, Col: 2}}},
		{"line start", "^", []types.Position{{Line: 0, Col: 0}, {Line: 1, Col: 0}, {Line: 0, Col: 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := testLines(t, "ab", "cde")
			m := NewManager()
			require.NoError(t, m.SetTerm(tt.term))

			pos, ok := m.Next(lines, types.Position{}, true)
			require.True(t, ok)
			got := []types.Position{pos}
			for len(got) < len(tt.want) {
				pos, ok = m.Repeat(lines, pos)
				require.True(t, ok)
				got = append(got, pos)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}
