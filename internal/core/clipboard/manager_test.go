package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bethropolis/kite/internal/buffer"
)

type fakeTarget struct {
	line     string
	inserted []string
	err      error
}

func (f *fakeTarget) CurrentLine() string { return f.line }

func (f *fakeTarget) InsertText(s string) error {
	if f.err != nil {
		return f.err
	}
	f.inserted = append(f.inserted, s)
	return nil
}

func TestInternalRegister(t *testing.T) {
	m := NewManager(false)

	_, err := m.Text()
	assert.ErrorIs(t, err, ErrEmpty)

	target := &fakeTarget{line: "hello"}
	assert.Equal(t, "hello", m.YankLine(target))

	require.NoError(t, m.Paste(target))
	assert.Equal(t, []string{"hello\n"}, target.inserted)
}

func TestPasteEmpty(t *testing.T) {
	m := NewManager(false)
	err := m.Paste(&fakeTarget{})
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestPasteWrapsTargetError(t *testing.T) {
	m := NewManager(false)
	m.Copy("\x01")
	target := &fakeTarget{err: &buffer.InvalidCharError{Char: '\x01'}}

	err := m.Paste(target)
	require.Error(t, err)
	assert.ErrorIs(t, err, buffer.ErrInvalidChar)
}

func TestSystemClipboardFallback(t *testing.T) {
	var written string
	m := &Manager{
		useSystem: true,
		readAll:   func() (string, error) { return "", errors.New("no display") },
		writeAll:  func(s string) error { written = s; return nil },
	}

	m.Copy("abc")
	assert.Equal(t, "abc", written)

	text, err := m.Text()
	require.NoError(t, err)
	assert.Equal(t, "abc", text, "falls back to the internal register")
}

func TestSystemClipboardPreferred(t *testing.T) {
	m := &Manager{
		useSystem: true,
		readAll:   func() (string, error) { return "from system", nil },
		writeAll:  func(string) error { return nil },
	}
	text, err := m.Text()
	require.NoError(t, err)
	assert.Equal(t, "from system", text)
}
