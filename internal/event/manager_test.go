package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchOrderAndConsume(t *testing.T) {
	m := NewManager()
	var calls []string

	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		calls = append(calls, "first")
		data, ok := e.Data.(BufferSavedData)
		assert.True(t, ok)
		assert.Equal(t, 12, data.Bytes)
		return false
	})
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		calls = append(calls, "second")
		return true
	})
	m.Subscribe(TypeBufferSaved, func(e Event) bool {
		calls = append(calls, "third")
		return false
	})

	m.Dispatch(TypeBufferSaved, BufferSavedData{FilePath: "a.txt", Bytes: 12})
	assert.Equal(t, []string{"first", "second"}, calls)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	count := 0
	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		m.Subscribe(TypeCursorMoved, func(Event) bool { count++; return false })
		return false
	})
	m.Dispatch(TypeCursorMoved, CursorMovedData{})
	assert.Equal(t, 0, count, "late subscribers miss the current dispatch")
	m.Dispatch(TypeCursorMoved, CursorMovedData{})
	assert.Equal(t, 1, count)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "BufferModified", TypeBufferModified.String())
}
