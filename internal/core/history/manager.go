package history

import (
	"errors"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/logger"
)

// Errors the app layer uses to describe no-op undo/redo in logs.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Transaction is an ordered group of changes undone and redone as one unit.
type Transaction []Change

// Outcome describes the result of an undo or redo.
type Outcome struct {
	X, Y int // cursor after the last change applied
	// DirtyFloor is the lowest line index touched.
	DirtyFloor int
	// WasOpen is true when the reverted transaction was still open and was
	// sealed by this very Undo call. Such a transaction was never counted
	// as sealed by the caller.
	WasOpen bool
}

// Manager holds the undo/redo history of one document.
//
// Recorded changes accumulate in the active transaction until CloseActive
// seals it. Undo reverts whole sealed transactions.
type Manager struct {
	done   []Transaction // sealed, oldest first
	active Transaction   // open transaction, nil when none
	undone []Transaction // redo stack, most recently undone last
}

// NewManager creates an empty history.
func NewManager() *Manager {
	return &Manager{}
}

// Record appends c to the active transaction, opening one if needed, and
// drops everything on the redo stack.
func (m *Manager) Record(c Change) {
	m.active = append(m.active, c)
	if len(m.undone) > 0 {
		logger.DebugTagf("history", "Record: discarding %d redo transaction(s)", len(m.undone))
		m.undone = nil
	}
	logger.DebugTagf("history", "Record: %v (active size %d)", c, len(m.active))
}

// CloseActive seals the active transaction so the next Record starts a new
// one. It reports whether a transaction was actually sealed.
func (m *Manager) CloseActive() bool {
	if len(m.active) == 0 {
		return false
	}
	m.done = append(m.done, m.active)
	logger.DebugTagf("history", "CloseActive: sealed transaction of %d change(s), depth %d", len(m.active), len(m.done))
	m.active = nil
	return true
}

// Undo reverts the most recent transaction, sealing the active one first.
// Changes are applied Backward in reverse order. It returns false when there
// is nothing to undo, leaving lines untouched.
func (m *Manager) Undo(lines *buffer.Lines) (Outcome, bool) {
	wasOpen := m.CloseActive()
	if len(m.done) == 0 {
		logger.DebugTagf("history", "Undo: %v", ErrNothingToUndo)
		return Outcome{}, false
	}

	tx := m.done[len(m.done)-1]
	m.done = m.done[:len(m.done)-1]

	out := Outcome{WasOpen: wasOpen}
	for i := len(tx) - 1; i >= 0; i-- {
		x, y := tx[i].Apply(lines, Backward)
		out.track(i == len(tx)-1, x, y)
	}
	m.undone = append(m.undone, tx)

	logger.DebugTagf("history", "Undo: reverted %d change(s), cursor (%d,%d), undo depth %d, redo depth %d",
		len(tx), out.X, out.Y, len(m.done), len(m.undone))
	return out, true
}

// Redo reapplies the most recently undone transaction in original order.
// It returns false when there is nothing to redo.
func (m *Manager) Redo(lines *buffer.Lines) (Outcome, bool) {
	if len(m.undone) == 0 {
		logger.DebugTagf("history", "Redo: %v", ErrNothingToRedo)
		return Outcome{}, false
	}

	tx := m.undone[len(m.undone)-1]
	m.undone = m.undone[:len(m.undone)-1]

	var out Outcome
	for i, c := range tx {
		x, y := c.Apply(lines, Forward)
		out.track(i == 0, x, y)
	}
	m.done = append(m.done, tx)

	logger.DebugTagf("history", "Redo: reapplied %d change(s), cursor (%d,%d), undo depth %d, redo depth %d",
		len(tx), out.X, out.Y, len(m.done), len(m.undone))
	return out, true
}

func (o *Outcome) track(first bool, x, y int) {
	o.X, o.Y = x, y
	if first || y < o.DirtyFloor {
		o.DirtyFloor = y
	}
}

// CanUndo returns true if there is a transaction (sealed or open) to revert.
func (m *Manager) CanUndo() bool {
	return len(m.done) > 0 || len(m.active) > 0
}

// CanRedo returns true if there are undone transactions.
func (m *Manager) CanRedo() bool {
	return len(m.undone) > 0
}

// UndoDepth returns the number of sealed transactions.
func (m *Manager) UndoDepth() int {
	return len(m.done)
}

// RedoDepth returns the number of transactions available to redo.
func (m *Manager) RedoDepth() int {
	return len(m.undone)
}

// ActiveLen returns the number of changes in the open transaction.
func (m *Manager) ActiveLen() int {
	return len(m.active)
}

// Clear drops all history.
func (m *Manager) Clear() {
	m.done = nil
	m.active = nil
	m.undone = nil
	logger.DebugTagf("history", "Cleared.")
}
