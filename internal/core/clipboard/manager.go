// Package clipboard implements line yanking and pasting, backed by the system
// clipboard when available and an in-process register otherwise.
package clipboard

import (
	"errors"
	"fmt"

	sysclip "github.com/atotto/clipboard"

	"github.com/bethropolis/kite/internal/logger"
)

// ErrEmpty is returned by Paste when nothing has been yanked.
var ErrEmpty = errors.New("clipboard is empty")

// Target is the document side of clipboard operations.
type Target interface {
	CurrentLine() string
	InsertText(s string) error
}

// Manager handles clipboard operations
type Manager struct {
	useSystem bool
	register  string
	filled    bool

	// overridable for tests
	readAll  func() (string, error)
	writeAll func(string) error
}

// NewManager creates a clipboard manager. With useSystem the system
// clipboard is tried first; failures fall back to the internal register.
func NewManager(useSystem bool) *Manager {
	m := &Manager{
		useSystem: useSystem,
		readAll:   sysclip.ReadAll,
		writeAll:  sysclip.WriteAll,
	}
	if useSystem && sysclip.Unsupported {
		logger.Warnf("ClipboardManager: system clipboard unsupported, using internal register")
		m.useSystem = false
	}
	return m
}

// UsesSystem reports whether the system clipboard is in use.
func (m *Manager) UsesSystem() bool {
	return m.useSystem
}

// Copy stores text.
func (m *Manager) Copy(text string) {
	m.register = text
	m.filled = true
	if m.useSystem {
		if err := m.writeAll(text); err != nil {
			logger.Warnf("ClipboardManager: system write failed: %v", err)
		}
	}
	logger.Debugf("ClipboardManager: copied %d bytes", len(text))
}

// Text returns the current clipboard text.
func (m *Manager) Text() (string, error) {
	if m.useSystem {
		s, err := m.readAll()
		if err == nil && s != "" {
			return s, nil
		}
		if err != nil {
			logger.Warnf("ClipboardManager: system read failed: %v", err)
		}
	}
	if !m.filled {
		return "", ErrEmpty
	}
	return m.register, nil
}

// YankLine copies the target's cursor line, including its line break.
func (m *Manager) YankLine(t Target) string {
	line := t.CurrentLine()
	m.Copy(line + "\n")
	return line
}

// Paste inserts the clipboard text into the target as a single edit.
func (m *Manager) Paste(t Target) error {
	text, err := m.Text()
	if err != nil {
		return err
	}
	if err := t.InsertText(text); err != nil {
		return fmt.Errorf("paste failed: %w", err)
	}
	return nil
}
