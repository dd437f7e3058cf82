// Package find implements regular-expression search over document lines.
package find

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
)

// Manager holds the active search term and the last match.
type Manager struct {
	term    string
	re      *regexp.Regexp
	last    *types.Position
	forward bool
}

// NewManager creates a find manager.
func NewManager() *Manager {
	return &Manager{forward: true}
}

// SetTerm compiles term as the active pattern and forgets the last match.
func (m *Manager) SetTerm(term string) error {
	m.last = nil
	if term == "" {
		m.term, m.re = "", nil
		return nil
	}
	re, err := regexp.Compile(term)
	if err != nil {
		logger.Warnf("FindManager: invalid pattern '%s': %v", term, err)
		return fmt.Errorf("invalid search pattern: %w", err)
	}
	m.term, m.re = term, re
	return nil
}

// Term returns the active search term.
func (m *Manager) Term() string {
	return m.term
}

// Next finds the next match from cursor, wrapping around the buffer once.
// A repeated search starts just past the previous match.
func (m *Manager) Next(lines *buffer.Lines, cursor types.Position, forward bool) (types.Position, bool) {
	if m.re == nil || lines.Len() == 0 {
		return types.Position{}, false
	}

	start := cursor
	if m.last != nil && *m.last == cursor && forward {
		start.Col++
		// A match at the end of the line (e.g. "$") would be found again.
		if start.Line < lines.Len() && start.Col > lines.At(start.Line).Len() {
			start = types.Position{Line: start.Line + 1}
		}
	}

	pos, ok := m.search(lines, start, forward)
	if !ok {
		return types.Position{}, false
	}
	m.last = &pos
	m.forward = forward
	logger.Debugf("FindManager: '%s' matched at %d:%d", m.term, pos.Line, pos.Col)
	return pos, true
}

// Repeat searches again in the direction of the last search.
func (m *Manager) Repeat(lines *buffer.Lines, cursor types.Position) (types.Position, bool) {
	return m.Next(lines, cursor, m.forward)
}

func (m *Manager) search(lines *buffer.Lines, start types.Position, forward bool) (types.Position, bool) {
	count := lines.Len()
	if start.Line >= count {
		start = types.Position{Line: count - 1, Col: lines.At(count - 1).Len()}
		if forward {
			start = types.Position{}
		}
	}

	// count+1 visits let the starting line be searched again after wrapping.
	for i := 0; i <= count; i++ {
		var y int
		if forward {
			y = (start.Line + i) % count
		} else {
			y = ((start.Line-i)%count + count) % count
		}
		content := lines.At(y).Content()

		switch {
		// Matches are taken from the whole line so anchors keep their
		// meaning on the starting line.
		case i == 0 && forward:
			from := lines.At(y).CharToByte(min(start.Col, lines.At(y).Len()))
			for _, loc := range m.re.FindAllStringIndex(content, -1) {
				if loc[0] >= from {
					return types.Position{Line: y, Col: charIndex(content, loc[0])}, true
				}
			}
		case i == 0:
			end := lines.At(y).CharToByte(min(start.Col, lines.At(y).Len()))
			locs := m.re.FindAllStringIndex(content, -1)
			for j := len(locs) - 1; j >= 0; j-- {
				if locs[j][0] < end {
					return types.Position{Line: y, Col: charIndex(content, locs[j][0])}, true
				}
			}
		case forward:
			if loc := m.re.FindStringIndex(content); loc != nil {
				return types.Position{Line: y, Col: charIndex(content, loc[0])}, true
			}
		default:
			if locs := m.re.FindAllStringIndex(content, -1); len(locs) > 0 {
				return types.Position{Line: y, Col: charIndex(content, locs[len(locs)-1][0])}, true
			}
		}
	}
	return types.Position{}, false
}

func charIndex(s string, byteOffset int) int {
	return utf8.RuneCountInString(s[:byteOffset])
}
