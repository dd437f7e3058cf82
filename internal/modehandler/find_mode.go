package modehandler

import (
	"github.com/bethropolis/kite/internal/logger"
)

// startFind opens the search prompt.
func (mh *ModeHandler) startFind() {
	mh.startPrompt("Search: {} (^G or ESC to cancel)", mh.executeFind)
}

// executeFind sets the search term and jumps to the first match after the
// cursor.
func (mh *ModeHandler) executeFind(term string) {
	if err := mh.finder.SetTerm(term); err != nil {
		mh.statusBar.SetErrorMessage("Invalid pattern: %v", err)
		return
	}
	doc := mh.buffers.Active()
	pos, found := mh.finder.Next(doc.Lines(), doc.Cursor(), true)
	mh.reportFind(pos.Col, pos.Line, found)
}

// findNext repeats the last search.
func (mh *ModeHandler) findNext() {
	if mh.finder.Term() == "" {
		mh.statusBar.SetTemporaryMessage("No search term")
		return
	}
	doc := mh.buffers.Active()
	pos, found := mh.finder.Repeat(doc.Lines(), doc.Cursor())
	mh.reportFind(pos.Col, pos.Line, found)
}

func (mh *ModeHandler) reportFind(x, y int, found bool) {
	term := mh.finder.Term()
	if !found {
		mh.statusBar.SetTemporaryMessage("Pattern not found: %s", term)
		logger.Debugf("ModeHandler: Pattern not found: '%s'", term)
		return
	}
	mh.buffers.Active().SetCursor(x, y)
	mh.statusBar.SetTemporaryMessage("Found: '%s'", term)
	logger.Debugf("ModeHandler: Found '%s' at %d:%d", term, y, x)
}
