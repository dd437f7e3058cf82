package app

import (
	"github.com/bethropolis/kite/internal/core"
	"github.com/bethropolis/kite/internal/statusbar"
	"github.com/bethropolis/kite/internal/tui"
)

// draw repaints what changed in the active document and the status bar.
func (a *App) draw() {
	doc := a.buffers.Active()
	floor, dirty, full := a.modeHandler.TakeRedraw()
	if full {
		a.renderer.Invalidate()
	}

	a.updateStatusBarContent(doc)
	a.renderer.Render(doc, a.viewFor(doc), floor, dirty)

	width, height := a.tuiManager.Size()
	a.statusBar.Draw(a.tuiManager.GetScreen(), width, height)
	a.messageShown = a.statusBar.Message() != ""

	a.tuiManager.Show()
}

// viewFor returns the scroll state of doc, creating it on first use.
func (a *App) viewFor(doc *core.Document) *tui.View {
	v, ok := a.views[doc]
	if !ok {
		v = &tui.View{}
		a.views[doc] = v
	}
	return v
}

// updateStatusBarContent pushes the active document's state to the status bar.
func (a *App) updateStatusBarContent(doc *core.Document) {
	a.statusBar.SetDocInfo(statusbar.DocInfo{
		Filename:  doc.Filename(),
		Modified:  doc.Modified(),
		Line:      doc.Cursor().Line + 1,
		LineCount: doc.LineCount(),
		Index:     a.buffers.Index() + 1,
		Count:     a.buffers.Count(),
	})
}
