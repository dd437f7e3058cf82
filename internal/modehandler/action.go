package modehandler

import (
	"errors"

	"github.com/bethropolis/kite/internal/core/clipboard"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/types"
)

const quitWarning = "At least one file has unsaved changes! Press ^Q again to quit or ^S to save"

// handleActionNormal applies an action to the active document.
func (mh *ModeHandler) handleActionNormal(actionEvent input.ActionEvent) bool {
	doc := mh.buffers.Active()
	processed := true

	switch actionEvent.Action {
	case input.ActionQuit:
		if mh.buffers.AnyModified() && !mh.quitPending {
			mh.statusBar.SetErrorMessage(quitWarning)
			mh.quitPending = true
			return true
		}
		mh.quit()
		return false

	case input.ActionSave:
		mh.save()

	case input.ActionUndo:
		if !doc.Undo() {
			mh.statusBar.SetTemporaryMessage("No older change")
		}
	case input.ActionRedo:
		if !doc.Redo() {
			mh.statusBar.SetTemporaryMessage("Buffer is already newest")
		}

	case input.ActionMoveUp:
		doc.MoveCursor(types.DirUp)
	case input.ActionMoveDown:
		doc.MoveCursor(types.DirDown)
	case input.ActionMoveLeft:
		doc.MoveCursor(types.DirLeft)
	case input.ActionMoveRight:
		doc.MoveCursor(types.DirRight)

	case input.ActionInsertRune:
		if err := doc.InsertChar(actionEvent.Rune); err != nil {
			mh.statusBar.SetErrorMessage("%v", err)
			logger.Debugf("Err InsertChar: %v", err)
		}
	case input.ActionInsertTab:
		if err := doc.InsertChar('\t'); err != nil {
			mh.statusBar.SetErrorMessage("%v", err)
		}
	case input.ActionInsertNewLine:
		doc.InsertLine()
	case input.ActionDeleteCharBackward:
		doc.DeleteChar()
	case input.ActionDeleteCharForward:
		doc.DeleteRightChar()

	case input.ActionYankLine:
		mh.clipboard.YankLine(doc)
		if mh.clipboard.UsesSystem() {
			mh.statusBar.SetTemporaryMessage("Yanked line %d to the system clipboard", doc.Cursor().Line+1)
		} else {
			mh.statusBar.SetTemporaryMessage("Yanked line %d", doc.Cursor().Line+1)
		}
	case input.ActionPaste:
		if err := mh.clipboard.Paste(doc); err != nil {
			if errors.Is(err, clipboard.ErrEmpty) {
				mh.statusBar.SetTemporaryMessage("Clipboard empty")
			} else {
				mh.statusBar.SetErrorMessage("%v", err)
			}
			logger.Debugf("Paste error: %v", err)
		}

	case input.ActionNextBuffer, input.ActionPrevBuffer:
		mh.switchBuffer(actionEvent.Action == input.ActionNextBuffer)

	case input.ActionFind:
		mh.startFind()
	case input.ActionFindNext:
		mh.findNext()

	case input.ActionCommand:
		mh.runCommand(actionEvent.Command)

	default:
		processed = false
	}

	if processed {
		mh.quitPending = false
	}
	return processed
}

// save writes the active document, asking for a file name if it has none.
func (mh *ModeHandler) save() {
	doc := mh.buffers.Active()
	if !doc.HasFile() {
		mh.startPrompt("Save as: {} (^G or ESC to cancel)", mh.saveAs)
		return
	}
	msg, err := doc.Save()
	if err != nil {
		mh.statusBar.SetErrorMessage("%v", err)
		return
	}
	mh.statusBar.SetTemporaryMessage("%s", msg)
}

// saveAs binds the active document to path and saves it. A failed save
// leaves the document unnamed again.
func (mh *ModeHandler) saveAs(path string) {
	doc := mh.buffers.Active()
	doc.SetFile(path)
	msg, err := doc.Save()
	if err != nil {
		doc.SetUnnamed()
		mh.statusBar.SetErrorMessage("%v", err)
		return
	}
	mh.statusBar.SetTemporaryMessage("%s", msg)
}

func (mh *ModeHandler) switchBuffer(forward bool) {
	// Close the outgoing document's input event before leaving it.
	mh.buffers.Active().FinishEdit()
	if forward {
		mh.buffers.Next()
	} else {
		mh.buffers.Prev()
	}
	mh.full = true
	// Drop messages about the previous buffer.
	mh.statusBar.ResetTemporaryMessage()
	mh.eventManager.Dispatch(event.TypeBufferSwitched, event.BufferSwitchedData{
		Index: mh.buffers.Index(),
		Count: mh.buffers.Count(),
	})
}
