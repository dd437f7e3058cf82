package modehandler

import (
	"strings"
	"unicode"

	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
)

// prompt is a one-line input shown in the status bar. template contains
// "{}" where the typed text goes.
type prompt struct {
	template string
	input    []rune
	onAccept func(string)
}

func (p *prompt) text() string {
	return strings.Replace(p.template, "{}", string(p.input), 1)
}

// startPrompt switches to prompt mode.
func (mh *ModeHandler) startPrompt(template string, onAccept func(string)) {
	mh.prompt = &prompt{template: template, onAccept: onAccept}
	mh.currentMode = ModePrompt
	mh.statusBar.SetPrompt(mh.prompt.text())
	logger.Debugf("ModeHandler: Entering Prompt Mode")
}

// endPrompt returns to normal mode.
func (mh *ModeHandler) endPrompt() {
	mh.prompt = nil
	mh.currentMode = ModeNormal
	mh.statusBar.SetPrompt("")
}

// handleActionPrompt handles actions when in ModePrompt.
func (mh *ModeHandler) handleActionPrompt(actionEvent input.ActionEvent) bool {
	p := mh.prompt

	switch actionEvent.Action {
	case input.ActionInsertRune:
		p.input = append(p.input, actionEvent.Rune)

	case input.ActionDeleteCharBackward:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}

	case input.ActionDeleteWord:
		p.input = deleteWord(p.input)

	case input.ActionInsertNewLine:
		text := string(p.input)
		accept := p.onAccept
		mh.endPrompt()
		if text == "" {
			mh.statusBar.SetTemporaryMessage("Canceled")
			return true
		}
		accept(text)
		return true

	case input.ActionCancel:
		mh.endPrompt()
		mh.statusBar.SetTemporaryMessage("Canceled")
		logger.Debugf("ModeHandler: Canceled Prompt Mode")
		return true

	default:
		return false
	}

	mh.statusBar.SetPrompt(p.text())
	return true
}

// deleteWord removes trailing whitespace and then the word before it.
func deleteWord(in []rune) []rune {
	i := len(in)
	for i > 0 && unicode.IsSpace(in[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(in[i-1]) {
		i--
	}
	return in[:i]
}
