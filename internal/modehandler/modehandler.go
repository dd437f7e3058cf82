// internal/modehandler/modehandler.go
package modehandler

import (
	"fmt"

	"github.com/bethropolis/kite/internal/core"
	"github.com/bethropolis/kite/internal/core/clipboard"
	"github.com/bethropolis/kite/internal/core/find"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModePrompt
)

func (m InputMode) String() string {
	if m == ModePrompt {
		return "PROMPT"
	}
	return "NORMAL"
}

// ModeHandler routes decoded input to the active document or the prompt
// and tracks what the renderer has to repaint.
type ModeHandler struct {
	buffers        *core.BufferList
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	clipboard      *clipboard.Manager
	finder         *find.Manager
	quitSignal     chan<- struct{}

	commands map[string]func() error

	currentMode InputMode
	prompt      *prompt
	quitPending bool
	quitClosed  bool

	// repaint bookkeeping, consumed by TakeRedraw
	dirtyFloor int
	dirty      bool
	full       bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Buffers        *core.BufferList
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	Clipboard      *clipboard.Manager
	Finder         *find.Manager
	QuitSignal     chan<- struct{} // closed when the editor should exit
}

// New creates a new ModeHandler.
func New(cfg Config) *ModeHandler {
	if cfg.Buffers == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	if cfg.Clipboard == nil {
		cfg.Clipboard = clipboard.NewManager(false)
	}
	if cfg.Finder == nil {
		cfg.Finder = find.NewManager()
	}
	return &ModeHandler{
		buffers:        cfg.Buffers,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		clipboard:      cfg.Clipboard,
		finder:         cfg.Finder,
		quitSignal:     cfg.QuitSignal,
		commands:       make(map[string]func() error),
		currentMode:    ModeNormal,
		full:           true,
	}
}

// HandleKeyEvent processes one key press. It returns true if the screen
// needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	actionEvent := mh.inputProcessor.ProcessEvent(ev)
	logger.DebugTagf("input", "key %v -> %v (mode %v)", ev.Name(), actionEvent.Action, mh.currentMode)

	var processed bool
	switch mh.currentMode {
	case ModeNormal:
		processed = mh.handleActionNormal(actionEvent)
	case ModePrompt:
		processed = mh.handleActionPrompt(actionEvent)
	}

	mh.finishEdit()
	return processed || mh.dirty
}

// finishEdit ends the input event on the active document and folds its
// dirty floor into the pending repaint.
func (mh *ModeHandler) finishEdit() {
	floor, ok := mh.buffers.Active().FinishEdit()
	if !ok {
		return
	}
	if !mh.dirty || floor < mh.dirtyFloor {
		mh.dirtyFloor = floor
	}
	mh.dirty = true
}

// TakeRedraw returns and clears the pending repaint: the lowest dirty line,
// whether any line is dirty, and whether everything must be repainted.
func (mh *ModeHandler) TakeRedraw() (floor int, dirty bool, full bool) {
	floor, dirty, full = mh.dirtyFloor, mh.dirty, mh.full
	mh.dirtyFloor, mh.dirty, mh.full = 0, false, false
	return
}

// RegisterCommand makes fn runnable as the named command.
func (mh *ModeHandler) RegisterCommand(name string, fn func() error) error {
	if name == "" || fn == nil {
		return fmt.Errorf("invalid command registration for '%s'", name)
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("command '%s' already registered", name)
	}
	mh.commands[name] = fn
	logger.Debugf("ModeHandler: registered command '%s'", name)
	return nil
}

// runCommand executes a registered command and reports failures in the
// status bar.
func (mh *ModeHandler) runCommand(name string) {
	fn, ok := mh.commands[name]
	if !ok {
		mh.statusBar.SetErrorMessage("Unknown command: %s", name)
		return
	}
	if err := fn(); err != nil {
		mh.statusBar.SetErrorMessage("%s: %v", name, err)
		logger.Warnf("ModeHandler: command '%s' failed: %v", name, err)
	}
}

// GetCurrentMode returns the current input mode.
func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// quit closes the quit channel once.
func (mh *ModeHandler) quit() {
	if !mh.quitClosed {
		mh.quitClosed = true
		mh.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
		close(mh.quitSignal)
	}
}
