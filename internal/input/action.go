// internal/input/action.go
package input

// Action represents a command or operation to be performed by the editor.
type Action int

const (
	// --- Meta Actions ---
	ActionUnknown Action = iota
	ActionQuit
	ActionSave
	ActionUndo
	ActionRedo
	ActionCancel // Esc / Ctrl-G, leaves a prompt

	// --- Cursor Movement ---
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	// --- Text Manipulation ---
	ActionInsertRune // Requires Rune argument
	ActionInsertTab
	ActionInsertNewLine
	ActionDeleteCharForward
	ActionDeleteCharBackward
	ActionDeleteWord // prompt only
	ActionYankLine
	ActionPaste

	// --- Buffers ---
	ActionNextBuffer
	ActionPrevBuffer

	// --- Search ---
	ActionFind
	ActionFindNext

	// --- Extensions ---
	ActionCommand // Requires Command argument
)

var actionNames = map[Action]string{
	ActionUnknown:            "Unknown",
	ActionQuit:               "Quit",
	ActionSave:               "Save",
	ActionUndo:               "Undo",
	ActionRedo:               "Redo",
	ActionCancel:             "Cancel",
	ActionMoveUp:             "MoveUp",
	ActionMoveDown:           "MoveDown",
	ActionMoveLeft:           "MoveLeft",
	ActionMoveRight:          "MoveRight",
	ActionInsertRune:         "InsertRune",
	ActionInsertTab:          "InsertTab",
	ActionInsertNewLine:      "InsertNewLine",
	ActionDeleteCharForward:  "DeleteCharForward",
	ActionDeleteCharBackward: "DeleteCharBackward",
	ActionDeleteWord:         "DeleteWord",
	ActionYankLine:           "YankLine",
	ActionPaste:              "Paste",
	ActionNextBuffer:         "NextBuffer",
	ActionPrevBuffer:         "PrevBuffer",
	ActionFind:               "Find",
	ActionFindNext:           "FindNext",
	ActionCommand:            "Command",
}

func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// ActionEvent represents a decoded input event resulting in an action.
type ActionEvent struct {
	Action  Action
	Rune    rune   // Used for ActionInsertRune
	Command string // Used for ActionCommand
}
