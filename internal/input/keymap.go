// internal/input/keymap.go
package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Keymap maps special keys to editor actions. Control keys are matched by
// their key code, which already implies the Ctrl modifier.
type Keymap map[tcell.Key]Action

// InputProcessor translates tcell events into ActionEvents.
type InputProcessor struct {
	keymap   Keymap
	commands map[tcell.Key]string // keys bound to named plugin commands
}

// NewInputProcessor creates a processor with default keybindings.
func NewInputProcessor() *InputProcessor {
	p := &InputProcessor{keymap: make(Keymap), commands: make(map[tcell.Key]string)}
	p.loadDefaultBindings()
	return p
}

// loadDefaultBindings sets up the key mappings.
func (p *InputProcessor) loadDefaultBindings() {
	p.keymap[tcell.KeyUp] = ActionMoveUp
	p.keymap[tcell.KeyDown] = ActionMoveDown
	p.keymap[tcell.KeyLeft] = ActionMoveLeft
	p.keymap[tcell.KeyRight] = ActionMoveRight

	p.keymap[tcell.KeyEnter] = ActionInsertNewLine // also Ctrl-M
	p.keymap[tcell.KeyTab] = ActionInsertTab
	p.keymap[tcell.KeyBackspace] = ActionDeleteCharBackward // also Ctrl-H
	p.keymap[tcell.KeyBackspace2] = ActionDeleteCharBackward
	p.keymap[tcell.KeyDelete] = ActionDeleteCharForward
	p.keymap[tcell.KeyCtrlD] = ActionDeleteCharForward
	p.keymap[tcell.KeyCtrlW] = ActionDeleteWord

	p.keymap[tcell.KeyCtrlU] = ActionUndo
	p.keymap[tcell.KeyCtrlR] = ActionRedo
	p.keymap[tcell.KeyCtrlS] = ActionSave
	p.keymap[tcell.KeyCtrlQ] = ActionQuit
	p.keymap[tcell.KeyCtrlG] = ActionCancel
	p.keymap[tcell.KeyEscape] = ActionCancel

	p.keymap[tcell.KeyCtrlY] = ActionYankLine
	p.keymap[tcell.KeyCtrlV] = ActionPaste

	p.keymap[tcell.KeyCtrlN] = ActionNextBuffer
	p.keymap[tcell.KeyCtrlP] = ActionPrevBuffer

	p.keymap[tcell.KeyCtrlF] = ActionFind
	p.keymap[tcell.KeyF3] = ActionFindNext
}

// ProcessEvent takes a tcell key event and returns the corresponding ActionEvent.
// The mode handler decides what an action means in the current mode.
func (p *InputProcessor) ProcessEvent(ev *tcell.EventKey) ActionEvent {
	key := ev.Key()
	mod := ev.Modifiers()

	if key == tcell.KeyRune {
		// Only plain (or shifted) runes insert; Alt+rune is unbound.
		if mod&^tcell.ModShift == tcell.ModNone {
			return ActionEvent{Action: ActionInsertRune, Rune: ev.Rune()}
		}
		return ActionEvent{Action: ActionUnknown}
	}

	if action, ok := p.keymap[key]; ok {
		return ActionEvent{Action: action}
	}
	if name, ok := p.commands[key]; ok {
		return ActionEvent{Action: ActionCommand, Command: name}
	}
	return ActionEvent{Action: ActionUnknown}
}

// BindCommand binds key to the named command. Keys used by built-in
// actions or another command cannot be rebound.
func (p *InputProcessor) BindCommand(key tcell.Key, name string) error {
	if key == tcell.KeyRune {
		return fmt.Errorf("cannot bind command '%s' to printable keys", name)
	}
	if action, ok := p.keymap[key]; ok {
		return fmt.Errorf("key %s is already bound to %v", tcell.KeyNames[key], action)
	}
	if other, ok := p.commands[key]; ok {
		return fmt.Errorf("key %s is already bound to command '%s'", tcell.KeyNames[key], other)
	}
	p.commands[key] = name
	return nil
}

// CommandBindings returns a copy of the command key bindings.
func (p *InputProcessor) CommandBindings() map[tcell.Key]string {
	out := make(map[tcell.Key]string, len(p.commands))
	for k, v := range p.commands {
		out[k] = v
	}
	return out
}

// Bindings returns a copy of the key map, used for help output.
func (p *InputProcessor) Bindings() Keymap {
	out := make(Keymap, len(p.keymap))
	for k, v := range p.keymap {
		out[k] = v
	}
	return out
}
