package app

import (
	"fmt"

	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/plugin"
	"github.com/gdamore/tcell/v2"
)

// editorAPI exposes the App to plugins.
type editorAPI struct {
	app *App
}

var _ plugin.EditorAPI = (*editorAPI)(nil)

func newEditorAPI(a *App) *editorAPI {
	return &editorAPI{app: a}
}

func (e *editorAPI) ActiveLines() []string {
	return e.app.buffers.Active().Lines().Strings()
}

func (e *editorAPI) ActiveFilename() string {
	return e.app.buffers.Active().Filename()
}

func (e *editorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	e.app.eventManager.Subscribe(eventType, handler)
}

func (e *editorAPI) RegisterCommand(name string, key tcell.Key, cmdFunc plugin.CommandFunc) error {
	if err := e.app.modeHandler.RegisterCommand(name, cmdFunc); err != nil {
		return err
	}
	if err := e.app.inputProcessor.BindCommand(key, name); err != nil {
		return fmt.Errorf("command '%s': %w", name, err)
	}
	return nil
}

func (e *editorAPI) SetStatusMessage(format string, args ...interface{}) {
	e.app.statusBar.SetTemporaryMessage(format, args...)
}
