// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/kite/internal/event"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc is a command registered by a plugin. It runs on the editor's
// main loop in response to its key.
type CommandFunc func() error

// EditorAPI defines the methods plugins can use to interact with the editor.
// Plugins never edit documents directly.
type EditorAPI interface {
	// ActiveLines returns a copy of the active document's lines.
	ActiveLines() []string
	// ActiveFilename is the display name of the active document.
	ActiveFilename() string

	SubscribeEvent(eventType event.Type, handler event.Handler)

	// RegisterCommand binds cmdFunc to key under name.
	RegisterCommand(name string, key tcell.Key, cmdFunc CommandFunc) error

	// SetStatusMessage shows a temporary message.
	SetStatusMessage(format string, args ...interface{})
}

// Plugin defines the interface that all plugins must implement.
type Plugin interface {
	// Name returns the unique identifier name of the plugin.
	Name() string

	// Initialize is called once when the plugin is loaded. Used for
	// subscribing to events and registering commands.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
