package app

import (
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/logger"
)

// subscribe wires the app's reactions to editor events.
func (a *App) subscribe() {
	a.eventManager.Subscribe(event.TypeBufferLoaded, a.handleBufferLoaded)
	a.eventManager.Subscribe(event.TypeBufferSaved, a.handleBufferSaved)
	a.eventManager.Subscribe(event.TypeBufferSwitched, a.handleBufferSwitched)
	a.eventManager.Subscribe(event.TypeAppQuit, a.handleAppQuit)
}

func (a *App) handleBufferLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferLoadedData); ok && !data.Exists {
		a.statusBar.SetTemporaryMessage("New file: %s", data.FilePath)
	}
	return false
}

func (a *App) handleBufferSaved(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSavedData); ok {
		logger.Infof("App: saved %s (%d bytes)", data.FilePath, data.Bytes)
	}
	return false
}

func (a *App) handleBufferSwitched(e event.Event) bool {
	if data, ok := e.Data.(event.BufferSwitchedData); ok {
		logger.Debugf("App: switched to buffer %d/%d", data.Index+1, data.Count)
	}
	a.renderer.Invalidate()
	return false
}

func (a *App) handleAppQuit(e event.Event) bool {
	logger.Debugf("App: quit requested")
	return false
}
