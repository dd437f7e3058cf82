// internal/event/event.go
package event

import "github.com/bethropolis/kite/internal/types"

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Document events
	TypeBufferModified // lines changed; carries the dirty floor
	TypeBufferLoaded   // a document was opened from disk
	TypeBufferSaved    // a document was written to disk
	TypeCursorMoved    // the cursor of the active document changed
	TypeBufferSwitched // the active document changed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit
)

var typeNames = map[Type]string{
	TypeUnknown:        "Unknown",
	TypeBufferModified: "BufferModified",
	TypeBufferLoaded:   "BufferLoaded",
	TypeBufferSaved:    "BufferSaved",
	TypeCursorMoved:    "CursorMoved",
	TypeBufferSwitched: "BufferSwitched",
	TypeAppReady:       "AppReady",
	TypeAppQuit:        "AppQuit",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "Unknown"
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// BufferModifiedData reports the lowest line that needs a redraw.
type BufferModifiedData struct {
	DirtyFloor int
}

// BufferLoadedData names the file that was loaded.
type BufferLoadedData struct {
	FilePath string
	Exists   bool // false when the path did not exist yet
}

// BufferSavedData names the file that was saved and its size.
type BufferSavedData struct {
	FilePath string
	Bytes    int
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// BufferSwitchedData carries the 0-based index of the new active buffer.
type BufferSwitchedData struct {
	Index int
	Count int
}

// AppQuitData could carry an exit reason later.
type AppQuitData struct{}

// AppReadyData is sent once the first frame is drawn.
type AppReadyData struct{}
