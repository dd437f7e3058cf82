// internal/statusbar/statusbar.go
package statusbar

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/bethropolis/kite/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Config defines the behavior of the status bar.
type Config struct {
	MessageTimeout time.Duration
	FilenameWidth  int // filename column is padded to this many cells
}

// DefaultConfig provides sensible defaults.
func DefaultConfig() Config {
	return Config{
		MessageTimeout: 4 * time.Second,
		FilenameWidth:  20,
	}
}

// MessageKind selects how a temporary message is styled.
type MessageKind int

const (
	MessageInfo MessageKind = iota
	MessageError
)

// DocInfo is the per-document state the status line shows.
type DocInfo struct {
	Filename  string
	Modified  bool
	Line      int // 1-based cursor line
	LineCount int
	Index     int // 1-based buffer index
	Count     int
}

// StatusBar represents the UI component for the status line.
type StatusBar struct {
	config Config
	mu     sync.RWMutex

	info DocInfo

	prompt string // shown instead of everything else while non-empty

	tempMessage     string
	tempKind        MessageKind
	tempMessageTime time.Time

	now func() time.Time
}

// New creates a new StatusBar with the given configuration.
func New(config Config) *StatusBar {
	if config.FilenameWidth <= 0 {
		config.FilenameWidth = DefaultConfig().FilenameWidth
	}
	return &StatusBar{config: config, now: time.Now}
}

// SetDocInfo updates the document information shown.
func (sb *StatusBar) SetDocInfo(info DocInfo) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.info = info
}

// SetPrompt shows a prompt line; an empty string hides it.
func (sb *StatusBar) SetPrompt(text string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.prompt = text
}

// SetTemporaryMessage displays an info message for the configured duration.
func (sb *StatusBar) SetTemporaryMessage(format string, args ...interface{}) {
	sb.setMessage(MessageInfo, fmt.Sprintf(format, args...))
}

// SetErrorMessage displays an error message for the configured duration.
func (sb *StatusBar) SetErrorMessage(format string, args ...interface{}) {
	sb.setMessage(MessageError, fmt.Sprintf(format, args...))
}

func (sb *StatusBar) setMessage(kind MessageKind, msg string) {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = msg
	sb.tempKind = kind
	sb.tempMessageTime = sb.now()
}

// ResetTemporaryMessage clears any temporary message being displayed
func (sb *StatusBar) ResetTemporaryMessage() {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	sb.tempMessage = ""
	sb.tempMessageTime = time.Time{}
}

// Message returns the active temporary message, or "" if none or expired.
func (sb *StatusBar) Message() string {
	sb.mu.Lock()
	defer sb.mu.Unlock()
	if !sb.messageActive() {
		return ""
	}
	return sb.tempMessage
}

// messageActive expires the temporary message if its time is up. The
// caller holds the lock.
func (sb *StatusBar) messageActive() bool {
	if sb.tempMessageTime.IsZero() {
		return false
	}
	if sb.now().Sub(sb.tempMessageTime) > sb.config.MessageTimeout {
		sb.tempMessage = ""
		sb.tempMessageTime = time.Time{}
		return false
	}
	return true
}

// Texts returns the left and right parts of the default status line.
func (sb *StatusBar) Texts() (string, string) {
	sb.mu.RLock()
	defer sb.mu.RUnlock()
	return sb.leftText(), sb.rightText()
}

func (sb *StatusBar) leftText() string {
	name := sb.info.Filename
	if name == "" {
		name = "[No Name]"
	}
	if pad := sb.config.FilenameWidth - uniseg.StringWidth(name); pad > 0 {
		name += strings.Repeat(" ", pad)
	}
	text := name
	if sb.info.Count > 0 {
		text += fmt.Sprintf(" %d/%d", sb.info.Index, sb.info.Count)
	}
	if sb.info.Modified {
		text += " (modified)"
	}
	return text
}

func (sb *StatusBar) rightText() string {
	return fmt.Sprintf("%d/%d", sb.info.Line, sb.info.LineCount)
}

// Draw renders the status bar on the last screen row.
func (sb *StatusBar) Draw(screen tcell.Screen, width, height int) {
	if height <= 0 || width <= 0 {
		return
	}
	y := height - 1
	th := theme.Current()

	sb.mu.Lock()
	var left, right string
	style := th.GetStyle(theme.StyleStatusBar)
	leftStyle := style
	switch {
	case sb.prompt != "":
		left = sb.prompt
		leftStyle = th.GetStyle(theme.StylePrompt)
	case sb.messageActive():
		left = sb.tempMessage
		leftStyle = th.GetStyle(theme.StyleStatusBarMessage)
		if sb.tempKind == MessageError {
			leftStyle = th.GetStyle(theme.StyleStatusBarError)
		}
	default:
		left, right = sb.leftText(), sb.rightText()
		if sb.info.Modified {
			leftStyle = th.GetStyle(theme.StyleStatusBarModified)
		}
	}
	sb.mu.Unlock()

	for x := 0; x < width; x++ {
		screen.SetContent(x, y, ' ', nil, style)
	}

	rightW := uniseg.StringWidth(right)
	leftMax := width
	if right != "" && rightW+1 < width {
		leftMax = width - rightW - 1
		drawText(screen, width-rightW, y, rightW, right, style)
	}
	drawText(screen, 0, y, leftMax, left, leftStyle)
}

// drawText draws text by grapheme cluster, stopping at maxW cells.
func drawText(screen tcell.Screen, x0, y, maxW int, text string, style tcell.Style) {
	gr := uniseg.NewGraphemes(text)
	x := 0
	for gr.Next() {
		w := gr.Width()
		if x+w > maxW {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x0+x, y, runes[0], runes[1:], style)
		x += w
	}
}
