// internal/theme/theme.go
package theme

import (
	"github.com/bethropolis/kite/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// Style names looked up by the renderer and status bar.
const (
	StyleDefault           = "Default"
	StyleLineNumber        = "LineNumber"
	StyleEmptyRow          = "EmptyRow" // "~" rows past the end of the text
	StyleWelcome           = "Welcome"
	StyleStatusBar         = "StatusBar"
	StyleStatusBarModified = "StatusBarModified"
	StyleStatusBarMessage  = "StatusBarMessage"
	StyleStatusBarError    = "StatusBarError"
	StylePrompt            = "Prompt"
)

// Theme is a named set of UI styles.
type Theme struct {
	Name   string
	IsDark bool
	Styles map[string]tcell.Style
}

// GetStyle returns the named style, falling back to Default.
func (t *Theme) GetStyle(name string) tcell.Style {
	if style, ok := t.Styles[name]; ok {
		return style
	}
	if defStyle, ok := t.Styles[StyleDefault]; ok {
		logger.DebugTagf("theme", "Theme '%s': style '%s' not found, falling back to 'Default'", t.Name, name)
		return defStyle
	}
	logger.Warnf("Theme '%s': style '%s' and 'Default' style not found, using tcell default.", t.Name, name)
	return tcell.StyleDefault
}

// KiteDark is the built-in theme.
var KiteDark = func() Theme {
	bg := tcell.NewHexColor(0x2a2f38)
	fg := tcell.NewHexColor(0xc5cdd9)
	muted := tcell.NewHexColor(0x5c6370)
	yellow := tcell.NewHexColor(0xe5c07b)
	red := tcell.NewHexColor(0xe06c75)
	blue := tcell.NewHexColor(0x61afef)

	base := tcell.StyleDefault.Background(tcell.ColorReset).Foreground(fg)
	bar := tcell.StyleDefault.Background(bg).Foreground(fg)

	return Theme{
		Name:   "Kite Dark",
		IsDark: true,
		Styles: map[string]tcell.Style{
			StyleDefault:           base,
			StyleLineNumber:        base.Foreground(muted),
			StyleEmptyRow:          base.Foreground(muted),
			StyleWelcome:           base.Foreground(blue).Bold(true),
			StyleStatusBar:         bar,
			StyleStatusBarModified: bar.Foreground(yellow),
			StyleStatusBarMessage:  bar.Bold(true),
			StyleStatusBarError:    bar.Foreground(red).Bold(true),
			StylePrompt:            bar.Foreground(blue).Bold(true),
		},
	}
}()

var currentTheme = &KiteDark

// Current returns the active theme.
func Current() *Theme {
	return currentTheme
}

// SetCurrent makes t the active theme. A nil theme is ignored.
func SetCurrent(t *Theme) {
	if t != nil {
		currentTheme = t
		logger.Infof("Theme switched to: %s", t.Name)
	}
}
