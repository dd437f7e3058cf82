// internal/tui/drawing.go
package tui

import (
	"fmt"

	"github.com/bethropolis/kite/internal/buffer"
	"github.com/bethropolis/kite/internal/core"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/theme"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// Options control text area rendering.
type Options struct {
	ScrollOff       int
	LineNumbers     bool
	StatusBarHeight int
	WelcomeText     string // shown on scratch buffers
	WelcomeDivisor  int    // welcome row = text height / WelcomeDivisor
}

// Renderer paints documents into the text area above the status bar. It
// repaints from the document's dirty floor downward, or everything after
// scrolling, a resize or Invalidate.
type Renderer struct {
	tui        *TUI
	opts       Options
	needFull   bool
	lastGutter int
	lastSize   [2]int
}

// NewRenderer creates a renderer drawing onto t.
func NewRenderer(t *TUI, opts Options) *Renderer {
	if opts.WelcomeDivisor <= 0 {
		opts.WelcomeDivisor = 3
	}
	return &Renderer{tui: t, opts: opts, needFull: true}
}

// Invalidate forces a full repaint on the next Render.
func (r *Renderer) Invalidate() {
	r.needFull = true
}

// TextArea returns the size of the text area.
func (r *Renderer) TextArea() (int, int) {
	w, h := r.tui.Size()
	return w, h - r.opts.StatusBarHeight
}

// gutterWidth returns the line number column width, including one space of
// padding, or 0 when disabled or the screen is too narrow.
func (r *Renderer) gutterWidth(lineCount, width int) int {
	if !r.opts.LineNumbers {
		return 0
	}
	g := len(fmt.Sprint(lineCount)) + 1
	if g >= width {
		return 0
	}
	return g
}

// Render scrolls view to the cursor and repaints the rows that changed.
// floor is the document's dirty floor; dirty reports whether it is set.
func (r *Renderer) Render(doc *core.Document, view *View, floor int, dirty bool) {
	width, textH := r.TextArea()
	if width <= 0 || textH <= 0 {
		return
	}
	lines := doc.Lines()
	gutter := r.gutterWidth(lines.Len(), width)
	textW := width - gutter

	full := r.needFull
	if size := [2]int{width, textH}; size != r.lastSize {
		r.lastSize = size
		full = true
	}
	if gutter != r.lastGutter {
		r.lastGutter = gutter
		full = true
	}
	if view.Scroll(lines, doc.Cursor(), textW, textH, r.opts.ScrollOff) {
		full = true
	}

	from := -1
	switch {
	case full:
		from = view.RowOff
	case dirty:
		from = floor
		if from < view.RowOff {
			from = view.RowOff
		}
	}

	if from >= 0 {
		for y := from; y < view.RowOff+textH; y++ {
			r.drawRow(doc, view, y-view.RowOff, y, gutter, width, textH)
		}
		logger.DebugTagf("render", "repainted rows %d-%d (full=%v)", from, view.RowOff+textH-1, full)
	}
	r.needFull = false

	r.drawCursor(doc, view, gutter, width, textH)
}

func (r *Renderer) drawRow(doc *core.Document, view *View, screenY, y, gutter, width, textH int) {
	th := theme.Current()
	defStyle := th.GetStyle(theme.StyleDefault)
	screen := r.tui.screen
	lines := doc.Lines()

	for x := 0; x < width; x++ {
		screen.SetContent(x, screenY, ' ', nil, defStyle)
	}

	if y >= lines.Len() {
		if doc.IsScratch() && screenY == textH/r.opts.WelcomeDivisor && r.opts.WelcomeText != "" {
			r.drawWelcome(screenY, width)
			return
		}
		screen.SetContent(0, screenY, '~', nil, th.GetStyle(theme.StyleEmptyRow))
		return
	}

	if gutter > 0 {
		num := fmt.Sprintf("%*d", gutter-1, y+1)
		drawString(screen, 0, screenY, gutter-1, num, th.GetStyle(theme.StyleLineNumber))
	}

	drawRendered(screen, gutter, screenY, width, view.ColOff, lines.At(y).Rendered(), defStyle)
}

// drawRendered draws the display text of a line starting at display column
// colOff into cells [x0, width).
func drawRendered(screen tcell.Screen, x0, y, width, colOff int, text string, style tcell.Style) {
	col := 0
	lastX := -1
	var lastMain rune
	var combining []rune

	flush := func() {
		if lastX >= 0 {
			screen.SetContent(lastX, y, lastMain, combining, style)
		}
		lastX, combining = -1, nil
	}

	for _, ch := range text {
		w := buffer.CharWidth(ch)
		if w == 0 {
			if lastX >= 0 {
				combining = append(combining, ch)
			}
			continue
		}
		flush()

		start := col
		col += w
		if col <= colOff {
			continue
		}
		x := x0 + start - colOff
		if start < colOff {
			// Wide character cut by the left edge.
			for cx := x0; cx < x0+col-colOff && cx < width; cx++ {
				screen.SetContent(cx, y, ' ', nil, style)
			}
			continue
		}
		if x+w > width {
			break
		}
		lastX, lastMain = x, ch
	}
	flush()
}

// drawString draws s left-aligned in at most maxW cells.
func drawString(screen tcell.Screen, x, y, maxW int, s string, style tcell.Style) int {
	gr := uniseg.NewGraphemes(s)
	used := 0
	for gr.Next() {
		w := gr.Width()
		if used+w > maxW {
			break
		}
		runes := gr.Runes()
		screen.SetContent(x+used, y, runes[0], runes[1:], style)
		used += w
	}
	return used
}

func (r *Renderer) drawWelcome(screenY, width int) {
	th := theme.Current()
	msg := r.opts.WelcomeText
	msgW := uniseg.StringWidth(msg)
	if msgW > width-1 {
		msgW = width - 1
	}
	r.tui.screen.SetContent(0, screenY, '~', nil, th.GetStyle(theme.StyleEmptyRow))
	x := (width - msgW) / 2
	if x < 1 {
		x = 1
	}
	drawString(r.tui.screen, x, screenY, width-x, msg, th.GetStyle(theme.StyleWelcome))
}

// drawCursor places the terminal cursor at the document cursor.
func (r *Renderer) drawCursor(doc *core.Document, view *View, gutter, width, textH int) {
	cur := doc.Cursor()
	rx := 0
	if cur.Line < doc.Lines().Len() {
		rx = doc.Lines().At(cur.Line).DisplayColumn(cur.Col)
	}
	x := gutter + rx - view.ColOff
	y := cur.Line - view.RowOff
	if x < gutter || x >= width || y < 0 || y >= textH {
		r.tui.screen.HideCursor()
		return
	}
	r.tui.screen.ShowCursor(x, y)
}
