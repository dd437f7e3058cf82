// plugins/wordcount/wordcount.go
package wordcount

import (
	"fmt"
	"strings"

	"github.com/bethropolis/kite/internal/plugin"
	"github.com/gdamore/tcell/v2"
)

// Ensure WordCount implements plugin.Plugin
var _ plugin.Plugin = (*WordCount)(nil)

// Key runs the word count.
const Key = tcell.KeyCtrlK

// WordCount counts lines, words and bytes of the active document.
type WordCount struct {
	api plugin.EditorAPI
}

// New creates a new instance of the WordCount plugin.
func New() *WordCount {
	return &WordCount{}
}

// Name returns the unique name of the plugin.
func (p *WordCount) Name() string {
	return "WordCount"
}

// Initialize registers the wc command.
func (p *WordCount) Initialize(api plugin.EditorAPI) error {
	p.api = api
	if err := api.RegisterCommand("wc", Key, p.executeWordCount); err != nil {
		return fmt.Errorf("failed to register 'wc' command: %w", err)
	}
	return nil
}

// Shutdown performs cleanup (nothing needed for this simple plugin).
func (p *WordCount) Shutdown() error {
	return nil
}

func (p *WordCount) executeWordCount() error {
	if p.api == nil {
		return fmt.Errorf("wordcount plugin not initialized with API")
	}
	lines := p.api.ActiveLines()
	words, bytes := Count(lines)
	p.api.SetStatusMessage("%s: Lines: %d, Words: %d, Bytes: %d",
		p.api.ActiveFilename(), len(lines), words, bytes)
	return nil
}

// Count returns the number of whitespace separated words in lines and the
// size they would have on disk, one newline per line.
func Count(lines []string) (words, bytes int) {
	for _, l := range lines {
		words += len(strings.Fields(l))
		bytes += len(l) + 1
	}
	return words, bytes
}
