// internal/app/app.go
package app

import (
	"fmt"
	"time"

	"github.com/bethropolis/kite/internal/config"
	"github.com/bethropolis/kite/internal/core"
	"github.com/bethropolis/kite/internal/core/clipboard"
	"github.com/bethropolis/kite/internal/core/find"
	"github.com/bethropolis/kite/internal/event"
	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/internal/modehandler"
	"github.com/bethropolis/kite/internal/plugin"
	"github.com/bethropolis/kite/internal/statusbar"
	"github.com/bethropolis/kite/internal/theme"
	"github.com/bethropolis/kite/internal/tui"
	"github.com/bethropolis/kite/plugins/wordcount"
	"github.com/gdamore/tcell/v2"
)

// messagePoll is how often the main loop checks for an expired status message.
const messagePoll = 500 * time.Millisecond

// App encapsulates the core components and main loop of the editor.
type App struct {
	tuiManager     *tui.TUI
	buffers        *core.BufferList
	statusBar      *statusbar.StatusBar
	eventManager   *event.Manager
	inputProcessor *input.InputProcessor
	modeHandler    *modehandler.ModeHandler
	pluginManager  *plugin.Manager
	renderer       *tui.Renderer
	views          map[*core.Document]*tui.View

	quit   chan struct{}
	events chan tcell.Event

	messageShown bool
}

// NewApp opens paths (or a scratch document when there are none) and
// creates the editor on the real terminal.
func NewApp(cfg *config.Config, paths []string) (*App, error) {
	applyTheme(cfg.Editor.ThemeFile)

	tuiManager, err := tui.New()
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	a, err := newApp(cfg, tuiManager, paths)
	if err != nil {
		tuiManager.Close()
		return nil, err
	}
	return a, nil
}

// NewAppWithScreen is NewApp on an already created screen.
func NewAppWithScreen(cfg *config.Config, screen tcell.Screen, paths []string) (*App, error) {
	applyTheme(cfg.Editor.ThemeFile)

	tuiManager, err := tui.NewWithScreen(screen)
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}
	return newApp(cfg, tuiManager, paths)
}

func newApp(cfg *config.Config, tuiManager *tui.TUI, paths []string) (*App, error) {
	docs := make([]*core.Document, 0, len(paths))
	for _, path := range paths {
		doc, err := core.OpenDocument(path)
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", path, err)
		}
		docs = append(docs, doc)
	}
	buffers := core.NewBufferList(docs...)

	eventManager := event.NewManager()
	for _, doc := range buffers.All() {
		doc.SetEventManager(eventManager)
	}

	statusBar := statusbar.New(statusbar.Config{
		MessageTimeout: cfg.Editor.MessageTimeout(),
		FilenameWidth:  config.FilenameWidth,
	})
	quitChan := make(chan struct{})
	inputProcessor := input.NewInputProcessor()

	modeHandler := modehandler.New(modehandler.Config{
		Buffers:        buffers,
		InputProcessor: inputProcessor,
		EventManager:   eventManager,
		StatusBar:      statusBar,
		Clipboard:      clipboard.NewManager(cfg.Editor.SystemClipboard),
		Finder:         find.NewManager(),
		QuitSignal:     quitChan,
	})

	renderer := tui.NewRenderer(tuiManager, tui.Options{
		ScrollOff:       cfg.Editor.ScrollOff,
		LineNumbers:     cfg.Editor.LineNumbers,
		StatusBarHeight: config.StatusBarHeight,
		WelcomeText:     "Kite editor -- version " + config.Version,
		WelcomeDivisor:  config.WelcomeRowDivisor,
	})

	a := &App{
		tuiManager:     tuiManager,
		buffers:        buffers,
		statusBar:      statusBar,
		eventManager:   eventManager,
		inputProcessor: inputProcessor,
		modeHandler:    modeHandler,
		pluginManager:  plugin.NewManager(),
		renderer:       renderer,
		views:          make(map[*core.Document]*tui.View),
		quit:           quitChan,
		events:         make(chan tcell.Event),
	}
	a.subscribe()

	// --- Register Built-in Plugins ---
	if err := a.pluginManager.Register(wordcount.New()); err != nil {
		logger.Warnf("App: failed to register WordCount plugin: %v", err)
	}
	a.pluginManager.InitializePlugins(newEditorAPI(a))

	for _, doc := range buffers.All() {
		if doc.HasFile() {
			eventManager.Dispatch(event.TypeBufferLoaded, event.BufferLoadedData{
				FilePath: doc.FilePath(),
				Exists:   doc.Existed(),
			})
		}
	}

	logger.Infof("App: %d buffer(s) open", buffers.Count())
	return a, nil
}

// applyTheme loads the theme file, if any, and makes it current. A broken
// theme file leaves the built-in theme in place.
func applyTheme(path string) {
	if path == "" {
		return
	}
	th, err := theme.LoadThemeFromFile(path)
	if err != nil {
		logger.Warnf("App: could not load theme '%s': %v", path, err)
		return
	}
	theme.SetCurrent(th)
	logger.Infof("App: loaded theme '%s' from %s", th.Name, path)
}

// Run starts the application's main event and drawing loops. It returns
// once the user quits.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	if a.statusBar.Message() == "" {
		a.statusBar.SetTemporaryMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")
	}
	a.draw()

	ticker := time.NewTicker(messagePoll)
	defer ticker.Stop()

	for {
		select {
		case <-a.quit:
			a.shutdown()
			return nil
		case ev := <-a.events:
			if a.handleEvent(ev) && !a.quitting() {
				a.draw()
			}
		case <-ticker.C:
			// Repaint once a temporary message has timed out.
			if a.messageShown && a.statusBar.Message() == "" {
				a.draw()
			}
		}
	}
}

// eventLoop forwards terminal events to the main loop, which owns all
// editor state.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.events <- ev:
		case <-a.quit:
			return
		}
	}
}

// handleEvent reacts to one terminal event and reports whether the screen
// needs a redraw.
func (a *App) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.renderer.Invalidate()
		a.tuiManager.Sync()
		return true
	case *tcell.EventKey:
		return a.modeHandler.HandleKeyEvent(ev)
	}
	return false
}

func (a *App) quitting() bool {
	select {
	case <-a.quit:
		return true
	default:
		return false
	}
}

func (a *App) shutdown() {
	for _, doc := range a.buffers.All() {
		if doc.Modified() {
			logger.Warnf("App: exiting with unsaved changes in %s", doc.Filename())
		}
	}
	logger.Infof("App: exiting")
}
