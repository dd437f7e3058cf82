// cmd/kite/main.go
package main

import (
	"flag"
	"fmt"
	stlog "log" // FATAL errors before the logger is ready
	"os"
	"path/filepath"
	"sort"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/bethropolis/kite/internal/app"
	"github.com/bethropolis/kite/internal/config"
	"github.com/bethropolis/kite/internal/input"
	"github.com/bethropolis/kite/internal/logger"
	"github.com/bethropolis/kite/plugins/wordcount"
)

func main() {
	// --- Argument & Flag Parsing ---
	flags := config.NewFlags(nil)
	flag.Usage = usage
	paths, err := flags.Parse(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, config.Version)
		os.Exit(0)
	}

	// --- Configuration ---
	cfg, cfgErr := config.LoadConfig(*flags.ConfigFilePath, flags)

	// --- Logger Initialization ---
	logFile, closeLog := openLog(cfg.Logger.LogFilePath)
	defer closeLog()
	logger.Init(cfg.Logger, logFile)

	logger.Infof("Starting %s editor %s...", config.AppName, config.Version)
	if cfgErr != nil {
		logger.Warnf("Config: %v (using defaults)", cfgErr)
	}
	config.ReportUnknownKeys()
	if len(paths) > 0 {
		logger.Debugf("Files specified: %v", paths)
	} else {
		logger.Debugf("No file specified, starting with a scratch buffer.")
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintf(os.Stderr, "%s: standard input and output must be a terminal\n", config.AppName)
		closeLog()
		os.Exit(1)
	}

	// --- Create and Run App ---
	kiteApp, err := app.NewApp(cfg, paths)
	if err != nil {
		logger.Errorf("Error initializing application: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}

	if err := kiteApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", config.AppName, err)
		closeLog()
		os.Exit(1)
	}

	logger.Infof("%s editor finished.", config.AppName)
}

// openLog opens the log destination. "-" is stderr; empty selects the
// default file under the user cache directory.
func openLog(path string) (*os.File, func()) {
	if path == "-" {
		return os.Stderr, func() {}
	}
	if path == "" {
		path = config.DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		stlog.Fatalf("Failed to create log directory for '%s': %v", path, err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		stlog.Fatalf("Failed to open log file '%s': %v", path, err)
	}
	closed := false
	return f, func() {
		if !closed {
			closed = true
			f.Close()
		}
	}
}

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "Usage: %s [flags] [file ...]\n\nFlags:\n", config.AppName)
	flag.PrintDefaults()

	fmt.Fprintf(out, "\nKeys:\n")
	bindings := input.NewInputProcessor().Bindings()
	lines := make([]string, 0, len(bindings))
	for k, action := range bindings {
		lines = append(lines, fmt.Sprintf("  %-12s %s", tcell.KeyNames[k], action))
	}
	lines = append(lines, fmt.Sprintf("  %-12s %s", tcell.KeyNames[wordcount.Key], "WordCount"))
	sort.Strings(lines)
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
}
