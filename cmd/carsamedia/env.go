package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/carsamedia/internal/config"
	"github.com/vovakirdan/carsamedia/internal/core"
	"github.com/vovakirdan/carsamedia/internal/storage"
)

// newLogger opens the log file. The terminal belongs to Bubble Tea, so logs
// never go to stdout; if the file cannot be opened logging is discarded.
func newLogger() (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closer := func() {}

	path, err := storage.ExpandPath(flagLogFile)
	if err == nil {
		err = os.MkdirAll(filepath.Dir(path), 0o755)
	}
	if err == nil {
		var f *os.File
		f, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err == nil {
			w = f
			closer = func() { f.Close() }
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "carsamedia",
	})
	return logger, closer
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.Seed = flagSeed
	return cfg
}

// loadAppConfig loads app settings, exiting on a bad explicit path.
func loadAppConfig() config.AppConfig {
	cfg, err := config.LoadApp(flagAppConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}
