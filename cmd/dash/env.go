package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/logging"
	"github.com/vovakirdan/tui-dash/internal/progress"
	"github.com/vovakirdan/tui-dash/internal/spectate"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// env bundles what most commands open from the global flags.
type env struct {
	cfg     config.DashConfig
	store   *storage.Store
	profile storage.ProfileStore
	record  *progress.Record
	logger  *log.Logger
	closers []io.Closer
}

// openEnv loads the config and the profile's progress. With fileLog the
// logger appends to the log file instead of stderr, for commands that hand
// the terminal to the TUI.
func openEnv(fileLog bool) (*env, error) {
	e := &env{}

	opts := logging.Options{Prefix: "dash", Level: flagLogLevel}
	if fileLog {
		logger, closer, err := logging.OpenFile(logging.DefaultFilePath(), opts)
		if err != nil {
			return nil, err
		}
		e.logger = logger
		e.closers = append(e.closers, closer)
	} else {
		logger, err := logging.New(opts)
		if err != nil {
			return nil, err
		}
		e.logger = logger
	}

	cfg, err := config.LoadDash(flagConfig)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.cfg = cfg

	store, err := storage.Open(flagDBPath)
	if err != nil {
		e.Close()
		return nil, err
	}
	e.store = store
	e.closers = append(e.closers, store)

	e.profile = store.Profile(flagProfile)
	rec, err := e.profile.Load()
	if err != nil {
		e.Close()
		return nil, err
	}
	e.record = rec

	e.logger.Debug("environment ready", "db", flagDBPath, "profile", e.profile.Name(), "coins", rec.Coins)
	return e, nil
}

// Close releases the store and the log file, last opened first.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		e.closers[i].Close()
	}
	e.closers = nil
}

// runtimeConfig reads the terminal size, falling back to 80x24.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// startSpectator serves the spectator endpoints on addr. The returned hub
// is the frame sink to hand to runs.
func startSpectator(addr string, scores spectate.ScoreSource, logger *log.Logger) (*spectate.Hub, *spectate.Server, error) {
	hub := spectate.NewHub(logger.With("component", "spectate"))
	srv := spectate.NewServer(hub, scores)
	bound, err := srv.Start(addr)
	if err != nil {
		hub.Close()
		return nil, nil, fmt.Errorf("cannot start spectator server: %w", err)
	}
	logger.Debug("spectator bound", "address", bound)
	return hub, srv, nil
}

// stopSpectator disconnects all watchers and stops the listener.
func stopSpectator(srv *spectate.Server) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(ctx)
}
