package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/jackzampolin/gdtriage/internal/config"
	"github.com/jackzampolin/gdtriage/internal/drive"
	"github.com/jackzampolin/gdtriage/internal/home"
	"github.com/jackzampolin/gdtriage/internal/triage"
)

// runEnv bundles everything a workflow command needs after setup.
type runEnv struct {
	home   *home.Dir
	cfgMgr *config.Manager
	cfg    *config.Config
	store  *drive.GoogleStore
	logger *slog.Logger
}

// newLogger builds the process logger honoring the --verbose flag.
func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

// setup resolves the home directory, loads configuration, and authenticates
// against Google Drive. Any failure here is fatal to the run — these are the
// only conditions allowed to abort the process.
func setup(ctx context.Context) (*runEnv, error) {
	logger := newLogger()

	h, err := home.New(homeDir)
	if err != nil {
		return nil, err
	}
	if err := h.EnsureExists(); err != nil {
		return nil, err
	}

	path := cfgFile
	if path == "" && h.ConfigExists() {
		path = h.ConfigPath()
	}
	mgr, err := config.NewManager(path)
	if err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	credentials := cfg.Drive.CredentialsFile
	if credentials == "" {
		credentials = h.CredentialsPath()
	}
	token := cfg.Drive.TokenFile
	if token == "" {
		token = h.TokenPath()
	}

	ts, err := drive.TokenSource(ctx, credentials, token, logger)
	if err != nil {
		return nil, fmt.Errorf("authentication failed: %w", err)
	}
	store, err := drive.NewGoogleStore(ctx, ts, logger)
	if err != nil {
		return nil, err
	}

	return &runEnv{home: h, cfgMgr: mgr, cfg: cfg, store: store, logger: logger}, nil
}

// watchPause hot-reloads the inter-document pause from the config file while
// a run is in progress. Runs over a large Drive can take many minutes, so
// editing triage.pause_millis is the way to back off when the API starts
// rate-limiting without restarting the run.
func (e *runEnv) watchPause(runner *triage.Runner) {
	e.cfgMgr.OnChange(func(c *config.Config) {
		runner.SetPause(time.Duration(c.Triage.PauseMillis) * time.Millisecond)
		e.logger.Info("configuration reloaded", "pause_millis", c.Triage.PauseMillis)
	})
	e.cfgMgr.WatchConfig()
}

// runnerConfig translates file configuration into runner settings.
func (e *runEnv) runnerConfig() triage.Config {
	return triage.Config{
		Store:       e.store,
		Logger:      e.logger,
		Pause:       time.Duration(e.cfg.Triage.PauseMillis) * time.Millisecond,
		CharLimit:   e.cfg.Triage.TitleCharLimit,
		MaxTitleLen: e.cfg.Triage.TitleMaxLength,
	}
}
