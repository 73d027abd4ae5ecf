package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/printers"
	"tableflip.dev/dayplan/pkg/store"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// session is everything a command needs to reach the planner.
type session struct {
	Config      store.Config
	Persistence store.Persistence
	Service     *app.Service
	Logger      *slog.Logger
	Clock       timeutil.Clock
}

// openSession reads the config, opens the store and loads the planner,
// running the daily reset if the date has changed.
func openSession(ctx context.Context) (*session, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, err
	}
	logger := newLogger(cfg.LogLevel())

	p, err := store.Load(cfg)
	if err != nil {
		return nil, err
	}

	clock := timeutil.RealClock{}
	svc, err := app.Open(ctx, p, app.Options{
		Clock:          clock,
		Logger:         logger,
		BackupLimit:    cfg.BackupLimit(),
		SyncEventTasks: cfg.SyncEventTasks(),
	})
	if err != nil {
		return nil, err
	}
	return &session{
		Config:      cfg,
		Persistence: p,
		Service:     svc,
		Logger:      logger,
		Clock:       clock,
	}, nil
}

// newLogger writes text logs to stderr at level; unknown levels mean warn.
func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(level))); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}

type doer interface {
	Do(ctx context.Context) error
}

// runSession opens the planner, builds a runner with it and runs it, routing
// errors through the output options.
func runSession(cmd *cobra.Command, build func(s *session, format printers.Format) (doer, error)) error {
	cmd.SilenceUsage = true
	format, err := output.Format()
	if err != nil {
		return err
	}
	s, err := openSession(cmd.Context())
	if err != nil {
		return output.HandleError(err)
	}
	d, err := build(s, format)
	if err != nil {
		return output.HandleError(err)
	}
	return output.HandleError(d.Do(cmd.Context()))
}
