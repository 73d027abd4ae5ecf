package mcp

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"tableflip.dev/dayplan/pkg/app"
	"tableflip.dev/dayplan/pkg/timeutil"
)

// RolloverInterval is how often the server checks for a new day.
const RolloverInterval = time.Second

// Runner coordinates MCP server startup over stdio.
type Runner struct {
	Service *app.Service
	Name    string
	Version string
	Logger  *slog.Logger
	Clock   timeutil.Clock
}

// Do serves MCP on stdin/stdout until ctx is done or stdin closes.
func (r Runner) Do(ctx context.Context) error {
	if r.Service == nil {
		return errors.New("mcp runner requires a planner")
	}
	name := r.Name
	if name == "" {
		name = "dayplan"
	}
	version := r.Version
	if version == "" {
		version = "dev"
	}
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	srv := server.NewMCPServer(
		fmt.Sprintf("%s MCP", name),
		version,
		server.WithResourceCapabilities(false, false),
		server.WithToolCapabilities(false),
		server.WithInstructions("Plan the day: read and edit today's routine tasks, scheduled events, presets and backups. Every change is saved immediately."),
		server.WithResourceRecovery(),
		server.WithRecovery(),
	)

	svc := NewService(r.Service)
	registerResources(srv, svc)
	registerTools(srv, svc)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go timeutil.Every(ctx, RolloverInterval, r.Clock, func(time.Time) {
		if _, err := svc.CheckRollover(ctx); err != nil {
			logger.Warn("daily reset failed", "err", err)
		}
	})

	return server.NewStdioServer(srv).Listen(ctx, os.Stdin, os.Stdout)
}
