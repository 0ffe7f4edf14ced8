package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/memgridgo/internal/ctxlog"
	"github.com/specialistvlad/memgridgo/internal/design"
	"github.com/specialistvlad/memgridgo/internal/repository"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	ctx     context.Context
	logger  *slog.Logger
	config  *Config
	library *repository.Memory
}

// NewApp is the constructor for the main application. Results go to outW,
// logs to logW. It loads every document under the configured library paths
// into an in-memory repository; a document that fails to load or collides
// with another is a startup error.
func NewApp(outW, logW io.Writer, cfg *Config, loader design.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	docs, err := loader.Load(ctx, cfg.LibraryPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load library: %w", err)
	}
	logger.Debug("Library documents loaded and translated into unified model.", "count", len(docs))

	lib := repository.NewMemory()
	if err := lib.AddAll(docs); err != nil {
		return nil, fmt.Errorf("failed to populate repository: %w", err)
	}
	logger.Info("Library loaded.", "documents", lib.Len(), "paths", cfg.LibraryPaths)

	return &App{
		outW:    outW,
		ctx:     ctx,
		logger:  logger,
		config:  cfg,
		library: lib,
	}, nil
}

// Library returns the application's repository. This is primarily for testing.
func (a *App) Library() *repository.Memory {
	return a.library
}

// Context returns the application context, which carries its logger.
func (a *App) Context() context.Context {
	return a.ctx
}
