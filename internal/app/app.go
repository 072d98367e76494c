package app

import (
	"context"
	"io"
	"log/slog"

	"github.com/specialistvlad/figcore/internal/ctxlog"
	"github.com/specialistvlad/figcore/internal/plots"
	"github.com/specialistvlad/figcore/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *registry.Registry
	supplier *plots.Supplier
	config   *Config
}

// NewApp is the constructor for the main application. Results go to outW,
// logs to logW. It builds an isolated logger and registry; with no modules
// given, the core modules are registered.
func NewApp(outW, logW io.Writer, cfg *Config, modules ...registry.Module) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg := registry.New(plots.BaseLayoutAttributes(), plots.BaseTraceAttributes())
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All Go modules registered.", "count", len(modules))

	// A schema that fails validation is a programmer error, so we panic.
	if err := reg.ValidateRegistry(ctx); err != nil {
		panic(err)
	}
	logger.Debug("Registry validation passed.")

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		supplier: plots.NewSupplier(reg),
		config:   cfg,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
