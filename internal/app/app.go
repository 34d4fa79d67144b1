package app

import (
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/vk/propconf/internal/config"
	"github.com/vk/propconf/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	loader   config.Loader
	registry *registry.Registry
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated, run-tagged logger and a
// registry populated from the given method libraries (the compiled-in set
// when none are passed).
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, modules ...registry.Module) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW).
		With("run_id", uuid.NewString())
	logger.Debug("Logger configured successfully.")

	reg := registry.New()
	if len(modules) == 0 {
		modules = coreModules
	}
	for _, mod := range modules {
		mod.Register(reg)
	}
	logger.Debug("All method libraries registered.", "count", len(modules))

	return &App{
		outW:     outW,
		logger:   logger,
		config:   appConfig,
		loader:   loader,
		registry: reg,
	}
}
