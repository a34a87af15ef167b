package app

import (
	"io"
	"log/slog"

	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
)

// App compiles programs with one configuration and plugin set.
type App struct {
	logger  *slog.Logger
	config  *Config
	plugins []compiler.Plugin
}

// NewApp creates an App logging to logW. Without explicit plugins it uses
// defaultPlugins.
func NewApp(logW io.Writer, cfg *Config, plugins ...compiler.Plugin) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	if len(plugins) == 0 {
		plugins = defaultPlugins(cfg)
	}
	logger.Debug("App configured.", "plugins", len(plugins), "format", cfg.Format, "output", cfg.OutputPath)
	return &App{logger: logger, config: cfg, plugins: plugins}
}

// Plugins returns the plugins applied to every compilation. This is
// primarily for testing.
func (a *App) Plugins() []compiler.Plugin {
	return a.plugins
}
