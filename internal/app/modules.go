package app

import (
	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
	"github.com/World-Enterprise-Collision/MellowD/plugins/core"
	"github.com/World-Enterprise-Collision/MellowD/plugins/envvars"
	"github.com/World-Enterprise-Collision/MellowD/plugins/hclvars"
)

// defaultPlugins is the plugin set an App applies when none is given:
// the builtins, the prefixed environment variables and, when configured,
// the variables file.
func defaultPlugins(cfg *Config) []compiler.Plugin {
	plugins := []compiler.Plugin{
		core.Plugin{},
		envvars.Plugin{Prefix: cfg.EnvPrefix},
	}
	if cfg.VariablesPath != "" {
		plugins = append(plugins, hclvars.Plugin{Path: cfg.VariablesPath})
	}
	return plugins
}
