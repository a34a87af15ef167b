package compiler

// Plugin extends a compilation unit, typically by declaring bindings and
// defining functions in its root environment.
type Plugin interface {
	// OnLoad is called once, before Apply.
	OnLoad()
	// OnUnload is called once when the unit is closed.
	OnUnload()
	// Apply installs the plugin into unit.
	Apply(unit *Unit) error
}

// BasePlugin provides no-op lifecycle hooks for plugins to embed.
type BasePlugin struct{}

func (BasePlugin) OnLoad()   {}
func (BasePlugin) OnUnload() {}
