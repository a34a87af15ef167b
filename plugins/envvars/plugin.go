// Package envvars declares a string binding for every environment variable
// carrying a prefix. MELLOWD_TITLE=Etude becomes the binding `title`.
package envvars

import (
	"os"
	"strings"

	"github.com/World-Enterprise-Collision/MellowD/internal/binding"
	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
)

// DefaultPrefix is used when Plugin.Prefix is empty.
const DefaultPrefix = "MELLOWD_"

// Plugin reads the process environment when applied.
type Plugin struct {
	compiler.BasePlugin
	Prefix string
}

func (p Plugin) Apply(u *compiler.Unit) error {
	prefix := p.Prefix
	if prefix == "" {
		prefix = DefaultPrefix
	}

	count := 0
	for _, e := range os.Environ() {
		key, value, ok := strings.Cut(e, "=")
		if !ok {
			continue
		}
		name, ok := strings.CutPrefix(key, prefix)
		if !ok || name == "" {
			continue
		}
		name = strings.ToLower(name)
		ref := binding.New(name, rtype.String)
		if err := ref.Set(value); err != nil {
			return err
		}
		if err := u.Root.Declare(name, ref); err != nil {
			return err
		}
		count++
	}
	u.Logger().Debug("Environment bindings declared.", "prefix", prefix, "count", count)
	return nil
}
