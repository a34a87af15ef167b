// Package hclvars declares bindings from `variable` blocks in HCL files:
//
//	variable "verses" {
//	  type  = number
//	  value = 3
//	}
//
//	variable "groove" {
//	  type  = rhythm
//	  value = ["quarter", "eighth", "eighth"]
//	}
package hclvars

import (
	"fmt"
	"log/slog"

	"github.com/World-Enterprise-Collision/MellowD/internal/binding"
	"github.com/World-Enterprise-Collision/MellowD/internal/compiler"
	"github.com/World-Enterprise-Collision/MellowD/internal/fsutil"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

// Plugin declares every variable found at Path in the root scope. Path is
// a single file or a directory of .hcl files.
type Plugin struct {
	compiler.BasePlugin
	Path string
}

type variablesFile struct {
	Variables []*variableBlock `hcl:"variable,block"`
}

type variableBlock struct {
	Name        string         `hcl:"name,label"`
	Type        hcl.Expression `hcl:"type,optional"`
	Value       cty.Value      `hcl:"value"`
	Description string         `hcl:"description,optional"`
}

func (p Plugin) Apply(u *compiler.Unit) error {
	logger := u.Logger()
	logger.Debug("Loading variables.", "path", p.Path)

	files, err := fsutil.FindFiles(p.Path, ".hcl")
	if err != nil {
		return err
	}

	parser := hclparse.NewParser()
	count := 0
	for _, path := range files {
		file, diags := parser.ParseHCLFile(path)
		if diags.HasErrors() {
			return fmt.Errorf("failed to parse variables file %s: %w", path, diags)
		}
		var root variablesFile
		if diags := gohcl.DecodeBody(file.Body, nil, &root); diags.HasErrors() {
			return fmt.Errorf("failed to decode variables file %s: %w", path, diags)
		}

		for _, v := range root.Variables {
			ref, err := translateVariable(logger, v)
			if err != nil {
				return fmt.Errorf("%s: variable '%s': %w", path, v.Name, err)
			}
			if err := u.Root.Declare(v.Name, ref); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			count++
		}
	}
	logger.Debug("Variables declared.", "path", p.Path, "files", len(files), "count", count)
	return nil
}

// translateVariable builds a binding holding the variable's value decoded
// as its declared type.
func translateVariable(logger *slog.Logger, v *variableBlock) (*binding.Reference, error) {
	typ, err := typeExprToRuntimeType(logger, v.Type)
	if err != nil {
		return nil, err
	}
	goVal, err := decode(typ, v.Value)
	if err != nil {
		return nil, err
	}

	ref := binding.New(v.Name, typ)
	if err := ref.Set(goVal); err != nil {
		return nil, err
	}
	logger.Debug("Variable translated.", "name", v.Name, "type", typ.Name())
	return ref, nil
}
