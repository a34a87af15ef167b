package hclvars

import (
	"fmt"
	"log/slog"

	"github.com/World-Enterprise-Collision/MellowD/internal/beat"
	"github.com/World-Enterprise-Collision/MellowD/internal/executable"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/music"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// typeExprToRuntimeType resolves a type expression. Keywords are the
// binding type names (`number`, `melody`, `pitch`, ...); `list(x)` and
// `set(x)` make collections. A missing expression means any.
func typeExprToRuntimeType(logger *slog.Logger, expr hcl.Expression) (*rtype.Type, error) {
	if expr == nil {
		return rtype.Any, nil
	}
	if call, diags := hcl.ExprCall(expr); !diags.HasErrors() {
		if call.Name != "list" && call.Name != "set" {
			return nil, fmt.Errorf("unknown type constructor %q", call.Name)
		}
		if len(call.Arguments) != 1 {
			return nil, fmt.Errorf("%s() takes exactly one element type, got %d", call.Name, len(call.Arguments))
		}
		elem, err := typeExprToRuntimeType(logger, call.Arguments[0])
		if err != nil {
			return nil, err
		}
		if elem.Kind() == rtype.KindAny {
			return nil, fmt.Errorf("collection types cannot contain type 'any'")
		}
		logger.Debug("Resolved collection type.", "element", elem.Name())
		return rtype.CollectionOf(elem), nil
	}
	if keyword := hcl.ExprAsKeyword(expr); keyword != "" {
		typ, ok := executable.TypeByName(keyword)
		if !ok {
			return nil, fmt.Errorf("unknown type %q", keyword)
		}
		return typ, nil
	}
	// gohcl fills an absent optional attribute with a null expression.
	if _, isSyntax := expr.(hclsyntax.Expression); !isSyntax {
		if val, diags := expr.Value(nil); !diags.HasErrors() && val.IsNull() {
			return rtype.Any, nil
		}
	}
	return nil, fmt.Errorf("unsupported expression for type definition: %T", expr)
}

// decode converts val to the Go value a binding of typ holds. Primitives go
// through cty conversion; beats and pitches are written by name ("eighth",
// "F#3") and rhythms as lists of beat names.
func decode(typ *rtype.Type, val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}
	if !val.IsWhollyKnown() {
		return nil, fmt.Errorf("value is not known")
	}

	switch {
	case typ.Kind() == rtype.KindAny:
		return toGo(val)
	case typ.IsCollection():
		items := []any{}
		err := eachElement(val, func(elem cty.Value) error {
			item, err := decode(typ.Elem(), elem)
			items = append(items, item)
			return err
		})
		return items, err
	case typ == executable.TypeBeat:
		return decodeBeat(val)
	case typ == executable.TypePitch:
		name, err := decodeString(val)
		if err != nil {
			return nil, err
		}
		return music.ParsePitch(name)
	case typ == executable.TypeRhythm:
		rhythm := beat.Rhythm{}
		err := eachElement(val, func(elem cty.Value) error {
			b, err := decodeBeat(elem)
			rhythm = append(rhythm, b)
			return err
		})
		return rhythm, err
	case typ.Kind() == rtype.KindCustom:
		return nil, fmt.Errorf("%w: type %s cannot be written in a variables file", failure.ErrInvalidArgument, typ.Name())
	}

	converted, err := convert.Convert(val, typ.Cty())
	if err != nil {
		return nil, fmt.Errorf("value does not match type %s: %w", typ.Name(), err)
	}
	return toGo(converted)
}

func eachElement(val cty.Value, fn func(cty.Value) error) error {
	t := val.Type()
	if !t.IsListType() && !t.IsSetType() && !t.IsTupleType() {
		return fmt.Errorf("value does not match type: expected a list, got %s", t.FriendlyName())
	}
	for it := val.ElementIterator(); it.Next(); {
		_, elem := it.Element()
		if err := fn(elem); err != nil {
			return err
		}
	}
	return nil
}

func decodeString(val cty.Value) (string, error) {
	converted, err := convert.Convert(val, cty.String)
	if err != nil || converted.IsNull() {
		return "", fmt.Errorf("value does not match type: expected a name, got %s", val.Type().FriendlyName())
	}
	return converted.AsString(), nil
}

func decodeBeat(val cty.Value) (beat.Beat, error) {
	name, err := decodeString(val)
	if err != nil {
		return beat.Beat{}, err
	}
	b, ok := beat.ByName(name)
	if !ok {
		return beat.Beat{}, fmt.Errorf("%w: unknown duration %q", failure.ErrInvalidArgument, name)
	}
	return b, nil
}

// toGo converts a known cty value into the Go values bindings hold. Whole
// numbers become int, other numbers float64, sequences []any and objects
// map[string]any.
func toGo(val cty.Value) (any, error) {
	if val.IsNull() {
		return nil, nil
	}

	t := val.Type()
	switch {
	case t == cty.String:
		return val.AsString(), nil
	case t == cty.Bool:
		return val.True(), nil
	case t == cty.Number:
		if val.AsBigFloat().IsInt() {
			var i int
			if err := gocty.FromCtyValue(val, &i); err == nil {
				return i, nil
			}
		}
		var f float64
		if err := gocty.FromCtyValue(val, &f); err != nil {
			return nil, err
		}
		return f, nil
	case t.IsListType() || t.IsSetType() || t.IsTupleType():
		items := []any{}
		err := eachElement(val, func(elem cty.Value) error {
			v, err := toGo(elem)
			items = append(items, v)
			return err
		})
		return items, err
	case t.IsObjectType() || t.IsMapType():
		fields := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			key, elem := it.Element()
			v, err := toGo(elem)
			if err != nil {
				return nil, err
			}
			fields[key.AsString()] = v
		}
		return fields, nil
	default:
		return nil, fmt.Errorf("unsupported value of type %s", t.FriendlyName())
	}
}
