package environment

import (
	"fmt"

	"github.com/World-Enterprise-Collision/MellowD/internal/binding"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
)

// Body is the executable part of a function. It runs in the call scope, in
// which every parameter is already declared.
type Body interface {
	Invoke(scope *Environment, out output.Output) (any, error)
}

// BodyFunc adapts a Go function to a Body.
type BodyFunc func(scope *Environment, out output.Output) (any, error)

func (f BodyFunc) Invoke(scope *Environment, out output.Output) (any, error) {
	return f(scope, out)
}

// Function is a callable definition together with the scope it closes over.
type Function struct {
	Name       string
	Parameters []binding.Parameter
	Body       Body
	Closure    *Environment
}

// Argument is an evaluated call argument. An empty Name makes it positional.
type Argument struct {
	Name  string
	Value any
}

// Positional builds unnamed arguments from values.
func Positional(values ...any) []Argument {
	args := make([]Argument, len(values))
	for i, v := range values {
		args[i] = Argument{Value: v}
	}
	return args
}

// DefineFunction stores a function closing over this scope.
func (e *Environment) DefineFunction(name string, params []binding.Parameter, body Body) error {
	if _, exists := e.functions[name]; exists {
		return fmt.Errorf("%w: function '%s' is already defined in this scope", failure.ErrRedeclared, name)
	}
	seen := make(map[string]bool, len(params))
	for i, p := range params {
		if seen[p.Name()] {
			return fmt.Errorf("%w: function '%s' declares parameter '%s' twice", failure.ErrRedeclared, name, p.Name())
		}
		seen[p.Name()] = true
		if p.IsCollection() && i != len(params)-1 {
			return fmt.Errorf("%w: collection parameter '%s' of '%s' must come last", failure.ErrArity, p.Name(), name)
		}
	}
	e.logger.Debug("Defining function.", "name", name, "parameters", len(params), "depth", e.depth)
	e.functions[name] = &Function{Name: name, Parameters: params, Body: body, Closure: e}
	return nil
}

// LookupFunction finds a function by name, searching outward.
func (e *Environment) LookupFunction(name string) (*Function, error) {
	for scope := e; scope != nil; scope = scope.parent {
		if fn, ok := scope.functions[name]; ok {
			return fn, nil
		}
	}
	return nil, fmt.Errorf("%w: function '%s' is not defined", failure.ErrUnresolved, name)
}

// Call binds args to the parameters of the named function and runs its body
// in a new child of the scope the function was defined in.
func (e *Environment) Call(name string, args []Argument, out output.Output) (any, error) {
	fn, err := e.LookupFunction(name)
	if err != nil {
		return nil, err
	}
	scope, err := fn.bind(args)
	if err != nil {
		return nil, fmt.Errorf("calling '%s': %w", name, err)
	}
	e.logger.Debug("Calling function.", "name", name, "arguments", len(args), "depth", scope.depth)
	result, err := fn.Body.Invoke(scope, out)
	if err != nil {
		return nil, fmt.Errorf("in '%s': %w", name, err)
	}
	return result, nil
}

// bind creates the call scope and fills every parameter from args.
func (fn *Function) bind(args []Argument) (*Environment, error) {
	values := make([]any, len(fn.Parameters))
	supplied := make([]bool, len(fn.Parameters))

	next := 0
	for _, arg := range args {
		if arg.Name != "" {
			continue
		}
		if next >= len(fn.Parameters) {
			return nil, fmt.Errorf("%w: too many arguments, expected at most %d", failure.ErrArity, len(fn.Parameters))
		}
		p := fn.Parameters[next]
		if p.IsCollection() {
			items, _ := values[next].([]any)
			values[next] = append(items, arg.Value)
			supplied[next] = true
			continue
		}
		values[next] = arg.Value
		supplied[next] = true
		next++
	}

	for _, arg := range args {
		if arg.Name == "" {
			continue
		}
		i := fn.indexOf(arg.Name)
		if i < 0 {
			return nil, fmt.Errorf("%w: no parameter named '%s'", failure.ErrArity, arg.Name)
		}
		if supplied[i] {
			return nil, fmt.Errorf("%w: parameter '%s' is given more than once", failure.ErrArity, arg.Name)
		}
		values[i] = arg.Value
		supplied[i] = true
	}

	scope := New(fn.Closure)
	for i, p := range fn.Parameters {
		if !supplied[i] && !p.IsOptional() {
			return nil, fmt.Errorf("%w: parameter '%s' is required", failure.ErrMissingArgument, p.Name())
		}
		ref := p.Binding().Fresh()
		if err := ref.Set(values[i]); err != nil {
			return nil, err
		}
		if err := scope.Declare(p.Name(), ref); err != nil {
			return nil, err
		}
	}
	return scope, nil
}

func (fn *Function) indexOf(name string) int {
	for i, p := range fn.Parameters {
		if p.Name() == name {
			return i
		}
	}
	return -1
}
