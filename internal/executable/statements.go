package executable

import (
	"fmt"

	"github.com/World-Enterprise-Collision/MellowD/internal/binding"
	"github.com/World-Enterprise-Collision/MellowD/internal/environment"
	"github.com/World-Enterprise-Collision/MellowD/internal/output"
	"github.com/World-Enterprise-Collision/MellowD/internal/rtype"
)

// Declare introduces a binding in the current scope. A nil Type declares a
// dynamically typed binding; a nil Value leaves it empty. The initializer
// is evaluated before the name exists, so it still sees an outer binding of
// the same name.
type Declare struct {
	Name  string
	Type  *rtype.Type
	Value Expression[any]
}

func (d Declare) Execute(env *environment.Environment, _ output.Output) error {
	ref := binding.New(d.Name, d.Type)
	if d.Value != nil {
		v, err := d.Value.Evaluate(env)
		if err != nil {
			return err
		}
		if err := ref.Set(v); err != nil {
			return err
		}
	}
	return env.Declare(d.Name, ref)
}

// Assign stores a new value in an existing binding.
type Assign struct {
	Name  string
	Value Expression[any]
}

func (a Assign) Execute(env *environment.Environment, _ output.Output) error {
	v, err := a.Value.Evaluate(env)
	if err != nil {
		return err
	}
	ref, err := env.Lookup(a.Name)
	if err != nil {
		return err
	}
	return ref.Set(v)
}

// ExpressionStatement runs an expression for its side effects and drops the
// value.
type ExpressionStatement[T any] struct {
	Expression Expression[T]
}

func (e ExpressionStatement[T]) Execute(env *environment.Environment, _ output.Output) error {
	_, err := e.Expression.Evaluate(env)
	return err
}

// Block runs statements in order inside a new child scope.
type Block struct {
	Statements []Statement
}

func (b Block) Execute(env *environment.Environment, out output.Output) error {
	return b.run(environment.New(env), out)
}

// run executes the statements directly in scope.
func (b Block) run(scope *environment.Environment, out output.Output) error {
	for i, stmt := range b.Statements {
		if err := stmt.Execute(scope, out); err != nil {
			scope.Logger().Debug("Statement failed.", "index", i, "depth", scope.Depth(), "error", err)
			return fmt.Errorf("statement %d: %w", i+1, err)
		}
	}
	return nil
}

// DefineFunction installs a user function in the current scope. Calls run
// Body in the call scope and then evaluate Result there, if set, as the
// value of the call.
type DefineFunction struct {
	Name       string
	Parameters []binding.Parameter
	Body       Block
	Result     Expression[any]
}

func (d DefineFunction) Execute(env *environment.Environment, _ output.Output) error {
	return env.DefineFunction(d.Name, d.Parameters, functionBody{body: d.Body, result: d.Result})
}

type functionBody struct {
	body   Block
	result Expression[any]
}

func (f functionBody) Invoke(scope *environment.Environment, out output.Output) (any, error) {
	if err := f.body.run(scope, out); err != nil {
		return nil, err
	}
	if f.result == nil {
		return nil, nil
	}
	return f.result.Evaluate(scope)
}
