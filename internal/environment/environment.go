package environment

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/World-Enterprise-Collision/MellowD/internal/binding"
	"github.com/World-Enterprise-Collision/MellowD/internal/failure"
)

// Environment is one lexical scope.
type Environment struct {
	bindings  map[string]*binding.Reference
	functions map[string]*Function
	parent    *Environment
	logger    *slog.Logger
	depth     int
}

// NewRoot creates the process-wide root scope of a compilation.
func NewRoot(logger *slog.Logger) *Environment {
	if logger == nil {
		logger = slog.Default()
	}
	return &Environment{
		bindings:  make(map[string]*binding.Reference),
		functions: make(map[string]*Function),
		logger:    logger,
	}
}

// New creates a child scope of parent. A nil parent creates a root scope
// with the default logger.
func New(parent *Environment) *Environment {
	if parent == nil {
		return NewRoot(nil)
	}
	env := NewRoot(parent.logger)
	env.parent = parent
	env.depth = parent.depth + 1
	return env
}

// Parent returns the enclosing scope, nil for a root.
func (e *Environment) Parent() *Environment { return e.parent }

// Logger returns the logger shared by the scope chain.
func (e *Environment) Logger() *slog.Logger { return e.logger }

// Depth is the number of enclosing scopes.
func (e *Environment) Depth() int { return e.depth }

// Declare binds name in this scope. Shadowing an enclosing scope's binding
// is allowed; declaring the same name twice in one scope is not.
func (e *Environment) Declare(name string, ref *binding.Reference) error {
	if _, exists := e.bindings[name]; exists {
		return fmt.Errorf("%w: '%s' is already declared in this scope", failure.ErrRedeclared, name)
	}
	e.logger.Debug("Declaring binding.", "name", name, "type", ref.Type().Name(), "depth", e.depth)
	e.bindings[name] = ref
	return nil
}

// Lookup finds the reference bound to name, searching outward.
func (e *Environment) Lookup(name string) (*binding.Reference, error) {
	for scope := e; scope != nil; scope = scope.parent {
		if ref, ok := scope.bindings[name]; ok {
			return ref, nil
		}
	}
	return nil, fmt.Errorf("%w: '%s' is not declared", failure.ErrUnresolved, name)
}

// IsDeclaredLocally reports whether name is bound in this scope itself.
func (e *Environment) IsDeclaredLocally(name string) bool {
	_, ok := e.bindings[name]
	return ok
}

// Names returns the names bound in this scope, sorted.
func (e *Environment) Names() []string {
	return sortedKeys(e.bindings)
}

// FunctionNames returns the functions defined in this scope, sorted.
func (e *Environment) FunctionNames() []string {
	return sortedKeys(e.functions)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
