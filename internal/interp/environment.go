package interp

import "github.com/loxi-lang/loxi/internal/lexer"

// Environment is a chained name-to-value mapping modeling lexical
// scope. Environments form a tree rooted at globals; a function value
// holds a shared reference to the Environment active at its
// definition site, so multiple closures can reference (and mutate)
// the same enclosing bindings ("closure capture"). Because Go already
// gives *Environment reference semantics and its map has interior
// mutability by default, no extra synchronization wrapper is needed
// for the single-threaded execution model this interpreter assumes.
type Environment struct {
	enclosing *Environment
	values    map[string]any
}

// NewEnvironment creates a root environment with no enclosing scope.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]any)}
}

// NewEnclosedEnvironment creates an environment nested inside
// enclosing.
func NewEnclosedEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing: enclosing, values: make(map[string]any)}
}

// Define binds name to value in this environment, always writing
// locally. Defining a name that already exists in this environment
// simply overwrites it: shadowing is legal at runtime even though the
// resolver forbids re-declaring a name within the very same static
// scope.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get looks up name, searching enclosing environments if not found
// locally, and reports a runtime error if the name is bound nowhere.
func (e *Environment) Get(name lexer.Token) (any, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.enclosing != nil {
		return e.enclosing.Get(name)
	}
	return nil, newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// Assign overwrites an existing binding for name, searching enclosing
// environments if necessary. Assignment never creates a new binding:
// assigning to a name bound nowhere is a runtime error.
func (e *Environment) Assign(name lexer.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.enclosing != nil {
		return e.enclosing.Assign(name, value)
	}
	return newRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
}

// ancestor walks exactly distance enclosing links from e. The
// resolver guarantees that any distance it records is reachable, so
// callers never need a nil check after this returns.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance enclosings
// above e, skipping the fallback search Get performs.
func (e *Environment) GetAt(distance int, name string) any {
	return e.ancestor(distance).values[name]
}

// AssignAt writes value directly into the environment distance
// enclosings above e.
func (e *Environment) AssignAt(distance int, name string, value any) {
	e.ancestor(distance).values[name] = value
}
