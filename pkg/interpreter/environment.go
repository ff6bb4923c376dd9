package interpreter

import (
	"glox/pkg/token"
)

// Environment is one lexical scope. Closures keep a pointer to the scope
// they were defined in, so a scope lives as long as any function that
// captured it.
type Environment struct {
	enclosing *Environment
	values    map[string]any
}

func NewEnvironment(enclosing *Environment) *Environment {
	return &Environment{enclosing, make(map[string]any)}
}

// Define binds name in this scope only, shadowing any outer binding and
// overwriting an earlier one in the same scope.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

func (e *Environment) Get(name token.Token) (any, error) {
	for env := e; env != nil; env = env.enclosing {
		if val, ok := env.values[name.Lexeme]; ok {
			return val, nil
		}
	}

	return nil, undefined(name)
}

// Assign updates the nearest scope that binds name. It never creates a
// binding.
func (e *Environment) Assign(name token.Token, value any) error {
	for env := e; env != nil; env = env.enclosing {
		if _, ok := env.values[name.Lexeme]; ok {
			env.values[name.Lexeme] = value
			return nil
		}
	}

	return undefined(name)
}

func (e *Environment) Enclosing() *Environment {
	return e.enclosing
}

func undefined(name token.Token) error {
	return &RuntimeError{
		Token:   name,
		Message: "Undefined variable '" + name.Lexeme + "'.",
		Err:     ErrUndefined,
	}
}
