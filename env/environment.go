/*
File: tjscript/env/environment.go

Package env implements the tj language's variable store: a flat,
insertion-ordered mapping from name to typed variable slot, adapted from
the teacher codebase's scope.Scope. Unlike Scope, Environment has no
parent chain - this language has no nested scoping - and first insertion
wins: redeclaring an existing name is a reported error rather than a
silent shadow.
*/
package env

import "github.com/nsethi-dev/tjscript/tjerr"

// Type is a variable's declared type.
type Type string

const (
	Int  Type = "int"
	Text Type = "text"
)

// Variable is one slot in the Environment: a declared name, its type, and
// its current value. INT values are stored in canonical decimal text form,
// matching the language's "everything is text under the hood" invariant.
type Variable struct {
	Name  string
	Type  Type
	Value string
}

// Environment is the flat variable store live for the duration of a
// program. Lookup is by name only - the language has no scoping - and a
// slice plus index map keeps insertion order (needed for --dump-env)
// while giving O(1) lookup.
type Environment struct {
	vars  []*Variable
	index map[string]int
}

// New creates an empty Environment.
func New() *Environment {
	return &Environment{index: make(map[string]int)}
}

// Declare adds a new variable of the given type with an empty initial
// value and returns it. Declaring a name that already exists is an error -
// the source silently appended a second, unreachable entry; this
// reimplementation treats that as a mistake.
func (e *Environment) Declare(line int, name string, typ Type) (*Variable, error) {
	if _, ok := e.index[name]; ok {
		return nil, tjerr.New(line, "variable %q is already declared", name)
	}
	v := &Variable{Name: name, Type: typ, Value: ""}
	e.index[name] = len(e.vars)
	e.vars = append(e.vars, v)
	return v, nil
}

// Lookup returns the variable bound to name, or a fatal error if none
// exists.
func (e *Environment) Lookup(line int, name string) (*Variable, error) {
	idx, ok := e.index[name]
	if !ok {
		return nil, tjerr.New(line, "Variable not found: %s", name)
	}
	return e.vars[idx], nil
}

// All returns the variables in declaration order, for diagnostics
// (--dump-env) and tests. The returned slice is a copy; callers must not
// assume it aliases internal state.
func (e *Environment) All() []Variable {
	out := make([]Variable, len(e.vars))
	for i, v := range e.vars {
		out[i] = *v
	}
	return out
}
