package steed

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xiam/steed/ast"
)

// Function is the record created by a def form.
type Function struct {
	Name  string
	Param *ast.Node
	Body  []*ast.Node
}

func (f Function) String() string {
	return fmt.Sprintf("<function %s %s>", f.Name, ast.Encode(f.Param))
}

// Binding is a variable created when a function is called. Its name is the
// parameter field of the callee, verbatim, so only a function declared with a
// bare symbol as parameter produces a binding that can ever be looked up.
type Binding struct {
	Param *ast.Node
	Value *Value
}

// Matches returns true if the binding can be referenced by the given name.
func (b Binding) Matches(name string) bool {
	return b.Param != nil && b.Param.IsSymbol(name)
}

// Environment holds the function definitions and the variable bindings of a
// single run. Both are append-only and looked up in insertion order, the
// first match wins. An Environment must not be shared between runs.
type Environment struct {
	id uuid.UUID

	funcs []*Function
	vars  []*Binding
}

func NewEnvironment() *Environment {
	return &Environment{
		id:    uuid.New(),
		funcs: []*Function{},
		vars:  []*Binding{},
	}
}

// ID identifies the run that owns the environment.
func (env *Environment) ID() uuid.UUID {
	return env.id
}

func (env *Environment) Define(fn *Function) {
	env.funcs = append(env.funcs, fn)
}

// Bind appends a new binding, value may be nil for an uninitialized one.
func (env *Environment) Bind(param *ast.Node, value *Value) {
	env.vars = append(env.vars, &Binding{Param: param, Value: value})
}

// Lookup returns the value of the first binding that matches name.
// Uninitialized bindings evaluate to Nil.
func (env *Environment) Lookup(name string) (*Value, bool) {
	for _, b := range env.vars {
		if b.Matches(name) {
			if b.Value == nil {
				return Nil, true
			}
			return b.Value, true
		}
	}
	return nil, false
}

// Function returns the first definition with the given name.
func (env *Environment) Function(name string) (*Function, bool) {
	for _, fn := range env.funcs {
		if fn.Name == name {
			return fn, true
		}
	}
	return nil, false
}

func (env *Environment) Functions() []*Function {
	return env.funcs
}

func (env *Environment) Bindings() []*Binding {
	return env.vars
}
