package bval

import "reflect"

// BuiltinFunc is a native operation. It receives the already-evaluated
// argument S-Expression, takes ownership of it, and returns a value —
// possibly an Err, since errors are first-class and never exceptions.
type BuiltinFunc func(env *Environment, args *SExpr) Value

// Builtin is an opaque native function handle bound into an environment
// under some name.
type Builtin struct {
	Name string
	Fn   BuiltinFunc
}

// NewBuiltin wraps a native function under the given name.
func NewBuiltin(name string, fn BuiltinFunc) *Builtin { return &Builtin{Name: name, Fn: fn} }

func (*Builtin) Kind() Kind { return KindBuiltin }

// Copy returns the same handle: a Builtin carries no mutable state, so
// copying it is identity-preserving, the same way the original copied a
// builtin's function pointer rather than cloning it.
func (b *Builtin) Copy() Value { return b }

// IsEqual compares the underlying function by its compiled entry point.
// reflect.Value.Pointer() identifies that entry point, not a closure's
// captured state, so every Fn registered here must be its own distinct
// top-level function — never one instance among several minted from the
// same func-literal template, which would all share one entry point and
// compare equal to each other regardless of what each closed over.
func (b *Builtin) IsEqual(other Value) bool {
	o, ok := other.(*Builtin)
	if !ok {
		return false
	}
	return reflect.ValueOf(b.Fn).Pointer() == reflect.ValueOf(o.Fn).Pointer()
}

func (b *Builtin) String() string { return "<builtin: " + b.Name + ">" }
