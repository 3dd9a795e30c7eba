package bval

import "io"

// Environment holds an ordered sequence of (name, value) pairs and an
// optional parent. Names within one environment are unique; Put overwrites
// an existing binding in place. The root (global) environment has no
// parent. A Lambda's private environment holds a non-owning pointer to its
// current parent chain, reassigned on each call (see the beval package) —
// Environment itself stays a plain tree, never persisting a cycle.
type Environment struct {
	parent *Environment
	names  []string
	values []Value

	// Stdout is where print/show write when set directly on this
	// environment. A Lambda's private environment is built empty (see
	// NewLambda) and only gains a parent at call time, so reading this
	// field directly would miss output configured on the caller; use
	// Writer, which walks the parent chain, instead of this field.
	Stdout io.Writer
}

// NewEnvironment builds a parentless (root) environment.
func NewEnvironment() *Environment { return &Environment{} }

// NewChildEnvironment builds an environment whose parent chain starts at
// parent.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{parent: parent, Stdout: parent.Stdout}
}

// Parent returns this environment's parent, or nil at the root.
func (env *Environment) Parent() *Environment { return env.parent }

// SetParent rebinds this environment's parent chain. A Lambda's captured
// environment has its parent assigned here immediately before its body is
// evaluated; no reference to the caller's environment is kept once the call
// returns, since the Lambda value making this call is deep-copied on every
// read (see Copy), so no persistent cycle can form.
func (env *Environment) SetParent(parent *Environment) { env.parent = parent }

// Writer returns the output destination print/show/load should use,
// searching this environment's own Stdout field and then its parent chain.
// A Lambda's private environment has no Stdout of its own until SetParent
// links it to its caller for the duration of a call, so builtins must reach
// an environment's configured writer through Writer rather than the Stdout
// field directly, or output produced inside a lambda body would silently
// fall back to a default instead of the caller's configured destination.
// Returns nil if no environment in the chain has one configured.
func (env *Environment) Writer() io.Writer {
	for e := env; e != nil; e = e.parent {
		if e.Stdout != nil {
			return e.Stdout
		}
	}
	return nil
}

// Get searches this environment, then the parent chain, and returns an
// independent copy of the stored value, or an Err("Unbound symbol: '<name>'")
// if name is bound nowhere in the chain.
func (env *Environment) Get(name string) Value {
	for e := env; e != nil; e = e.parent {
		for i, n := range e.names {
			if n == name {
				return e.values[i].Copy()
			}
		}
	}
	return NewErr("Unbound symbol: '%s'", name)
}

// Put writes into this environment only: if name already exists here, its
// value is replaced; otherwise a new binding is appended. The stored copy is
// independent of val.
func (env *Environment) Put(name string, val Value) {
	for i, n := range env.names {
		if n == name {
			env.values[i] = val.Copy()
			return
		}
	}
	env.names = append(env.names, name)
	env.values = append(env.values, val.Copy())
}

// Def traverses to the root environment, then Puts there.
func (env *Environment) Def(name string, val Value) {
	root := env
	for root.parent != nil {
		root = root.parent
	}
	root.Put(name, val)
}

// Copy deep-copies the name list and all values, preserving the same parent
// pointer. Used when partially applying a Lambda (an independent copy of
// the partially-bound closure is returned to the caller).
func (env *Environment) Copy() *Environment {
	cp := &Environment{parent: env.parent, Stdout: env.Stdout}
	if len(env.names) > 0 {
		cp.names = append([]string(nil), env.names...)
		cp.values = make([]Value, len(env.values))
		for i, v := range env.values {
			cp.values[i] = v.Copy()
		}
	}
	return cp
}

// Names returns the Symbols bound directly in this environment (not its
// parent chain), in binding order — the frame the `values` builtin reports
// on.
func (env *Environment) Names() []Value {
	out := make([]Value, len(env.names))
	for i, n := range env.names {
		out[i] = Symbol(n)
	}
	return out
}
