// Package beval evaluates bval values against an Environment. It is the
// direct analogue of lval_eval/lval_eval_sexpr/lval_call in the original
// interpreter, kept as a small single-pass tree walk rather than a compiled
// bytecode pipeline.
package beval

import "blisp/bval"

// Eval reduces v in env. Symbols resolve against the environment; every
// other kind of composite or atom is either reduced (S-Expression) or
// returned unchanged.
func Eval(env *bval.Environment, v bval.Value) bval.Value {
	switch v.Kind() {
	case bval.KindSymbol:
		return env.Get(string(v.(bval.Symbol)))
	case bval.KindSExpr:
		return evalSExpr(env, v.(*bval.SExpr))
	default:
		return v
	}
}

// evalSExpr reduces every child, short-circuits on the first Error,
// resolves empty/singleton expressions, then applies the evaluated head to
// the remaining evaluated arguments.
func evalSExpr(env *bval.Environment, s *bval.SExpr) bval.Value {
	children := make([]bval.Value, len(s.Children))
	for i, c := range s.Children {
		r := Eval(env, c)
		if bval.IsError(r) {
			return r
		}
		children[i] = r
	}

	if len(children) == 0 {
		return bval.NewSExpr()
	}
	if len(children) == 1 {
		return children[0]
	}

	first, args := children[0], children[1:]
	if !bval.IsCallable(first) {
		return bval.NewErr("S-Expression starts with incorrect type. Got %s, Expected %s",
			bval.TypeName(first), "Function")
	}
	return Apply(env, first, bval.NewSExpr(args...))
}

// Apply invokes a Builtin directly, or binds a Lambda's formals to args —
// partially, if fewer arguments than formals are given, fully (evaluating
// the body) otherwise. The calling environment env becomes the parent of a
// fully-applied Lambda's private environment for the duration of that call;
// no reference to env survives afterward, since every read out of an
// Environment returns a copy.
func Apply(env *bval.Environment, fn bval.Value, args *bval.SExpr) bval.Value {
	switch f := fn.(type) {
	case *bval.Builtin:
		return f.Fn(env, args)
	case *bval.Lambda:
		return applyLambda(env, f, args)
	default:
		return bval.NewErr("S-Expression starts with incorrect type. Got %s, Expected %s",
			bval.TypeName(fn), "Function")
	}
}

func applyLambda(env *bval.Environment, f *bval.Lambda, args *bval.SExpr) bval.Value {
	formals := append([]bval.Value(nil), f.Formals.Children...)
	given := len(args.Children)
	total := len(formals)
	remaining := append([]bval.Value(nil), args.Children...)

	for len(remaining) > 0 {
		if len(formals) == 0 {
			return bval.NewErr("Function passed too many arguments. Got %d, Expected %d.", given, total)
		}
		sym := formals[0].(bval.Symbol)
		formals = formals[1:]

		if sym.IsAmpersand() {
			if len(formals) != 1 {
				return bval.NewErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			nsym := formals[0].(bval.Symbol)
			formals = formals[1:]
			f.Env.Put(string(nsym), bval.NewQExpr(remaining...))
			remaining = nil
			break
		}

		val := remaining[0]
		remaining = remaining[1:]
		f.Env.Put(string(sym), val)
	}

	if len(formals) > 0 {
		if sym, ok := formals[0].(bval.Symbol); ok && sym.IsAmpersand() {
			if len(formals) != 2 {
				return bval.NewErr("Function format invalid. Symbol '&' not followed by single symbol.")
			}
			nsym := formals[1].(bval.Symbol)
			f.Env.Put(string(nsym), bval.NewQExpr())
			formals = nil
		}
	}

	if len(formals) == 0 {
		f.Env.SetParent(env)
		return Eval(f.Env, f.Body.ToSExpr().Copy())
	}

	return &bval.Lambda{
		Formals: bval.NewQExpr(formals...),
		Body:    f.Body,
		Env:     f.Env.Copy(),
	}
}
