package bbuiltin

import (
	"t73f.de/r/zero/set"

	"blisp/beval"
	"blisp/bval"
)

func registerBinding(root *bval.Environment) {
	root.Put("def", bval.NewBuiltin("def", biDef))
	root.Put("=", bval.NewBuiltin("=", biPut))
	root.Put(`\`, bval.NewBuiltin(`\`, biLambda))
	root.Put("if", bval.NewBuiltin("if", biIf))
}

// biDef and biPut are distinct top-level functions so that `def` and `=`
// compare unequal under Builtin.IsEqual; two closures from biVar would share
// one entry point.
func biDef(env *bval.Environment, args *bval.SExpr) bval.Value { return biVar("def")(env, args) }
func biPut(env *bval.Environment, args *bval.SExpr) bval.Value { return biVar("=")(env, args) }

// biVar implements both `def` (writes to the root environment) and `=`
// (writes to the calling environment), sharing the symbol-list validation
// the original source names builtin_var.
func biVar(name string) bval.BuiltinFunc {
	return func(env *bval.Environment, args *bval.SExpr) bval.Value {
		if err := checkMinArgCount(name, args, 1); err != nil {
			return err
		}
		if err := checkType(name, args, 0, bval.KindQExpr); err != nil {
			return err
		}
		syms := args.Children[0].(*bval.QExpr)
		for _, s := range syms.Children {
			if s.Kind() != bval.KindSymbol {
				return bval.NewErr("Function '%s' cannot define non-symbol. Got %s, Expected %s.",
					name, bval.TypeName(s), "Symbol")
			}
		}
		if len(syms.Children) != len(args.Children)-1 {
			return bval.NewErr("Function 'def' cannot define incorrect number of values to symbols")
		}

		for i, s := range syms.Children {
			sym := string(s.(bval.Symbol))
			val := args.Children[i+1]
			if name == "def" {
				env.Def(sym, val)
			} else {
				env.Put(sym, val)
			}
		}
		return bval.NewSExpr()
	}
}

// biLambda builds a Lambda from a Q-Expression of Symbol formals and a
// Q-Expression body. Duplicate formal names are rejected: a lambda with a
// name bound twice can never have its second binding reached, which is
// always a mistake rather than a deliberate idiom.
func biLambda(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount(`\`, args, 2); err != nil {
		return err
	}
	if err := checkType(`\`, args, 0, bval.KindQExpr); err != nil {
		return err
	}
	if err := checkType(`\`, args, 1, bval.KindQExpr); err != nil {
		return err
	}

	formals := args.Children[0].(*bval.QExpr)
	names := make([]string, len(formals.Children))
	for i, c := range formals.Children {
		if c.Kind() != bval.KindSymbol {
			return bval.NewErr("Function '\\ parameters' passed incorrect type for argument %d. Got %s, Expected %s.",
				i, bval.TypeName(c), "Symbol")
		}
		names[i] = string(c.(bval.Symbol))
	}
	if set.New(names...).Length() != len(names) {
		return bval.NewErr("Function '\\' cannot bind the same symbol more than once in its parameter list")
	}

	body := args.Children[1].(*bval.QExpr)
	return bval.NewLambda(formals, body)
}

// biIf retags the chosen branch as an S-Expression and evaluates it.
func biIf(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("if", args, 3); err != nil {
		return err
	}
	if err := checkType("if", args, 0, bval.KindBoolean); err != nil {
		return err
	}
	if err := checkType("if", args, 1, bval.KindQExpr); err != nil {
		return err
	}
	if err := checkType("if", args, 2, bval.KindQExpr); err != nil {
		return err
	}

	cond := bool(args.Children[0].(bval.Boolean))
	var branch *bval.QExpr
	if cond {
		branch = args.Children[1].(*bval.QExpr)
	} else {
		branch = args.Children[2].(*bval.QExpr)
	}
	return beval.Eval(env, branch.ToSExpr())
}
