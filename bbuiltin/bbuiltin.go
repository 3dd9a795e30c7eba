// Package bbuiltin wires every native operation into an Environment. Each
// function matches a BuiltinFunc signature, owns the argument S-Expression
// it receives, and returns a value — never an error, since Err is an
// ordinary first-class value here.
package bbuiltin

import "blisp/bval"

// Register binds every builtin under its name(s) into root. Called once
// against the global environment at startup.
func Register(root *bval.Environment) {
	registerArithmetic(root)
	registerList(root)
	registerBinding(root)
	registerIO(root)
}

func argErr(name string, got, want int) *bval.Err {
	return bval.NewErr("Function '%s' passed incorrect number of arguments. Got %d, Expected %d.", name, got, want)
}

func checkArgCount(name string, args *bval.SExpr, want int) *bval.Err {
	if len(args.Children) != want {
		return argErr(name, len(args.Children), want)
	}
	return nil
}

func checkMinArgCount(name string, args *bval.SExpr, min int) *bval.Err {
	if len(args.Children) < min {
		return bval.NewErr("Function '%s' passed incorrect number of arguments. Got %d, Expected at least %d.", name, len(args.Children), min)
	}
	return nil
}

func checkType(name string, args *bval.SExpr, idx int, want bval.Kind) *bval.Err {
	got := args.Children[idx].Kind()
	if got != want {
		return bval.NewErr("Function '%s' passed incorrect type for argument %d. Got %s, Expected %s.",
			name, idx, bval.TypeName(args.Children[idx]), kindName(want))
	}
	return nil
}

func checkNonEmptyQExpr(name string, args *bval.SExpr, idx int) *bval.Err {
	q := args.Children[idx].(*bval.QExpr)
	if len(q.Children) == 0 {
		return bval.NewErr("Function '%s' passed {} for argument %d.", name, idx)
	}
	return nil
}

func kindName(k bval.Kind) string {
	switch k {
	case bval.KindNumber:
		return "Number"
	case bval.KindBoolean:
		return "Boolean"
	case bval.KindString:
		return "String"
	case bval.KindSymbol:
		return "Symbol"
	case bval.KindError:
		return "Error"
	case bval.KindSExpr:
		return "S-Expression"
	case bval.KindQExpr:
		return "Q-Expression"
	case bval.KindBuiltin, bval.KindLambda:
		return "Function"
	default:
		return "Unknown"
	}
}
