package bbuiltin

import (
	"math"

	"blisp/bval"
)

// Every operator below is its own top-level BuiltinFunc rather than an
// instance minted from a shared closure factory. Builtin.IsEqual compares
// functions by reflect.Value.Pointer(), which identifies a closure's
// compiled entry point, not its captured state — every instance produced
// from the same func-literal template shares that entry point no matter
// what each one closed over. A factory called once per operator (e.g. "+"
// and "-" both built by the same `func(op string) BuiltinFunc { return
// func(...) {...} }`) would make every operator it produced compare equal
// to every other, which contradicts spec.md §4.5.5's "Builtins compare by
// identity of the underlying function".
func registerArithmetic(root *bval.Environment) {
	root.Put("+", bval.NewBuiltin("+", biAdd))
	root.Put("add", bval.NewBuiltin("add", biAdd))
	root.Put("-", bval.NewBuiltin("-", biSub))
	root.Put("sub", bval.NewBuiltin("sub", biSub))
	root.Put("*", bval.NewBuiltin("*", biMul))
	root.Put("mul", bval.NewBuiltin("mul", biMul))
	root.Put("/", bval.NewBuiltin("/", biDiv))
	root.Put("div", bval.NewBuiltin("div", biDiv))
	root.Put("%", bval.NewBuiltin("%", biMod))
	root.Put("^", bval.NewBuiltin("^", biPow))
	root.Put("min", bval.NewBuiltin("min", biMin))
	root.Put("max", bval.NewBuiltin("max", biMax))

	root.Put(">", bval.NewBuiltin(">", biGt))
	root.Put("<", bval.NewBuiltin("<", biLt))
	root.Put(">=", bval.NewBuiltin(">=", biGe))
	root.Put("<=", bval.NewBuiltin("<=", biLe))

	root.Put("==", bval.NewBuiltin("==", biEq))
	root.Put("!=", bval.NewBuiltin("!=", biNeq))

	root.Put("&&", bval.NewBuiltin("&&", biAnd))
	root.Put("||", bval.NewBuiltin("||", biOr))
	root.Put("!", bval.NewBuiltin("!", biNot))
}

func biAdd(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("+", args) }
func biSub(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("-", args) }
func biMul(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("*", args) }
func biDiv(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("/", args) }
func biMod(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("%", args) }
func biPow(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("^", args) }
func biMin(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("min", args) }
func biMax(_ *bval.Environment, args *bval.SExpr) bval.Value { return numericOp("max", args) }

// numericOp mirrors the original's builtin_op: every argument must be a
// Number, and the fold is left-to-right with '-' on a single argument
// meaning unary negation. It is a plain helper, never itself wrapped into a
// Builtin, so its sharing across operators has no bearing on Builtin
// identity.
func numericOp(op string, args *bval.SExpr) bval.Value {
	for _, c := range args.Children {
		if c.Kind() != bval.KindNumber {
			return bval.NewErr("Cannot operate on non-number!")
		}
	}
	if len(args.Children) == 0 {
		return bval.NewErr("Cannot operate on non-number!")
	}

	x := float64(args.Children[0].(bval.Number))
	rest := args.Children[1:]

	if op == "-" && len(rest) == 0 {
		return bval.Number(-x)
	}

	for _, c := range rest {
		y := float64(c.(bval.Number))
		switch op {
		case "+":
			x += y
		case "-":
			x -= y
		case "*":
			x *= y
		case "/":
			if y == 0 {
				return bval.NewErr("Division by zero!")
			}
			x /= y
		case "%":
			x = float64(int(x) % int(y))
		case "^":
			x = math.Pow(x, y)
		case "min":
			x = math.Min(x, y)
		case "max":
			x = math.Max(x, y)
		}
	}
	return bval.Number(x)
}

// orderingOperands validates and extracts the two Number operands shared by
// the four ordering builtins below. It is a plain helper, not a BuiltinFunc.
func orderingOperands(name string, args *bval.SExpr) (a, b float64, errVal *bval.Err) {
	if err := checkArgCount(name, args, 2); err != nil {
		return 0, 0, err
	}
	if err := checkType(name, args, 0, bval.KindNumber); err != nil {
		return 0, 0, err
	}
	if err := checkType(name, args, 1, bval.KindNumber); err != nil {
		return 0, 0, err
	}
	return float64(args.Children[0].(bval.Number)), float64(args.Children[1].(bval.Number)), nil
}

func biGt(_ *bval.Environment, args *bval.SExpr) bval.Value {
	a, b, err := orderingOperands(">", args)
	if err != nil {
		return err
	}
	return bval.Boolean(a > b)
}

func biLt(_ *bval.Environment, args *bval.SExpr) bval.Value {
	a, b, err := orderingOperands("<", args)
	if err != nil {
		return err
	}
	return bval.Boolean(a < b)
}

func biGe(_ *bval.Environment, args *bval.SExpr) bval.Value {
	a, b, err := orderingOperands(">=", args)
	if err != nil {
		return err
	}
	return bval.Boolean(a >= b)
}

func biLe(_ *bval.Environment, args *bval.SExpr) bval.Value {
	a, b, err := orderingOperands("<=", args)
	if err != nil {
		return err
	}
	return bval.Boolean(a <= b)
}

func biEq(_ *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("==", args, 2); err != nil {
		return err
	}
	return bval.Boolean(args.Children[0].IsEqual(args.Children[1]))
}

func biNeq(_ *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("!=", args, 2); err != nil {
		return err
	}
	return bval.Boolean(!args.Children[0].IsEqual(args.Children[1]))
}

// logicalOperands validates and extracts the two Boolean operands shared by
// `&&` and `||`. It is a plain helper, not a BuiltinFunc.
func logicalOperands(name string, args *bval.SExpr) (a, b bool, errVal *bval.Err) {
	if err := checkArgCount(name, args, 2); err != nil {
		return false, false, err
	}
	if err := checkType(name, args, 0, bval.KindBoolean); err != nil {
		return false, false, err
	}
	if err := checkType(name, args, 1, bval.KindBoolean); err != nil {
		return false, false, err
	}
	return bool(args.Children[0].(bval.Boolean)), bool(args.Children[1].(bval.Boolean)), nil
}

func biAnd(_ *bval.Environment, args *bval.SExpr) bval.Value {
	a, b, err := logicalOperands("&&", args)
	if err != nil {
		return err
	}
	return bval.Boolean(a && b)
}

func biOr(_ *bval.Environment, args *bval.SExpr) bval.Value {
	a, b, err := logicalOperands("||", args)
	if err != nil {
		return err
	}
	return bval.Boolean(a || b)
}

func biNot(_ *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("!", args, 1); err != nil {
		return err
	}
	if err := checkType("!", args, 0, bval.KindBoolean); err != nil {
		return err
	}
	return bval.Boolean(!bool(args.Children[0].(bval.Boolean)))
}
