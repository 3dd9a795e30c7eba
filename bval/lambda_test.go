package bval_test

import (
	"testing"

	"blisp/bval"
)

func TestLambdaEqualityIgnoresEnvironment(t *testing.T) {
	t.Parallel()
	formals := bval.NewQExpr(bval.Symbol("x"))
	body := bval.NewQExpr(bval.Symbol("x"))
	a := bval.NewLambda(formals, body)
	b := bval.NewLambda(formals.Copy().(*bval.QExpr), body.Copy().(*bval.QExpr))
	b.Env.Put("x", bval.Number(42))
	if !a.IsEqual(b) {
		t.Error("lambdas with equal formals/body but different envs compared unequal")
	}
}

func TestLambdaStringForm(t *testing.T) {
	t.Parallel()
	l := bval.NewLambda(bval.NewQExpr(bval.Symbol("x")), bval.NewQExpr(bval.Symbol("x")))
	want := "(λ {x} {x})"
	if got := l.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestBuiltinIdentityEquality(t *testing.T) {
	t.Parallel()
	fn := func(*bval.Environment, *bval.SExpr) bval.Value { return bval.NewSExpr() }
	a := bval.NewBuiltin("f", fn)
	b := bval.NewBuiltin("f", fn)
	if !a.IsEqual(b) {
		t.Error("builtins wrapping the same function should compare equal")
	}
	other := bval.NewBuiltin("g", func(*bval.Environment, *bval.SExpr) bval.Value { return bval.NewSExpr() })
	if a.IsEqual(other) {
		t.Error("builtins wrapping different functions should compare unequal")
	}
}
