package bbuiltin_test

import (
	"bytes"
	"strings"
	"testing"

	"blisp/bbuiltin"
	"blisp/beval"
	"blisp/bread"
	"blisp/bscan"
	"blisp/bval"
)

func parseOne(t *testing.T, src string) bval.Value {
	t.Helper()
	n, err := bscan.ParseProgram(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseProgram(%q): %v", src, err)
	}
	top := bread.Read(n).(*bval.SExpr)
	if len(top.Children) != 1 {
		t.Fatalf("expected exactly one top-level form in %q, got %d", src, len(top.Children))
	}
	return top.Children[0]
}

func newEnv(t *testing.T) (*bval.Environment, *bytes.Buffer) {
	t.Helper()
	env := bval.NewEnvironment()
	var buf bytes.Buffer
	env.Stdout = &buf
	bbuiltin.Register(env)
	return env, &buf
}

func evalString(t *testing.T, env *bval.Environment, src string) bval.Value {
	t.Helper()
	return beval.Eval(env, parseOne(t, src))
}

func TestArithmeticFold(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	if got := evalString(t, env, "(+ 2 3)"); got.(bval.Number) != 5 {
		t.Errorf("got %v, want 5", got)
	}
	if got := evalString(t, env, "(- 5)"); got.(bval.Number) != -5 {
		t.Errorf("got %v, want -5", got)
	}
	if got := evalString(t, env, "(/ 10 0)"); !bval.IsError(got) || got.String() != "Error: Division by zero!" {
		t.Errorf("got %v, want Error: Division by zero!", got)
	}
}

func TestEvalBuiltin(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	got := evalString(t, env, "(eval {+ 1 2 3})")
	if got.(bval.Number) != 6 {
		t.Errorf("got %v, want 6", got)
	}
}

func TestHeadTailInitLen(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	if got := evalString(t, env, "(head {1 2 3})"); got.String() != "{1}" {
		t.Errorf("head got %v", got)
	}
	if got := evalString(t, env, "(tail {1 2 3})"); got.String() != "{2 3}" {
		t.Errorf("tail got %v", got)
	}
	if got := evalString(t, env, "(init {1 2 3})"); got.String() != "{1 2}" {
		t.Errorf("init got %v", got)
	}
	if got := evalString(t, env, "(len {})"); got.(bval.Number) != 0 {
		t.Errorf("len got %v", got)
	}
	if got := evalString(t, env, "(head {})"); !bval.IsError(got) ||
		got.String() != "Error: Function 'head' passed {} for argument 0." {
		t.Errorf("got %v", got)
	}
}

func TestDefAndLookup(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	evalString(t, env, "(def {x} 10)")
	got := evalString(t, env, "x")
	if got.(bval.Number) != 10 {
		t.Errorf("got %v, want 10", got)
	}
}

func TestLambdaApplicationAndVariadic(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	got := evalString(t, env, "((\\ {x y} {+ x y}) 3 4)")
	if got.(bval.Number) != 7 {
		t.Errorf("got %v, want 7", got)
	}

	evalString(t, env, "(def {f} (\\ {x & xs} {xs}))")
	got = evalString(t, env, "(f 1 2 3)")
	if got.String() != "{2 3}" {
		t.Errorf("got %v, want {2 3}", got)
	}
}

func TestIf(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	got := evalString(t, env, "(if (== 1 1) {+ 1 1} {+ 2 2})")
	if got.(bval.Number) != 2 {
		t.Errorf("got %v, want 2", got)
	}
}

func TestStructuralEqualityOnLists(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	got := evalString(t, env, "(== {1 2} {1 2})")
	if got.(bval.Boolean) != true {
		t.Errorf("got %v, want true", got)
	}
}

func TestPrintWritesToEnvironmentStdout(t *testing.T) {
	t.Parallel()
	env, buf := newEnv(t)
	evalString(t, env, "(print 1 2)")
	if buf.String() != "1 2\n" {
		t.Errorf("got %q, want %q", buf.String(), "1 2\n")
	}
}

// TestPrintInsideLambdaBodyUsesCallerStdout guards against a lambda's
// private environment (empty until SetParent links it to its caller at call
// time) silently falling back to a default writer instead of reaching the
// caller's configured Stdout through the parent chain.
func TestPrintInsideLambdaBodyUsesCallerStdout(t *testing.T) {
	t.Parallel()
	env, buf := newEnv(t)
	evalString(t, env, "(def {f} (\\ {x} {print x}))")
	evalString(t, env, "(f 42)")
	if buf.String() != "42\n" {
		t.Errorf("got %q, want %q", buf.String(), "42\n")
	}
}

func TestValuesListsBoundNames(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	evalString(t, env, "(def {x y} 1 2)")
	got := evalString(t, env, "(values -1)")
	q, ok := got.(*bval.QExpr)
	if !ok {
		t.Fatalf("expected Q-Expression, got %v", got)
	}
	found := map[string]bool{}
	for _, v := range q.Children {
		found[string(v.(bval.Symbol))] = true
	}
	if !found["x"] || !found["y"] {
		t.Errorf("values missing x/y: %v", q)
	}
}

func TestLambdaRejectsDuplicateFormals(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	got := evalString(t, env, "(\\ {x x} {x})")
	if !bval.IsError(got) {
		t.Fatalf("expected Err for duplicate formal, got %v", got)
	}
}

// TestDistinctBuiltinsFromSameFamilyCompareUnequal guards against builtins
// built from a shared closure template (e.g. a factory bound once per
// operator) comparing equal to each other merely because they share a
// compiled entry point, even though they are different operations.
func TestDistinctBuiltinsFromSameFamilyCompareUnequal(t *testing.T) {
	t.Parallel()
	env, _ := newEnv(t)
	cases := []string{
		"(== + -)",
		"(== + *)",
		"(== > <)",
		"(== >= <=)",
		"(== == !=)",
		"(== && ||)",
	}
	for _, src := range cases {
		got := evalString(t, env, src)
		if b, ok := got.(bval.Boolean); !ok || bool(b) {
			t.Errorf("%s = %v, want false", src, got)
		}
	}
	if got := evalString(t, env, "(== + add)"); got.(bval.Boolean) != true {
		t.Errorf("(== + add) = %v, want true: aliases of one operator share a function", got)
	}
}
