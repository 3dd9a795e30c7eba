package bbuiltin

import (
	"fmt"
	"io"
	"os"

	"blisp/beval"
	"blisp/bread"
	"blisp/bscan"
	"blisp/bval"
)

func registerIO(root *bval.Environment) {
	root.Put("print", bval.NewBuiltin("print", biPrint))
	root.Put("show", bval.NewBuiltin("show", biShow))
	root.Put("read", bval.NewBuiltin("read", biRead))
	root.Put("error", bval.NewBuiltin("error", biError))
	root.Put("load", bval.NewBuiltin("load", biLoad))
	root.Put("values", bval.NewBuiltin("values", biValues))
	root.Put("exit", bval.NewBuiltin("exit", biExit))
}

// stdout resolves env's configured output destination by walking its parent
// chain (see Environment.Writer), falling back to os.Stdout only if nothing
// in the chain has one set. This reaches output configured on a caller even
// when env is a Lambda's own call-frame environment.
func stdout(env *bval.Environment) io.Writer {
	if w := env.Writer(); w != nil {
		return w
	}
	return os.Stdout
}

// biPrint prints every argument separated by spaces with a trailing
// newline, flushing immediately rather than buffering.
func biPrint(env *bval.Environment, args *bval.SExpr) bval.Value {
	w := stdout(env)
	for i, a := range args.Children {
		if i > 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprint(w, a.String())
	}
	fmt.Fprintln(w)
	return bval.NewSExpr()
}

// biShow prints a single String verbatim inside quotes.
func biShow(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("show", args, 1); err != nil {
		return err
	}
	if err := checkType("show", args, 0, bval.KindString); err != nil {
		return err
	}
	fmt.Fprintf(stdout(env), "\"%s\"\n", string(args.Children[0].(bval.Str)))
	return bval.NewSExpr()
}

func biRead(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("read", args, 1); err != nil {
		return err
	}
	if err := checkType("read", args, 0, bval.KindString); err != nil {
		return err
	}
	return bval.NewQExpr(args.Children[0])
}

func biError(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("error", args, 1); err != nil {
		return err
	}
	if err := checkType("error", args, 0, bval.KindString); err != nil {
		return err
	}
	return &bval.Err{Message: string(args.Children[0].(bval.Str))}
}

// biLoad parses a file, evaluates each of its top-level expressions in
// turn, and prints any Error encountered without aborting the remaining
// expressions.
func biLoad(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("load", args, 1); err != nil {
		return err
	}
	if err := checkType("load", args, 0, bval.KindString); err != nil {
		return err
	}

	path := string(args.Children[0].(bval.Str))
	f, err := os.Open(path)
	if err != nil {
		return bval.NewErr("Could not load Library %s", path)
	}
	defer f.Close()

	program, err := bscan.ParseProgram(f)
	if err != nil {
		return bval.NewErr("Could not load Library %s", err.Error())
	}

	top := bread.Read(program).(*bval.SExpr)
	for _, expr := range top.Children {
		result := beval.Eval(env, expr)
		if bval.IsError(result) {
			fmt.Fprintln(stdout(env), result.String())
		}
	}
	return bval.NewSExpr()
}

// biValues reports the names bound directly in env (not its parent chain):
// -1 lists all of them, otherwise the first N in binding order.
func biValues(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("values", args, 1); err != nil {
		return err
	}
	if err := checkType("values", args, 0, bval.KindNumber); err != nil {
		return err
	}
	n := float64(args.Children[0].(bval.Number))
	names := env.Names()
	if n == -1 || int(n) > len(names) {
		return &bval.QExpr{Children: names}
	}
	if n < 0 {
		return bval.NewQExpr()
	}
	return &bval.QExpr{Children: names[:int(n)]}
}

// biExit prints a farewell and terminates the process with the given
// status. DO NOT USE from inside a test: it calls os.Exit directly, the way
// the source it is grounded on calls exit(3) directly.
func biExit(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("exit", args, 1); err != nil {
		return err
	}
	if err := checkType("exit", args, 0, bval.KindNumber); err != nil {
		return err
	}
	status := int(args.Children[0].(bval.Number))
	w := stdout(env)
	fmt.Fprintln(w, "Please come again...")
	fmt.Fprintf(w, "Exiting blisp: %d\n", status)
	os.Exit(status)
	return bval.NewSExpr()
}
