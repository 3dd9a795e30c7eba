package bbuiltin

import (
	"blisp/beval"
	"blisp/bval"
)

func registerList(root *bval.Environment) {
	root.Put("list", bval.NewBuiltin("list", biList))
	root.Put("head", bval.NewBuiltin("head", biHead))
	root.Put("tail", bval.NewBuiltin("tail", biTail))
	root.Put("init", bval.NewBuiltin("init", biInit))
	root.Put("len", bval.NewBuiltin("len", biLen))
	root.Put("join", bval.NewBuiltin("join", biJoin))
	root.Put("cons", bval.NewBuiltin("cons", biCons))
	root.Put("eval", bval.NewBuiltin("eval", biEval))
}

// biList coerces the argument S-Expression to a Q-Expression without
// copying its children.
func biList(env *bval.Environment, args *bval.SExpr) bval.Value {
	return &bval.QExpr{Children: args.Children}
}

func biHead(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("head", args, 1); err != nil {
		return err
	}
	if err := checkType("head", args, 0, bval.KindQExpr); err != nil {
		return err
	}
	if err := checkNonEmptyQExpr("head", args, 0); err != nil {
		return err
	}
	q := args.Children[0].(*bval.QExpr)
	return bval.NewQExpr(q.Children[0])
}

func biTail(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("tail", args, 1); err != nil {
		return err
	}
	if err := checkType("tail", args, 0, bval.KindQExpr); err != nil {
		return err
	}
	if err := checkNonEmptyQExpr("tail", args, 0); err != nil {
		return err
	}
	q := args.Children[0].(*bval.QExpr)
	return &bval.QExpr{Children: q.Children[1:]}
}

func biInit(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("init", args, 1); err != nil {
		return err
	}
	if err := checkType("init", args, 0, bval.KindQExpr); err != nil {
		return err
	}
	if err := checkNonEmptyQExpr("init", args, 0); err != nil {
		return err
	}
	q := args.Children[0].(*bval.QExpr)
	return &bval.QExpr{Children: q.Children[:len(q.Children)-1]}
}

func biLen(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("len", args, 1); err != nil {
		return err
	}
	if err := checkType("len", args, 0, bval.KindQExpr); err != nil {
		return err
	}
	q := args.Children[0].(*bval.QExpr)
	return bval.Number(len(q.Children))
}

func biJoin(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkMinArgCount("join", args, 1); err != nil {
		return err
	}
	for i := range args.Children {
		if err := checkType("join", args, i, bval.KindQExpr); err != nil {
			return err
		}
	}
	var joined []bval.Value
	for _, c := range args.Children {
		joined = append(joined, c.(*bval.QExpr).Children...)
	}
	return &bval.QExpr{Children: joined}
}

func biCons(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("cons", args, 2); err != nil {
		return err
	}
	if err := checkType("cons", args, 0, bval.KindNumber); err != nil {
		return err
	}
	if err := checkType("cons", args, 1, bval.KindQExpr); err != nil {
		return err
	}
	q := args.Children[1].(*bval.QExpr)
	children := append([]bval.Value{args.Children[0]}, q.Children...)
	return &bval.QExpr{Children: children}
}

// biEval retags a Q-Expression as an S-Expression and evaluates it.
func biEval(env *bval.Environment, args *bval.SExpr) bval.Value {
	if err := checkArgCount("eval", args, 1); err != nil {
		return err
	}
	if err := checkType("eval", args, 0, bval.KindQExpr); err != nil {
		return err
	}
	q := args.Children[0].(*bval.QExpr)
	return beval.Eval(env, q.ToSExpr())
}
