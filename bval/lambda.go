package bval

// Lambda is a user-defined closure: a formal-parameter Q-Expression, a body
// Q-Expression, and a private environment used only to hold bound arguments
// during a call. The formals contain only Symbol children, optionally with
// one Symbol whose text is "&" placed immediately before the final Symbol,
// denoting variadic capture.
type Lambda struct {
	Formals *QExpr
	Body    *QExpr
	Env     *Environment
}

// NewLambda builds a closure with a fresh, empty captured environment. The
// parent of that environment is set to empty until a call site assigns it
// (see the beval package's application logic).
func NewLambda(formals, body *QExpr) *Lambda {
	return &Lambda{Formals: formals, Body: body, Env: NewEnvironment()}
}

func (*Lambda) Kind() Kind { return KindLambda }

func (l *Lambda) Copy() Value {
	return &Lambda{
		Formals: l.Formals.Copy().(*QExpr),
		Body:    l.Body.Copy().(*QExpr),
		Env:     l.Env.Copy(),
	}
}

// IsEqual compares formals and body; captured environments are ignored, as
// in the source this was ported from.
func (l *Lambda) IsEqual(other Value) bool {
	o, ok := other.(*Lambda)
	if !ok {
		return false
	}
	return l.Formals.IsEqual(o.Formals) && l.Body.IsEqual(o.Body)
}

func (l *Lambda) String() string {
	return "(λ " + l.Formals.String() + " " + l.Body.String() + ")"
}
