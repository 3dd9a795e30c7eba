package bval

// SExpr is the "active" composite: when evaluated, its first reduced child
// must be a callable, and the rest are its arguments. The empty S-Expression
// evaluates to itself ("unit").
type SExpr struct {
	Children []Value
}

// NewSExpr builds an S-Expression owning the given children.
func NewSExpr(children ...Value) *SExpr { return &SExpr{Children: children} }

func (*SExpr) Kind() Kind { return KindSExpr }

func (s *SExpr) Copy() Value { return &SExpr{Children: copyChildren(s.Children)} }

func (s *SExpr) IsEqual(other Value) bool {
	o, ok := other.(*SExpr)
	return ok && childrenEqual(s.Children, o.Children)
}

func (s *SExpr) String() string { return printChildren('(', ')', s.Children) }

// IsUnit reports whether this is the empty S-Expression.
func (s *SExpr) IsUnit() bool { return len(s.Children) == 0 }
