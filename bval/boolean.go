package bval

// Boolean is the true/false variant.
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }

func (b Boolean) Copy() Value { return b }

func (b Boolean) IsEqual(other Value) bool {
	o, ok := other.(Boolean)
	return ok && b == o
}

func (b Boolean) String() string {
	if b {
		return "true"
	}
	return "false"
}
