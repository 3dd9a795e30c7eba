package bval

import "strconv"

// Number is an IEEE-754 double. Integer operations such as '%' truncate
// toward zero at the point of use.
type Number float64

func (Number) Kind() Kind { return KindNumber }

func (n Number) Copy() Value { return n }

func (n Number) IsEqual(other Value) bool {
	o, ok := other.(Number)
	return ok && n == o
}

// String renders the shortest decimal representation that round-trips.
func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}
