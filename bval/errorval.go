package bval

import "fmt"

// Err is a first-class error value. Errors are never exceptions: builtins
// and the evaluator return them as ordinary values, and they short-circuit
// S-Expression reduction (see the beval package).
type Err struct {
	Message string
}

// NewErr builds an Err value from a format string, mirroring the original
// interpreter's printf-style error construction.
func NewErr(format string, args ...any) *Err {
	return &Err{Message: fmt.Sprintf(format, args...)}
}

func (*Err) Kind() Kind { return KindError }

func (e *Err) Copy() Value { return &Err{Message: e.Message} }

func (e *Err) IsEqual(other Value) bool {
	o, ok := other.(*Err)
	return ok && e.Message == o.Message
}

func (e *Err) String() string { return "Error: " + e.Message }

// IsError reports whether v is an Err value.
func IsError(v Value) bool {
	_, ok := v.(*Err)
	return ok
}
