package bval

import "strings"

func copyChildren(children []Value) []Value {
	if children == nil {
		return nil
	}
	out := make([]Value, len(children))
	for i, c := range children {
		out[i] = c.Copy()
	}
	return out
}

func childrenEqual(a, b []Value) bool {
	if len(a) != len(b) {
		return false
	}
	for i, c := range a {
		if !c.IsEqual(b[i]) {
			return false
		}
	}
	return true
}

func printChildren(open, close byte, children []Value) string {
	var b strings.Builder
	b.WriteByte(open)
	for i, c := range children {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
	}
	b.WriteByte(close)
	return b.String()
}
