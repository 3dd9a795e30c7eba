package bread

import (
	"strconv"
	"strings"

	"blisp/bval"
)

// Read converts one parse-tree node into a value, applying the tag rules in
// order. It returns nil for a comment node, signaling to the caller (itself,
// when building a composite, or the top-level driver) that the node
// contributes nothing to its parent sequence.
func Read(n Node) bval.Value {
	switch {
	case strings.Contains(n.Tag, "number"):
		return readNumber(n.Contents)
	case strings.Contains(n.Tag, "boolean"):
		return readBoolean(n.Contents)
	case strings.Contains(n.Tag, "string"):
		return readString(n.Contents)
	case strings.Contains(n.Tag, "symbol"):
		return bval.Symbol(n.Contents)
	case strings.Contains(n.Tag, "comment"):
		return nil
	case n.Tag == RootTag || strings.Contains(n.Tag, "sexpr"):
		return readComposite(n, false)
	case strings.Contains(n.Tag, "qexpr"):
		return readComposite(n, true)
	default:
		return bval.NewErr("unrecognized parse tree tag %q", n.Tag)
	}
}

func readNumber(contents string) bval.Value {
	f, err := strconv.ParseFloat(contents, 64)
	if err != nil {
		return bval.NewErr("invalid number")
	}
	return bval.Number(f)
}

func readBoolean(contents string) bval.Value {
	return bval.Boolean(contents == "true")
}

func readString(contents string) bval.Value {
	unquoted := contents
	if len(unquoted) >= 2 && unquoted[0] == '"' && unquoted[len(unquoted)-1] == '"' {
		unquoted = unquoted[1 : len(unquoted)-1]
	}
	return bval.Str(bval.UnescapeString(unquoted))
}

// readComposite builds the S- or Q-Expression for a root/sexpr/qexpr node,
// skipping grouping tokens, regex leaves, and (transitively) comments.
func readComposite(n Node, quoted bool) bval.Value {
	var children []bval.Value
	for _, c := range n.Children {
		if c.Tag == "regex" || isGroupingToken(c.Contents) {
			continue
		}
		v := Read(c)
		if v == nil {
			continue
		}
		children = append(children, v)
	}
	if quoted {
		return bval.NewQExpr(children...)
	}
	return bval.NewSExpr(children...)
}
