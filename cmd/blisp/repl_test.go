package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"

	"blisp/bbuiltin"
	"blisp/bval"
)

func TestMain(m *testing.M) {
	v := m.Run()
	snaps.Clean(m)
	_ = v
}

func newTestEnv() *bval.Environment {
	env := bval.NewEnvironment()
	bbuiltin.Register(env)
	return env
}

func TestREPLTranscripts(t *testing.T) {
	sessions := []struct {
		name   string
		script string
	}{
		{"arithmetic", "(+ 2 3)\n(- 5)\n(/ 10 0)\n"},
		{"lists", "(list 1 2 3)\n(head {1 2 3})\n(tail {1 2 3})\n"},
		{"bindings", "(def {x} 10)\nx\n((\\ {x y} {+ x y}) 3 4)\n"},
	}

	for _, s := range sessions {
		t.Run(s.name, func(t *testing.T) {
			env := newTestEnv()
			var out bytes.Buffer
			env.Stdout = &out
			runREPL(env, strings.NewReader(s.script), &out)
			snaps.MatchSnapshot(t, out.String())
		})
	}
}

func TestREPLRecoversFromPanic(t *testing.T) {
	env := newTestEnv()
	env.Put("boom", bval.NewBuiltin("boom", func(*bval.Environment, *bval.SExpr) bval.Value {
		panic("kaboom")
	}))
	var out bytes.Buffer
	env.Stdout = &out
	runREPL(env, strings.NewReader("(boom)\n"), &out)
	if !strings.Contains(out.String(), "RECOVER PANIC") {
		t.Errorf("expected recovered panic in output, got %q", out.String())
	}
}
