package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"

	"blisp/beval"
	"blisp/bread"
	"blisp/bscan"
	"blisp/bval"
)

// runREPL reads one line at a time from in, parses it as a program, and
// evaluates and prints each top-level form to out. A panic inside
// evaluation is recovered and the loop restarted, the way the source this
// is grounded on restarts its own read loop after an unexpected failure
// rather than taking the whole process down.
func runREPL(env *bval.Environment, in io.Reader, out io.Writer) {
	br := bufio.NewReader(in)

	var wg sync.WaitGroup
	wg.Add(1)
	go repl(br, env, out, &wg)
	wg.Wait()
}

func repl(in *bufio.Reader, env *bval.Environment, out io.Writer, wg *sync.WaitGroup) {
	defer func() {
		if val := recover(); val != nil {
			fmt.Fprintf(out, "RECOVER PANIC: %v\n\n%s\n", val, debug.Stack())
			go repl(in, env, out, wg)
			return
		}
		wg.Done()
	}()

	for {
		fmt.Fprint(out, "blisp> ")
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if line != "" {
			runLine(env, line, out)
		}
		if err == io.EOF {
			return
		}
	}
}

func runLine(env *bval.Environment, line string, out io.Writer) {
	program, err := bscan.ParseProgram(strings.NewReader(line))
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}

	top := bread.Read(program).(*bval.SExpr)
	for _, form := range top.Children {
		result := beval.Eval(env, form)
		fmt.Fprintln(out, result)
	}
}
