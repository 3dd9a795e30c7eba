// Package main provides the blisp command-line interpreter: a REPL
// preceded by an optional list of files to load.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"blisp/bbuiltin"
	"blisp/beval"
	"blisp/bval"
)

var rootCmd = &cobra.Command{
	Use:     "blisp [file ...]",
	Short:   "Brandon's Lisp interpreter",
	Version: "0.0.1",
	Args:    cobra.ArbitraryArgs,
	RunE:    runBlisp,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runBlisp(_ *cobra.Command, args []string) error {
	env := bval.NewEnvironment()
	env.Stdout = os.Stdout
	bbuiltin.Register(env)

	fmt.Println("Brandon's Lisp Version 0.0.1")
	fmt.Println("hello there 😶")
	fmt.Println("Press Ctrl+c to Exit")
	fmt.Println()

	for _, path := range args {
		result := beval.Eval(env, bval.NewSExpr(bval.Symbol("load"), bval.Str(path)))
		if bval.IsError(result) {
			fmt.Fprintln(os.Stderr, result.String())
		}
	}

	runREPL(env, os.Stdin, os.Stdout)
	return nil
}
