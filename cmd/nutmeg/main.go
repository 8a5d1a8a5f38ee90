// Command nutmeg is the CLI front-end for the interpreter: it drives the
// lexer/parser/evaluator pipeline from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/nutmeg/cmd/nutmeg/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
