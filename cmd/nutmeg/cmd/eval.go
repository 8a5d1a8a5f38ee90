package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/cwbudde/nutmeg/internal/evaluator"
	"github.com/cwbudde/nutmeg/internal/host"
	"github.com/cwbudde/nutmeg/internal/parser"
	"github.com/cwbudde/nutmeg/internal/value"
	"github.com/spf13/cobra"
)

var evalCmd = &cobra.Command{
	Use:   "eval <file> <function> [arg...]",
	Short: "Parse a source file and evaluate one of its functions",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
}

func runEval(_ *cobra.Command, args []string) error {
	path, fn, rawArgs := args[0], args[1], args[2:]
	if verbose {
		fmt.Fprintf(os.Stderr, "Evaluating %s in %s with %d argument(s)\n", fn, path, len(rawArgs))
	}

	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tree, err := parser.Parse(string(src))
	if err != nil {
		return err
	}

	values := make([]value.Value, len(rawArgs))
	for i, raw := range rawArgs {
		values[i] = marshalArg(raw)
	}

	io := host.New(os.Stdout, os.Stdin)
	eval := evaluator.New(tree.Root, io)
	result, err := eval.Evaluate(fn, values)
	if err != nil {
		return err
	}

	fmt.Printf("Evaluation returned: %s.\n", result.String())
	return nil
}

// marshalArg converts one CLI argument string to a Value by the first rule
// that matches, per the language's argument marshalling contract: a number
// if the whole token parses as an IEEE-754 double, then an exact lowercase
// "true"/"false", else a plain string.
func marshalArg(raw string) value.Value {
	if n, err := strconv.ParseFloat(raw, 64); err == nil {
		return value.Number(n)
	}
	switch raw {
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	return value.String(raw)
}
