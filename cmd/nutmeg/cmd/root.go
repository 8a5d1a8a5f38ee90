package cmd

import (
	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

// verbose gates extra diagnostics written to stderr by the tree and eval
// subcommands, the way the teacher's --verbose gates its own unit-loading
// diagnostics.
var verbose bool

var rootCmd = &cobra.Command{
	Use:     "nutmeg",
	Short:   "Interpreter for a small statically-typed scripting language",
	Version: Version,
	Long: `nutmeg parses and runs programs written in a small statically-typed
scripting language: functions, objects, control flow and a handful of
built-in host functions (Write, WriteLine, ReadNumber, ReadText).

  nutmeg tree <file>                  parse a file and print its AST
  nutmeg eval <file> <func> <arg>...  evaluate a function and print its result`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print extra diagnostics to stderr")
}
