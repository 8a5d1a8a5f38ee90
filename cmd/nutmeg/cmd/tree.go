package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/nutmeg/internal/parser"
	"github.com/cwbudde/nutmeg/internal/printer"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree <file>",
	Short: "Parse a source file and print its AST in canonical text form",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
}

func runTree(_ *cobra.Command, args []string) error {
	path := args[0]
	if verbose {
		fmt.Fprintf(os.Stderr, "Parsing %s\n", path)
	}
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	tree, err := parser.Parse(string(src))
	if err != nil {
		return err
	}

	fmt.Print(printer.Print(tree))
	return nil
}
