// Package printer renders a parsed Ast into the canonical text form used by
// the `-tree` CLI and by tests that assert on parser/type-checker output:
// one kind header per node, four-space indentation per depth, and a
// "Symbols: { id:name, ... }" line at the top of any node owning a scope
// that isn't empty.
package printer

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/symtab"
)

const indentUnit = "    "

// Print renders the whole program rooted at tree.Root.
func Print(tree *ast.Ast) string {
	var sb strings.Builder
	printGlobal(&sb, tree.Root, 0)
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat(indentUnit, depth))
}

func writeLine(sb *strings.Builder, depth int, format string, args ...any) {
	indent(sb, depth)
	fmt.Fprintf(sb, format, args...)
	sb.WriteString("\n")
}

// writeSymbols prints the "Symbols: { ... }" line for scope at depth, sorted
// by name, unless scope is nil or has no directly-declared names.
func writeSymbols(sb *strings.Builder, scope *symtab.SymbolTable, depth int) {
	if scope == nil {
		return
	}
	syms := scope.Names()
	if len(syms) == 0 {
		return
	}
	sort.Slice(syms, func(i, j int) bool { return syms[i].Name < syms[j].Name })
	parts := make([]string, len(syms))
	for i, s := range syms {
		parts[i] = s.String()
	}
	writeLine(sb, depth, "Symbols: { %s }", strings.Join(parts, ", "))
}

func printGlobal(sb *strings.Builder, g *ast.Global, depth int) {
	writeLine(sb, depth, "Global")
	writeSymbols(sb, g.Scope, depth+1)
	for _, fn := range g.Functions {
		if fn.IsBuiltin() {
			continue
		}
		printFunctionDef(sb, fn, depth+1)
	}
	for _, obj := range g.Objects {
		printObjectDef(sb, obj, depth+1)
	}
}

func printFunctionDef(sb *strings.Builder, fn *ast.FunctionDef, depth int) {
	writeLine(sb, depth, "FunctionDef %d:%s : %s", fn.SymbolID, fn.Name, fn.ReturnName)
	writeSymbols(sb, fn.Scope, depth+1)
	for _, p := range fn.Params {
		writeLine(sb, depth+1, "Param %d:%s : %s", p.SymbolID, p.Name, p.TypeName)
	}
	if fn.Body != nil {
		printBlock(sb, fn.Body, depth+1)
	}
}

func printObjectDef(sb *strings.Builder, obj *ast.ObjectDef, depth int) {
	writeLine(sb, depth, "ObjectDef %d:%s", obj.TypeID, obj.Name)
	writeSymbols(sb, obj.Scope, depth+1)
	for _, a := range obj.Attrs {
		if a.Default == nil {
			writeLine(sb, depth+1, "AttrDef %d:%s : %s", a.SymbolID, a.Name, a.TypeName)
			continue
		}
		writeLine(sb, depth+1, "AttrDef %d:%s : %s", a.SymbolID, a.Name, a.TypeName)
		printExpression(sb, a.Default, depth+2)
	}
}

func printBlock(sb *strings.Builder, b *ast.Block, depth int) {
	writeLine(sb, depth, "Block")
	writeSymbols(sb, b.Scope, depth+1)
	for _, stmt := range b.Stmts {
		printStatement(sb, stmt, depth+1)
	}
}

func printStatement(sb *strings.Builder, stmt ast.Statement, depth int) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		writeLine(sb, depth, "ExprStmt")
		printExpression(sb, s.Expr, depth+1)

	case *ast.ReturnStmt:
		writeLine(sb, depth, "Return")
		if s.Value != nil {
			printExpression(sb, s.Value, depth+1)
		}

	case *ast.IfStmt:
		writeLine(sb, depth, "If")
		printIfBranch(sb, s.If, depth+1)
		for _, ei := range s.Elseifs {
			writeLine(sb, depth, "Elseif")
			printIfBranch(sb, ei, depth+1)
		}
		if s.Else != nil {
			writeLine(sb, depth, "Else")
			printBlock(sb, s.Else, depth+1)
		}

	case *ast.WhileStmt:
		writeLine(sb, depth, "While")
		printExpression(sb, s.Cond, depth+1)
		printBlock(sb, s.Body, depth+1)

	case *ast.DoWhileStmt:
		writeLine(sb, depth, "DoWhile")
		printBlock(sb, s.Body, depth+1)
		printExpression(sb, s.Cond, depth+1)

	case *ast.ForStmt:
		writeLine(sb, depth, "For %d:%s", s.VarSymbolID, s.VarName)
		printExpression(sb, s.Range, depth+1)
		printBlock(sb, s.Body, depth+1)
	}
}

// printIfBranch prints an If/Elseif arm's condition then body, without its
// own header (the caller already wrote "If"/"Elseif").
func printIfBranch(sb *strings.Builder, branch *ast.IfBranch, depth int) {
	printExpression(sb, branch.Cond, depth)
	printBlock(sb, branch.Body, depth)
}

func printExpression(sb *strings.Builder, expr ast.Expression, depth int) {
	switch n := expr.(type) {
	case *ast.BoolLit:
		writeLine(sb, depth, "BoolLit %t", n.Value)

	case *ast.NumberLit:
		writeLine(sb, depth, "NumberLit %s", n.Text)

	case *ast.StringLit:
		writeLine(sb, depth, "StringLit %s", strconv.Quote(n.Value))

	case *ast.NullLit:
		writeLine(sb, depth, "NullLit")

	case *ast.VariableRef:
		writeLine(sb, depth, "VariableRef %d:%s", n.SymbolID, n.Name)

	case *ast.VariableDef:
		writeLine(sb, depth, "VariableDef %d:%s : %s", n.SymbolID, n.Name, n.TypeName)
		if n.Init != nil {
			printExpression(sb, n.Init, depth+1)
		}

	case *ast.VariableAssign:
		writeLine(sb, depth, "VariableAssign %d:%s %s", n.SymbolID, n.Name, n.Op)
		printExpression(sb, n.Value, depth+1)

	case *ast.UnaryOperation:
		writeLine(sb, depth, "UnaryOperation %s", n.Op)
		printExpression(sb, n.Operand, depth+1)

	case *ast.BinaryOperation:
		writeLine(sb, depth, "BinaryOperation %s", n.Op)
		printExpression(sb, n.Left, depth+1)
		printExpression(sb, n.Right, depth+1)

	case *ast.FunctionCall:
		writeLine(sb, depth, "FunctionCall %d:%s", n.SymbolID, n.Name)
		for _, a := range n.Args {
			printExpression(sb, a, depth+1)
		}

	case *ast.ObjectInit:
		writeLine(sb, depth, "ObjectInit %d:%s", n.TypeID, n.TypeName)
		for _, f := range n.Fields {
			writeLine(sb, depth+1, "Field %s", f.Name)
			printExpression(sb, f.Value, depth+2)
		}
	}
}
