// Package ast defines the abstract syntax tree produced by the parser: a
// Global holding function and object definitions, each owning the
// SymbolTable scope for its body.
package ast

import "github.com/cwbudde/nutmeg/internal/symtab"

// Node is the base interface every AST node implements.
type Node interface {
	// Line returns the 1-based source line the node was parsed from.
	Line() int
}

// Expression is any node that produces a Value when evaluated. ResolvedType
// returns the symbol id of its static type, computed during parsing.
type Expression interface {
	Node
	exprNode()
	ResolvedType() int
}

// Statement is any node executed for effect within a Block.
type Statement interface {
	Node
	stmtNode()
	// HasReturn reports whether this statement returns on every path it
	// can take, used by the type checker to verify non-void functions
	// return on every control-flow path.
	HasReturn() bool
}

// Global is the root of the AST: every function and object definition in
// the program, plus the global scope they and the built-ins live in.
type Global struct {
	Functions []*FunctionDef
	Objects   []*ObjectDef
	Scope     *symtab.SymbolTable
	line      int
}

// NewGlobal creates an empty Global rooted at scope.
func NewGlobal(scope *symtab.SymbolTable) *Global {
	return &Global{Scope: scope, line: 1}
}

func (g *Global) Line() int { return g.line }

// FindFunction returns the FunctionDef named name, or nil if none exists.
func (g *Global) FindFunction(name string) *FunctionDef {
	for _, f := range g.Functions {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// FindFunctionByID returns the FunctionDef whose symbol id is id, or nil.
func (g *Global) FindFunctionByID(id int) *FunctionDef {
	for _, f := range g.Functions {
		if f.SymbolID == id {
			return f
		}
	}
	return nil
}

// FindObject returns the ObjectDef whose type symbol id is id, or nil.
func (g *Global) FindObject(id int) *ObjectDef {
	for _, o := range g.Objects {
		if o.TypeID == id {
			return o
		}
	}
	return nil
}

// Ast is the parsed program returned by the parser: an immutable Global
// that may be evaluated repeatedly.
type Ast struct {
	Root *Global
}

// Block is '{' Statement* '}', owning the SymbolTable scope for its
// directly-declared locals.
type Block struct {
	Stmts []Statement
	Scope *symtab.SymbolTable
	line  int
}

// NewBlock creates an empty Block at the given line, owning scope.
func NewBlock(line int, scope *symtab.SymbolTable) *Block {
	return &Block{line: line, Scope: scope}
}

func (b *Block) Line() int { return b.line }

// HasReturn reports whether the block returns on every straight-line path:
// true iff any statement in it is a Return or a returning if-chain.
func (b *Block) HasReturn() bool {
	for _, s := range b.Stmts {
		if s.HasReturn() {
			return true
		}
	}
	return false
}
