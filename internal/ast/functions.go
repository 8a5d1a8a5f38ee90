package ast

import "github.com/cwbudde/nutmeg/internal/symtab"

// Param is one formal parameter in a FunctionDef's argument list: a name,
// its declared type, and the symbol id bound to it inside the body scope.
type Param struct {
	SymbolID int
	Name     string
	TypeID   int
	TypeName string
}

// FunctionDef is 'func' Ident Arguments Block. A function that wraps a
// built-in has Body == nil and Builtin set to the name the evaluator's
// host registry dispatches on instead.
type FunctionDef struct {
	SymbolID   int
	Name       string
	Params     []Param
	ReturnType int
	ReturnName string
	Body       *Block // nil for a host-backed function
	Builtin    string // non-empty for Write, WriteLine, ReadNumber, ReadText
	Scope      *symtab.SymbolTable
	line       int
}

// NewFunctionDef creates a user-defined function with a body.
func NewFunctionDef(symbolID int, name string, params []Param, returnType int, returnName string, body *Block, scope *symtab.SymbolTable, line int) *FunctionDef {
	return &FunctionDef{
		SymbolID:   symbolID,
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		ReturnName: returnName,
		Body:       body,
		Scope:      scope,
		line:       line,
	}
}

// NewBuiltinFunctionDef creates a function definition backed by a host
// built-in rather than a parsed body, used to predeclare Write, WriteLine,
// ReadNumber and ReadText in the global scope.
func NewBuiltinFunctionDef(symbolID int, name string, params []Param, returnType int, returnName string) *FunctionDef {
	return &FunctionDef{
		SymbolID:   symbolID,
		Name:       name,
		Params:     params,
		ReturnType: returnType,
		ReturnName: returnName,
		Builtin:    name,
		line:       0,
	}
}

func (n *FunctionDef) Line() int { return n.line }

// IsBuiltin reports whether this definition wraps a host built-in rather
// than a parsed body.
func (n *FunctionDef) IsBuiltin() bool { return n.Builtin != "" }

// HasReturn reports whether the function's body returns on every path.
// A built-in has no body to walk and always counts as returning.
func (n *FunctionDef) HasReturn() bool {
	if n.IsBuiltin() {
		return true
	}
	if n.Body == nil {
		return false
	}
	return n.Body.HasReturn()
}
