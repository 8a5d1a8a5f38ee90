package ast

import "github.com/cwbudde/nutmeg/internal/types"

// BoolLit is a `true`/`false` literal.
type BoolLit struct {
	Value bool
	line  int
}

func NewBoolLit(value bool, line int) *BoolLit { return &BoolLit{Value: value, line: line} }
func (n *BoolLit) Line() int                   { return n.line }
func (n *BoolLit) exprNode()                   {}
func (n *BoolLit) ResolvedType() int           { return types.BoolID }

// NumberLit is a numeric literal; Text preserves the original lexeme (with
// any leading '-') for diagnostics, Value is its parsed float64.
type NumberLit struct {
	Text  string
	Value float64
	line  int
}

func NewNumberLit(text string, value float64, line int) *NumberLit {
	return &NumberLit{Text: text, Value: value, line: line}
}
func (n *NumberLit) Line() int         { return n.line }
func (n *NumberLit) exprNode()         {}
func (n *NumberLit) ResolvedType() int { return types.NumberID }

// StringLit is a double-quoted string literal; Value has the surrounding
// quotes stripped.
type StringLit struct {
	Value string
	line  int
}

func NewStringLit(value string, line int) *StringLit { return &StringLit{Value: value, line: line} }
func (n *StringLit) Line() int                       { return n.line }
func (n *StringLit) exprNode()                       {}
func (n *StringLit) ResolvedType() int               { return types.StringID }

// NullLit is the `null` literal, statically typed void.
type NullLit struct{ line int }

func NewNullLit(line int) *NullLit { return &NullLit{line: line} }
func (n *NullLit) Line() int       { return n.line }
func (n *NullLit) exprNode()       {}
func (n *NullLit) ResolvedType() int { return types.VoidID }

// VariableRef is a read of a previously declared name.
type VariableRef struct {
	SymbolID int
	Name     string
	typeID   int
	line     int
}

func NewVariableRef(symbolID int, name string, typeID, line int) *VariableRef {
	return &VariableRef{SymbolID: symbolID, Name: name, typeID: typeID, line: line}
}
func (n *VariableRef) Line() int         { return n.line }
func (n *VariableRef) exprNode()         {}
func (n *VariableRef) ResolvedType() int { return n.typeID }

// VariableDef is `var name [: Type] [= init]` used as an expression (its
// value is the initial value bound).
type VariableDef struct {
	SymbolID int
	Name     string
	TypeID   int
	TypeName string
	Init     Expression // nil if absent
	line     int
}

func NewVariableDef(symbolID int, name string, typeID int, typeName string, init Expression, line int) *VariableDef {
	return &VariableDef{SymbolID: symbolID, Name: name, TypeID: typeID, TypeName: typeName, Init: init, line: line}
}
func (n *VariableDef) Line() int         { return n.line }
func (n *VariableDef) exprNode()         {}
func (n *VariableDef) ResolvedType() int { return n.TypeID }

// VariableAssign is `name (= | += | -= | *= | /=) rhs`.
type VariableAssign struct {
	SymbolID int
	Name     string
	Op       string
	Value    Expression
	typeID   int
	line     int
}

func NewVariableAssign(symbolID int, name, op string, value Expression, typeID, line int) *VariableAssign {
	return &VariableAssign{SymbolID: symbolID, Name: name, Op: op, Value: value, typeID: typeID, line: line}
}
func (n *VariableAssign) Line() int         { return n.line }
func (n *VariableAssign) exprNode()         {}
func (n *VariableAssign) ResolvedType() int { return n.typeID }

// UnaryOperation is a prefix `!` or `?` applied to an expression.
type UnaryOperation struct {
	Op      string
	Operand Expression
	typeID  int
	line    int
}

func NewUnaryOperation(op string, operand Expression, typeID, line int) *UnaryOperation {
	return &UnaryOperation{Op: op, Operand: operand, typeID: typeID, line: line}
}
func (n *UnaryOperation) Line() int         { return n.line }
func (n *UnaryOperation) exprNode()         {}
func (n *UnaryOperation) ResolvedType() int { return n.typeID }

// BinaryOperation is `lhs op rhs` for any of the arithmetic, comparison,
// equality, logical, range or member operators.
type BinaryOperation struct {
	Op     string
	Left   Expression
	Right  Expression
	typeID int
	line   int
}

func NewBinaryOperation(op string, left, right Expression, typeID, line int) *BinaryOperation {
	return &BinaryOperation{Op: op, Left: left, Right: right, typeID: typeID, line: line}
}
func (n *BinaryOperation) Line() int         { return n.line }
func (n *BinaryOperation) exprNode()         {}
func (n *BinaryOperation) ResolvedType() int { return n.typeID }

// FunctionCall is `name(actual, ...)`, resolved to the callee's symbol id.
type FunctionCall struct {
	SymbolID int
	Name     string
	Args     []Expression
	typeID   int
	line     int
}

func NewFunctionCall(symbolID int, name string, args []Expression, typeID, line int) *FunctionCall {
	return &FunctionCall{SymbolID: symbolID, Name: name, Args: args, typeID: typeID, line: line}
}
func (n *FunctionCall) Line() int         { return n.line }
func (n *FunctionCall) exprNode()         {}
func (n *FunctionCall) ResolvedType() int { return n.typeID }

// ObjectInitField is one `name: value` pair in an ObjectInit field list.
type ObjectInitField struct {
	Name  string
	Value Expression
}

// ObjectInit is `new TypeName { name: value, ... }`.
type ObjectInit struct {
	TypeID   int
	TypeName string
	Fields   []ObjectInitField
	line     int
}

func NewObjectInit(typeID int, typeName string, fields []ObjectInitField, line int) *ObjectInit {
	return &ObjectInit{TypeID: typeID, TypeName: typeName, Fields: fields, line: line}
}
func (n *ObjectInit) Line() int         { return n.line }
func (n *ObjectInit) exprNode()         {}
func (n *ObjectInit) ResolvedType() int { return n.TypeID }
