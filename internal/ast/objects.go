package ast

import "github.com/cwbudde/nutmeg/internal/symtab"

// AttrDef is one declared attribute of an ObjectDef: a name, its declared
// type, and an optional default-value expression evaluated lazily by the
// evaluator at instantiation time.
type AttrDef struct {
	SymbolID int
	Name     string
	TypeID   int
	TypeName string
	Default  Expression // nil if absent
}

// ObjectDef is 'object' Ident '{' VariableDef* '}', introducing a new type
// whose symbol id other declarations reference by name.
type ObjectDef struct {
	TypeID   int
	Name     string
	Attrs    []AttrDef
	Scope    *symtab.SymbolTable
	line     int
}

func NewObjectDef(typeID int, name string, attrs []AttrDef, scope *symtab.SymbolTable, line int) *ObjectDef {
	return &ObjectDef{TypeID: typeID, Name: name, Attrs: attrs, Scope: scope, line: line}
}

func (n *ObjectDef) Line() int { return n.line }

// FindAttr returns the attribute named name, or nil if the type declares
// no such attribute.
func (n *ObjectDef) FindAttr(name string) *AttrDef {
	for i := range n.Attrs {
		if n.Attrs[i].Name == name {
			return &n.Attrs[i]
		}
	}
	return nil
}
