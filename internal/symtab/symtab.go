// Package symtab implements the lexically scoped symbol table used by the
// parser to resolve names and by the evaluator to label runtime values.
package symtab

import "fmt"

// Symbol is a resolved name: a stable id, its declared type (by symbol id),
// and role flags.
type Symbol struct {
	ID         int
	Name       string
	TypeID     int
	IsFunction bool
	IsArray    bool
}

// String renders a symbol the way the AST printer does: "id:name".
func (s *Symbol) String() string {
	return fmt.Sprintf("%d:%s", s.ID, s.Name)
}

// RedefinitionError reports an attempt to add a name that already resolves
// in the current scope or an ancestor.
type RedefinitionError struct{ Name string }

func (e *RedefinitionError) Error() string {
	return fmt.Sprintf("Tried to redefine identifier %s.", e.Name)
}

// UndefinedNameError reports a failed lookup by name.
type UndefinedNameError struct{ Name string }

func (e *UndefinedNameError) Error() string {
	return fmt.Sprintf("Found undefined identifier %s.", e.Name)
}

// UndefinedIDError reports a failed lookup by id.
type UndefinedIDError struct{ ID int }

func (e *UndefinedIDError) Error() string {
	return fmt.Sprintf("Tried to access undefined identifier with id %d.", e.ID)
}

// SymbolTable is one lexical scope: a local name->symbol map plus a parent
// pointer. All scopes in one program share a single id allocator, rooted at
// the scope created with NewRoot.
type SymbolTable struct {
	local   map[string]*Symbol
	byID    map[int]*Symbol
	parent  *SymbolTable
	counter *int
}

// NewRoot creates the top-level scope of a program, owning a fresh id
// counter. Every descendant scope shares this counter.
func NewRoot() *SymbolTable {
	return &SymbolTable{
		local:   make(map[string]*Symbol),
		byID:    make(map[int]*Symbol),
		counter: new(int),
	}
}

// NewChild creates a scope nested inside parent, sharing parent's id
// counter.
func NewChild(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		local:  make(map[string]*Symbol),
		byID:   make(map[int]*Symbol),
		parent: parent,
		counter: parent.counter,
	}
}

// Parent returns the enclosing scope, or nil at the root.
func (s *SymbolTable) Parent() *SymbolTable { return s.parent }

func (s *SymbolTable) nextID() int {
	*s.counter++
	return *s.counter
}

// Contains reports whether name resolves in this scope or any ancestor.
func (s *SymbolTable) Contains(name string) bool {
	if _, ok := s.local[name]; ok {
		return true
	}
	if s.parent != nil {
		return s.parent.Contains(name)
	}
	return false
}

// Add inserts a new symbol named name into the current scope, allocating it
// a fresh id. It fails with *RedefinitionError if name already resolves in
// this scope or any ancestor.
func (s *SymbolTable) Add(name string) (*Symbol, error) {
	if s.Contains(name) {
		return nil, &RedefinitionError{Name: name}
	}
	sym := &Symbol{ID: s.nextID(), Name: name, TypeID: 0}
	s.local[name] = sym
	s.byID[sym.ID] = sym
	return sym, nil
}

// Lookup resolves name in this scope, falling back to ancestors. It fails
// with *UndefinedNameError when no scope defines it.
func (s *SymbolTable) Lookup(name string) (*Symbol, error) {
	if sym, ok := s.local[name]; ok {
		return sym, nil
	}
	if s.parent != nil {
		return s.parent.Lookup(name)
	}
	return nil, &UndefinedNameError{Name: name}
}

// LookupByID resolves id in this scope, falling back to ancestors. It fails
// with *UndefinedIDError when no scope defines it.
func (s *SymbolTable) LookupByID(id int) (*Symbol, error) {
	if sym, ok := s.byID[id]; ok {
		return sym, nil
	}
	if s.parent != nil {
		return s.parent.LookupByID(id)
	}
	return nil, &UndefinedIDError{ID: id}
}

// Set updates the type and role flags of the symbol with the given id,
// wherever in the scope chain it lives.
func (s *SymbolTable) Set(id, typeID int, isFunction, isArray bool) error {
	if sym, ok := s.byID[id]; ok {
		sym.TypeID = typeID
		sym.IsFunction = isFunction
		sym.IsArray = isArray
		return nil
	}
	if s.parent != nil {
		return s.parent.Set(id, typeID, isFunction, isArray)
	}
	return &UndefinedIDError{ID: id}
}

// Names returns the names defined directly in this scope (not ancestors),
// for the AST printer's "Symbols: { ... }" lines.
func (s *SymbolTable) Names() []*Symbol {
	syms := make([]*Symbol, 0, len(s.local))
	for _, sym := range s.local {
		syms = append(syms, sym)
	}
	return syms
}
