// Package parser implements a recursive-descent parser that builds a typed
// Ast while resolving names through a tree of symbol tables as it goes:
// symbol-table construction and type checking happen inline with grammar
// recognition rather than as later passes.
package parser

import (
	"fmt"

	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/evalerr"
	"github.com/cwbudde/nutmeg/internal/lexer"
	"github.com/cwbudde/nutmeg/internal/symtab"
	"github.com/cwbudde/nutmeg/internal/token"
	"github.com/cwbudde/nutmeg/internal/types"
)

// Parser drives a Lexer and constructs an Ast, reporting the first error
// it encounters. There is no error recovery: construction aborts on the
// first mismatch.
type Parser struct {
	lex    *lexer.Lexer
	cur    token.Token
	peeked *token.Token

	global *ast.Global
	scope  *symtab.SymbolTable

	// retType/retName hold the declared return type of the function
	// currently being parsed, consulted by parseReturn.
	retType int
	retName string
}

// Parse parses source into an Ast, or returns the first error encountered.
func Parse(source string) (*ast.Ast, error) {
	p := &Parser{lex: lexer.New(source)}
	root := symtab.NewRoot()
	p.global = ast.NewGlobal(root)
	p.scope = root
	p.prepopulate()
	p.shift()

	if err := p.parseGlobal(); err != nil {
		return nil, err
	}
	return &ast.Ast{Root: p.global}, nil
}

func (p *Parser) shift() {
	if p.peeked != nil {
		p.cur = *p.peeked
		p.peeked = nil
		return
	}
	p.cur = p.lex.Next()
}

func (p *Parser) expect(kind token.Kind) (token.Token, error) {
	if p.cur.Kind != kind {
		return token.Token{}, p.errorExpected(kind)
	}
	t := p.cur
	p.shift()
	return t, nil
}

func (p *Parser) errorExpected(kinds ...token.Kind) error {
	return &evalerr.ParseError{Received: p.cur, Expected: kinds}
}

// lookup resolves name in the current scope chain, wrapping a failure as
// the "An exception occured..." diagnostic symbol errors raised during
// parsing use.
func (p *Parser) lookup(name string, line int) (*symtab.Symbol, error) {
	sym, err := p.scope.Lookup(name)
	if err != nil {
		return nil, evalerr.Wrap(line, err)
	}
	return sym, nil
}

func (p *Parser) add(name string, line int) (*symtab.Symbol, error) {
	sym, err := p.scope.Add(name)
	if err != nil {
		return nil, evalerr.Wrap(line, err)
	}
	return sym, nil
}

// lookupType resolves a type name (one of the built-ins or an object type)
// to its symbol id.
func (p *Parser) lookupType(name string, line int) (int, error) {
	sym, err := p.lookup(name, line)
	if err != nil {
		return 0, err
	}
	return sym.ID, nil
}

// typeName renders a type id back to its declared name, for diagnostics.
// Falls back to the numeric id if the symbol has since gone out of scope
// of the table used to resolve it (should not happen in practice).
func (p *Parser) typeName(id int) string {
	sym, err := p.scope.LookupByID(id)
	if err != nil {
		return fmt.Sprintf("%d", id)
	}
	return sym.Name
}

func (p *Parser) pushScope() *symtab.SymbolTable {
	child := symtab.NewChild(p.scope)
	p.scope = child
	return child
}

func (p *Parser) popScope() {
	p.scope = p.scope.Parent()
}

// prepopulate inserts the built-in type names and host function
// signatures into the root scope, in the fixed order that gives them
// their conventional ids (1..5 for types, 6..11 for the four host
// functions plus the one parameter symbol each of Write and WriteLine
// takes; ReadNumber and ReadText take none).
func (p *Parser) prepopulate() {
	root := p.scope

	for _, name := range []string{types.VoidName, types.BoolName, types.NumberName, types.StringName, types.AnyName} {
		root.Add(name)
	}

	p.global.Functions = append(p.global.Functions,
		p.addBuiltinFunc(root, "Write", []builtinParam{{"value", types.AnyID, types.AnyName}}, types.VoidID, types.VoidName),
		p.addBuiltinFunc(root, "WriteLine", []builtinParam{{"value", types.AnyID, types.AnyName}}, types.VoidID, types.VoidName),
		p.addBuiltinFunc(root, "ReadNumber", nil, types.NumberID, types.NumberName),
		p.addBuiltinFunc(root, "ReadText", nil, types.StringID, types.StringName),
	)
}

type builtinParam struct {
	name     string
	typeID   int
	typeName string
}

func (p *Parser) addBuiltinFunc(root *symtab.SymbolTable, name string, params []builtinParam, retType int, retName string) *ast.FunctionDef {
	fnSym, _ := root.Add(name)
	root.Set(fnSym.ID, retType, true, false)

	var astParams []ast.Param
	if len(params) > 0 {
		scope := symtab.NewChild(root)
		for _, bp := range params {
			psym, _ := scope.Add(bp.name)
			scope.Set(psym.ID, bp.typeID, false, false)
			astParams = append(astParams, ast.Param{SymbolID: psym.ID, Name: bp.name, TypeID: bp.typeID, TypeName: bp.typeName})
		}
	}
	return ast.NewBuiltinFunctionDef(fnSym.ID, name, astParams, retType, retName)
}
