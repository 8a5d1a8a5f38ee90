package parser

import (
	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/evalerr"
	"github.com/cwbudde/nutmeg/internal/token"
	"github.com/cwbudde/nutmeg/internal/types"
)

// parseGlobal consumes (FunctionDef | ObjectDef)* EoF.
func (p *Parser) parseGlobal() error {
	for p.cur.Kind != token.EoF {
		switch p.cur.Kind {
		case token.Func:
			if _, err := p.parseFunctionDef(); err != nil {
				return err
			}
		case token.Object:
			obj, err := p.parseObjectDef()
			if err != nil {
				return err
			}
			p.global.Objects = append(p.global.Objects, obj)
		default:
			return p.errorExpected(token.Func, token.Object)
		}
	}
	return nil
}

// parseFunctionDef parses 'func' Ident Arguments Block. The function's
// symbol is registered, and a FunctionDef stub with no Body is appended to
// the global function list before the body is parsed, so calls to the
// function from within its own body (direct or mutual recursion) resolve
// arity and type during the same pass.
func (p *Parser) parseFunctionDef() (*ast.FunctionDef, error) {
	line := p.cur.Line
	if _, err := p.expect(token.Func); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	name := nameTok.Text

	outer := p.scope
	fnSym, err := p.add(name, line)
	if err != nil {
		return nil, err
	}

	scope := p.pushScope()
	params, retType, retName, err := p.parseArguments()
	if err != nil {
		p.popScope()
		return nil, err
	}
	outer.Set(fnSym.ID, retType, true, false)

	fn := ast.NewFunctionDef(fnSym.ID, name, params, retType, retName, nil, scope, line)
	p.global.Functions = append(p.global.Functions, fn)

	prevRetType, prevRetName := p.retType, p.retName
	p.retType, p.retName = retType, retName
	body, err := p.parseBlock()
	p.retType, p.retName = prevRetType, prevRetName
	p.popScope()
	if err != nil {
		return nil, err
	}
	fn.Body = body

	if retType != types.VoidID && !fn.HasReturn() {
		return nil, &evalerr.TypeMismatchError{Expected: retName, Actual: types.VoidName, Line: line, Kind: evalerr.Return}
	}
	return fn, nil
}

// parseArguments parses '(' (Ident (':' Ident)? (',' ...)*)? ')' (':' Ident)?,
// registering each parameter in the already-pushed current scope and
// returning the declared return type (void if absent).
func (p *Parser) parseArguments() ([]ast.Param, int, string, error) {
	if _, err := p.expect(token.ParenOpen); err != nil {
		return nil, 0, "", err
	}
	var params []ast.Param
	for p.cur.Kind != token.ParenClose {
		if len(params) > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, 0, "", err
			}
		}
		nameTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, 0, "", err
		}
		typeID, typeName := types.AnyID, types.AnyName
		if p.cur.Kind == token.Colon {
			p.shift()
			typeTok, terr := p.expect(token.Identifier)
			if terr != nil {
				return nil, 0, "", terr
			}
			tid, terr := p.lookupType(typeTok.Text, typeTok.Line)
			if terr != nil {
				return nil, 0, "", terr
			}
			typeID, typeName = tid, typeTok.Text
		}
		sym, err := p.add(nameTok.Text, nameTok.Line)
		if err != nil {
			return nil, 0, "", err
		}
		p.scope.Set(sym.ID, typeID, false, false)
		params = append(params, ast.Param{SymbolID: sym.ID, Name: nameTok.Text, TypeID: typeID, TypeName: typeName})
	}
	if _, err := p.expect(token.ParenClose); err != nil {
		return nil, 0, "", err
	}

	retType, retName := types.VoidID, types.VoidName
	if p.cur.Kind == token.Colon {
		p.shift()
		typeTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, 0, "", err
		}
		tid, err := p.lookupType(typeTok.Text, typeTok.Line)
		if err != nil {
			return nil, 0, "", err
		}
		retType, retName = tid, typeTok.Text
	}
	return params, retType, retName, nil
}

// parseObjectDef parses 'object' Ident '{' VariableDef* '}', where each
// attribute is written `var name [: Type] [= default];`.
func (p *Parser) parseObjectDef() (*ast.ObjectDef, error) {
	line := p.cur.Line
	if _, err := p.expect(token.Object); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	typeSym, err := p.add(nameTok.Text, line)
	if err != nil {
		return nil, err
	}
	p.scope.Set(typeSym.ID, typeSym.ID, false, false)

	if _, err := p.expect(token.CurlyOpen); err != nil {
		return nil, err
	}
	scope := p.pushScope()
	var attrs []ast.AttrDef
	for p.cur.Kind == token.Var {
		attr, err := p.parseAttrDef()
		if err != nil {
			p.popScope()
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	if _, err := p.expect(token.CurlyClose); err != nil {
		p.popScope()
		return nil, err
	}
	p.popScope()

	return ast.NewObjectDef(typeSym.ID, nameTok.Text, attrs, scope, line), nil
}

// parseAttrDef parses one 'var' Ident (':' Ident)? ('=' Expression)? ';'
// attribute declaration inside an ObjectDef.
func (p *Parser) parseAttrDef() (ast.AttrDef, error) {
	line := p.cur.Line
	if _, err := p.expect(token.Var); err != nil {
		return ast.AttrDef{}, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return ast.AttrDef{}, err
	}
	typeID, typeName := types.AnyID, types.AnyName
	if p.cur.Kind == token.Colon {
		p.shift()
		typeTok, terr := p.expect(token.Identifier)
		if terr != nil {
			return ast.AttrDef{}, terr
		}
		tid, terr := p.lookupType(typeTok.Text, typeTok.Line)
		if terr != nil {
			return ast.AttrDef{}, terr
		}
		typeID, typeName = tid, typeTok.Text
	}

	var def ast.Expression
	if p.cur.Kind == token.BinaryOperator && p.cur.Text == "=" {
		p.shift()
		d, terr := p.parseExpression(assignPrec + 1)
		if terr != nil {
			return ast.AttrDef{}, terr
		}
		def = d
		if !types.Assignable(typeID, def.ResolvedType()) {
			return ast.AttrDef{}, &evalerr.TypeMismatchError{Expected: typeName, Actual: p.typeName(def.ResolvedType()), Line: line, Kind: evalerr.Assignment}
		}
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return ast.AttrDef{}, err
	}

	sym, err := p.add(nameTok.Text, line)
	if err != nil {
		return ast.AttrDef{}, err
	}
	p.scope.Set(sym.ID, typeID, false, false)
	return ast.AttrDef{SymbolID: sym.ID, Name: nameTok.Text, TypeID: typeID, TypeName: typeName, Default: def}, nil
}
