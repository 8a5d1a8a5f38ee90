package parser

import (
	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/evalerr"
	"github.com/cwbudde/nutmeg/internal/token"
	"github.com/cwbudde/nutmeg/internal/types"
)

func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.cur.Kind {
	case token.Return:
		return p.parseReturn()
	case token.For:
		return p.parseFor()
	case token.If:
		return p.parseIf()
	case token.While:
		return p.parseWhile()
	case token.Do:
		return p.parseDoWhile()
	default:
		return p.parseExprStmt()
	}
}

// parseBlock parses '{' Statement* '}', pushing and popping a fresh scope
// owned by the returned Block.
func (p *Parser) parseBlock() (*ast.Block, error) {
	line := p.cur.Line
	if _, err := p.expect(token.CurlyOpen); err != nil {
		return nil, err
	}
	scope := p.pushScope()
	block := ast.NewBlock(line, scope)
	if err := p.parseBlockStatements(block); err != nil {
		p.popScope()
		return nil, err
	}
	p.popScope()
	return block, nil
}

// parseBlockStatements fills block with statements up to and including the
// closing '}', assuming the scope it should run in is already current.
func (p *Parser) parseBlockStatements(block *ast.Block) error {
	for p.cur.Kind != token.CurlyClose {
		if p.cur.Kind == token.EoF {
			return p.errorExpected(token.CurlyClose)
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return err
		}
		block.Stmts = append(block.Stmts, stmt)
	}
	p.shift() // consume '}'
	return nil
}

func (p *Parser) parseExprStmt() (ast.Statement, error) {
	line := p.cur.Line
	expr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(expr, line), nil
}

func (p *Parser) parseReturn() (ast.Statement, error) {
	line := p.cur.Line
	p.shift() // consume 'return'

	var value ast.Expression
	if p.cur.Kind != token.Semicolon {
		v, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		value = v
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}

	actualType, actualName := types.VoidID, types.VoidName
	if value != nil {
		actualType = value.ResolvedType()
		actualName = p.typeName(actualType)
	}
	if !types.Assignable(p.retType, actualType) {
		return nil, &evalerr.TypeMismatchError{Expected: p.retName, Actual: actualName, Line: line, Kind: evalerr.Return}
	}
	return ast.NewReturnStmt(value, line), nil
}

// parseCondition parses a condition expression. Whether it actually
// evaluates to a bool is a runtime concern (a variable declared `any`
// type-checks fine here but may hold a non-bool value); the evaluator
// raises the type error if it does not.
func (p *Parser) parseCondition() (ast.Expression, int, error) {
	line := p.cur.Line
	cond, err := p.parseExpression(lowest)
	if err != nil {
		return nil, 0, err
	}
	return cond, line, nil
}

func (p *Parser) parseIf() (ast.Statement, error) {
	line := p.cur.Line
	ifBranch, err := p.parseIfBranch(token.If)
	if err != nil {
		return nil, err
	}
	var elseifs []*ast.IfBranch
	for p.cur.Kind == token.Elseif {
		eb, err := p.parseIfBranch(token.Elseif)
		if err != nil {
			return nil, err
		}
		elseifs = append(elseifs, eb)
	}
	var elseBlock *ast.Block
	if p.cur.Kind == token.Else {
		p.shift()
		b, err := p.parseBlock()
		if err != nil {
			return nil, err
		}
		elseBlock = b
	}
	return ast.NewIfStmt(ifBranch, elseifs, elseBlock, line), nil
}

func (p *Parser) parseIfBranch(kind token.Kind) (*ast.IfBranch, error) {
	line := p.cur.Line
	if _, err := p.expect(kind); err != nil {
		return nil, err
	}
	cond, _, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewIfBranch(cond, body, line), nil
}

func (p *Parser) parseWhile() (ast.Statement, error) {
	line := p.cur.Line
	if _, err := p.expect(token.While); err != nil {
		return nil, err
	}
	cond, _, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(cond, body, line), nil
}

func (p *Parser) parseDoWhile() (ast.Statement, error) {
	line := p.cur.Line
	if _, err := p.expect(token.Do); err != nil {
		return nil, err
	}
	body, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.While); err != nil {
		return nil, err
	}
	cond, _, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.Semicolon); err != nil {
		return nil, err
	}
	return ast.NewDoWhileStmt(body, cond, line), nil
}

// parseFor parses 'for' Ident 'in' Expression Block. The range expression
// is evaluated in the enclosing scope; the control variable is introduced
// only into the body's scope.
func (p *Parser) parseFor() (ast.Statement, error) {
	line := p.cur.Line
	if _, err := p.expect(token.For); err != nil {
		return nil, err
	}
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.In); err != nil {
		return nil, err
	}
	rangeExpr, err := p.parseExpression(lowest)
	if err != nil {
		return nil, err
	}
	// A range isn't a first-class value, so there's nothing to check
	// statically here beyond it being a well-formed expression; the
	// evaluator rejects anything that isn't literally an 'a ..< b' or
	// 'a ... b' shape when it walks this node.

	if _, err := p.expect(token.CurlyOpen); err != nil {
		return nil, err
	}
	scope := p.pushScope()
	varSym, err := p.add(nameTok.Text, nameTok.Line)
	if err != nil {
		p.popScope()
		return nil, err
	}
	p.scope.Set(varSym.ID, types.NumberID, false, false)

	block := ast.NewBlock(line, scope)
	if err := p.parseBlockStatements(block); err != nil {
		p.popScope()
		return nil, err
	}
	p.popScope()

	return ast.NewForStmt(nameTok.Text, varSym.ID, rangeExpr, block, line), nil
}
