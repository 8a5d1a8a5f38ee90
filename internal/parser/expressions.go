package parser

import (
	"strconv"

	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/evalerr"
	"github.com/cwbudde/nutmeg/internal/symtab"
	"github.com/cwbudde/nutmeg/internal/token"
	"github.com/cwbudde/nutmeg/internal/types"
)

// parseExpression implements precedence climbing: parsePrimary reads the
// leftmost atom (including any prefix unary), then the loop folds in
// binary operators whose precedence is at least minPrec, recursing with
// precedence+1 for left-associative operators and precedence unchanged
// for the right-associative assignment family.
func (p *Parser) parseExpression(minPrec int) (ast.Expression, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for isBinaryOpToken(p.cur) {
		op := p.cur.Text
		prec, ok := binaryPrecedence[op]
		if !ok || prec < minPrec {
			break
		}
		line := p.cur.Line
		p.shift()

		if op == "." {
			node, err := p.parseMemberAccess(left, line)
			if err != nil {
				return nil, err
			}
			left = node
			continue
		}

		nextMin := prec + 1
		if isRightAssoc(op) {
			nextMin = prec
		}
		right, err := p.parseExpression(nextMin)
		if err != nil {
			return nil, err
		}
		node, err := p.buildBinary(op, left, right, line)
		if err != nil {
			return nil, err
		}
		left = node
	}
	return left, nil
}

func isBinaryOpToken(t token.Token) bool {
	return t.Kind == token.BinaryOperator || t.Kind == token.RangeOperator
}

func (p *Parser) parsePrimary() (ast.Expression, error) {
	switch p.cur.Kind {
	case token.UnaryOperator:
		return p.parseUnary()
	case token.Number:
		return p.parseNumber()
	case token.String:
		return p.parseString()
	case token.True:
		line := p.cur.Line
		p.shift()
		return ast.NewBoolLit(true, line), nil
	case token.False:
		line := p.cur.Line
		p.shift()
		return ast.NewBoolLit(false, line), nil
	case token.Null:
		line := p.cur.Line
		p.shift()
		return ast.NewNullLit(line), nil
	case token.Var:
		return p.parseVariableDef()
	case token.New:
		return p.parseObjectInit()
	case token.ParenOpen:
		p.shift()
		expr, err := p.parseExpression(lowest)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.ParenClose); err != nil {
			return nil, err
		}
		return expr, nil
	case token.Identifier:
		return p.parseIdentifierExpr()
	default:
		return nil, p.errorExpected(token.Number, token.String, token.Identifier)
	}
}

func (p *Parser) parseUnary() (ast.Expression, error) {
	opTok := p.cur
	p.shift()
	operand, err := p.parseExpression(unaryPrec)
	if err != nil {
		return nil, err
	}
	switch opTok.Text {
	case "!":
		if operand.ResolvedType() != types.BoolID {
			return nil, &evalerr.TypeMismatchError{Expected: types.BoolName, Actual: p.typeName(operand.ResolvedType()), Line: opTok.Line}
		}
		return ast.NewUnaryOperation("!", operand, types.BoolID, opTok.Line), nil
	case "?":
		// Reserved for optional-probe semantics; with no nullable type in
		// the language, "?" reports whether its operand's result is non-void.
		return ast.NewUnaryOperation("?", operand, types.BoolID, opTok.Line), nil
	}
	return nil, &evalerr.ParseError{Received: opTok}
}

func (p *Parser) parseNumber() (ast.Expression, error) {
	tok := p.cur
	p.shift()
	v, err := strconv.ParseFloat(tok.Text, 64)
	if err != nil {
		return nil, &evalerr.ParseError{Received: tok, Expected: []token.Kind{token.Number}}
	}
	return ast.NewNumberLit(tok.Text, v, tok.Line), nil
}

func (p *Parser) parseString() (ast.Expression, error) {
	tok := p.cur
	p.shift()
	text := tok.Text
	if len(text) >= 2 {
		text = text[1 : len(text)-1]
	}
	return ast.NewStringLit(text, tok.Line), nil
}

// parseVariableDef parses 'var' Ident (':' Ident)? ('=' Expression)?. Per
// the language's rule, a VariableDef without an explicit type annotation
// is always `any`, even when an initializer is present.
func (p *Parser) parseVariableDef() (ast.Expression, error) {
	line := p.cur.Line
	p.shift() // consume 'var'
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}

	typeID, typeName := types.AnyID, types.AnyName
	hasType := false
	if p.cur.Kind == token.Colon {
		p.shift()
		typeTok, terr := p.expect(token.Identifier)
		if terr != nil {
			return nil, terr
		}
		tid, terr := p.lookupType(typeTok.Text, typeTok.Line)
		if terr != nil {
			return nil, terr
		}
		typeID, typeName = tid, typeTok.Text
		hasType = true
	}

	var init ast.Expression
	if p.cur.Kind == token.BinaryOperator && p.cur.Text == "=" {
		p.shift()
		e, terr := p.parseExpression(assignPrec + 1)
		if terr != nil {
			return nil, terr
		}
		init = e
		if hasType && !types.Assignable(typeID, init.ResolvedType()) {
			return nil, &evalerr.TypeMismatchError{Expected: typeName, Actual: p.typeName(init.ResolvedType()), Line: line, Kind: evalerr.Assignment}
		}
	}

	sym, err := p.add(nameTok.Text, nameTok.Line)
	if err != nil {
		return nil, err
	}
	p.scope.Set(sym.ID, typeID, false, false)
	return ast.NewVariableDef(sym.ID, nameTok.Text, typeID, typeName, init, line), nil
}

// parseIdentifierExpr distinguishes a FunctionCall (Ident immediately
// followed by '(') from a plain VariableRef; assignment to the ref, if
// any, is folded in by the binary-operator loop in parseExpression.
func (p *Parser) parseIdentifierExpr() (ast.Expression, error) {
	nameTok := p.cur
	p.shift()
	if p.cur.Kind == token.ParenOpen {
		return p.parseFunctionCall(nameTok)
	}
	sym, err := p.lookup(nameTok.Text, nameTok.Line)
	if err != nil {
		return nil, err
	}
	return ast.NewVariableRef(sym.ID, nameTok.Text, sym.TypeID, nameTok.Line), nil
}

func (p *Parser) parseFunctionCall(nameTok token.Token) (ast.Expression, error) {
	sym, err := p.lookup(nameTok.Text, nameTok.Line)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ParenOpen); err != nil {
		return nil, err
	}
	var args []ast.Expression
	for p.cur.Kind != token.ParenClose {
		if len(args) > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		arg, err := p.parseExpression(assignPrec + 1)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	if _, err := p.expect(token.ParenClose); err != nil {
		return nil, err
	}

	fn := p.global.FindFunctionByID(sym.ID)
	var formals []ast.Param
	if fn != nil {
		formals = fn.Params
	}
	if len(formals) != len(args) {
		return nil, &evalerr.ArgumentCountMismatchError{Expected: len(formals), Actual: len(args)}
	}
	for i, arg := range args {
		if !types.Assignable(formals[i].TypeID, arg.ResolvedType()) {
			return nil, &evalerr.TypeMismatchError{Expected: formals[i].TypeName, Actual: p.typeName(arg.ResolvedType()), Line: nameTok.Line, Kind: evalerr.Assignment}
		}
	}
	return ast.NewFunctionCall(sym.ID, nameTok.Text, args, sym.TypeID, nameTok.Line), nil
}

func (p *Parser) parseObjectInit() (ast.Expression, error) {
	line := p.cur.Line
	p.shift() // consume 'new'
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	sym, err := p.lookup(nameTok.Text, nameTok.Line)
	if err != nil {
		return nil, err
	}
	objDef := p.global.FindObject(sym.ID)

	if _, err := p.expect(token.CurlyOpen); err != nil {
		return nil, err
	}
	var fields []ast.ObjectInitField
	for p.cur.Kind != token.CurlyClose {
		if len(fields) > 0 {
			if _, err := p.expect(token.Comma); err != nil {
				return nil, err
			}
		}
		fieldTok, err := p.expect(token.Identifier)
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.Colon); err != nil {
			return nil, err
		}
		valueExpr, err := p.parseExpression(assignPrec + 1)
		if err != nil {
			return nil, err
		}

		var attr *ast.AttrDef
		if objDef != nil {
			attr = objDef.FindAttr(fieldTok.Text)
		}
		if attr == nil {
			return nil, evalerr.Wrap(fieldTok.Line, &symtab.UndefinedNameError{Name: fieldTok.Text})
		}
		if !types.Assignable(attr.TypeID, valueExpr.ResolvedType()) {
			return nil, &evalerr.TypeMismatchError{Expected: attr.TypeName, Actual: p.typeName(valueExpr.ResolvedType()), Line: fieldTok.Line, Kind: evalerr.Assignment}
		}
		fields = append(fields, ast.ObjectInitField{Name: fieldTok.Text, Value: valueExpr})
	}
	if _, err := p.expect(token.CurlyClose); err != nil {
		return nil, err
	}
	return ast.NewObjectInit(sym.ID, nameTok.Text, fields, line), nil
}

// parseMemberAccess parses the Identifier following a consumed '.' and
// resolves it against left's object type, rather than going through the
// ordinary expression grammar (a member name is not itself an expression).
func (p *Parser) parseMemberAccess(left ast.Expression, line int) (ast.Expression, error) {
	nameTok, err := p.expect(token.Identifier)
	if err != nil {
		return nil, err
	}
	objDef := p.global.FindObject(left.ResolvedType())
	var attr *ast.AttrDef
	if objDef != nil {
		attr = objDef.FindAttr(nameTok.Text)
	}
	if attr == nil {
		return nil, evalerr.Wrap(nameTok.Line, &symtab.UndefinedNameError{Name: nameTok.Text})
	}
	ref := ast.NewVariableRef(attr.SymbolID, attr.Name, attr.TypeID, nameTok.Line)
	return ast.NewBinaryOperation(".", left, ref, attr.TypeID, line), nil
}

// buildBinary applies the type rules of the checker to a fully-parsed
// binary operation, returning either a VariableAssign (for the assignment
// family, whose left operand must be a VariableRef) or a BinaryOperation.
func (p *Parser) buildBinary(op string, left, right ast.Expression, line int) (ast.Expression, error) {
	if assignOps[op] {
		return p.buildAssign(op, left, right, line)
	}
	return p.buildBinaryOp(op, left, right, line)
}

func (p *Parser) buildAssign(op string, left, right ast.Expression, line int) (ast.Expression, error) {
	ref, ok := left.(*ast.VariableRef)
	if !ok {
		return nil, &evalerr.ParseError{Received: token.New(op, token.BinaryOperator, line)}
	}
	lt := ref.ResolvedType()
	rt := right.ResolvedType()

	// The compound family (+= -= *= /=) is scoped the same as plain "=":
	// the lhs's static type just needs to accept the rhs's. Whether both
	// sides are actually numbers at runtime (required for the arithmetic
	// itself) is an evaluator concern, since an `any`-typed lhs type-checks
	// here but isn't known to be numeric until it holds a value.
	if !types.Assignable(lt, rt) {
		return nil, &evalerr.TypeMismatchError{Expected: p.typeName(lt), Actual: p.typeName(rt), Line: line, Kind: evalerr.Assignment}
	}
	return ast.NewVariableAssign(ref.SymbolID, ref.Name, op, right, lt, line), nil
}

func (p *Parser) buildBinaryOp(op string, left, right ast.Expression, line int) (ast.Expression, error) {
	lt, rt := left.ResolvedType(), right.ResolvedType()
	// An `any` operand passes the static check; the evaluator re-checks the
	// runtime kinds of both operands (see applyBinary).
	is := func(t, want int) bool { return t == want || t == types.AnyID }
	switch op {
	case "+":
		if lt == types.NumberID && rt == types.NumberID {
			return ast.NewBinaryOperation(op, left, right, types.NumberID, line), nil
		}
		if lt == types.StringID && rt == types.StringID {
			return ast.NewBinaryOperation(op, left, right, types.StringID, line), nil
		}
		if lt == types.AnyID || rt == types.AnyID {
			return ast.NewBinaryOperation(op, left, right, types.AnyID, line), nil
		}
		return nil, p.numericMismatch(lt, rt, line)
	case "-", "*", "/":
		if is(lt, types.NumberID) && is(rt, types.NumberID) {
			return ast.NewBinaryOperation(op, left, right, types.NumberID, line), nil
		}
		return nil, p.numericMismatch(lt, rt, line)
	case "<", "<=", ">", ">=":
		if !is(lt, types.NumberID) || !is(rt, types.NumberID) {
			return nil, p.numericMismatch(lt, rt, line)
		}
		return ast.NewBinaryOperation(op, left, right, types.BoolID, line), nil
	case "==", "!=":
		if !types.Assignable(lt, rt) {
			return nil, &evalerr.TypeMismatchError{Expected: p.typeName(lt), Actual: p.typeName(rt), Line: line}
		}
		return ast.NewBinaryOperation(op, left, right, types.BoolID, line), nil
	case "&&", "||":
		if !is(lt, types.BoolID) || !is(rt, types.BoolID) {
			return nil, &evalerr.TypeMismatchError{Expected: types.BoolName, Actual: p.typeName(rt), Line: line}
		}
		return ast.NewBinaryOperation(op, left, right, types.BoolID, line), nil
	case "..<", "...":
		if !is(lt, types.NumberID) || !is(rt, types.NumberID) {
			return nil, p.numericMismatch(lt, rt, line)
		}
		return ast.NewBinaryOperation(op, left, right, types.NumberID, line), nil
	}
	return nil, &evalerr.ParseError{Received: token.New(op, token.BinaryOperator, line)}
}

func (p *Parser) numericMismatch(lt, rt, line int) error {
	bad := rt
	if lt != types.NumberID {
		bad = lt
	}
	return &evalerr.TypeMismatchError{Expected: types.NumberName, Actual: p.typeName(bad), Line: line}
}
