package evaluator

import (
	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/evalerr"
	"github.com/cwbudde/nutmeg/internal/value"
)

// execBlock runs each statement of b in order against fr. It returns as
// soon as a statement sets did_return, reporting the captured value and
// true; reaching the end of the list without returning reports void and
// false.
func (e *Evaluator) execBlock(b *ast.Block, fr *frame) (value.Value, bool, error) {
	for _, stmt := range b.Stmts {
		result, didReturn, err := e.execStatement(stmt, fr)
		if err != nil {
			return value.Void, false, err
		}
		if didReturn {
			return result, true, nil
		}
	}
	return value.Void, false, nil
}

func (e *Evaluator) execStatement(stmt ast.Statement, fr *frame) (value.Value, bool, error) {
	switch s := stmt.(type) {
	case *ast.ExprStmt:
		if _, err := e.eval(s.Expr, fr); err != nil {
			return value.Void, false, err
		}
		return value.Void, false, nil

	case *ast.ReturnStmt:
		if s.Value == nil {
			return value.Void, true, nil
		}
		v, err := e.eval(s.Value, fr)
		if err != nil {
			return value.Void, false, err
		}
		return v, true, nil

	case *ast.IfStmt:
		return e.execIf(s, fr)

	case *ast.WhileStmt:
		return e.execWhile(s, fr)

	case *ast.DoWhileStmt:
		return e.execDoWhile(s, fr)

	case *ast.ForStmt:
		return e.execFor(s, fr)
	}
	return value.Void, false, nil
}

// condition evaluates cond against fr and requires it be a bool, the
// runtime counterpart of the condition check the parser leaves unchecked
// (a variable declared `any` type-checks but may not hold a bool).
func (e *Evaluator) condition(cond ast.Expression, fr *frame) (bool, error) {
	v, err := e.eval(cond, fr)
	if err != nil {
		return false, err
	}
	if v.Kind != value.KindBool {
		return false, &evalerr.RuntimeTypeMismatchError{Context: "a bool condition"}
	}
	return v.AsBool(), nil
}

func (e *Evaluator) execIf(s *ast.IfStmt, fr *frame) (value.Value, bool, error) {
	ok, err := e.condition(s.If.Cond, fr)
	if err != nil {
		return value.Void, false, err
	}
	if ok {
		return e.execBlock(s.If.Body, newFrame(fr))
	}
	for _, ei := range s.Elseifs {
		ok, err := e.condition(ei.Cond, fr)
		if err != nil {
			return value.Void, false, err
		}
		if ok {
			return e.execBlock(ei.Body, newFrame(fr))
		}
	}
	if s.Else != nil {
		return e.execBlock(s.Else, newFrame(fr))
	}
	return value.Void, false, nil
}

func (e *Evaluator) execWhile(s *ast.WhileStmt, fr *frame) (value.Value, bool, error) {
	for {
		ok, err := e.condition(s.Cond, fr)
		if err != nil {
			return value.Void, false, err
		}
		if !ok {
			return value.Void, false, nil
		}
		result, didReturn, err := e.execBlock(s.Body, newFrame(fr))
		if err != nil {
			return value.Void, false, err
		}
		if didReturn {
			return result, true, nil
		}
	}
}

func (e *Evaluator) execDoWhile(s *ast.DoWhileStmt, fr *frame) (value.Value, bool, error) {
	for {
		result, didReturn, err := e.execBlock(s.Body, newFrame(fr))
		if err != nil {
			return value.Void, false, err
		}
		if didReturn {
			return result, true, nil
		}
		ok, err := e.condition(s.Cond, fr)
		if err != nil {
			return value.Void, false, err
		}
		if !ok {
			return value.Void, false, nil
		}
	}
}

// execFor evaluates the range once, then runs the body once per value it
// yields, each in a fresh child frame binding the loop variable. The range
// expression must be literally an 'a ..< b' or 'a ... b' shape (there is no
// first-class range value); anything else is a runtime type error.
func (e *Evaluator) execFor(s *ast.ForStmt, fr *frame) (value.Value, bool, error) {
	rangeOp, ok := s.Range.(*ast.BinaryOperation)
	if !ok || (rangeOp.Op != "..<" && rangeOp.Op != "...") {
		return value.Void, false, &evalerr.RuntimeTypeMismatchError{Context: "a range ('a ..< b' or 'a ... b')"}
	}
	startV, err := e.eval(rangeOp.Left, fr)
	if err != nil {
		return value.Void, false, err
	}
	endV, err := e.eval(rangeOp.Right, fr)
	if err != nil {
		return value.Void, false, err
	}
	if startV.Kind != value.KindNumber || endV.Kind != value.KindNumber {
		return value.Void, false, &evalerr.RuntimeTypeMismatchError{Context: "a numeric range"}
	}
	start, end := int(startV.AsNumber()), int(endV.AsNumber())
	if rangeOp.Op == "..." {
		end++
	}

	for i := start; i < end; i++ {
		child := newFrame(fr)
		child.bind(s.VarSymbolID, value.Number(float64(i)))
		result, didReturn, err := e.execBlock(s.Body, child)
		if err != nil {
			return value.Void, false, err
		}
		if didReturn {
			return result, true, nil
		}
	}
	return value.Void, false, nil
}
