package evaluator

import (
	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/evalerr"
	"github.com/cwbudde/nutmeg/internal/symtab"
	"github.com/cwbudde/nutmeg/internal/value"
)

func (e *Evaluator) eval(expr ast.Expression, fr *frame) (value.Value, error) {
	switch n := expr.(type) {
	case *ast.BoolLit:
		return value.Bool(n.Value), nil
	case *ast.NumberLit:
		return value.Number(n.Value), nil
	case *ast.StringLit:
		return value.String(n.Value), nil
	case *ast.NullLit:
		return value.Void, nil

	case *ast.VariableRef:
		v, ok := fr.get(n.SymbolID)
		if !ok {
			return value.Void, &symtab.UndefinedIDError{ID: n.SymbolID}
		}
		return v, nil

	case *ast.VariableDef:
		v := value.Void
		if n.Init != nil {
			iv, err := e.eval(n.Init, fr)
			if err != nil {
				return value.Void, err
			}
			v = iv
		}
		fr.bind(n.SymbolID, v)
		return v, nil

	case *ast.VariableAssign:
		return e.evalAssign(n, fr)

	case *ast.UnaryOperation:
		return e.evalUnary(n, fr)

	case *ast.BinaryOperation:
		return e.evalBinary(n, fr)

	case *ast.FunctionCall:
		return e.evalCall(n, fr)

	case *ast.ObjectInit:
		return e.evalObjectInit(n, fr)
	}
	return value.Void, nil
}

func (e *Evaluator) evalAssign(n *ast.VariableAssign, fr *frame) (value.Value, error) {
	rhs, err := e.eval(n.Value, fr)
	if err != nil {
		return value.Void, err
	}
	if n.Op == "=" {
		if !fr.assign(n.SymbolID, rhs) {
			return value.Void, &symtab.UndefinedIDError{ID: n.SymbolID}
		}
		return rhs, nil
	}

	cur, ok := fr.get(n.SymbolID)
	if !ok {
		return value.Void, &symtab.UndefinedIDError{ID: n.SymbolID}
	}
	if cur.Kind != value.KindNumber || rhs.Kind != value.KindNumber {
		return value.Void, &evalerr.OperatorTypeMismatchError{Operator: n.Op}
	}
	var result float64
	switch n.Op {
	case "+=":
		result = cur.AsNumber() + rhs.AsNumber()
	case "-=":
		result = cur.AsNumber() - rhs.AsNumber()
	case "*=":
		result = cur.AsNumber() * rhs.AsNumber()
	case "/=":
		result = cur.AsNumber() / rhs.AsNumber()
	}
	updated := value.Number(result)
	fr.assign(n.SymbolID, updated)
	return updated, nil
}

func (e *Evaluator) evalUnary(n *ast.UnaryOperation, fr *frame) (value.Value, error) {
	operand, err := e.eval(n.Operand, fr)
	if err != nil {
		return value.Void, err
	}
	switch n.Op {
	case "!":
		if operand.Kind != value.KindBool {
			return value.Void, &evalerr.OperatorTypeMismatchError{Operator: n.Op}
		}
		return value.Bool(!operand.AsBool()), nil
	case "?":
		return value.Bool(operand.Kind != value.KindVoid), nil
	}
	return value.Void, &evalerr.OperatorTypeMismatchError{Operator: n.Op}
}

func (e *Evaluator) evalBinary(n *ast.BinaryOperation, fr *frame) (value.Value, error) {
	if n.Op == "." {
		return e.evalMemberAccess(n, fr)
	}

	left, err := e.eval(n.Left, fr)
	if err != nil {
		return value.Void, err
	}

	// Logical operators short-circuit, so the right operand is only
	// evaluated (and only needs to be a bool) when it actually runs.
	if n.Op == "&&" || n.Op == "||" {
		if left.Kind != value.KindBool {
			return value.Void, &evalerr.OperatorTypeMismatchError{Operator: n.Op}
		}
		if n.Op == "&&" && !left.AsBool() {
			return value.Bool(false), nil
		}
		if n.Op == "||" && left.AsBool() {
			return value.Bool(true), nil
		}
		right, err := e.eval(n.Right, fr)
		if err != nil {
			return value.Void, err
		}
		if right.Kind != value.KindBool {
			return value.Void, &evalerr.OperatorTypeMismatchError{Operator: n.Op}
		}
		return right, nil
	}

	right, err := e.eval(n.Right, fr)
	if err != nil {
		return value.Void, err
	}
	return e.applyBinary(n.Op, left, right)
}

// applyBinary re-checks operand kinds at runtime even though the parser
// already checked their static types: a parameter declared `any` can
// receive a value of any kind at the call site, so the static check alone
// cannot guarantee these kinds match when the body actually runs.
func (e *Evaluator) applyBinary(op string, left, right value.Value) (value.Value, error) {
	switch op {
	case "+":
		if left.Kind == value.KindNumber && right.Kind == value.KindNumber {
			return value.Number(left.AsNumber() + right.AsNumber()), nil
		}
		if left.Kind == value.KindString && right.Kind == value.KindString {
			return value.String(left.AsString() + right.AsString()), nil
		}
		return value.Void, &evalerr.OperatorTypeMismatchError{Operator: op}
	case "-", "*", "/":
		if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
			return value.Void, &evalerr.OperatorTypeMismatchError{Operator: op}
		}
		return value.Number(arith(op, left.AsNumber(), right.AsNumber())), nil
	case "<", "<=", ">", ">=":
		if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
			return value.Void, &evalerr.OperatorTypeMismatchError{Operator: op}
		}
		return value.Bool(compare(op, left.AsNumber(), right.AsNumber())), nil
	case "==":
		if left.Kind != right.Kind {
			return value.Bool(false), nil
		}
		return value.Bool(left.Equal(right)), nil
	case "!=":
		if left.Kind != right.Kind {
			return value.Bool(true), nil
		}
		return value.Bool(!left.Equal(right)), nil
	case "..<", "...":
		if left.Kind != value.KindNumber || right.Kind != value.KindNumber {
			return value.Void, &evalerr.OperatorTypeMismatchError{Operator: op}
		}
		return left, nil // the range's own value is never observed; for loops special-case it
	}
	return value.Void, &evalerr.OperatorTypeMismatchError{Operator: op}
}

func arith(op string, a, b float64) float64 {
	switch op {
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	}
	return a + b
}

func compare(op string, a, b float64) bool {
	switch op {
	case "<":
		return a < b
	case "<=":
		return a <= b
	case ">":
		return a > b
	default:
		return a >= b
	}
}

// evalMemberAccess evaluates the object on the left, then reads the
// attribute the parser already resolved on the right (a VariableRef whose
// SymbolID is the attribute's id) directly out of the object's attribute
// map, since attributes aren't bound in any frame.
func (e *Evaluator) evalMemberAccess(n *ast.BinaryOperation, fr *frame) (value.Value, error) {
	left, err := e.eval(n.Left, fr)
	if err != nil {
		return value.Void, err
	}
	if left.Kind != value.KindObject {
		return value.Void, &evalerr.OperatorTypeMismatchError{Operator: "."}
	}
	ref := n.Right.(*ast.VariableRef)
	obj := left.AsObject()
	v, ok := obj.Attrs[ref.SymbolID]
	if !ok {
		return value.Void, &symtab.UndefinedIDError{ID: ref.SymbolID}
	}
	return v, nil
}

func (e *Evaluator) evalCall(n *ast.FunctionCall, fr *frame) (value.Value, error) {
	fn := e.root.FindFunctionByID(n.SymbolID)
	if fn == nil {
		return value.Void, &symtab.UndefinedNameError{Name: n.Name}
	}
	args := make([]value.Value, len(n.Args))
	for i, a := range n.Args {
		v, err := e.eval(a, fr)
		if err != nil {
			return value.Void, err
		}
		args[i] = v
	}
	if len(args) != len(fn.Params) {
		return value.Void, &evalerr.ArgumentCountMismatchError{Expected: len(fn.Params), Actual: len(args)}
	}
	return e.call(fn, args, fr)
}

// evalObjectInit allocates a new object value: each declared attribute
// takes the caller-supplied field value if the initializer named it, else
// its declared default expression evaluated now, else void.
func (e *Evaluator) evalObjectInit(n *ast.ObjectInit, fr *frame) (value.Value, error) {
	objDef := e.root.FindObject(n.TypeID)
	if objDef == nil {
		return value.Void, &symtab.UndefinedIDError{ID: n.TypeID}
	}

	obj := &value.Object{
		TypeID:    n.TypeID,
		TypeName:  n.TypeName,
		Attrs:     make(map[int]value.Value, len(objDef.Attrs)),
		AttrOrder: make([]int, 0, len(objDef.Attrs)),
		AttrNames: make(map[int]string, len(objDef.Attrs)),
	}
	for _, attr := range objDef.Attrs {
		v := value.Void
		if field := findField(n, attr.Name); field != nil {
			fv, err := e.eval(field.Value, fr)
			if err != nil {
				return value.Void, err
			}
			v = fv
		} else if attr.Default != nil {
			dv, err := e.eval(attr.Default, fr)
			if err != nil {
				return value.Void, err
			}
			v = dv
		}
		obj.Attrs[attr.SymbolID] = v
		obj.AttrOrder = append(obj.AttrOrder, attr.SymbolID)
		obj.AttrNames[attr.SymbolID] = attr.Name
	}
	return value.NewObject(obj), nil
}

func findField(n *ast.ObjectInit, name string) *ast.ObjectInitField {
	for i := range n.Fields {
		if n.Fields[i].Name == name {
			return &n.Fields[i]
		}
	}
	return nil
}
