package parser

import (
	"testing"

	"github.com/cwbudde/nutmeg/internal/ast"
	"github.com/cwbudde/nutmeg/internal/types"
)

func mustParse(t *testing.T, src string) *ast.Ast {
	t.Helper()
	tree, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return tree
}

func TestEmptyFunctionReturnsVoid(t *testing.T) {
	tree := mustParse(t, `func foo() {}`)
	fn := tree.Root.FindFunction("foo")
	if fn == nil {
		t.Fatal("function foo not found")
	}
	if fn.ReturnType != types.VoidID {
		t.Fatalf("got return type %d, want void", fn.ReturnType)
	}
}

func TestFunctionWithTypedReturn(t *testing.T) {
	tree := mustParse(t, `func foo() : number { return 12.4; }`)
	fn := tree.Root.FindFunction("foo")
	if fn.ReturnType != types.NumberID {
		t.Fatalf("got return type %d, want number", fn.ReturnType)
	}
}

func TestAnyArgumentEcho(t *testing.T) {
	tree := mustParse(t, `func foo(a: any) : any { return a; }`)
	fn := tree.Root.FindFunction("foo")
	if len(fn.Params) != 1 || fn.Params[0].TypeID != types.AnyID {
		t.Fatalf("unexpected params: %+v", fn.Params)
	}
}

func TestRecursiveFactorialParses(t *testing.T) {
	src := `func Factorial(n: number) : number {
		if n <= 1 { return 1; } else { return n * Factorial(n - 1); }
	}`
	tree := mustParse(t, src)
	fn := tree.Root.FindFunction("Factorial")
	if fn == nil {
		t.Fatal("Factorial not found")
	}
	if !fn.HasReturn() {
		t.Fatal("expected Factorial to have a return on every path")
	}
}

func TestParseErrorPropagation(t *testing.T) {
	_, err := Parse("\nfoo()")
	if err == nil {
		t.Fatal("expected parse error")
	}
	want := "Failed to parse [Identifier 'foo' on line 2]. Expected one of following { Func, Object, }."
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestTypeMismatchOnAssignment(t *testing.T) {
	src := "func foo() {\nvar a : number;\n a = \"x\";\n}"
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected type mismatch error")
	}
	want := `Type mismatch error on line 3. Expected "number" got "string".`
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestUndefinedIdentifierWrapped(t *testing.T) {
	src := "func foo() {\nvar b = 1;\nvar c = 1;\n\n\na;\n}"
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected undefined identifier error")
	}
	want := "An exception occured on line 6. Message: Found undefined identifier a."
	if err.Error() != want {
		t.Fatalf("got %q, want %q", err.Error(), want)
	}
}

func TestMissingTerminalReturnFails(t *testing.T) {
	src := `func foo() : number { var a = 1; }`
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected missing-return type mismatch")
	}
}

func TestVoidFunctionRejectsNonVoidReturn(t *testing.T) {
	src := `func foo() { return 1; }`
	_, err := Parse(src)
	if err == nil {
		t.Fatal("expected void-return mismatch")
	}
}

func TestCompoundAssignOnDefaultedAnyVariableParses(t *testing.T) {
	// `var i = 0;` has no `: T` annotation, so i is `any`; the compound
	// family must type-check the same way plain "=" does rather than
	// requiring a statically-number lhs.
	src := `func foo() {
		var i = 0;
		while i < 10 {
			i += 1;
		}
	}`
	mustParse(t, src)
}

func TestStringConcatenation(t *testing.T) {
	tree := mustParse(t, `func foo() : string { return "a" + "b"; }`)
	fn := tree.Root.FindFunction("foo")
	ret := fn.Body.Stmts[0].(*ast.ReturnStmt)
	if ret.Value.ResolvedType() != types.StringID {
		t.Fatalf("got %d, want string", ret.Value.ResolvedType())
	}
}

func TestMixedArithmeticRejectedAtParseTime(t *testing.T) {
	_, err := Parse(`func foo() : number { return "a" + 1; }`)
	if err == nil {
		t.Fatal("expected type mismatch for string + number")
	}
}

func TestObjectInitAndMemberAccess(t *testing.T) {
	src := `object Point {
		var x : number = 0;
		var y : number = 0;
	}
	func origin() : number {
		var p : Point = new Point { x: 1, y: 2 };
		return p.x;
	}`
	tree := mustParse(t, src)
	if len(tree.Root.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(tree.Root.Objects))
	}
}

func TestForRangeParsesAnyExpressionShape(t *testing.T) {
	// A malformed range ("x" is not an 'a ..< b' / 'a ... b' shape) is a
	// runtime concern for the evaluator, not a parse-time error.
	tree := mustParse(t, `func foo() { for i in "x" { } }`)
	fn := tree.Root.FindFunction("foo")
	forStmt := fn.Body.Stmts[0].(*ast.ForStmt)
	if _, ok := forStmt.Range.(*ast.StringLit); !ok {
		t.Fatalf("expected range expression to be the string literal as parsed, got %T", forStmt.Range)
	}
}

func TestForRangeWithRangeOperatorParses(t *testing.T) {
	tree := mustParse(t, `func foo() { for i in 0 ..< 10 { } }`)
	fn := tree.Root.FindFunction("foo")
	forStmt := fn.Body.Stmts[0].(*ast.ForStmt)
	rangeOp, ok := forStmt.Range.(*ast.BinaryOperation)
	if !ok || rangeOp.Op != "..<" {
		t.Fatalf("expected '..<' range operation, got %#v", forStmt.Range)
	}
}

func TestHostFunctionsPrepopulated(t *testing.T) {
	tree := mustParse(t, `func foo() {}`)
	names := []string{"Write", "WriteLine", "ReadNumber", "ReadText"}
	for _, n := range names {
		if tree.Root.FindFunction(n) == nil {
			t.Fatalf("expected builtin %s to be prepopulated", n)
		}
	}
}

func TestBuiltinIDNumbering(t *testing.T) {
	tree := mustParse(t, `func foo() {}`)
	write := tree.Root.FindFunction("Write")
	if write.SymbolID != 6 {
		t.Fatalf("got Write id %d, want 6", write.SymbolID)
	}
	if write.Params[0].SymbolID != 7 {
		t.Fatalf("got Write's param id %d, want 7", write.Params[0].SymbolID)
	}
	readText := tree.Root.FindFunction("ReadText")
	if readText.SymbolID != 11 {
		t.Fatalf("got ReadText id %d, want 11", readText.SymbolID)
	}
}
