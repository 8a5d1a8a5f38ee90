package evaluator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/cwbudde/nutmeg/internal/host"
	"github.com/cwbudde/nutmeg/internal/parser"
	"github.com/cwbudde/nutmeg/internal/value"
)

func mustEvaluate(t *testing.T, src, fn string, args []value.Value) (value.Value, *bytes.Buffer) {
	t.Helper()
	tree, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var out bytes.Buffer
	io := host.New(&out, strings.NewReader(""))
	eval := New(tree.Root, io)
	v, err := eval.Evaluate(fn, args)
	if err != nil {
		t.Fatalf("unexpected evaluation error: %v", err)
	}
	return v, &out
}

func TestEmptyFunctionReturnsVoid(t *testing.T) {
	v, _ := mustEvaluate(t, `func foo() {}`, "foo", nil)
	if v.Kind != value.KindVoid {
		t.Fatalf("got %v, want void", v)
	}
}

func TestLiteralReturn(t *testing.T) {
	v, _ := mustEvaluate(t, `func foo() : number { return 12.4; }`, "foo", nil)
	if v.String() != "12.4" {
		t.Fatalf("got %q, want %q", v.String(), "12.4")
	}
}

func TestArgumentEcho(t *testing.T) {
	src := `func foo(a: any) : any { return a; }`
	cases := []struct {
		arg  value.Value
		want string
	}{
		{value.Bool(true), "True"},
		{value.Number(123), "123"},
		{value.String("goo"), "goo"},
	}
	for _, c := range cases {
		v, _ := mustEvaluate(t, src, "foo", []value.Value{c.arg})
		if v.String() != c.want {
			t.Fatalf("got %q, want %q", v.String(), c.want)
		}
	}
}

func TestIfElse(t *testing.T) {
	src := `func foo(a: bool) : number { if a { return 1; } else { return 0; } }`
	v, _ := mustEvaluate(t, src, "foo", []value.Value{value.Bool(true)})
	if v.AsNumber() != 1 {
		t.Fatalf("got %v, want 1", v)
	}
	v, _ = mustEvaluate(t, src, "foo", []value.Value{value.Bool(false)})
	if v.AsNumber() != 0 {
		t.Fatalf("got %v, want 0", v)
	}
}

func TestAddition(t *testing.T) {
	src := `func foo(a: number, b: number) : number { return a + b; }`
	cases := []struct {
		a, b, want float64
	}{
		{1, 1, 2},
		{2.5, -1, 1.5},
	}
	for _, c := range cases {
		v, _ := mustEvaluate(t, src, "foo", []value.Value{value.Number(c.a), value.Number(c.b)})
		if v.AsNumber() != c.want {
			t.Fatalf("got %v, want %v", v.AsNumber(), c.want)
		}
	}
}

func TestAdditionMixedTypesRaisesOperatorMismatch(t *testing.T) {
	tree, err := parser.Parse(`func foo(a: any, b: any) : any { return a + b; }`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var out bytes.Buffer
	eval := New(tree.Root, host.New(&out, strings.NewReader("")))
	_, err = eval.Evaluate("foo", []value.Value{value.String("x"), value.Number(1)})
	if err == nil {
		t.Fatal("expected operator type mismatch error")
	}
	if err.Error() != "No operator for this type." {
		t.Fatalf("got %q, want %q", err.Error(), "No operator for this type.")
	}
}

func TestRecursiveFactorial(t *testing.T) {
	src := `func Factorial(n: number) : number {
		if n <= 1 { return 1; } else { return n * Factorial(n - 1); }
	}`
	cases := []struct{ n, want float64 }{
		{1, 1},
		{2, 2},
		{4, 24},
	}
	for _, c := range cases {
		v, _ := mustEvaluate(t, src, "Factorial", []value.Value{value.Number(c.n)})
		if v.AsNumber() != c.want {
			t.Fatalf("Factorial(%v) = %v, want %v", c.n, v.AsNumber(), c.want)
		}
	}
}

func TestWhileLoopAccumulates(t *testing.T) {
	src := `func foo() : number {
		var total : number = 0;
		var i : number = 0;
		while i < 5 {
			total = total + i;
			i = i + 1;
		}
		return total;
	}`
	v, _ := mustEvaluate(t, src, "foo", nil)
	if v.AsNumber() != 10 {
		t.Fatalf("got %v, want 10", v.AsNumber())
	}
}

func TestWhileLoopWithCompoundAssignOnDefaultedAnyVariable(t *testing.T) {
	// `var i = 0;` has no `: T` annotation, so i is `any`; compound
	// assignment must still type-check and work at runtime.
	src := `func foo() : number {
		var i = 0;
		while i < 10 {
			i += 1;
		}
		return i;
	}`
	v, _ := mustEvaluate(t, src, "foo", nil)
	if v.AsNumber() != 10 {
		t.Fatalf("got %v, want 10", v.AsNumber())
	}
}

func TestUnaryProbeReportsNonVoid(t *testing.T) {
	src := `func foo() : bool { return ?1; }`
	v, _ := mustEvaluate(t, src, "foo", nil)
	if !v.AsBool() {
		t.Fatalf("got %v, want true for a non-void operand", v)
	}
}

func TestUnaryProbeReportsVoidForNullLiteral(t *testing.T) {
	src := `func foo() : bool { return ?null; }`
	v, _ := mustEvaluate(t, src, "foo", nil)
	if v.AsBool() {
		t.Fatalf("got %v, want false for a void operand", v)
	}
}

func TestForLoopExclusiveRange(t *testing.T) {
	src := `func foo() : number {
		var total : number = 0;
		for i in 0 ..< 5 {
			total = total + i;
		}
		return total;
	}`
	v, _ := mustEvaluate(t, src, "foo", nil)
	if v.AsNumber() != 10 {
		t.Fatalf("got %v, want 10", v.AsNumber())
	}
}

func TestForLoopInclusiveRange(t *testing.T) {
	src := `func foo() : number {
		var total : number = 0;
		for i in 0 ... 5 {
			total = total + i;
		}
		return total;
	}`
	v, _ := mustEvaluate(t, src, "foo", nil)
	if v.AsNumber() != 15 {
		t.Fatalf("got %v, want 15", v.AsNumber())
	}
}

func TestForLoopWithNonRangeExpressionIsRuntimeError(t *testing.T) {
	tree, err := parser.Parse(`func foo() { for i in "x" { } }`)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	var out bytes.Buffer
	eval := New(tree.Root, host.New(&out, strings.NewReader("")))
	_, err = eval.Evaluate("foo", nil)
	if err == nil {
		t.Fatal("expected runtime type mismatch for non-range for-loop expression")
	}
}

func TestWriteLineCallsHost(t *testing.T) {
	_, out := mustEvaluate(t, `func foo() { WriteLine("hi"); }`, "foo", nil)
	if out.String() != "hi\n" {
		t.Fatalf("got %q, want %q", out.String(), "hi\n")
	}
}

func TestObjectInitAndMemberAccess(t *testing.T) {
	src := `object Point {
		var x : number = 0;
		var y : number = 0;
	}
	func origin() : number {
		var p : Point = new Point { x: 3, y: 4 };
		return p.x + p.y;
	}`
	v, _ := mustEvaluate(t, src, "origin", nil)
	if v.AsNumber() != 7 {
		t.Fatalf("got %v, want 7", v.AsNumber())
	}
}

func TestObjectInitUsesDeclaredDefaultWhenFieldOmitted(t *testing.T) {
	src := `object Point {
		var x : number = 0;
		var y : number = 9;
	}
	func originY() : number {
		var p : Point = new Point { x: 1 };
		return p.y;
	}`
	v, _ := mustEvaluate(t, src, "originY", nil)
	if v.AsNumber() != 9 {
		t.Fatalf("got %v, want 9", v.AsNumber())
	}
}
