package printer

import (
	"testing"

	"github.com/cwbudde/nutmeg/internal/parser"
	"github.com/gkampitakis/go-snaps/snaps"
)

func mustPrint(t *testing.T, src string) string {
	t.Helper()
	tree, err := parser.Parse(src)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return Print(tree)
}

func TestPrintEmptyFunction(t *testing.T) {
	snaps.MatchSnapshot(t, mustPrint(t, `func foo() {}`))
}

func TestPrintIfElseChain(t *testing.T) {
	src := `func foo(a: bool) : number {
		if a {
			return 1;
		} elseif !a {
			return 2;
		} else {
			return 0;
		}
	}`
	snaps.MatchSnapshot(t, mustPrint(t, src))
}

func TestPrintRecursiveFunction(t *testing.T) {
	src := `func Factorial(n: number) : number {
		if n <= 1 {
			return 1;
		} else {
			return n * Factorial(n - 1);
		}
	}`
	snaps.MatchSnapshot(t, mustPrint(t, src))
}

func TestPrintObjectAndNew(t *testing.T) {
	src := `object Point {
		var x : number = 0;
		var y : number = 0;
	}
	func origin() : number {
		var p : Point = new Point { x: 1, y: 2 };
		return p.x;
	}`
	snaps.MatchSnapshot(t, mustPrint(t, src))
}

func TestPrintForRangeAndWhile(t *testing.T) {
	src := `func sum() : number {
		var total : number = 0;
		for i in 0 ..< 5 {
			total += i;
		}
		var j : number = 0;
		while j < 3 {
			j = j + 1;
		}
		return total;
	}`
	snaps.MatchSnapshot(t, mustPrint(t, src))
}

func TestPrintIsStableAcrossRuns(t *testing.T) {
	src := `func foo() : number { return 1; }`
	first := mustPrint(t, src)
	second := mustPrint(t, src)
	if first != second {
		t.Fatalf("expected idempotent output, got:\n%s\n---\n%s", first, second)
	}
}
