package lexer

import (
	"testing"

	"github.com/cwbudde/nutmeg/internal/token"
)

func collect(t *testing.T, input string) []token.Token {
	t.Helper()
	l := New(input)
	var toks []token.Token
	for {
		tok := l.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EoF {
			return toks
		}
		if len(toks) > 1000 {
			t.Fatalf("lexer did not reach EoF for input %q", input)
		}
	}
}

func TestNextBasicTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []token.Kind
	}{
		{"empty", "", []token.Kind{token.EoF}},
		{"brackets", "(){}[]", []token.Kind{
			token.ParenOpen, token.ParenClose,
			token.CurlyOpen, token.CurlyClose,
			token.SquareOpen, token.SquareClose,
			token.EoF,
		}},
		{"punctuation", ",;:", []token.Kind{token.Comma, token.Semicolon, token.Colon, token.EoF}},
		{"keywords", "func object new var return if elseif else while do for in true false null as",
			[]token.Kind{
				token.Func, token.Object, token.New, token.Var, token.Return,
				token.If, token.Elseif, token.Else, token.While, token.Do,
				token.For, token.In, token.True, token.False, token.Null, token.As,
				token.EoF,
			}},
		{"identifier", "foo_Bar1", []token.Kind{token.Identifier, token.EoF}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(t, tt.in)
			if len(toks) != len(tt.want) {
				t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(tt.want), toks)
			}
			for i, k := range tt.want {
				if toks[i].Kind != k {
					t.Errorf("token %d: got kind %s, want %s", i, toks[i].Kind, k)
				}
			}
		})
	}
}

func TestWhitespaceAndComments(t *testing.T) {
	toks := collect(t, "a # comment here\nb")
	if len(toks) != 3 {
		t.Fatalf("got %d tokens, want 3: %+v", len(toks), toks)
	}
	if toks[0].Text != "a" || toks[1].Text != "b" {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
	if toks[1].Line != 2 {
		t.Fatalf("got line %d, want 2", toks[1].Line)
	}
}

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind token.Kind
		wantText string
	}{
		{"simple", `"hello"`, token.String, `"hello"`},
		{"empty", `""`, token.String, `""`},
		{"unterminated", "\"hello", token.Invalid, `"hello`},
		{"unterminated by newline", "\"hello\nworld\"", token.Invalid, `"hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(t, tt.in)
			if toks[0].Kind != tt.wantKind {
				t.Fatalf("got kind %s, want %s", toks[0].Kind, tt.wantKind)
			}
			if toks[0].Text != tt.wantText {
				t.Fatalf("got text %q, want %q", toks[0].Text, tt.wantText)
			}
		})
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		name     string
		in       string
		wantKind token.Kind
		wantText string
	}{
		{"integer", "123", token.Number, "123"},
		{"decimal", "12.4", token.Number, "12.4"},
		{"negative", "-5", token.Number, "-5"},
		{"negative decimal", "-5.25", token.Number, "-5.25"},
		{"leading dot", ".5", token.Number, ".5"},
		{"two dots invalid", "1.2.3", token.Invalid, "1.2.3"},
		{"trailing dot invalid", "1.", token.Invalid, "1."},
		{"two dashes invalid", "5--3", token.Invalid, "5--3"},
		{"misplaced dash invalid", "5-3", token.Invalid, "5-3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toks := collect(t, tt.in)
			if toks[0].Kind != tt.wantKind {
				t.Fatalf("got kind %s, want %s", toks[0].Kind, tt.wantKind)
			}
			if toks[0].Text != tt.wantText {
				t.Fatalf("got text %q, want %q", toks[0].Text, tt.wantText)
			}
		})
	}
}

func TestBareDotIsNotANumber(t *testing.T) {
	toks := collect(t, ". ..< ...")
	// '.' alone is BinaryOperator (member access), not a number.
	want := []token.Kind{token.BinaryOperator, token.RangeOperator, token.RangeOperator, token.EoF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %s, want %s", i, toks[i].Kind, k)
		}
	}
}

func TestOperators(t *testing.T) {
	tests := []struct {
		in       string
		wantKind token.Kind
	}{
		{"!", token.UnaryOperator},
		{"?", token.UnaryOperator},
		{"=", token.BinaryOperator},
		{"+=", token.BinaryOperator},
		{"-=", token.BinaryOperator},
		{"*=", token.BinaryOperator},
		{"/=", token.BinaryOperator},
		{"==", token.BinaryOperator},
		{"!=", token.BinaryOperator},
		{"<", token.BinaryOperator},
		{"<=", token.BinaryOperator},
		{">", token.BinaryOperator},
		{">=", token.BinaryOperator},
		{"&&", token.BinaryOperator},
		{"||", token.BinaryOperator},
		{"->", token.BinaryOperator},
		{"..<", token.RangeOperator},
		{"...", token.RangeOperator},
		{"@@@", token.Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			toks := collect(t, tt.in)
			if toks[0].Kind != tt.wantKind {
				t.Fatalf("%q: got kind %s, want %s", tt.in, toks[0].Kind, tt.wantKind)
			}
			if toks[0].Text != tt.in {
				t.Fatalf("%q: got text %q", tt.in, toks[0].Text)
			}
		})
	}
}

func TestLineCounting(t *testing.T) {
	toks := collect(t, "a\nb\n\nc")
	lines := []int{1, 2, 4, 4}
	for i, want := range lines {
		if toks[i].Line != want {
			t.Errorf("token %d (%q): got line %d, want %d", i, toks[i].Text, toks[i].Line, want)
		}
	}
}

func TestEoFIsSticky(t *testing.T) {
	l := New("a")
	l.Next()
	first := l.Next()
	second := l.Next()
	if first.Kind != token.EoF || second.Kind != token.EoF {
		t.Fatalf("expected repeated EoF, got %+v then %+v", first, second)
	}
}
