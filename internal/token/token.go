// Package token defines the lexical tokens produced by the lexer and
// consumed by the parser.
package token

import "fmt"

// Kind identifies the lexical category of a Token.
type Kind int

// Token kinds, grouped the way they are introduced in the language grammar.
const (
	EoF Kind = iota
	Invalid

	Identifier
	Number
	String

	ParenOpen
	ParenClose
	CurlyOpen
	CurlyClose
	SquareOpen
	SquareClose

	Colon
	Semicolon
	Comma

	UnaryOperator
	BinaryOperator
	RangeOperator

	Func
	Object
	New
	Var
	Return

	If
	Elseif
	Else
	While
	Do
	For
	In

	True
	False
	Null
	As
)

var kindNames = map[Kind]string{
	EoF:            "EoF",
	Invalid:        "Invalid",
	Identifier:     "Identifier",
	Number:         "Number",
	String:         "String",
	ParenOpen:      "ParenOpen",
	ParenClose:     "ParenClose",
	CurlyOpen:      "CurlyOpen",
	CurlyClose:     "CurlyClose",
	SquareOpen:     "SquareOpen",
	SquareClose:    "SquareClose",
	Colon:          "Colon",
	Semicolon:      "Semicolon",
	Comma:          "Comma",
	UnaryOperator:  "UnaryOperator",
	BinaryOperator: "BinaryOperator",
	RangeOperator:  "RangeOperator",
	Func:           "Func",
	Object:         "Object",
	New:            "New",
	Var:            "Var",
	Return:         "Return",
	If:             "If",
	Elseif:         "Elseif",
	Else:           "Else",
	While:          "While",
	Do:             "Do",
	For:            "For",
	In:             "In",
	True:           "True",
	False:          "False",
	Null:           "Null",
	As:             "As",
}

// String renders the canonical name of a Kind, e.g. "Identifier".
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// keywords maps the exact lexeme of a keyword to its Kind. Identifiers that
// do not appear here keep Kind Identifier.
var keywords = map[string]Kind{
	"func":    Func,
	"object":  Object,
	"new":     New,
	"var":     Var,
	"return":  Return,
	"if":      If,
	"elseif":  Elseif,
	"else":    Else,
	"while":   While,
	"do":      Do,
	"for":     For,
	"in":      In,
	"true":    True,
	"false":   False,
	"null":    Null,
	"as":      As,
}

// LookupIdentifier classifies an identifier lexeme, returning its keyword
// Kind when it matches one exactly, or Identifier otherwise.
func LookupIdentifier(literal string) Kind {
	if kind, ok := keywords[literal]; ok {
		return kind
	}
	return Identifier
}

// Token is a single lexeme: its exact source text, its Kind, and the
// 1-based source line it was read from.
type Token struct {
	Text string
	Kind Kind
	Line int
}

// New builds a Token.
func New(text string, kind Kind, line int) Token {
	return Token{Text: text, Kind: kind, Line: line}
}

// String renders a Token for diagnostics, e.g. "Identifier 'foo' on line 2".
func (t Token) String() string {
	return fmt.Sprintf("%s '%s' on line %d", t.Kind, t.Text, t.Line)
}
