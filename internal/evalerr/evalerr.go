// Package evalerr defines the typed errors raised by the parser, type
// checker and evaluator, each rendering one of the verbatim diagnostic
// formats the language's embedders depend on.
package evalerr

import (
	"fmt"
	"strings"

	"github.com/cwbudde/nutmeg/internal/token"
)

// ParseError reports a token mismatch during parsing: the token actually
// found, and the set of kinds that would have been accepted at that point.
type ParseError struct {
	Received token.Token
	Expected []token.Kind
}

func (e *ParseError) Error() string {
	var expected string
	switch len(e.Expected) {
	case 0:
		expected = token.Invalid.String()
	case 1:
		expected = e.Expected[0].String()
	default:
		var sb strings.Builder
		sb.WriteString("one of following { ")
		for _, k := range e.Expected {
			sb.WriteString(k.String())
			sb.WriteString(", ")
		}
		sb.WriteString("}")
		expected = sb.String()
	}
	return fmt.Sprintf("Failed to parse [%s]. Expected %s.", e.Received, expected)
}

// WrappedError carries a symbol-table error (undefined identifier,
// redefinition) raised while parsing a particular line, rendered with the
// "An exception occured..." wrapper the language uses for that case.
type WrappedError struct {
	Line  int
	Inner error
}

func (e *WrappedError) Error() string {
	return fmt.Sprintf("An exception occured on line %d. Message: %s", e.Line, e.Inner.Error())
}

func (e *WrappedError) Unwrap() error { return e.Inner }

// Wrap builds a WrappedError, or returns nil if err is nil.
func Wrap(line int, err error) error {
	if err == nil {
		return nil
	}
	return &WrappedError{Line: line, Inner: err}
}

// MismatchKind distinguishes a type mismatch found while checking an
// assignment-like construct from one found while checking a return.
type MismatchKind int

const (
	Assignment MismatchKind = iota
	Return
)

// TypeMismatchError reports that an expression's static type did not match
// what its context required.
type TypeMismatchError struct {
	Expected string
	Actual   string
	Line     int
	Kind     MismatchKind
}

func (e *TypeMismatchError) Error() string {
	if e.Kind == Return {
		return fmt.Sprintf("Type mismatch error on line %d caused by wrong return type. Expected %q got %q.",
			e.Line, e.Expected, e.Actual)
	}
	return fmt.Sprintf("Type mismatch error on line %d. Expected %q got %q.", e.Line, e.Expected, e.Actual)
}

// ArgumentCountMismatchError reports that a call site supplied the wrong
// number of arguments for the callee's formal parameter list.
type ArgumentCountMismatchError struct {
	Expected int
	Actual   int
}

func (e *ArgumentCountMismatchError) Error() string {
	return "Wrong number of arguments."
}

// OperatorTypeMismatchError is a runtime error raised when a binary
// operator is applied to a combination of operand types it has no
// definition for (e.g. string + number).
type OperatorTypeMismatchError struct {
	Operator string
}

func (e *OperatorTypeMismatchError) Error() string {
	return "No operator for this type."
}

// RuntimeTypeMismatchError reports that a value's runtime kind did not
// satisfy what evaluating it required: a condition that isn't a bool, or
// a for-loop range that isn't an 'a ..< b' / 'a ... b' shape.
type RuntimeTypeMismatchError struct {
	Context string
}

func (e *RuntimeTypeMismatchError) Error() string {
	return fmt.Sprintf("Runtime type mismatch: expected %s.", e.Context)
}
