// Package value implements the interpreter's runtime value representation.
package value

import (
	"sort"
	"strconv"
	"strings"

	"github.com/cwbudde/nutmeg/internal/types"
)

// Kind discriminates the runtime representation held by a Value.
type Kind int

const (
	KindVoid Kind = iota
	KindBool
	KindNumber
	KindString
	// KindObject extends the base tagged union (void/bool/number/string,
	// per the data model) to carry object instances, which are a map from
	// attribute symbol id to Value. See DESIGN.md for why this is an
	// extension rather than a contradiction of the base value model.
	KindObject
)

// Value is the interpreter's runtime value: a small tagged union passed and
// stored by copy, plus the object extension described above.
type Value struct {
	Kind   Kind
	bool   bool
	number float64
	str    string
	object *Object
}

// Object is the backing store for an object instance: its declared type's
// symbol id and its attribute values keyed by attribute symbol id.
type Object struct {
	TypeID     int
	TypeName   string
	Attrs      map[int]Value
	AttrOrder  []int
	AttrNames  map[int]string
}

// Void is the unit value.
var Void = Value{Kind: KindVoid}

// Bool constructs a bool Value.
func Bool(b bool) Value { return Value{Kind: KindBool, bool: b} }

// Number constructs a number Value.
func Number(n float64) Value { return Value{Kind: KindNumber, number: n} }

// String constructs a string Value.
func String(s string) Value { return Value{Kind: KindString, str: s} }

// NewObject constructs an object Value around a freshly allocated Object.
func NewObject(obj *Object) Value { return Value{Kind: KindObject, object: obj} }

// AsBool returns the underlying bool. Callers must check Kind first.
func (v Value) AsBool() bool { return v.bool }

// AsNumber returns the underlying number. Callers must check Kind first.
func (v Value) AsNumber() float64 { return v.number }

// AsString returns the underlying string. Callers must check Kind first.
func (v Value) AsString() string { return v.str }

// AsObject returns the underlying object. Callers must check Kind first.
func (v Value) AsObject() *Object { return v.object }

// TypeID returns the built-in type id matching this value's runtime kind.
// Object values return their declared object type's symbol id.
func (v Value) TypeID() int {
	switch v.Kind {
	case KindBool:
		return types.BoolID
	case KindNumber:
		return types.NumberID
	case KindString:
		return types.StringID
	case KindObject:
		return v.object.TypeID
	default:
		return types.VoidID
	}
}

// String renders a Value the way the language's Write/WriteLine and -eval
// output do: "Void", "True"/"False", a shortest round-trippable decimal for
// numbers, and the raw text for strings.
func (v Value) String() string {
	switch v.Kind {
	case KindVoid:
		return "Void"
	case KindBool:
		if v.bool {
			return "True"
		}
		return "False"
	case KindNumber:
		return strconv.FormatFloat(v.number, 'g', -1, 64)
	case KindString:
		return v.str
	case KindObject:
		return v.object.String()
	default:
		return "Void"
	}
}

// String renders an object instance as "TypeName { attr: value, ... }" with
// attributes in declaration order.
func (o *Object) String() string {
	var sb strings.Builder
	sb.WriteString(o.TypeName)
	sb.WriteString(" { ")
	for i, id := range o.AttrOrder {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(o.AttrNames[id])
		sb.WriteString(": ")
		sb.WriteString(o.Attrs[id].String())
	}
	sb.WriteString(" }")
	return sb.String()
}

// Equal implements the language's "==" semantics: values of differing
// concrete kinds are never equal (even across object instances), and equal
// kinds compare their underlying payload.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindVoid:
		return true
	case KindBool:
		return v.bool == o.bool
	case KindNumber:
		return v.number == o.number
	case KindString:
		return v.str == o.str
	case KindObject:
		return v.object == o.object
	default:
		return false
	}
}

// SortedAttrIDs returns an object's attribute symbol ids in ascending order.
func (o *Object) SortedAttrIDs() []int {
	ids := make([]int, len(o.AttrOrder))
	copy(ids, o.AttrOrder)
	sort.Ints(ids)
	return ids
}
