// Package value implements the universal dynamic value used to carry
// both LogicExpr payloads and evaluation-context data: a tagged sum of
// Null, Bool, Num (arbitrary-precision decimal), Str, List and Obj
// (insertion-ordered string-keyed map).
package value

import (
	"github.com/shopspring/decimal"
)

// Kind tags the variant held by a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNum
	KindStr
	KindList
	KindObj
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNum:
		return "num"
	case KindStr:
		return "str"
	case KindList:
		return "list"
	case KindObj:
		return "obj"
	default:
		return "unknown"
	}
}

// Value is a tagged union of the shapes a LogicExpr or evaluation
// context datum can take. The zero Value is Null. Values are
// immutable once constructed; operators and the interpreter never
// mutate a Value in place.
type Value struct {
	kind Kind
	b    bool
	n    decimal.Decimal
	s    string
	list []Value
	obj  *Obj
}

// Null is the singleton null Value.
var Null = Value{kind: KindNull}

// Bool wraps a bool.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Num wraps a decimal. The caller is responsible for having produced
// it through a MathContext so that NaN/Inf never occur; decimal.Decimal
// itself has no such states, which is why it was chosen as the backing
// numeric representation (see DESIGN.md).
func Num(d decimal.Decimal) Value {
	return Value{kind: KindNum, n: d}
}

// NumFromInt wraps an int64 as a Num Value.
func NumFromInt(i int64) Value {
	return Num(decimal.NewFromInt(i))
}

// Str wraps a string.
func Str(s string) Value {
	return Value{kind: KindStr, s: s}
}

// List wraps a slice of Values. The slice is not copied; callers must
// not mutate it after handing it to List.
func List(xs []Value) Value {
	if xs == nil {
		xs = []Value{}
	}
	return Value{kind: KindList, list: xs}
}

// ObjVal wraps an *Obj. A nil Obj is treated as an empty one.
func ObjVal(o *Obj) Value {
	if o == nil {
		o = NewObj()
	}
	return Value{kind: KindObj, obj: o}
}

func (v Value) Kind() Kind { return v.kind }

func (v Value) IsNull() bool { return v.kind == KindNull }
func (v Value) IsBool() bool { return v.kind == KindBool }
func (v Value) IsNum() bool  { return v.kind == KindNum }
func (v Value) IsStr() bool  { return v.kind == KindStr }
func (v Value) IsList() bool { return v.kind == KindList }
func (v Value) IsObj() bool  { return v.kind == KindObj }

// BoolVal returns the underlying bool; only meaningful when IsBool().
func (v Value) BoolVal() bool { return v.b }

// NumVal returns the underlying decimal; only meaningful when IsNum().
func (v Value) NumVal() decimal.Decimal { return v.n }

// StrVal returns the underlying string; only meaningful when IsStr().
func (v Value) StrVal() string { return v.s }

// ListVal returns the underlying slice; only meaningful when IsList().
func (v Value) ListVal() []Value { return v.list }

// ObjValue returns the underlying *Obj; only meaningful when IsObj().
func (v Value) ObjValue() *Obj { return v.obj }

// IsExpression reports whether v is shaped like a LogicExpr operator
// node: a non-empty Obj. Every Obj key in this model is already a
// string, so the "all keys are strings" clause of spec.md's
// definition is automatically satisfied; the only real test is
// non-emptiness.
func (v Value) IsExpression() bool {
	return v.kind == KindObj && v.obj != nil && v.obj.Len() > 0
}

// Equal reports strict, tag-preserving deep equality: no cross-type
// coercion, numbers compared as exact decimals rather than as float64
// values, so two numbers that differ only beyond float64 precision are
// not equal here.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindNum:
		return v.n.Equal(o.n)
	case KindStr:
		return v.s == o.s
	case KindList:
		if len(v.list) != len(o.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(o.list[i]) {
				return false
			}
		}
		return true
	case KindObj:
		if v.obj.Len() != o.obj.Len() {
			return false
		}
		for _, k := range v.obj.Keys() {
			ov, ok := o.obj.Get(k)
			if !ok {
				return false
			}
			vv, _ := v.obj.Get(k)
			if !vv.Equal(ov) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
