package value

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"
)

// AsList wraps a singleton Value in a one-element list, unless v is
// already a List (spec.md §4.1 "as_list").
func AsList(v Value) []Value {
	if v.IsList() {
		return v.list
	}
	return []Value{v}
}

// AsBool implements spec.md §4.2.3's truthiness table.
func AsBool(v Value) bool {
	switch v.kind {
	case KindNull:
		return false
	case KindBool:
		return v.b
	case KindNum:
		return !v.n.IsZero()
	case KindStr:
		return v.s != "" && v.s != "[]" && v.s != "null"
	case KindList:
		return len(v.list) > 0
	case KindObj:
		return v.obj.Len() > 0
	default:
		return false
	}
}

// AsBigDecimal coerces v to a decimal, reporting ok=false when v
// cannot be interpreted numerically at all (Null, List/Obj, or a
// string that doesn't parse as a number).
func AsBigDecimal(v Value, ctx MathContext) (decimal.Decimal, bool) {
	switch v.kind {
	case KindNum:
		return v.n, true
	case KindBool:
		if v.b {
			return decimal.NewFromInt(1), true
		}
		return decimal.Zero, true
	case KindStr:
		s := strings.TrimSpace(v.s)
		if s == "" {
			return decimal.Zero, false
		}
		d, err := decimal.NewFromString(s)
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	default:
		return decimal.Zero, false
	}
}

// AsString stringifies v: integers print without a trailing decimal
// point, lists flatten (recursively) into comma-joined stringified
// elements, objects print as compact "key:value,..." pairs. This
// backs both the `cat` operator and the stringified-form fallback
// used by comparisons.
func AsString(v Value) string {
	var sb strings.Builder
	writeString(&sb, v)
	return sb.String()
}

func writeString(sb *strings.Builder, v Value) {
	switch v.kind {
	case KindNull:
		// empty contribution, matching jsonlogic-style `cat` semantics
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.b))
	case KindNum:
		sb.WriteString(formatNumber(v.n))
	case KindStr:
		sb.WriteString(v.s)
	case KindList:
		for i, e := range v.list {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeString(sb, e)
		}
	case KindObj:
		first := true
		v.obj.Range(func(k string, ev Value) bool {
			if !first {
				sb.WriteByte(',')
			}
			first = false
			sb.WriteString(k)
			sb.WriteByte(':')
			writeString(sb, ev)
			return true
		})
	}
}

// formatNumber prints a decimal as a bare integer when it has no
// fractional part ("integer-if-whole", spec.md §4.1), else in its
// canonical decimal form.
func formatNumber(d decimal.Decimal) string {
	if d.Equal(d.Truncate(0)) {
		return d.Truncate(0).String()
	}
	return d.String()
}

// AsNumericString attempts to parse a bare Go string as a number using
// spf13/cast, without the stricter decimal grammar AsBigDecimal
// enforces. Nothing in this module calls it: LooseEqual recognizes
// numeric strings through AsBigDecimal.
func AsNumericString(s string) (float64, bool) {
	f, err := cast.ToFloat64E(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return f, true
}
