package value

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAsBoolTruthTable(t *testing.T) {
	tests := []struct {
		name     string
		v        Value
		expected bool
	}{
		{"null", Null, false},
		{"bool true", Bool(true), true},
		{"bool false", Bool(false), false},
		{"num zero", NumFromInt(0), false},
		{"num nonzero", NumFromInt(1), true},
		{"str empty", Str(""), false},
		{"str bracket-empty", Str("[]"), false},
		{"str null", Str("null"), false},
		{"str zero is truthy", Str("0"), true},
		{"list empty", List(nil), false},
		{"list nonempty", List([]Value{NumFromInt(1)}), true},
		{"obj empty", ObjVal(NewObj()), false},
		{"obj nonempty", ObjVal(NewObj().Set("a", NumFromInt(1))), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, AsBool(tt.v))
		})
	}
}

func TestLooseEqualStringZeroOpenQuestion(t *testing.T) {
	// spec.md §9: "0" is truthy under AsBool, but 0 == "0" is also true
	// under loose equality. Both rules are preserved, not reconciled.
	require.True(t, AsBool(Str("0")))
	require.True(t, LooseEqual(NumFromInt(0), Str("0"), DefaultMathContext()))
}

func TestLooseEqualEmptyStringZero(t *testing.T) {
	require.True(t, LooseEqual(Str(""), NumFromInt(0), DefaultMathContext()))
	require.True(t, LooseEqual(NumFromInt(0), Str(""), DefaultMathContext()))
}

func TestStrictEqualNoCoercion(t *testing.T) {
	require.False(t, StrictEqual(NumFromInt(0), Str("0")))
	require.False(t, StrictEqual(Str(""), NumFromInt(0)))
	require.True(t, StrictEqual(NumFromInt(0), NumFromInt(0)))
}

func TestStrictImpliesLoose(t *testing.T) {
	ctx := DefaultMathContext()
	pairs := [][2]Value{
		{NumFromInt(5), NumFromInt(5)},
		{Str("apple"), Str("apple")},
		{Bool(true), Bool(true)},
		{List([]Value{NumFromInt(1), NumFromInt(2)}), List([]Value{NumFromInt(1), NumFromInt(2)})},
	}
	for _, p := range pairs {
		if StrictEqual(p[0], p[1]) {
			require.True(t, LooseEqual(p[0], p[1], ctx))
		}
	}
}

func TestCompareNullIsFalse(t *testing.T) {
	ctx := DefaultMathContext()
	_, ok := Compare(Null, NumFromInt(1), ctx)
	require.False(t, ok)
}

func TestCompareNumeric(t *testing.T) {
	ctx := DefaultMathContext()
	cmp, ok := Compare(NumFromInt(1), NumFromInt(2), ctx)
	require.True(t, ok)
	require.Equal(t, -1, cmp)
}

func TestCompareLexicographicFallback(t *testing.T) {
	ctx := DefaultMathContext()
	cmp, ok := Compare(Str("apple"), Str("banana"), ctx)
	require.True(t, ok)
	require.Equal(t, -1, cmp)
}

func TestAsStringIntegerIfWhole(t *testing.T) {
	require.Equal(t, "5", AsString(NumFromInt(5)))
	require.Equal(t, "5.5", AsString(Num(decimal.NewFromFloat(5.5))))
}

func TestAsStringListFlattensWithCommas(t *testing.T) {
	v := List([]Value{Str("a"), NumFromInt(1), List([]Value{Str("b"), Str("c")})})
	require.Equal(t, "a,1,b,c", AsString(v))
}

func TestMathContextDivModByZeroYieldNull(t *testing.T) {
	ctx := DefaultMathContext()
	_, ok := ctx.Div(decimal.NewFromInt(1), decimal.Zero)
	require.False(t, ok)
	_, ok = ctx.Mod(decimal.NewFromInt(1), decimal.Zero)
	require.False(t, ok)
}

func TestMathContextAssociativityAtScale(t *testing.T) {
	ctx := MathContext{Scale: 4, Rounding: RoundHalfUp}
	a := decimal.NewFromFloat(1.1)
	b := decimal.NewFromFloat(2.2)
	c := decimal.NewFromFloat(3.3)

	left := ctx.Add(ctx.Add(a, b), c)
	right := ctx.Add(a, ctx.Add(b, c))
	require.True(t, left.Equal(right))
}

func TestMathContextIdentities(t *testing.T) {
	ctx := DefaultMathContext()
	x := decimal.NewFromFloat(42.5)
	require.True(t, ctx.Mul(x, decimal.Zero).IsZero())
	require.True(t, ctx.Add(x, decimal.Zero).Equal(ctx.Rescale(x)))
}

func TestObjInsertionOrderPreserved(t *testing.T) {
	o := NewObj()
	o.Set("b", NumFromInt(1))
	o.Set("a", NumFromInt(2))
	o.Set("b", NumFromInt(3))
	require.Equal(t, []string{"b", "a"}, o.Keys())
	v, ok := o.Get("b")
	require.True(t, ok)
	require.True(t, v.Equal(NumFromInt(3)))
}

func TestIsExpression(t *testing.T) {
	require.True(t, ObjVal(NewObj().Set("var", Str("a"))).IsExpression())
	require.False(t, ObjVal(NewObj()).IsExpression())
	require.False(t, NumFromInt(1).IsExpression())
}
