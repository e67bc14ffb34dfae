package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpCat(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"cat":["a", 1, "b"]}`, `{}`)
	require.Equal(t, "a1b", v.StrVal())
}

func TestOpSubstrPositive(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"substr":["hello", 1, 3]}`, `{}`)
	require.Equal(t, "ell", v.StrVal())
}

func TestOpSubstrNegativeStart(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"substr":["hello", -3]}`, `{}`)
	require.Equal(t, "llo", v.StrVal())
}

func TestOpSubstrNegativeLength(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"substr":["hello", 0, -2]}`, `{}`)
	require.Equal(t, "hel", v.StrVal())
}

func TestOpUppercaseLowercase(t *testing.T) {
	interp := NewInterpreter()
	require.Equal(t, "ABC", evalExpr(t, interp, `{"uppercase":"abc"}`, `{}`).StrVal())
	require.Equal(t, "abc", evalExpr(t, interp, `{"lowercase":"ABC"}`, `{}`).StrVal())
}

func TestOpCapitalize(t *testing.T) {
	interp := NewInterpreter()
	require.Equal(t, "Hello", evalExpr(t, interp, `{"capitalize":"hELLO"}`, `{}`).StrVal())
}

func TestOpIsBlank(t *testing.T) {
	interp := NewInterpreter()
	require.True(t, evalExpr(t, interp, `{"is-blank":"   "}`, `{}`).BoolVal())
	require.False(t, evalExpr(t, interp, `{"is-blank":"x"}`, `{}`).BoolVal())
}

func TestOpReplace(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"replace":["banana", "a", "o"]}`, `{}`)
	require.Equal(t, "bonono", v.StrVal())
}

func TestOpToArrayDefaultDelimiter(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"to-array":"a,b,c"}`, `{}`)
	require.Len(t, v.ListVal(), 3)
	require.Equal(t, "b", v.ListVal()[1].StrVal())
}

func TestOpToArrayCustomDelimiter(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"to-array":["a|b|c", "|"]}`, `{}`)
	require.Len(t, v.ListVal(), 3)
}

func TestOpEncode(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"encode":"a b"}`, `{}`)
	require.Equal(t, "a+b", v.StrVal())
}

func TestOpFormat(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"format":[1.5, 3]}`, `{}`)
	require.Equal(t, "1.500", v.StrVal())
}
