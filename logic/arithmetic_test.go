package logic

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpAddVariadic(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"+":[1, 2, 3]}`, `{}`)
	require.Equal(t, "6", v.NumVal().String())
}

func TestOpSubUnaryNegates(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"-":5}`, `{}`)
	require.Equal(t, "-5", v.NumVal().String())
}

func TestOpMulVariadic(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"*":[2, 3, 4]}`, `{}`)
	require.Equal(t, "24", v.NumVal().String())
}

func TestOpDivByZeroIsNull(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"/":[1, 0]}`, `{}`)
	require.True(t, v.IsNull())
}

func TestOpModByZeroIsNull(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"%":[1, 0]}`, `{}`)
	require.True(t, v.IsNull())
}

func TestOpModBasic(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"%":[7, 3]}`, `{}`)
	require.Equal(t, "1", v.NumVal().String())
}

func TestOpAddNonNumericIsNull(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"+":[1, "abc"]}`, `{}`)
	require.True(t, v.IsNull())
}
