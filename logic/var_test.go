package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

func evalExpr(t *testing.T, interp *Interpreter, exprJSON string, dataJSON string) value.Value {
	t.Helper()
	expr, err := value.FromJSON([]byte(exprJSON))
	require.NoError(t, err)
	data, err := value.FromJSON([]byte(dataJSON))
	require.NoError(t, err)
	v, err := interp.Evaluate(expr, data)
	require.NoError(t, err)
	return v
}

func TestOpVarBasic(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"var":"a.b"}`, `{"a":{"b":42}}`)
	require.True(t, v.IsNum())
	require.Equal(t, "42", value.AsString(v))
}

func TestOpVarDefault(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"var":["missing.path", "fallback"]}`, `{}`)
	require.Equal(t, "fallback", v.StrVal())
}

func TestOpVarEmptyReturnsData(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"var":""}`, `{"a":1}`)
	require.True(t, v.IsObj())
}

func TestOpVarListIndex(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"var":"items.1"}`, `{"items":["x","y","z"]}`)
	require.Equal(t, "y", v.StrVal())
}

func TestOpMissing(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"missing":["a","b"]}`, `{"a":1}`)
	require.True(t, v.IsList())
	require.Len(t, v.ListVal(), 1)
	require.Equal(t, "b", v.ListVal()[0].StrVal())
}

func TestOpMissingSomeSatisfied(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"missing_some":[1, ["a","b"]]}`, `{"a":1}`)
	require.True(t, v.IsList())
	require.Empty(t, v.ListVal())
}

func TestOpMissingSomeUnsatisfied(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"missing_some":[2, ["a","b"]]}`, `{"a":1}`)
	require.True(t, v.IsList())
	require.Len(t, v.ListVal(), 1)
}
