package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

func TestOpMapDoublesEachElement(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"map":[{"var":"items"}, {"*":[{"var":""}, 2]}]}`, `{"items":[1,2,3]}`)
	require.True(t, v.IsList())
	require.Equal(t, "2", v.ListVal()[0].NumVal().String())
	require.Equal(t, "4", v.ListVal()[1].NumVal().String())
	require.Equal(t, "6", v.ListVal()[2].NumVal().String())
}

func TestOpMapOnNullSourceIsNull(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"map":[{"var":"missing"}, {"var":""}]}`, `{}`)
	require.True(t, v.IsNull())
}

func TestOpFilterKeepsTruthy(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"filter":[{"var":"items"}, {">":[{"var":""}, 1]}]}`, `{"items":[1,2,3]}`)
	require.Len(t, v.ListVal(), 2)
}

func TestOpFindReturnsFirstMatch(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"find":[{"var":"items"}, {">":[{"var":""}, 1]}]}`, `{"items":[1,2,3]}`)
	require.Equal(t, "2", v.NumVal().String())
}

func TestOpFindNoMatchReturnsNullResultError(t *testing.T) {
	interp := NewInterpreter()
	expr, err := value.FromJSON([]byte(`{"find":[{"var":"items"}, {">":[{"var":""}, 100]}]}`))
	require.NoError(t, err)
	data, err := value.FromJSON([]byte(`{"items":[1,2,3]}`))
	require.NoError(t, err)
	_, err = interp.Evaluate(expr, data)
	require.Error(t, err)
	require.True(t, ErrNullResult.Is(err))
}

func TestOpAllTrueWhenEveryElementMatches(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"all":[{"var":"items"}, {">":[{"var":""}, 0]}]}`, `{"items":[1,2,3]}`)
	require.True(t, v.BoolVal())
}

func TestOpAllFalseOnEmptySource(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"all":[{"var":"items"}, {">":[{"var":""}, 0]}]}`, `{"items":[]}`)
	require.False(t, v.BoolVal())
}

func TestOpSomeAndNone(t *testing.T) {
	interp := NewInterpreter()
	some := evalExpr(t, interp, `{"some":[{"var":"items"}, {">":[{"var":""}, 2]}]}`, `{"items":[1,2,3]}`)
	require.True(t, some.BoolVal())

	none := evalExpr(t, interp, `{"none":[{"var":"items"}, {">":[{"var":""}, 10]}]}`, `{"items":[1,2,3]}`)
	require.True(t, none.BoolVal())
}

func TestOpReduceSums(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"reduce":[{"var":"items"}, {"+":[{"var":"accumulator"}, {"var":"current"}]}, 0]}`, `{"items":[1,2,3,4]}`)
	require.Equal(t, "10", v.NumVal().String())
}

func TestOpReduceOnNonListReturnsInitial(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{"reduce":[{"var":"missing"}, {"+":[{"var":"accumulator"}, {"var":"current"}]}, 7]}`, `{}`)
	require.Equal(t, "7", v.NumVal().String())
}
