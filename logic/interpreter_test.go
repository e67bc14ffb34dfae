package logic

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

func TestEvaluatePrimitivesRoundTrip(t *testing.T) {
	interp := NewInterpreter()
	for _, expr := range []value.Value{value.Null, value.Bool(true), value.NumFromInt(5), value.Str("x")} {
		v, err := interp.Evaluate(expr, value.Null)
		require.NoError(t, err)
		require.True(t, v.Equal(expr))
	}
}

func TestEvaluateEmptyObjReturnsData(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `{}`, `{"a":1}`)
	require.True(t, v.IsObj())
}

func TestEvaluateMultiKeyObjIsInvalidFormat(t *testing.T) {
	interp := NewInterpreter()
	expr, err := value.FromJSON([]byte(`{"==": [1,1], "!=": [1,2]}`))
	require.NoError(t, err)
	_, err = interp.Evaluate(expr, value.Null)
	require.Error(t, err)
	require.True(t, ErrInvalidFormat.Is(err))
}

func TestEvaluateUnknownOperatorErrors(t *testing.T) {
	interp := NewInterpreter()
	expr, err := value.FromJSON([]byte(`{"nope": [1,2]}`))
	require.NoError(t, err)
	_, err = interp.Evaluate(expr, value.Null)
	require.Error(t, err)
	require.True(t, ErrMissingOperation.Is(err))
}

func TestEvaluateListRecursesElementwise(t *testing.T) {
	interp := NewInterpreter()
	v := evalExpr(t, interp, `[{"+":[1,2]}, {"+":[3,4]}]`, `{}`)
	require.True(t, v.IsList())
	require.Equal(t, "3", v.ListVal()[0].NumVal().String())
	require.Equal(t, "7", v.ListVal()[1].NumVal().String())
}

func TestNewDefaultRegistryHasFullCatalog(t *testing.T) {
	r := NewDefaultRegistry()
	for _, name := range []string{
		"var", "missing", "missing_some",
		"==", "!=", "===", "!==", "!", "!!", "and", "or", "if",
		"+", "-", "*", "/", "%",
		"<", "<=", ">", ">=", "min", "max",
		"cat", "substr", "uppercase", "lowercase", "capitalize", "is-blank", "replace", "to-array", "encode", "format",
		"merge", "in", "distinct", "size", "reverse", "sort",
		"map", "filter", "find", "all", "some", "none", "reduce",
		"log", "currentTime",
	} {
		_, ok := r.Lookup(name)
		require.True(t, ok, "expected operator %q to be registered", name)
	}
}
