package logic

import "github.com/ayushmaanbhav/product-farm-sub005/value"

func registerUtilityOperators(r *Registry) {
	r.Register(NewStandardOperator("log", opLog))
	r.Register(NewStandardOperator("currentTime", opCurrentTime))
}

// opLog is the identity function with a side effect: it forwards its
// (already-reduced) sole argument to interp.LogSink, if one is
// configured, then returns that argument unchanged.
func opLog(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	v := argAt(a, 0)
	if interp.LogSink != nil {
		interp.LogSink(v)
	}
	return v, nil
}

// opCurrentTime returns epoch milliseconds from interp.Clock, ignoring
// any arguments. Tests inject WithClock for determinism.
func opCurrentTime(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	return value.NumFromInt(interp.Clock()), nil
}
