package logic

import "github.com/ayushmaanbhav/product-farm-sub005/value"

func registerComparisonOperators(r *Registry) {
	r.Register(NewStandardOperator("<", opLess))
	r.Register(NewStandardOperator("<=", opLessEq))
	r.Register(NewStandardOperator(">", opGreater))
	r.Register(NewStandardOperator(">=", opGreaterEq))
	r.Register(NewStandardOperator("min", opMin))
	r.Register(NewStandardOperator("max", opMax))
}

// cmpOp is shared by the four relational operators: two operands use
// the ordinary binary test; three operands implement "between"
// (first OP second AND second OP third); more than three is false.
func cmpOp(interp *Interpreter, args value.Value, test func(cmp int) bool) value.Value {
	a := argsSlice(args)
	switch len(a) {
	case 2:
		return value.Bool(binaryCompare(a[0], a[1], interp.MathCtx, test))
	case 3:
		return value.Bool(
			binaryCompare(a[0], a[1], interp.MathCtx, test) &&
				binaryCompare(a[1], a[2], interp.MathCtx, test),
		)
	default:
		return value.Bool(false)
	}
}

func binaryCompare(a, b value.Value, ctx value.MathContext, test func(cmp int) bool) bool {
	cmp, ok := value.Compare(a, b, ctx)
	if !ok {
		return false
	}
	return test(cmp)
}

func opLess(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	return cmpOp(interp, args, func(c int) bool { return c < 0 }), nil
}

func opLessEq(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	return cmpOp(interp, args, func(c int) bool { return c <= 0 }), nil
}

func opGreater(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	return cmpOp(interp, args, func(c int) bool { return c > 0 }), nil
}

func opGreaterEq(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	return cmpOp(interp, args, func(c int) bool { return c >= 0 }), nil
}

func opMin(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	if len(a) == 0 {
		return value.Null, nil
	}
	best := a[0]
	for _, v := range a[1:] {
		if cmp, ok := value.Compare(v, best, interp.MathCtx); ok && cmp < 0 {
			best = v
		}
	}
	return best, nil
}

func opMax(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	if len(a) == 0 {
		return value.Null, nil
	}
	best := a[0]
	for _, v := range a[1:] {
		if cmp, ok := value.Compare(v, best, interp.MathCtx); ok && cmp > 0 {
			best = v
		}
	}
	return best, nil
}
