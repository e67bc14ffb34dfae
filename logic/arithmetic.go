package logic

import (
	"github.com/shopspring/decimal"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

func registerNumericOperators(r *Registry) {
	r.Register(NewStandardOperator("+", opAdd))
	r.Register(NewStandardOperator("-", opSub))
	r.Register(NewStandardOperator("*", opMul))
	r.Register(NewStandardOperator("/", opDiv))
	r.Register(NewStandardOperator("%", opMod))
}

// numericArgs coerces every argument to a decimal, reporting ok=false
// the moment one fails to coerce (spec.md treats arithmetic on
// non-numeric operands as a Null result, never a throw).
func numericArgs(interp *Interpreter, args value.Value) ([]decimal.Decimal, bool) {
	a := argsSlice(args)
	out := make([]decimal.Decimal, len(a))
	for i, v := range a {
		d, ok := value.AsBigDecimal(v, interp.MathCtx)
		if !ok {
			return nil, false
		}
		out[i] = d
	}
	return out, true
}

func opAdd(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	nums, ok := numericArgs(interp, args)
	if !ok || len(nums) == 0 {
		if len(nums) == 1 {
			return value.Num(interp.MathCtx.Rescale(nums[0])), nil
		}
		return value.Null, nil
	}
	sum := nums[0]
	for _, n := range nums[1:] {
		sum = interp.MathCtx.Add(sum, n)
	}
	return value.Num(sum), nil
}

func opSub(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	nums, ok := numericArgs(interp, args)
	if !ok || len(nums) == 0 {
		return value.Null, nil
	}
	if len(nums) == 1 {
		return value.Num(interp.MathCtx.Rescale(nums[0].Neg())), nil
	}
	diff := nums[0]
	for _, n := range nums[1:] {
		diff = interp.MathCtx.Sub(diff, n)
	}
	return value.Num(diff), nil
}

func opMul(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	nums, ok := numericArgs(interp, args)
	if !ok || len(nums) == 0 {
		if len(nums) == 1 {
			return value.Num(interp.MathCtx.Rescale(nums[0])), nil
		}
		return value.Null, nil
	}
	product := nums[0]
	for _, n := range nums[1:] {
		product = interp.MathCtx.Mul(product, n)
	}
	return value.Num(product), nil
}

func opDiv(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	nums, ok := numericArgs(interp, args)
	if !ok || len(nums) < 2 {
		return value.Null, nil
	}
	quotient := nums[0]
	for _, n := range nums[1:] {
		q, divOk := interp.MathCtx.Div(quotient, n)
		if !divOk {
			return value.Null, nil
		}
		quotient = q
	}
	return value.Num(quotient), nil
}

func opMod(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	nums, ok := numericArgs(interp, args)
	if !ok || len(nums) < 2 {
		return value.Null, nil
	}
	rem := nums[0]
	for _, n := range nums[1:] {
		r, modOk := interp.MathCtx.Mod(rem, n)
		if !modOk {
			return value.Null, nil
		}
		rem = r
	}
	return value.Num(rem), nil
}
