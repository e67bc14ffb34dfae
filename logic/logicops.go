package logic

import "github.com/ayushmaanbhav/product-farm-sub005/value"

func registerLogicOperators(r *Registry) {
	r.Register(NewStandardOperator("==", opLooseEqual))
	r.Register(NewStandardOperator("!=", opLooseNotEqual))
	r.Register(NewStandardOperator("===", opStrictEqual))
	r.Register(NewStandardOperator("!==", opStrictNotEqual))
	r.Register(NewStandardOperator("!", opNot))
	r.Register(NewStandardOperator("!!", opDoubleNot))
	// and/or/if are Functional: they must control which sub-expressions
	// get evaluated (short-circuit, n-ary branch selection) rather than
	// receiving an already-reduced argument list.
	r.Register(NewFunctionalOperator("and", opAnd))
	r.Register(NewFunctionalOperator("or", opOr))
	r.Register(NewFunctionalOperator("if", opIf))
}

func opLooseEqual(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Bool(value.LooseEqual(argAt(a, 0), argAt(a, 1), interp.MathCtx)), nil
}

func opLooseNotEqual(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Bool(!value.LooseEqual(argAt(a, 0), argAt(a, 1), interp.MathCtx)), nil
}

func opStrictEqual(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Bool(value.StrictEqual(argAt(a, 0), argAt(a, 1))), nil
}

func opStrictNotEqual(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Bool(!value.StrictEqual(argAt(a, 0), argAt(a, 1))), nil
}

func opNot(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Bool(!value.AsBool(argAt(a, 0))), nil
}

func opDoubleNot(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Bool(value.AsBool(argAt(a, 0))), nil
}

// opAnd implements spec.md §4.2.3: when every argument is a Bool,
// short-circuit to a Bool result; otherwise return the first falsy
// value, else the last value. Per spec.md §9 this asymmetry is
// intentional and must not be simplified to strict boolean reduction.
func opAnd(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	items := argsSlice(raw)
	if len(items) == 0 {
		return value.Null, nil
	}
	allBool := true
	evaluated := make([]value.Value, 0, len(items))
	for _, item := range items {
		v, err := interp.Evaluate(item, data)
		if err != nil {
			return value.Null, err
		}
		evaluated = append(evaluated, v)
		if !v.IsBool() {
			allBool = false
		}
		if !value.AsBool(v) {
			if allBool {
				return value.Bool(false), nil
			}
			return v, nil
		}
	}
	if allBool {
		return value.Bool(true), nil
	}
	return evaluated[len(evaluated)-1], nil
}

// opOr mirrors opAnd: short-circuits to Bool when every argument is a
// Bool, else returns the first truthy value, else the last value.
func opOr(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	items := argsSlice(raw)
	if len(items) == 0 {
		return value.Null, nil
	}
	allBool := true
	evaluated := make([]value.Value, 0, len(items))
	for _, item := range items {
		v, err := interp.Evaluate(item, data)
		if err != nil {
			return value.Null, err
		}
		evaluated = append(evaluated, v)
		if !v.IsBool() {
			allBool = false
		}
		if value.AsBool(v) {
			if allBool {
				return value.Bool(true), nil
			}
			return v, nil
		}
	}
	if allBool {
		return value.Bool(false), nil
	}
	return evaluated[len(evaluated)-1], nil
}

// opIf implements the n-ary [c1,v1,c2,v2,...,else] form of spec.md
// §4.2.3. It only evaluates the branch it selects, and never
// evaluates conditions/branches it doesn't need — the reason `if` is
// Functional and is the default stream-reduction-ineligible operator
// (spec.md §4.4).
func opIf(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	items := argsSlice(raw)
	switch len(items) {
	case 0:
		return value.Null, nil
	case 1:
		return interp.Evaluate(items[0], data)
	}

	i := 0
	for ; i+1 < len(items); i += 2 {
		cond, err := interp.Evaluate(items[i], data)
		if err != nil {
			return value.Null, err
		}
		if value.AsBool(cond) {
			return interp.Evaluate(items[i+1], data)
		}
	}
	// Odd length: i == len(items)-1 is the trailing else. Even length
	// (no else, all conditions false): i == len(items), nothing left to
	// evaluate.
	if i < len(items) {
		return interp.Evaluate(items[i], data)
	}
	return value.Null, nil
}
