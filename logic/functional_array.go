package logic

import "github.com/ayushmaanbhav/product-farm-sub005/value"

func registerFunctionalArrayOperators(r *Registry) {
	r.Register(NewFunctionalOperator("map", opMap))
	r.Register(NewFunctionalOperator("filter", opFilter))
	r.Register(NewFunctionalOperator("find", opFind))
	r.Register(NewFunctionalOperator("all", opAll))
	r.Register(NewFunctionalOperator("some", opSome))
	r.Register(NewFunctionalOperator("none", opNone))
	r.Register(NewFunctionalOperator("reduce", opReduce))
}

// sourceAndMapping evaluates the `source` half of a [source, mapping]
// functional-array payload against the ambient data, returning the
// still-unevaluated mapping expression for the caller to apply
// per-element.
func sourceAndMapping(interp *Interpreter, raw value.Value, data value.Value) (source value.Value, mapping value.Value, err error) {
	items := argsSlice(raw)
	if len(items) == 0 {
		return value.Null, value.Null, nil
	}
	source, err = interp.Evaluate(items[0], data)
	if err != nil {
		return value.Null, value.Null, err
	}
	mapping = argAt(items, 1)
	return source, mapping, nil
}

// opMap returns spec.md's operator-specific default (Null) when the
// source isn't a list at all (including a Null source).
func opMap(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	source, mapping, err := sourceAndMapping(interp, raw, data)
	if err != nil {
		return value.Null, err
	}
	if !source.IsList() {
		return value.Null, nil
	}
	out := make([]value.Value, len(source.ListVal()))
	for i, elem := range source.ListVal() {
		v, err := interp.Evaluate(mapping, elem)
		if err != nil {
			return value.Null, err
		}
		out[i] = v
	}
	return value.List(out), nil
}

func opFilter(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	source, mapping, err := sourceAndMapping(interp, raw, data)
	if err != nil {
		return value.Null, err
	}
	if !source.IsList() {
		return value.List(nil), nil
	}
	out := make([]value.Value, 0, len(source.ListVal()))
	for _, elem := range source.ListVal() {
		v, err := interp.Evaluate(mapping, elem)
		if err != nil {
			return value.Null, err
		}
		if value.AsBool(v) {
			out = append(out, elem)
		}
	}
	return value.List(out), nil
}

// opFind returns the first element for which mapping is truthy, or a
// recoverable ErrNullResult when none match (spec.md §7's worked
// example, distinct from map/filter's plain-Null defaults).
func opFind(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	source, mapping, err := sourceAndMapping(interp, raw, data)
	if err != nil {
		return value.Null, err
	}
	if source.IsList() {
		for _, elem := range source.ListVal() {
			v, err := interp.Evaluate(mapping, elem)
			if err != nil {
				return value.Null, err
			}
			if value.AsBool(v) {
				return elem, nil
			}
		}
	}
	return value.Null, ErrNullResult.New()
}

func opAll(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	source, mapping, err := sourceAndMapping(interp, raw, data)
	if err != nil {
		return value.Null, err
	}
	if !source.IsList() || len(source.ListVal()) == 0 {
		return value.Bool(false), nil
	}
	for _, elem := range source.ListVal() {
		v, err := interp.Evaluate(mapping, elem)
		if err != nil {
			return value.Null, err
		}
		if !value.AsBool(v) {
			return value.Bool(false), nil
		}
	}
	return value.Bool(true), nil
}

func opSome(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	source, mapping, err := sourceAndMapping(interp, raw, data)
	if err != nil {
		return value.Null, err
	}
	if !source.IsList() {
		return value.Bool(false), nil
	}
	for _, elem := range source.ListVal() {
		v, err := interp.Evaluate(mapping, elem)
		if err != nil {
			return value.Null, err
		}
		if value.AsBool(v) {
			return value.Bool(true), nil
		}
	}
	return value.Bool(false), nil
}

func opNone(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	some, err := opSome(interp, raw, data)
	if err != nil {
		return value.Null, err
	}
	return value.Bool(!value.AsBool(some)), nil
}

// opReduce implements [source, mapping, initial]; mapping is evaluated
// with an Obj{current, accumulator} as data for each element in turn.
func opReduce(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error) {
	items := argsSlice(raw)
	if len(items) == 0 {
		return value.Null, nil
	}
	source, err := interp.Evaluate(items[0], data)
	if err != nil {
		return value.Null, err
	}
	mapping := argAt(items, 1)
	initial := value.Null
	if len(items) > 2 {
		initial, err = interp.Evaluate(items[2], data)
		if err != nil {
			return value.Null, err
		}
	}
	if !source.IsList() {
		return initial, nil
	}

	acc := initial
	for _, elem := range source.ListVal() {
		step := value.NewObj().Set("current", elem).Set("accumulator", acc)
		v, err := interp.Evaluate(mapping, value.ObjVal(step))
		if err != nil {
			return value.Null, err
		}
		acc = v
	}
	return acc, nil
}
