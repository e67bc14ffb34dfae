package logic

import "github.com/ayushmaanbhav/product-farm-sub005/value"

// argsSlice normalizes a reduced Standard-operator payload into a
// slice: a List payload as-is, an absent / Null payload as an empty
// slice, anything else as a single-element slice, matching how LogicExpr
// argument lists are written ("[a,b]" for multi-arg, bare "a" for
// one).
func argsSlice(args value.Value) []value.Value {
	if args.IsList() {
		return args.ListVal()
	}
	if args.IsNull() {
		return nil
	}
	return []value.Value{args}
}

// argAt returns the i'th argument, or Null if out of range.
func argAt(args []value.Value, i int) value.Value {
	if i < 0 || i >= len(args) {
		return value.Null
	}
	return args[i]
}
