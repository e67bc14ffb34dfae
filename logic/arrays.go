package logic

import (
	"sort"
	"strings"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

// sortValues sorts items in place by value.Compare, descending when
// desc is set. Go's sort.SliceStable keeps ties in their original
// relative order, matching the interpreter's general "insertion-order
// tiebreak" convention (spec.md §4.5).
func sortValues(items []value.Value, ctx value.MathContext, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		cmp, _ := value.Compare(items[i], items[j], ctx)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}

func registerArrayOperators(r *Registry) {
	r.Register(NewStandardOperator("merge", opMerge))
	r.Register(NewStandardOperator("in", opIn))
	r.Register(NewStandardOperator("distinct", opDistinct))
	r.Register(NewStandardOperator("size", opSize))
	r.Register(NewStandardOperator("reverse", opReverse))
	r.Register(NewStandardOperator("sort", opSort))
}

// opDistinct removes duplicate elements (loose-equality, first
// occurrence wins), preserving order.
func opDistinct(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	src := argAt(a, 0)
	if !src.IsList() {
		return value.List(nil), nil
	}
	out := make([]value.Value, 0, len(src.ListVal()))
	for _, e := range src.ListVal() {
		dup := false
		for _, seen := range out {
			if value.LooseEqual(e, seen, interp.MathCtx) {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, e)
		}
	}
	return value.List(out), nil
}

// opSize returns the length of a list, or a string's rune count.
func opSize(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	src := argAt(a, 0)
	switch {
	case src.IsList():
		return value.NumFromInt(int64(len(src.ListVal()))), nil
	case src.IsStr():
		return value.NumFromInt(int64(len([]rune(src.StrVal())))), nil
	default:
		return value.NumFromInt(0), nil
	}
}

func opReverse(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	src := argAt(a, 0)
	if !src.IsList() {
		return value.List(nil), nil
	}
	items := src.ListVal()
	out := make([]value.Value, len(items))
	for i, e := range items {
		out[len(items)-1-i] = e
	}
	return value.List(out), nil
}

// opSort implements [source, "asc"|"desc"]. Heterogeneous lists (mixed
// number/string/bool kinds) are not orderable and yield Null.
func opSort(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	src := argAt(a, 0)
	if !src.IsList() {
		return value.Null, nil
	}
	items := append([]value.Value(nil), src.ListVal()...)
	if len(items) == 0 {
		return value.List(items), nil
	}
	kind := items[0].Kind()
	for _, e := range items[1:] {
		if e.Kind() != kind || (kind != value.KindNum && kind != value.KindStr && kind != value.KindBool) {
			return value.Null, nil
		}
	}
	desc := false
	if len(a) > 1 && strings.EqualFold(value.AsString(a[1]), "desc") {
		desc = true
	}
	sortValues(items, interp.MathCtx, desc)
	return value.List(items), nil
}

// opMerge flattens one level: each argument that is itself a list
// contributes its elements, everything else contributes itself.
func opMerge(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	out := make([]value.Value, 0, len(a))
	for _, v := range a {
		if v.IsList() {
			out = append(out, v.ListVal()...)
		} else {
			out = append(out, v)
		}
	}
	return value.List(out), nil
}

// opIn implements membership in a list, or substring containment when
// the haystack is a string.
func opIn(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	if len(a) < 2 {
		return value.Bool(false), nil
	}
	needle, haystack := a[0], a[1]
	if haystack.IsStr() {
		return value.Bool(strings.Contains(haystack.StrVal(), value.AsString(needle))), nil
	}
	if haystack.IsList() {
		for _, e := range haystack.ListVal() {
			if value.LooseEqual(needle, e, interp.MathCtx) {
				return value.Bool(true), nil
			}
		}
		return value.Bool(false), nil
	}
	return value.Bool(false), nil
}
