package logic

import (
	"strconv"
	"strings"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

func registerDataAccessOperators(r *Registry) {
	r.Register(NewStandardOperator("var", opVar))
	r.Register(NewStandardOperator("missing", opMissing))
	r.Register(NewStandardOperator("missing_some", opMissingSome))
}

// splitPath splits a path string on interp's configured delimiter.
func splitPath(interp *Interpreter, path string) []string {
	if path == "" {
		return nil
	}
	return strings.Split(path, string(interp.PathDelimiter))
}

// resolvePath walks data segment by segment, indexing into lists for
// numeric segments, per spec.md §4.2.2. It reports found=false the
// moment any segment resolves to Null or is simply absent.
func resolvePath(data value.Value, segments []string) (result value.Value, found bool) {
	cur := data
	for _, seg := range segments {
		switch cur.Kind() {
		case value.KindObj:
			v, ok := cur.ObjValue().Get(seg)
			if !ok {
				return value.Null, false
			}
			cur = v
		case value.KindList:
			idx, err := strconv.Atoi(seg)
			if err != nil || idx < 0 || idx >= len(cur.ListVal()) {
				return value.Null, false
			}
			cur = cur.ListVal()[idx]
		default:
			return value.Null, false
		}
		if cur.IsNull() {
			return value.Null, false
		}
	}
	return cur, true
}

// opVar implements spec.md §4.2.2. Argument forms: bare string/int,
// [path], [path, default], empty list / missing -> current data.
func opVar(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	var pathVal, defaultVal value.Value
	hasDefault := false

	switch {
	case args.IsNull():
		return data, nil
	case args.IsList():
		items := args.ListVal()
		if len(items) == 0 {
			return data, nil
		}
		pathVal = items[0]
		if len(items) > 1 {
			defaultVal = items[1]
			hasDefault = true
		}
	default:
		pathVal = args
	}

	path := value.AsString(pathVal)
	if path == "" {
		return data, nil
	}

	segments := splitPath(interp, path)
	result, found := resolvePath(data, segments)
	if !found {
		if hasDefault {
			return defaultVal, nil
		}
		return value.Null, nil
	}
	return result, nil
}

// opMissing returns the subset of the given paths that resolve to
// Null or are absent in data.
func opMissing(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	paths := argsSlice(args)
	out := make([]value.Value, 0, len(paths))
	for _, p := range paths {
		path := value.AsString(p)
		if _, found := resolvePath(data, splitPath(interp, path)); !found {
			out = append(out, value.Str(path))
		}
	}
	return value.List(out), nil
}

// opMissingSome implements the "need at least N of these paths"
// variant: [minRequired, [paths...]]. It returns the missing paths
// only when fewer than minRequired of them are present; otherwise an
// empty list, signalling the requirement is satisfied.
func opMissingSome(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	items := argsSlice(args)
	if len(items) < 2 {
		return value.List(nil), nil
	}
	minRequired, _ := value.AsBigDecimal(items[0], interp.MathCtx)
	paths := argsSlice(items[1])

	missing := make([]value.Value, 0, len(paths))
	presentCount := 0
	for _, p := range paths {
		path := value.AsString(p)
		if _, found := resolvePath(data, splitPath(interp, path)); found {
			presentCount++
		} else {
			missing = append(missing, value.Str(path))
		}
	}
	if int64(presentCount) >= minRequired.IntPart() {
		return value.List(nil), nil
	}
	return value.List(missing), nil
}
