package logic

import (
	"net/url"
	"strings"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

func registerStringOperators(r *Registry) {
	r.Register(NewStandardOperator("cat", opCat))
	r.Register(NewStandardOperator("substr", opSubstr))
	r.Register(NewStandardOperator("uppercase", opUppercase))
	r.Register(NewStandardOperator("lowercase", opLowercase))
	r.Register(NewStandardOperator("capitalize", opCapitalize))
	r.Register(NewStandardOperator("is-blank", opIsBlank))
	r.Register(NewStandardOperator("replace", opReplace))
	r.Register(NewStandardOperator("to-array", opToArray))
	r.Register(NewStandardOperator("encode", opEncode))
	r.Register(NewStandardOperator("format", opFormat))
}

func opCat(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	var sb strings.Builder
	for _, v := range a {
		sb.WriteString(value.AsString(v))
	}
	return value.Str(sb.String()), nil
}

// opSubstr implements [str, start] / [str, start, length] with
// Python-style negative indices for start.
func opSubstr(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	if len(a) < 2 {
		return value.Null, nil
	}
	s := []rune(value.AsString(a[0]))
	startD, ok := value.AsBigDecimal(a[1], interp.MathCtx)
	if !ok {
		return value.Null, nil
	}
	start := int(startD.IntPart())
	n := len(s)
	if start < 0 {
		start = n + start
		if start < 0 {
			start = 0
		}
	}
	if start > n {
		start = n
	}

	end := n
	if len(a) >= 3 {
		lenD, lenOk := value.AsBigDecimal(a[2], interp.MathCtx)
		if lenOk {
			length := int(lenD.IntPart())
			if length < 0 {
				end = n + length
			} else {
				end = start + length
			}
		}
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return value.Str(string(s[start:end])), nil
}

func opUppercase(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Str(strings.ToUpper(value.AsString(argAt(a, 0)))), nil
}

func opLowercase(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Str(strings.ToLower(value.AsString(argAt(a, 0)))), nil
}

func opCapitalize(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	s := value.AsString(argAt(a, 0))
	if s == "" {
		return value.Str(s), nil
	}
	r := []rune(s)
	return value.Str(strings.ToUpper(string(r[0])) + strings.ToLower(string(r[1:]))), nil
}

func opIsBlank(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Bool(strings.TrimSpace(value.AsString(argAt(a, 0))) == ""), nil
}

// opReplace implements [str, search, replacement], replacing every
// occurrence (non-regex, literal).
func opReplace(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	if len(a) < 3 {
		return value.Null, nil
	}
	s := value.AsString(a[0])
	search := value.AsString(a[1])
	repl := value.AsString(a[2])
	if search == "" {
		return value.Str(s), nil
	}
	return value.Str(strings.ReplaceAll(s, search, repl)), nil
}

// opToArray splits a string on a delimiter (default ","): [str] or
// [str, delimiter].
func opToArray(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	s := value.AsString(argAt(a, 0))
	delim := ","
	if len(a) > 1 {
		delim = value.AsString(a[1])
	}
	if s == "" {
		return value.List(nil), nil
	}
	parts := strings.Split(s, delim)
	out := make([]value.Value, len(parts))
	for i, p := range parts {
		out[i] = value.Str(p)
	}
	return value.List(out), nil
}

func opEncode(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	return value.Str(url.QueryEscape(value.AsString(argAt(a, 0)))), nil
}

// opFormat renders a decimal to a fixed number of fractional digits:
// [num, scale].
func opFormat(interp *Interpreter, args value.Value, data value.Value) (value.Value, error) {
	a := argsSlice(args)
	d, ok := value.AsBigDecimal(argAt(a, 0), interp.MathCtx)
	if !ok {
		return value.Null, nil
	}
	scale := interp.MathCtx.Scale
	if len(a) > 1 {
		if s, sOk := value.AsBigDecimal(a[1], interp.MathCtx); sOk {
			scale = int32(s.IntPart())
		}
	}
	return value.Str(d.StringFixed(scale)), nil
}
