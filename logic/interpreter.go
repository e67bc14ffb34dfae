// Package logic implements the LogicExpr tree-walking interpreter
// (spec.md C2/C3): the operator catalog and the single recursive
// `Evaluate` entry point that dispatches to it.
package logic

import (
	"time"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

// Interpreter holds everything Evaluate needs that isn't part of the
// expression/data pair itself: the operator registry and the
// configuration spec.md §6 calls out (numeric context, var path
// delimiter, log sink, clock). It has no other mutable state, so one
// Interpreter can be shared and reused concurrently across goroutines
// (spec.md §5) — every Evaluate call is self-contained.
type Interpreter struct {
	Registry      *Registry
	MathCtx       value.MathContext
	PathDelimiter byte
	LogSink       func(value.Value)
	Clock         func() int64
}

// Option configures a new Interpreter.
type Option func(*Interpreter)

// WithRegistry overrides the default operator catalog.
func WithRegistry(r *Registry) Option {
	return func(i *Interpreter) { i.Registry = r }
}

// WithMathContext overrides the numeric context.
func WithMathContext(ctx value.MathContext) Option {
	return func(i *Interpreter) { i.MathCtx = ctx }
}

// WithPathDelimiter overrides the `var` path delimiter (default '.').
func WithPathDelimiter(d byte) Option {
	return func(i *Interpreter) { i.PathDelimiter = d }
}

// WithLogSink installs the callback the `log` operator invokes.
func WithLogSink(sink func(value.Value)) Option {
	return func(i *Interpreter) { i.LogSink = sink }
}

// WithClock overrides the clock the `currentTime` operator reads;
// tests inject a fixed clock for determinism.
func WithClock(clock func() int64) Option {
	return func(i *Interpreter) { i.Clock = clock }
}

// NewInterpreter builds an Interpreter with the default operator
// catalog and math context, as modified by opts.
func NewInterpreter(opts ...Option) *Interpreter {
	interp := &Interpreter{
		Registry:      NewDefaultRegistry(),
		MathCtx:       value.DefaultMathContext(),
		PathDelimiter: '.',
		Clock:         func() int64 { return time.Now().UnixMilli() },
	}
	for _, opt := range opts {
		opt(interp)
	}
	return interp
}

// Evaluate is the single recursive entry point of spec.md §4.3.
func (interp *Interpreter) Evaluate(expr value.Value, data value.Value) (value.Value, error) {
	switch expr.Kind() {
	case value.KindList:
		items := expr.ListVal()
		out := make([]value.Value, len(items))
		for i, item := range items {
			v, err := interp.Evaluate(item, data)
			if err != nil {
				return value.Null, err
			}
			out[i] = v
		}
		return value.List(out), nil

	case value.KindObj:
		obj := expr.ObjValue()
		if obj.Len() == 0 {
			return data, nil
		}
		if obj.Len() != 1 {
			return value.Null, ErrInvalidFormat.New("operator object must have exactly one key")
		}
		name, payload := obj.SoleEntry()
		op, ok := interp.Registry.Lookup(name)
		if !ok {
			return value.Null, ErrMissingOperation.New(name)
		}
		switch op.Kind {
		case Functional:
			return op.functional(interp, payload, data)
		default:
			reduced, err := interp.reduce(payload, data)
			if err != nil {
				return value.Null, err
			}
			return op.standard(interp, reduced, data)
		}

	default:
		// Primitive: returned unchanged (spec.md §4.3 step 2, and the
		// round-trip-on-primitives testable property of §8).
		return expr, nil
	}
}

// reduce evaluates a Standard operator's payload before dispatch: list
// elements individually, an Obj as a nested expression, everything
// else passed through untouched.
func (interp *Interpreter) reduce(payload value.Value, data value.Value) (value.Value, error) {
	switch payload.Kind() {
	case value.KindList:
		items := payload.ListVal()
		out := make([]value.Value, len(items))
		for i, item := range items {
			v, err := interp.Evaluate(item, data)
			if err != nil {
				return value.Null, err
			}
			out[i] = v
		}
		return value.List(out), nil
	case value.KindObj:
		return interp.Evaluate(payload, data)
	default:
		return payload, nil
	}
}
