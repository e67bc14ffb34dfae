package logic

import (
	"sync"

	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

// StandardFunc is the contract for a Standard operator (spec.md
// §4.2): the interpreter has already recursively reduced the argument
// payload before calling it.
type StandardFunc func(interp *Interpreter, args value.Value, data value.Value) (value.Value, error)

// FunctionalFunc is the contract for a Functional operator: it
// receives the raw, unreduced payload plus the interpreter itself, so
// it can evaluate sub-expressions against varying data (iteration,
// short-circuit).
type FunctionalFunc func(interp *Interpreter, raw value.Value, data value.Value) (value.Value, error)

// OperatorKind distinguishes the two dispatch categories of spec.md
// §4.2. Modeled as a variant match (Standard xor Functional) rather
// than ad-hoc dynamic dispatch, per spec.md §9's design note.
type OperatorKind int

const (
	Standard OperatorKind = iota
	Functional
)

// Operator is one entry in the operator catalog.
type Operator struct {
	Name       string
	Kind       OperatorKind
	standard   StandardFunc
	functional FunctionalFunc
}

// NewStandardOperator builds a Standard-dispatch Operator.
func NewStandardOperator(name string, fn StandardFunc) Operator {
	return Operator{Name: name, Kind: Standard, standard: fn}
}

// NewFunctionalOperator builds a Functional-dispatch Operator.
func NewFunctionalOperator(name string, fn FunctionalFunc) Operator {
	return Operator{Name: name, Kind: Functional, functional: fn}
}

// Registry is the dynamic operator set the interpreter dispatches
// through. It is safe for concurrent reads; Register is intended to
// be called during setup, before any Evaluate call begins (mirroring
// the teacher's function-registry construction-then-freeze pattern).
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Operator
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Operator)}
}

// Register adds or replaces an operator by name.
func (r *Registry) Register(op Operator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name] = op
}

// Lookup returns the operator registered under name.
func (r *Registry) Lookup(name string) (Operator, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	return op, ok
}

// Names returns every registered operator name (unordered); useful for
// diagnostics and tests.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for n := range r.ops {
		names = append(names, n)
	}
	return names
}

// NewDefaultRegistry returns a Registry pre-populated with the full
// catalog of spec.md §4.2.1.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	registerDataAccessOperators(r)
	registerLogicOperators(r)
	registerNumericOperators(r)
	registerComparisonOperators(r)
	registerStringOperators(r)
	registerArrayOperators(r)
	registerFunctionalArrayOperators(r)
	registerUtilityOperators(r)
	return r
}
