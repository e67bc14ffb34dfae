// Package stream implements the streaming JSON reducer (spec.md C4):
// it decodes a LogicExpr from a byte stream token-by-token, reducing
// eligible operator subtrees as soon as they close, so that the
// interpreter never has to walk a deeply nested tree built entirely
// in memory first.
package stream

// Config governs mid-stream reduction eligibility.
type Config struct {
	// MaxStack is the operator-nesting depth at or beyond which an
	// eligible sub-expression is reduced as soon as it closes, rather
	// than being held in memory until the whole document is parsed.
	MaxStack int
	// IneligibleOperators names operators whose argument subtrees are
	// never reduced mid-stream, regardless of depth — short-circuit
	// operators must retain their unevaluated branches.
	IneligibleOperators map[string]bool
}

// DefaultConfig matches spec.md §6's defaults: a stack bound of 100,
// with "if" the sole default-ineligible operator.
func DefaultConfig() Config {
	return Config{
		MaxStack:            100,
		IneligibleOperators: map[string]bool{"if": true},
	}
}
