package rulecore

import "gopkg.in/src-d/go-errors.v1"

var (
	// RuleEngineError wraps a fatal failure encountered while running a
	// rule set: an expression that failed to deserialize, an operator
	// failure other than NullResult, or a scalar result from a rule that
	// does not declare exactly one output. It always carries the
	// offending rule id. A DuplicateContextKey is returned as its own
	// kind, not wrapped in RuleEngineError.
	RuleEngineError = errors.NewKind("rule %q failed: %s")
	// DuplicateContextKey fires when a rule produces an output path
	// already present in the evaluation context, whether seeded by the
	// input or written by an earlier rule in the same call.
	DuplicateContextKey = errors.NewKind("rule %q: output key %q already present in context")
)
