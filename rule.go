package rulecore

import (
	"github.com/ayushmaanbhav/product-farm-sub005/graph"
	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

// Rule is the caller-supplied accessor set spec.md §3 requires. It is
// the same shape graph.Rule already validates and indexes; aliased
// here so callers never need to import the graph package directly.
type Rule = graph.Rule

// Query selects rules by rule type, output attribute path, or tag.
type Query = graph.Query

const (
	RuleType      = graph.RuleType
	AttributePath = graph.AttributePath
	AttributeTag  = graph.AttributeTag
)

// QueryContext scopes a rule set under an identifier: the graph cache
// key. Two contexts sharing an identifier must carry identical rule
// sets (caller-enforced; the cache does not validate content).
type QueryContext struct {
	// Identifier scopes the DependencyGraph cache entry.
	Identifier string
	// Rules is the full rule set this identifier resolves to.
	Rules []Rule
	// TraceToken optionally correlates this call's spans/log lines.
	// When empty, the engine mints one for the duration of the call.
	TraceToken string
}

// QueryInput is the read-only insertion-ordered attribute map a
// RuleEvaluate call seeds its context from.
type QueryInput = *value.Obj

// QueryOutput is the insertion-ordered map of every attribute path a
// rule produced during one RuleEvaluate call.
type QueryOutput = *value.Obj
