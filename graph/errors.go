package graph

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrSameOutputAsInput is raised at build time when a rule's input
	// and output path sets overlap.
	ErrSameOutputAsInput = errors.NewKind("rule %q reads and writes the same path %q")
	// ErrMultipleProducers is raised when two distinct rules both claim
	// to produce the same output path.
	ErrMultipleProducers = errors.NewKind("path %q is produced by both rule %q and rule %q")
	// ErrGraphContainsCycle is raised when the rule set cannot be fully
	// topologically sorted.
	ErrGraphContainsCycle = errors.NewKind("rule graph contains a cycle")
)
