package logic

import "gopkg.in/src-d/go-errors.v1"

// Result dispositions per spec.md §6/§7. Evaluate returns (Value, nil)
// for Success and (value.Null, err) for Failure, where err.Is one of
// the kinds below. NullResult is the one recoverable disposition: the
// rule-engine layer (root package) treats it as "skip this rule", not
// as a propagated failure.
var (
	// ErrEmptyExpression is raised when a byte stream holds no LogicExpr
	// at all (Engine.EvaluateStream on a zero-byte stream). Evaluate
	// itself never raises it: a Null expression round-trips as Null.
	ErrEmptyExpression = errors.NewKind("empty expression")
	// ErrInvalidFormat is raised for a Value that cannot be a LogicExpr:
	// a multi-key Obj. Malformed JSON in streaming mode is reported by
	// the stream package (stream.ErrStreamIOError), not by this kind.
	ErrInvalidFormat = errors.NewKind("invalid LogicExpr format: %s")
	// ErrMissingOperation is raised when an Obj's sole key does not name
	// a registered operator.
	ErrMissingOperation = errors.NewKind("unrecognized operation %q")
	// ErrNullResult signals an operator could not produce a value for
	// the given shape (e.g. find with no match). Recoverable.
	ErrNullResult = errors.NewKind("operation produced no result")
)
