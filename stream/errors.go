package stream

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrStreamIOError wraps a decode/read failure from the underlying
	// byte stream.
	ErrStreamIOError = errors.NewKind("stream io error: %s")
	// ErrInvalidFormat is raised for a JSON token sequence that cannot
	// be a LogicExpr: a non-string object key, an operator object with
	// more than one key, or an unsupported token kind.
	ErrInvalidFormat = errors.NewKind("invalid LogicExpr stream format: %s")
)
