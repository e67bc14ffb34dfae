// Package rulecore is the evaluation engine (spec.md C6): the public
// LogicExpr `Evaluate`/`EvaluateStream` entry points and the rule-set
// orchestration `RuleEvaluate`, wiring the `value`, `logic`, `stream`,
// `graph` and `cache` packages together behind a single Config.
package rulecore

import (
	"io"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"

	"github.com/ayushmaanbhav/product-farm-sub005/cache"
	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

// Config mirrors the teacher's sqle.Config: a plain, documented,
// defaulted struct rather than an untyped options bag. It carries
// every option spec.md §6 enumerates.
type Config struct {
	// MathScale is the decimal scale all arithmetic rescales to.
	MathScale int32
	// MathPrecision bounds significant digits; 0 means unconstrained.
	MathPrecision int32
	// MathRounding selects the rounding mode applied at MathScale.
	MathRounding value.Rounding
	// PathDelimiter is the single byte `var`/`missing`/`missing_some`
	// split attribute paths on.
	PathDelimiter byte

	// StreamMaxStack is the operator-nesting depth at which the
	// streaming reducer folds an eligible subtree in place.
	StreamMaxStack int
	// StreamIneligibleOperators names operators the streaming reducer
	// never folds early, regardless of depth.
	StreamIneligibleOperators map[string]bool

	// CachePolicy selects DISABLED or LRU for both cache tiers.
	CachePolicy cache.Policy
	// MaxGraphCache bounds the identifier->DependencyGraph cache;
	// <= 0 means unbounded.
	MaxGraphCache int
	// MaxQueryCache bounds the query_id->executable-rule-list cache;
	// <= 0 means unbounded.
	MaxQueryCache int

	// LogSink receives whatever the `log` operator is asked to log;
	// nil means no-op.
	LogSink func(value.Value)
	// Logger receives the engine's own structured diagnostics: one Debug
	// line per rule skipped on a NullResult. Cache misses and fatal
	// failures are not logged; failures are only returned as errors.
	// Defaults to a logrus.Logger
	// with output discarded, so the library never forces log output on
	// an embedding application unless the caller opts in.
	Logger *logrus.Logger
	// Tracer, if set, receives one span per RuleEvaluate call and one
	// child span per rule invoked during it. Evaluate and EvaluateStream
	// open no spans.
	Tracer opentracing.Tracer
}

// Option configures a Config built on top of DefaultConfig.
type Option func(*Config)

// DefaultConfig matches spec.md §6's documented defaults.
func DefaultConfig() Config {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return Config{
		MathScale:                 64,
		MathPrecision:             0,
		MathRounding:              value.RoundHalfUp,
		PathDelimiter:             '.',
		StreamMaxStack:            100,
		StreamIneligibleOperators: map[string]bool{"if": true},
		CachePolicy:               cache.LRUCachePolicy,
		MaxGraphCache:             128,
		MaxQueryCache:             256,
		Logger:                    logger,
	}
}

// WithMathContext overrides scale/precision/rounding together.
func WithMathContext(scale, precision int32, rounding value.Rounding) Option {
	return func(c *Config) {
		c.MathScale = scale
		c.MathPrecision = precision
		c.MathRounding = rounding
	}
}

// WithPathDelimiter overrides the `var` path delimiter.
func WithPathDelimiter(d byte) Option {
	return func(c *Config) { c.PathDelimiter = d }
}

// WithStreamConfig overrides the streaming reducer's stack bound and
// ineligible-operator set.
func WithStreamConfig(maxStack int, ineligible map[string]bool) Option {
	return func(c *Config) {
		c.StreamMaxStack = maxStack
		c.StreamIneligibleOperators = ineligible
	}
}

// WithCache overrides the cache policy and both tiers' size bounds.
func WithCache(policy cache.Policy, maxGraph, maxQuery int) Option {
	return func(c *Config) {
		c.CachePolicy = policy
		c.MaxGraphCache = maxGraph
		c.MaxQueryCache = maxQuery
	}
}

// WithLogSink installs the callback the `log` operator invokes.
func WithLogSink(sink func(value.Value)) Option {
	return func(c *Config) { c.LogSink = sink }
}

// WithLogger overrides the engine's own diagnostic logger.
func WithLogger(l *logrus.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithTracer installs an opentracing.Tracer for per-call/per-rule spans.
func WithTracer(t opentracing.Tracer) Option {
	return func(c *Config) { c.Tracer = t }
}

// NewConfig builds a Config from DefaultConfig, as modified by opts.
func NewConfig(opts ...Option) Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
