package rulecore

import (
	"bufio"
	"errors"
	"io"

	"github.com/mitchellh/hashstructure"
	"github.com/opentracing/opentracing-go"
	pkgerrors "github.com/pkg/errors"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"

	"github.com/ayushmaanbhav/product-farm-sub005/cache"
	"github.com/ayushmaanbhav/product-farm-sub005/graph"
	"github.com/ayushmaanbhav/product-farm-sub005/logic"
	"github.com/ayushmaanbhav/product-farm-sub005/stream"
	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

// Engine is the evaluation engine (spec.md §4.6). The zero value is
// not usable; construct with New.
type Engine struct {
	interp     *logic.Interpreter
	cfg        Config
	graphCache *cache.Cache[string, *graph.Graph]
	queryCache *cache.Cache[uint64, []graph.Rule]
	logger     *logrus.Logger
}

// New builds an Engine from cfg.
func New(cfg Config) *Engine {
	interp := logic.NewInterpreter(
		logic.WithMathContext(value.MathContext{
			Scale:     cfg.MathScale,
			Precision: cfg.MathPrecision,
			Rounding:  cfg.MathRounding,
		}),
		logic.WithPathDelimiter(cfg.PathDelimiter),
		logic.WithLogSink(cfg.LogSink),
	)
	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Engine{
		interp:     interp,
		cfg:        cfg,
		graphCache: cache.New[string, *graph.Graph](cfg.CachePolicy, cfg.MaxGraphCache),
		queryCache: cache.New[uint64, []graph.Rule](cfg.CachePolicy, cfg.MaxQueryCache),
		logger:     logger,
	}
}

// NewDefault builds an Engine with DefaultConfig.
func NewDefault() *Engine {
	return New(DefaultConfig())
}

func (e *Engine) streamConfig() stream.Config {
	return stream.Config{
		MaxStack:            e.cfg.StreamMaxStack,
		IneligibleOperators: e.cfg.StreamIneligibleOperators,
	}
}

// Evaluate implements the in-memory `evaluate(expression, data)`
// surface of spec.md §6.
func (e *Engine) Evaluate(expression value.Value, data value.Value) (value.Value, error) {
	return e.interp.Evaluate(expression, data)
}

// EvaluateStream implements the streaming `evaluate(byte_stream, data)`
// surface of spec.md §6: an empty stream is reported as
// logic.ErrEmptyExpression rather than a decode failure, since there
// is no LogicExpr to decode at all.
func (e *Engine) EvaluateStream(r io.Reader, data value.Value) (value.Value, error) {
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err != nil {
		if errors.Is(err, io.EOF) {
			return value.Null, logic.ErrEmptyExpression.New()
		}
		return value.Null, stream.ErrStreamIOError.New(err)
	}
	return stream.Evaluate(br, data, e.interp, e.streamConfig())
}

// queryID hashes (identifier, queries) into the tier-B cache key
// (spec.md §4.6 step 1/3).
func queryID(identifier string, queries []Query) (uint64, error) {
	return hashstructure.Hash(struct {
		Identifier string
		Queries    []Query
	}{identifier, queries}, nil)
}

func (e *Engine) graphFor(ctx QueryContext) (*graph.Graph, error) {
	if g, err := e.graphCache.Get(ctx.Identifier); err == nil {
		return g, nil
	}
	g, err := graph.Build(ctx.Rules)
	if err != nil {
		return nil, err
	}
	e.graphCache.Put(ctx.Identifier, g)
	return g, nil
}

func (e *Engine) selectedRules(ctx QueryContext, g *graph.Graph, queries []Query) ([]graph.Rule, error) {
	id, err := queryID(ctx.Identifier, queries)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "hashing query id")
	}
	if rules, err := e.queryCache.Get(id); err == nil {
		return rules, nil
	}
	rules := g.Select(queries)
	e.queryCache.Put(id, rules)
	return rules, nil
}

// RuleEvaluate implements spec.md §4.6's rule-set orchestration.
func (e *Engine) RuleEvaluate(ctx QueryContext, queries []Query, input QueryInput) (QueryOutput, error) {
	traceToken := ctx.TraceToken
	if traceToken == "" {
		if id, err := uuid.NewV4(); err == nil {
			traceToken = id.String()
		}
	}

	var span opentracing.Span
	if e.cfg.Tracer != nil {
		span = e.cfg.Tracer.StartSpan("rule_evaluate")
		span.SetTag("identifier", ctx.Identifier)
		span.SetTag("traceToken", traceToken)
		defer span.Finish()
	}

	log := e.logger.WithFields(logrus.Fields{
		"identifier": ctx.Identifier,
		"traceToken": traceToken,
	})

	g, err := e.graphFor(ctx)
	if err != nil {
		return nil, err
	}
	rules, err := e.selectedRules(ctx, g, queries)
	if err != nil {
		return nil, err
	}

	var baseCtx *value.Obj
	if input != nil {
		baseCtx = input.Clone()
	} else {
		baseCtx = value.NewObj()
	}
	allOutputs := value.NewObj()

	for _, rule := range rules {
		ruleLog := log.WithField("ruleId", rule.ID())

		var ruleSpan opentracing.Span
		if span != nil {
			ruleSpan = e.cfg.Tracer.StartSpan("rule", opentracing.ChildOf(span.Context()))
			ruleSpan.SetTag("ruleId", rule.ID())
		}

		expr, err := value.FromJSON([]byte(rule.Expression()))
		if err != nil {
			if ruleSpan != nil {
				ruleSpan.Finish()
			}
			return nil, RuleEngineError.New(rule.ID(), err.Error())
		}

		result, err := e.interp.Evaluate(expr, value.ObjVal(baseCtx))
		if ruleSpan != nil {
			ruleSpan.Finish()
		}
		if err != nil {
			if logic.ErrNullResult.Is(err) {
				ruleLog.Debug("rule produced no result, skipping")
				continue
			}
			return nil, RuleEngineError.New(rule.ID(), err.Error())
		}

		// A rule's expression may evaluate to a bare scalar rather than an
		// attribute map; spec.md §4.6 step 5c coerces it to
		// {outputs[0]: result} when the rule names exactly one output.
		var resultObj *value.Obj
		if result.IsObj() {
			resultObj = result.ObjValue()
		} else {
			outputs := rule.Outputs()
			if len(outputs) != 1 {
				return nil, RuleEngineError.New(rule.ID(), "scalar result requires exactly one declared output path")
			}
			resultObj = value.NewObj().Set(outputs[0], result)
		}
		var dupErr error
		resultObj.Range(func(k string, v value.Value) bool {
			if baseCtx.Has(k) {
				dupErr = DuplicateContextKey.New(rule.ID(), k)
				return false
			}
			baseCtx.Set(k, v)
			allOutputs.Set(k, v)
			return true
		})
		if dupErr != nil {
			return nil, dupErr
		}
	}

	return allOutputs, nil
}
