package stream

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/ayushmaanbhav/product-farm-sub005/logic"
	"github.com/ayushmaanbhav/product-farm-sub005/value"
)

// Evaluate decodes a LogicExpr from r and evaluates it against data,
// reducing eligible operator sub-expressions as soon as their JSON
// closes (spec.md §4.4) rather than building the entire tree first.
func Evaluate(r io.Reader, data value.Value, interp *logic.Interpreter, cfg Config) (value.Value, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	b := &builder{dec: dec, data: data, interp: interp, cfg: cfg}

	root, err := b.parseValue(0, false)
	if err != nil {
		return value.Null, err
	}
	return interp.Evaluate(root, data)
}

// builder drives a single json.Decoder over one LogicExpr document,
// folding eligible sub-expressions into already-evaluated Values as
// each one's closing token is consumed.
type builder struct {
	dec   *json.Decoder
	data  value.Value
	interp *logic.Interpreter
	cfg   Config
}

func (b *builder) next() (json.Token, error) {
	tok, err := b.dec.Token()
	if err != nil {
		return nil, ErrStreamIOError.New(err)
	}
	return tok, nil
}

// parseValue consumes and converts exactly one JSON value, descending
// into parseArray/parseObject for composite shapes. depth tracks the
// number of operator-object layers enclosing this value; suppressed
// is true anywhere inside an ineligible operator's argument subtree,
// where nothing may be folded early regardless of depth (spec.md
// §4.4 — ineligible operators' branches are skipped for mid-stream
// reduction at any depth, not just at the ineligible node itself).
func (b *builder) parseValue(depth int, suppressed bool) (value.Value, error) {
	tok, err := b.next()
	if err != nil {
		return value.Null, err
	}
	return b.parseTokenValue(tok, depth, suppressed)
}

func (b *builder) parseTokenValue(tok json.Token, depth int, suppressed bool) (value.Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '[':
			return b.parseArray(depth, suppressed)
		case '{':
			return b.parseObject(depth, suppressed)
		default:
			return value.Null, ErrInvalidFormat.New(fmt.Sprintf("unexpected delimiter %q", t))
		}
	case string:
		return value.Str(t), nil
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		if err != nil {
			return value.Null, ErrInvalidFormat.New(err.Error())
		}
		return value.Num(d), nil
	case bool:
		return value.Bool(t), nil
	case nil:
		return value.Null, nil
	default:
		return value.Null, ErrInvalidFormat.New(fmt.Sprintf("unsupported token type %T", tok))
	}
}

// parseArray reads elements until the matching ']', without raising
// depth — only operator-object nesting counts toward the stack bound.
// suppressed passes through unchanged: an array is transparent to the
// ineligible-ancestor rule.
func (b *builder) parseArray(depth int, suppressed bool) (value.Value, error) {
	var items []value.Value
	for b.dec.More() {
		v, err := b.parseValue(depth, suppressed)
		if err != nil {
			return value.Null, err
		}
		items = append(items, v)
	}
	if _, err := b.next(); err != nil { // consume ']'
		return value.Null, err
	}
	return value.List(items), nil
}

// parseObject reads a LogicExpr Obj node: empty means "current data",
// otherwise exactly one key naming an operator. When the resulting
// node's depth reaches cfg.MaxStack, the operator is eligible, and no
// enclosing ineligible operator's branch contains it, it is evaluated
// immediately and folded into a plain Value, so deeper ancestors never
// see this subtree's internal structure. Once suppressed is true — set
// by an ineligible ancestor — it propagates to every descendant node,
// so nothing under, say, an `if` branch is ever folded early, no
// matter how deep it nests or what operator it names.
func (b *builder) parseObject(depth int, suppressed bool) (value.Value, error) {
	if !b.dec.More() {
		if _, err := b.next(); err != nil { // consume '}'
			return value.Null, err
		}
		return value.ObjVal(value.NewObj()), nil
	}

	keyTok, err := b.next()
	if err != nil {
		return value.Null, err
	}
	key, ok := keyTok.(string)
	if !ok {
		return value.Null, ErrInvalidFormat.New("object key must be a string")
	}

	childDepth := depth + 1
	childSuppressed := suppressed || b.cfg.IneligibleOperators[key]
	payload, err := b.parseValue(childDepth, childSuppressed)
	if err != nil {
		return value.Null, err
	}

	if b.dec.More() {
		return value.Null, ErrInvalidFormat.New("operator object must have exactly one key")
	}
	if _, err := b.next(); err != nil { // consume '}'
		return value.Null, err
	}

	node := value.ObjVal(value.NewObj().Set(key, payload))

	if !suppressed && b.eligibleForReduction(key, childDepth) {
		return b.interp.Evaluate(node, b.data)
	}
	return node, nil
}

func (b *builder) eligibleForReduction(operator string, depth int) bool {
	if depth < b.cfg.MaxStack {
		return false
	}
	return !b.cfg.IneligibleOperators[operator]
}
