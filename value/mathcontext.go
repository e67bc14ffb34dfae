package value

import (
	"github.com/shopspring/decimal"
)

// Rounding selects the rounding behavior applied after rescaling an
// arithmetic result to MathContext.Scale. HALF_UP is the spec.md
// default; the others are accepted configuration values that map onto
// shopspring/decimal's own rounding primitives.
type Rounding string

const (
	RoundHalfUp   Rounding = "HALF_UP"
	RoundHalfEven Rounding = "HALF_EVEN"
	RoundDown     Rounding = "DOWN"
	RoundUp       Rounding = "UP"
	RoundCeiling  Rounding = "CEILING"
	RoundFloor    Rounding = "FLOOR"
)

// MathContext is the scale/precision/rounding triple that governs all
// arithmetic in the interpreter (spec.md §3, §4.1).
type MathContext struct {
	// Scale is the number of fractional digits results of + - * / % are
	// rescaled to.
	Scale int32
	// Precision bounds the total number of significant digits; 0 means
	// unbounded (decimal.Decimal already carries arbitrary precision, so
	// this is enforced only when explicitly requested).
	Precision int32
	// Rounding selects the rounding mode used when rescaling to Scale.
	Rounding Rounding
}

// DefaultMathContext matches spec.md §6's documented defaults.
func DefaultMathContext() MathContext {
	return MathContext{Scale: 64, Precision: 0, Rounding: RoundHalfUp}
}

// Rescale applies ctx's scale and rounding mode to d.
func (ctx MathContext) Rescale(d decimal.Decimal) decimal.Decimal {
	var r decimal.Decimal
	switch ctx.Rounding {
	case RoundHalfEven:
		r = d.RoundBank(ctx.Scale)
	case RoundDown:
		r = d.Truncate(ctx.Scale)
	case RoundUp:
		r = roundAwayFromZero(d, ctx.Scale)
	case RoundCeiling:
		r = d.RoundCeil(ctx.Scale)
	case RoundFloor:
		r = d.RoundFloor(ctx.Scale)
	case RoundHalfUp, "":
		fallthrough
	default:
		r = d.Round(ctx.Scale)
	}
	if ctx.Precision > 0 {
		r = clampPrecision(r, ctx.Precision)
	}
	return r
}

// roundAwayFromZero rounds to places, always away from zero beyond the
// kept digits (distinct from HALF_UP which only breaks exact ties that
// way).
func roundAwayFromZero(d decimal.Decimal, places int32) decimal.Decimal {
	truncated := d.Truncate(places)
	if truncated.Equal(d) {
		return truncated
	}
	unit := decimal.New(1, -places)
	if d.IsNegative() {
		return truncated.Sub(unit)
	}
	return truncated.Add(unit)
}

// clampPrecision trims a decimal down to at most 'digits' significant
// digits, rounding half-up on the trimmed remainder.
func clampPrecision(d decimal.Decimal, digits int32) decimal.Decimal {
	if d.IsZero() {
		return d
	}
	coeff := d.Coefficient()
	coeff.Abs(coeff)
	numDigits := int32(len(coeff.String()))
	if numDigits <= digits {
		return d
	}
	drop := numDigits - digits
	places := -(d.Exponent() + drop)
	return d.Round(places)
}

// Add returns a+b rescaled to ctx.
func (ctx MathContext) Add(a, b decimal.Decimal) decimal.Decimal {
	return ctx.Rescale(a.Add(b))
}

// Sub returns a-b rescaled to ctx.
func (ctx MathContext) Sub(a, b decimal.Decimal) decimal.Decimal {
	return ctx.Rescale(a.Sub(b))
}

// Mul returns a*b rescaled to ctx.
func (ctx MathContext) Mul(a, b decimal.Decimal) decimal.Decimal {
	return ctx.Rescale(a.Mul(b))
}

// Div returns a/b rescaled to ctx, with ok=false on division by zero
// (spec.md: "Division or modulo by zero yields Null, never throws").
func (ctx MathContext) Div(a, b decimal.Decimal) (decimal.Decimal, bool) {
	if b.IsZero() {
		return decimal.Zero, false
	}
	scale := ctx.Scale
	if scale <= 0 {
		scale = DefaultMathContext().Scale
	}
	return ctx.Rescale(a.DivRound(b, scale+2)), true
}

// Mod returns the truncated remainder of a/b (matching most C-family
// "%" semantics, which is what spec.md's scenarios exercise), with
// ok=false on modulo by zero.
func (ctx MathContext) Mod(a, b decimal.Decimal) (decimal.Decimal, bool) {
	if b.IsZero() {
		return decimal.Zero, false
	}
	_, rem := a.QuoRem(b, 0)
	return ctx.Rescale(rem), true
}
