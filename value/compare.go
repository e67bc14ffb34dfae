package value

// Compare orders a and b per spec.md §4.2.4: numerically when both
// coerce to a decimal, else lexicographically on their stringified
// forms. It reports ok=false only when exactly one side is Null (the
// operator layer turns that into "false" for every comparison, never
// an error).
func Compare(a, b Value, ctx MathContext) (cmp int, ok bool) {
	if a.IsNull() != b.IsNull() {
		return 0, false
	}
	if a.IsNull() && b.IsNull() {
		return 0, true
	}
	if da, oka := AsBigDecimal(a, ctx); oka {
		if db, okb := AsBigDecimal(b, ctx); okb {
			return da.Cmp(db), true
		}
	}
	sa, sb := AsString(a), AsString(b)
	switch {
	case sa < sb:
		return -1, true
	case sa > sb:
		return 1, true
	default:
		return 0, true
	}
}

// unwrapForLooseEquals applies spec.md §4.2.4's pre-unwrap rules: a
// singleton list becomes its sole element unless that element is a
// Bool; [null] -> 0; [] -> "".
func unwrapForLooseEquals(v Value) Value {
	if !v.IsList() {
		return v
	}
	switch len(v.list) {
	case 0:
		return Str("")
	case 1:
		sole := v.list[0]
		if sole.IsBool() {
			return v
		}
		if sole.IsNull() {
			return NumFromInt(0)
		}
		return sole
	default:
		return v
	}
}

// equalsTruthTable enumerates cross-category pairs spec.md calls out
// as known-equal under loose `==` (e.g. empty string equals zero).
func equalsTruthTable(a, b Value) (bool, bool) {
	// empty string <-> zero
	if a.IsStr() && a.s == "" && b.IsNum() && b.n.IsZero() {
		return true, true
	}
	if b.IsStr() && b.s == "" && a.IsNum() && a.n.IsZero() {
		return true, true
	}
	// null <-> null already handled by tag equality below; null never
	// loosely equals anything else.
	if a.IsNull() != b.IsNull() {
		if a.IsNull() || b.IsNull() {
			return false, true
		}
	}
	return false, false
}

// LooseEqual implements `==` (spec.md §4.2.4).
func LooseEqual(a, b Value, ctx MathContext) bool {
	a = unwrapForLooseEquals(a)
	b = unwrapForLooseEquals(b)

	if eq, known := equalsTruthTable(a, b); known {
		return eq
	}

	// Bool coerces to 0/1 against anything else.
	if a.IsBool() || b.IsBool() {
		an, aok := AsBigDecimal(a, ctx)
		bn, bok := AsBigDecimal(b, ctx)
		if aok && bok {
			return an.Equal(bn)
		}
		return false
	}

	if a.kind == b.kind {
		if a.IsNum() {
			return a.n.Equal(b.n)
		}
		if a.IsStr() {
			// Strings that both parse to numbers compare equal as
			// numbers with trailing zeros stripped; else literal compare.
			if an, aok := AsBigDecimal(a, ctx); aok {
				if bn, bok := AsBigDecimal(b, ctx); bok {
					return an.Equal(bn)
				}
			}
			return a.s == b.s
		}
		return a.Equal(b)
	}

	// Cross-type: numeric strings parse to numbers and compare against
	// the other side numerically.
	an, aok := AsBigDecimal(a, ctx)
	bn, bok := AsBigDecimal(b, ctx)
	if aok && bok {
		return an.Equal(bn)
	}

	return false
}

// StrictEqual implements `===`: no cross-type coercion.
func StrictEqual(a, b Value) bool {
	return a.Equal(b)
}
