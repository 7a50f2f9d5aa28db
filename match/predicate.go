package match

import "tokmatch/token"

// Predicate is the atomic matcher: a pure function from a token to
// whether it is accepted. Predicates hold no hidden state.
type Predicate func(token.Token) bool

// AnyToken accepts every token.
func AnyToken() Predicate {
	return func(token.Token) bool { return true }
}

// OfKind accepts any token of the given kind.
func OfKind(k token.Kind) Predicate {
	return func(t token.Token) bool { return t.Kind == k }
}

// ExactToken accepts only tokens structurally equal to want.
func ExactToken(want token.Token) Predicate {
	return func(t token.Token) bool { return t.Equal(want) }
}

// LabelText accepts a Label token whose text is exactly s.
func LabelText(s string) Predicate {
	return func(t token.Token) bool { return t.Kind == token.Label && t.Text == s }
}

// AnyLabel accepts any Label token.
func AnyLabel() Predicate { return OfKind(token.Label) }

// StringText accepts a String token with the given text, in either
// quoting mode.
func StringText(s string) Predicate {
	return func(t token.Token) bool { return t.Kind == token.String && t.Text == s }
}

// AnyString accepts any String token, optionally restricted to modes.
// With no modes given, both STRONG and WEAK strings are accepted.
func AnyString(modes ...token.StringMode) Predicate {
	if len(modes) == 0 {
		return OfKind(token.String)
	}
	return func(t token.Token) bool {
		if t.Kind != token.String {
			return false
		}
		for _, m := range modes {
			if t.StrMode == m {
				return true
			}
		}
		return false
	}
}

// AnyNumber accepts any Number token.
func AnyNumber() Predicate { return OfKind(token.Number) }

// NumberRange accepts a Number token whose widened value falls within
// [lo, hi] inclusive.
func NumberRange(lo, hi float64) Predicate {
	return func(t token.Token) bool {
		if t.Kind != token.Number {
			return false
		}
		v := t.Numeric()
		return v >= lo && v <= hi
	}
}

// SymbolChar accepts a Symbol token matching the given character.
func SymbolChar(ch byte) Predicate {
	return func(t token.Token) bool { return t.Kind == token.Symbol && t.Ch == ch }
}

// Not negates a predicate: accepts wherever p rejects.
func Not(p Predicate) Predicate {
	return func(t token.Token) bool { return !p(t) }
}

// Or accepts a token accepted by any of preds.
func Or(preds ...Predicate) Predicate {
	return func(t token.Token) bool {
		for _, p := range preds {
			if p(t) {
				return true
			}
		}
		return false
	}
}

// And accepts a token accepted by every one of preds.
func And(preds ...Predicate) Predicate {
	return func(t token.Token) bool {
		for _, p := range preds {
			if !p(t) {
				return false
			}
		}
		return true
	}
}
