// Package jsonish is a worked example of the matcher engine: a JSON-like
// grammar (objects, arrays, strings, numbers, true/false/null) built
// entirely out of tokmatch/match combinators, producing plain Go values
// (map[string]any, []any, string, float64, bool, nil) rather than a
// custom AST. It exists to exercise the engine end to end, the way a
// JSON parser was named in spec.md as the motivating external
// collaborator for the matcher library.
package jsonish

import (
	"errors"
	"math"

	"tokmatch/match"
	"tokmatch/token"
)

// maxRepeats bounds the "zero or more, comma separated" member and
// element quantifiers. The bound is never actually reached in practice — the
// greedy extend step stops at the first repetition that fails to match
// — it only needs to be large enough not to cut off any real document.
const maxRepeats = math.MaxInt32

// ErrNoMatch is returned by Parse when the tokenized input is not a
// complete jsonish value (trailing or missing tokens, unbalanced
// brackets, and so on).
var ErrNoMatch = errors.New("jsonish: input is not a well-formed value")

// Value is the jsonish grammar's entry point. It is immutable and safe
// to reuse concurrently across many Parse calls, like every other
// match.Parser.
var Value = buildGrammar()

// Parse tokenizes input and matches it against Value, returning a plain
// Go value tree. A tokenization failure is returned as-is (a
// *token.LexError); a well-formed-but-non-matching token stream returns
// ErrNoMatch.
func Parse(input string) (any, error) {
	tokens, err := token.Tokenize(input, token.DefaultOptions())
	if err != nil {
		return nil, err
	}
	r, ok := match.Parse(Value, tokens, nil)
	if !ok {
		return nil, ErrNoMatch
	}
	return r.AsValue(), nil
}

type keyValue struct {
	key string
	val any
}

func buildGrammar() match.Parser {
	stringLit := match.ResultTransform(match.TokenMatch(match.AnyString()), func(r match.Result, _ match.Flags) match.Result {
		return match.NewValueResult(r.AsToken().Text)
	})
	numberLit := match.ResultTransform(match.TokenMatch(match.AnyNumber()), func(r match.Result, _ match.Flags) match.Result {
		return match.NewValueResult(r.AsToken().Numeric())
	})
	trueLit := match.FixedValue(match.TokenMatch(match.LabelText("true")), true)
	falseLit := match.FixedValue(match.TokenMatch(match.LabelText("false")), false)
	nullLit := match.FixedValue(match.TokenMatch(match.LabelText("null")), nil)

	var value match.Parser
	lazyValue := match.Lazy(func() match.Parser { return value })

	member := match.ResultTransform(
		match.Seq(stringLit, match.TokenMatch(match.SymbolChar(':')), lazyValue),
		func(r match.Result, _ match.Flags) match.Result {
			return match.NewValueResult(keyValue{key: r.At(0).AsValue().(string), val: r.At(2).AsValue()})
		},
	)
	objectBody := match.Branch(
		match.Empty(),
		match.Seq(member, match.Quant(match.Seq(match.TokenMatch(match.SymbolChar(',')), member), match.GreedyQ(0, maxRepeats))),
	)
	object := match.ResultTransform(
		match.Seq(match.TokenMatch(match.SymbolChar('{')), objectBody, match.TokenMatch(match.SymbolChar('}'))),
		func(r match.Result, _ match.Flags) match.Result {
			m := map[string]any{}
			body := r.At(1)
			if body.Len() == 2 {
				addMember(m, body.At(0))
				rest := body.At(1)
				for i := 0; i < rest.Len(); i++ {
					addMember(m, rest.At(i).At(1))
				}
			}
			return match.NewValueResult(m)
		},
	)

	arrayBody := match.Branch(
		match.Empty(),
		match.Seq(lazyValue, match.Quant(match.Seq(match.TokenMatch(match.SymbolChar(',')), lazyValue), match.GreedyQ(0, maxRepeats))),
	)
	array := match.ResultTransform(
		match.Seq(match.TokenMatch(match.SymbolChar('[')), arrayBody, match.TokenMatch(match.SymbolChar(']'))),
		func(r match.Result, _ match.Flags) match.Result {
			elems := []any{}
			body := r.At(1)
			if body.Len() == 2 {
				elems = append(elems, body.At(0).AsValue())
				rest := body.At(1)
				for i := 0; i < rest.Len(); i++ {
					elems = append(elems, rest.At(i).At(1).AsValue())
				}
			}
			return match.NewValueResult(elems)
		},
	)

	value = match.Branch(object, array, stringLit, numberLit, trueLit, falseLit, nullLit)
	return value
}

func addMember(m map[string]any, r match.Result) {
	kv := r.AsValue().(keyValue)
	m[kv.key] = kv.val
}
