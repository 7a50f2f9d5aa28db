package match

import (
	"fmt"
	"strings"

	"tokmatch/token"
)

// Shape tags which of the three result-tree variants a Result carries.
type Shape int

const (
	ShapeToken Shape = iota
	ShapeValue
	ShapeCompound
)

// Result is the tagged-variant output tree described in §3: a
// TokenResult wrapping a single consumed token, a ValueResult carrying
// a user value, or a CompoundResult holding an ordered, indexable
// sequence of sub-results. Construct one with NewTokenResult /
// NewValueResult / NewCompoundResult; accessing the wrong shape's
// accessor is a programmer error (§7) and panics.
type Result struct {
	shape    Shape
	tok      token.Token
	val      any
	children []Result
}

// NewTokenResult wraps a single consumed token.
func NewTokenResult(t token.Token) Result {
	return Result{shape: ShapeToken, tok: t}
}

// NewValueResult wraps a user-supplied value of the parser's output
// type, produced by a transform or Fixed.
func NewValueResult(v any) Result {
	return Result{shape: ShapeValue, val: v}
}

// NewCompoundResult wraps an ordered sequence of sub-results, produced
// by Sequence, Quantified, and Empty.
func NewCompoundResult(children ...Result) Result {
	return Result{shape: ShapeCompound, children: children}
}

// Shape reports which variant this Result carries.
func (r Result) Shape() Shape { return r.shape }

// AsToken returns the wrapped token. Panics if Shape() != ShapeToken.
func (r Result) AsToken() token.Token {
	if r.shape != ShapeToken {
		panicProgrammer(ErrWrongResultShape, "AsToken called on a %s result", r.shape)
	}
	return r.tok
}

// AsValue returns the wrapped value. Panics if Shape() != ShapeValue.
func (r Result) AsValue() any {
	if r.shape != ShapeValue {
		panicProgrammer(ErrWrongResultShape, "AsValue called on a %s result", r.shape)
	}
	return r.val
}

// AsCompound returns the wrapped child sequence. Panics if
// Shape() != ShapeCompound.
func (r Result) AsCompound() []Result {
	if r.shape != ShapeCompound {
		panicProgrammer(ErrWrongResultShape, "AsCompound called on a %s result", r.shape)
	}
	return r.children
}

// Len returns len(AsCompound()); panics on a non-compound result.
func (r Result) Len() int { return len(r.AsCompound()) }

// At returns AsCompound()[i]; panics on a non-compound result or an
// out-of-range index.
func (r Result) At(i int) Result { return r.AsCompound()[i] }

func (s Shape) String() string {
	switch s {
	case ShapeToken:
		return "Token"
	case ShapeValue:
		return "Value"
	case ShapeCompound:
		return "Compound"
	default:
		return "Unknown"
	}
}

func (r Result) String() string {
	switch r.shape {
	case ShapeToken:
		return fmt.Sprintf("TokenResult(%s)", r.tok)
	case ShapeValue:
		return fmt.Sprintf("ValueResult(%v)", r.val)
	case ShapeCompound:
		parts := make([]string, len(r.children))
		for i, c := range r.children {
			parts[i] = c.String()
		}
		return "CompoundResult(" + strings.Join(parts, ", ") + ")"
	default:
		return "Result(?)"
	}
}
