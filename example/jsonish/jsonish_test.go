package jsonish

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScalars(t *testing.T) {
	cases := map[string]any{
		`"hi"`:  "hi",
		`42`:    float64(42),
		`3.5`:   float64(3.5),
		`true`:  true,
		`false`: false,
		`null`:  nil,
	}
	for input, want := range cases {
		got, err := Parse(input)
		require.NoError(t, err, "Parse(%q)", input)
		assert.Equal(t, want, got, "Parse(%q)", input)
	}
}

func TestParseObjectAndArray(t *testing.T) {
	// the example named in spec.md's testable property #6.
	got, err := Parse(`{"k": 1, "m": [true, null]}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"k": float64(1),
		"m": []any{true, nil},
	}, got)
}

func TestParseEmptyObjectAndArray(t *testing.T) {
	got, err := Parse(`{}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{}, got)

	got, err = Parse(`[]`)
	require.NoError(t, err)
	assert.Equal(t, []any{}, got)
}

func TestParseNestedStructures(t *testing.T) {
	got, err := Parse(`[{"a": [1, 2, 3]}, {"b": {"c": null}}]`)
	require.NoError(t, err)
	assert.Equal(t, []any{
		map[string]any{"a": []any{float64(1), float64(2), float64(3)}},
		map[string]any{"b": map[string]any{"c": nil}},
	}, got)
}

func TestParseTrailingGarbageIsNoMatch(t *testing.T) {
	_, err := Parse(`{"k": 1}}`)
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestParseUnterminatedObjectIsNoMatch(t *testing.T) {
	_, err := Parse(`{"k": 1`)
	assert.ErrorIs(t, err, ErrNoMatch)
}
