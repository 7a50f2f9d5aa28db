package token

import (
	"errors"
	"testing"
)

func TestTokenizeBasics(t *testing.T) {
	toks, err := Tokenize(`foo 123 1.5 "a\"b" 'c' ;`, DefaultOptions().WithWhitespace(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []Token{
		NewLabel("foo"),
		NewInteger(123),
		NewDecimal(1.5),
		NewString(`a"b`, Strong),
		NewString("c", Weak),
		NewSymbol(';'),
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i := range want {
		if !toks[i].Equal(want[i]) {
			t.Errorf("token %d = %v, want %v", i, toks[i], want[i])
		}
	}
}

func TestTokenizeWhitespaceOption(t *testing.T) {
	toks, err := Tokenize("a b", DefaultOptions().WithWhitespace(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 || toks[1].Kind != Whitespace {
		t.Fatalf("expected [Label, Whitespace, Label], got %v", toks)
	}
}

func TestTokenizeLabelsHaveDigits(t *testing.T) {
	toks, err := Tokenize("a1 b2", DefaultOptions().WithLabelsHaveDigits(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Text != "a1" || toks[1].Text != "b2" {
		t.Fatalf("got %v", toks)
	}

	toks, err = Tokenize("a1", DefaultOptions().WithLabelsHaveDigits(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 2 || toks[0].Kind != Label || toks[1].Kind != Number {
		t.Fatalf("expected label+number split, got %v", toks)
	}
}

func TestTokenizeDecimalCapture(t *testing.T) {
	toks, err := Tokenize("1.5", DefaultOptions().WithDecimalNumbers(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(toks) != 3 || toks[0].Kind != Number || toks[1].Ch != '.' || toks[2].Kind != Number {
		t.Fatalf("expected Integer, Symbol('.'), Integer, got %v", toks)
	}
}

func TestTokenizeResolveEscapes(t *testing.T) {
	toks, err := Tokenize(`"a\nb"`, DefaultOptions().WithResolveEscapes(false))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Text != `a\nb` {
		t.Fatalf("expected raw escape preserved, got %q", toks[0].Text)
	}

	toks, err = Tokenize(`"a\nb"`, DefaultOptions().WithResolveEscapes(true))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if toks[0].Text != "anb" {
		t.Fatalf("expected escape resolved to literal char, got %q", toks[0].Text)
	}
}

func TestTokenizeErrors(t *testing.T) {
	_, err := Tokenize("`", DefaultOptions())
	var lexErr *LexError
	if !errors.As(err, &lexErr) || lexErr.Code != ErrUnrecognizedChar {
		t.Fatalf("expected ErrUnrecognizedChar, got %v", err)
	}

	_, err = Tokenize(`"unterminated`, DefaultOptions())
	if !errors.As(err, &lexErr) || lexErr.Code != ErrUnterminatedStr {
		t.Fatalf("expected ErrUnterminatedStr, got %v", err)
	}

	_, err = Tokenize(`"a\`, DefaultOptions())
	if !errors.As(err, &lexErr) || lexErr.Code != ErrDanglingEscape {
		t.Fatalf("expected ErrDanglingEscape, got %v", err)
	}
}
