package match

import "testing"

func TestFixedValueAlwaysReturnsSameValue(t *testing.T) {
	p := FixedValue(TokenMatch(AnyToken()), "constant")
	r, ok := Parse(p, toks("x"), nil)
	if !ok {
		t.Fatal("expected match")
	}
	if r.AsValue().(string) != "constant" {
		t.Fatalf("expected fixed value 'constant', got %v", r.AsValue())
	}

	r2, ok := Parse(p, toks("y"), "whatever flags")
	if !ok {
		t.Fatal("expected match on different input")
	}
	if r2.AsValue().(string) != "constant" {
		t.Fatalf("expected the same fixed value regardless of flags, got %v", r2.AsValue())
	}
}

func TestFixedDelegatesMatchingToInner(t *testing.T) {
	p := FixedValue(TokenMatch(LabelText("only")), 1)
	_, ok := Parse(p, toks("other"), nil)
	if ok {
		t.Fatal("expected Fixed to fail when its inner parser fails")
	}
}

func TestFixedHandlerSeesFlags(t *testing.T) {
	p := Fixed(TokenMatch(AnyToken()), func(flags Flags) Result {
		return NewValueResult(flags.(int) * 2)
	})
	r, ok := Parse(p, toks("x"), 21)
	if !ok {
		t.Fatal("expected match")
	}
	if r.AsValue().(int) != 42 {
		t.Fatalf("expected handler to see flags, got %v", r.AsValue())
	}
}

func TestFixedGetResultOnNonMatchPanics(t *testing.T) {
	p := Fixed(TokenMatch(LabelText("only")), func(flags Flags) Result { return NewValueResult(nil) })
	inst := p.CreateInstance(toks("other"), 0)
	if _, matching := inst.End(); matching {
		t.Fatal("expected no match")
	}
	defer func() {
		if recover() == nil {
			t.Fatal("expected GetResult on a non-matching Fixed instance to panic")
		}
	}()
	inst.GetResult(nil)
}
