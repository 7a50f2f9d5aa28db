package match

// Empty returns a parser that matches zero tokens exactly once (§4.2).
// Its result is an empty CompoundResult, consistent with Sequence and
// Quantified also producing CompoundResults so their shapes compose
// uniformly.
func Empty() Parser {
	return Parser{n: emptyNode{}}
}

type emptyNode struct{}

func (emptyNode) createInstance(rc *runCtx, pos int) Instance {
	return traced(rc, "Empty", pos, &emptyInstance{pos: pos, matching: true})
}

type emptyInstance struct {
	pos      int
	matching bool
}

func (e *emptyInstance) End() (int, bool) {
	if !e.matching {
		return 0, false
	}
	return e.pos, true
}

func (e *emptyInstance) TryAgain() {
	e.matching = false
}

func (e *emptyInstance) GetResult(Flags) Result {
	if !e.matching {
		panicProgrammer(ErrResultOnNoMatch, "GetResult called on a non-matching Empty instance")
	}
	return NewCompoundResult()
}
