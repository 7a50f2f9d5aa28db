package match

// Seq returns a parser that matches each of parsers in order (§4.4).
// Nested sequences are flattened so that Seq(Seq(a, b), c) and
// Seq(a, Seq(b, c)) both produce the same 3-element CompoundResult
// shape as Seq(a, b, c) (testable property #8).
func Seq(parsers ...Parser) Parser {
	flat := make([]Parser, 0, len(parsers))
	for _, p := range parsers {
		if sn, ok := p.n.(sequenceNode); ok {
			flat = append(flat, sn.parsers...)
		} else {
			flat = append(flat, p)
		}
	}
	if len(flat) == 0 {
		return Empty()
	}
	return Parser{n: sequenceNode{parsers: flat}}
}

type sequenceNode struct {
	parsers []Parser
}

func (n sequenceNode) createInstance(rc *runCtx, pos int) Instance {
	s := &sequentialInstance{rc: rc, pos: pos, parsers: n.parsers}
	s.stack = []Instance{n.parsers[0].n.createInstance(rc, pos)}
	s.state = 0
	s.performTest()
	return traced(rc, "Sequence", pos, s)
}

// sequentialInstance is the depth-first-search drive loop from §4.4: a
// stack of sub-instances S positioned consecutively, and a cursor
// state. state == k means every sub-parser has matched; state == -1 is
// the "whole sequence failed" sentinel.
type sequentialInstance struct {
	rc      *runCtx
	pos     int
	parsers []Parser

	stack []Instance
	state int

	end      int
	matching bool
}

// performTest is the drive loop shared by init and try_again: it walks
// the stack forward on a match, backward (popping and re-asking) on a
// mismatch, until either every sub-parser has matched or the stack is
// exhausted.
func (s *sequentialInstance) performTest() {
	k := len(s.parsers)
	for len(s.stack) > 0 && s.state < k {
		top := s.stack[len(s.stack)-1]
		end, matching := top.End()
		if matching {
			s.state++
			if s.state < k {
				next := s.parsers[s.state].n.createInstance(s.rc, end)
				s.stack = append(s.stack, next)
			}
		} else {
			s.state--
			s.stack = s.stack[:len(s.stack)-1]
			if s.state >= 0 {
				s.stack[len(s.stack)-1].TryAgain()
			}
		}
	}

	if s.state == -1 {
		s.matching = false
		return
	}
	e, _ := s.stack[len(s.stack)-1].End()
	s.end = e
	s.matching = true
}

func (s *sequentialInstance) End() (int, bool) {
	if !s.matching {
		return 0, false
	}
	return s.end, true
}

// TryAgain is internal_try_again from §4.4: advance from the current
// solution by asking the innermost sub-parser for its next
// alternative and letting the drive loop propagate the consequences.
func (s *sequentialInstance) TryAgain() {
	if !s.matching {
		return
	}
	s.state--
	s.stack[len(s.stack)-1].TryAgain()
	s.performTest()
}

func (s *sequentialInstance) GetResult(flags Flags) Result {
	if !s.matching {
		panicProgrammer(ErrResultOnNoMatch, "GetResult called on a non-matching Sequence instance")
	}
	children := make([]Result, len(s.stack))
	for i, inst := range s.stack {
		children[i] = inst.GetResult(flags)
	}
	return NewCompoundResult(children...)
}
