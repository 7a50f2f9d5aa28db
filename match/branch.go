package match

// Branch returns a parser that tries each alternative in listed order
// (§4.5), exposing all of alternative 0's matches, then all of 1's,
// and so on ("ordered alternation", no priority beyond listing order —
// §5). Nested branches are flattened (testable property #8). Branch
// requires at least one alternative; an empty Branch is a programmer
// error, since a branch with no alternatives has no sensible meaning
// to compose further (unlike Seq, where zero parsers degenerates
// cleanly to Empty).
func Branch(alternatives ...Parser) Parser {
	flat := make([]Parser, 0, len(alternatives))
	for _, p := range alternatives {
		if bn, ok := p.n.(branchNode); ok {
			flat = append(flat, bn.alternatives...)
		} else {
			flat = append(flat, p)
		}
	}
	if len(flat) == 0 {
		panicProgrammer(ErrEmptyBranch, "Branch requires at least one alternative")
	}
	return Parser{n: branchNode{alternatives: flat}}
}

type branchNode struct {
	alternatives []Parser
}

func (n branchNode) createInstance(rc *runCtx, pos int) Instance {
	b := &branchedInstance{rc: rc, pos: pos, alternatives: n.alternatives}
	b.current = n.alternatives[0].n.createInstance(rc, pos)
	b.nextIndex = 1
	b.performTest()
	return traced(rc, "Branch", pos, b)
}

// branchedInstance holds the currently tried alternative and the index
// of the next untried one (§4.5).
type branchedInstance struct {
	rc           *runCtx
	pos          int
	alternatives []Parser

	current   Instance
	nextIndex int
}

func (b *branchedInstance) performTest() {
	for {
		if _, matching := b.current.End(); matching {
			return
		}
		if b.nextIndex >= len(b.alternatives) {
			return
		}
		b.current = b.alternatives[b.nextIndex].n.createInstance(b.rc, b.pos)
		b.nextIndex++
	}
}

func (b *branchedInstance) End() (int, bool) {
	return b.current.End()
}

func (b *branchedInstance) TryAgain() {
	if _, matching := b.current.End(); !matching {
		return
	}
	b.current.TryAgain()
	b.performTest()
}

func (b *branchedInstance) GetResult(flags Flags) Result {
	if _, matching := b.current.End(); !matching {
		panicProgrammer(ErrResultOnNoMatch, "GetResult called on a non-matching Branch instance")
	}
	return b.current.GetResult(flags)
}
