package match

import "sync"

// Lazy returns a forward-reference parser: thunk is evaluated at most
// once, on first demand (the first CreateInstance call), and its
// result is cached for every subsequent instance creation (§4.7). Use
// it to tie recursive knots, e.g. a `value` parser that refers to
// itself through an `object` or `array` alternative:
//
//	var value match.Parser
//	array := match.Seq(open, match.Lazy(func() match.Parser { return value }), close)
//	value = match.Branch(number, array)
//
// The closure captures value by reference; by the time the first
// instance is created the surrounding grammar has finished assigning
// it.
func Lazy(thunk func() Parser) Parser {
	return Parser{n: &lazyNode{cell: &lazyCell{thunk: thunk}}}
}

type lazyCell struct {
	once     sync.Once
	thunk    func() Parser
	resolved Parser
}

func (c *lazyCell) resolve() Parser {
	c.once.Do(func() {
		c.resolved = c.thunk()
	})
	return c.resolved
}

type lazyNode struct {
	cell *lazyCell
}

func (n *lazyNode) createInstance(rc *runCtx, pos int) Instance {
	return n.cell.resolve().n.createInstance(rc, pos)
}
