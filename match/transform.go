package match

// FlagTransform wraps inner so that a surrounding scope can pass a
// different flags value down than inner itself consumes: GetResult(f)
// delegates to inner.GetResult(project(f)) (§4.8). Matching/backtracking
// are untouched — the wrapper is a thin shell around inner's instance.
func FlagTransform(inner Parser, project func(Flags) Flags) Parser {
	return Parser{n: flagTransformNode{inner: inner, project: project}}
}

type flagTransformNode struct {
	inner   Parser
	project func(Flags) Flags
}

func (n flagTransformNode) createInstance(rc *runCtx, pos int) Instance {
	return &flagTransformInstance{inner: n.inner.n.createInstance(rc, pos), project: n.project}
}

type flagTransformInstance struct {
	inner   Instance
	project func(Flags) Flags
}

func (f *flagTransformInstance) End() (int, bool)  { return f.inner.End() }
func (f *flagTransformInstance) TryAgain()         { f.inner.TryAgain() }
func (f *flagTransformInstance) GetResult(flags Flags) Result {
	return f.inner.GetResult(f.project(flags))
}

// ResultTransform wraps inner so that its result tree is rewritten by
// handler before being returned: GetResult(flags) delegates to
// handler(inner.GetResult(flags), flags) (§4.8).
func ResultTransform(inner Parser, handler func(Result, Flags) Result) Parser {
	return Parser{n: resultTransformNode{inner: inner, handler: handler}}
}

type resultTransformNode struct {
	inner   Parser
	handler func(Result, Flags) Result
}

func (n resultTransformNode) createInstance(rc *runCtx, pos int) Instance {
	return &resultTransformInstance{inner: n.inner.n.createInstance(rc, pos), handler: n.handler}
}

type resultTransformInstance struct {
	inner   Instance
	handler func(Result, Flags) Result
}

func (r *resultTransformInstance) End() (int, bool) { return r.inner.End() }
func (r *resultTransformInstance) TryAgain()        { r.inner.TryAgain() }
func (r *resultTransformInstance) GetResult(flags Flags) Result {
	return r.handler(r.inner.GetResult(flags), flags)
}

// Transform composes FlagTransform and ResultTransform, applied in
// order Flag→Result (§4.8): the inner parser sees project(flags), and
// handler rewrites its result against the original outer flags.
func Transform(inner Parser, project func(Flags) Flags, handler func(Result, Flags) Result) Parser {
	return ResultTransform(FlagTransform(inner, project), handler)
}
