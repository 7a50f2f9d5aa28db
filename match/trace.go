package match

import "github.com/google/uuid"

// traced wraps inner with §6.5's debug tracing: when rc carries a
// logger, every TryAgain call on the returned instance logs its parser
// kind, a per-instance uuid, and the resulting position/match state.
// A nil logger (the default) makes this a zero-cost passthrough.
func traced(rc *runCtx, kind string, pos int, inner Instance) Instance {
	if rc.logger == nil {
		return inner
	}
	return &tracingInstance{rc: rc, kind: kind, pos: pos, id: newTraceID(), inner: inner}
}

type tracingInstance struct {
	rc    *runCtx
	kind  string
	pos   int
	id    uuid.UUID
	inner Instance
}

func (t *tracingInstance) End() (int, bool) { return t.inner.End() }

func (t *tracingInstance) TryAgain() {
	t.inner.TryAgain()
	end, matching := t.inner.End()
	t.rc.trace(t.kind, t.id, t.pos, end, matching)
}

func (t *tracingInstance) GetResult(flags Flags) Result { return t.inner.GetResult(flags) }
