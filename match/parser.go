package match

import (
	"log/slog"

	"github.com/google/uuid"

	"tokmatch/token"
)

// Flags is the immutable configuration value threaded down the parser
// tree at result-construction time (§3). The engine treats it
// dynamically (an `any`, per §9's guidance for enforcing T/F "by
// convention" when the host language can't express a heterogeneous
// generic tree); transform handlers are responsible for asserting the
// concrete shape they expect.
type Flags = any

// Value is the element type carried inside a ValueResult. Dynamically
// typed for the same reason as Flags.
type Value = any

// Instance is the mutable per-run matcher state contract from §4.1:
// exactly end/try_again/get_result, nothing more.
type Instance interface {
	// End returns the current match end position and whether the
	// instance is currently matching.
	End() (pos int, matching bool)

	// TryAgain attempts to move to the next alternative match
	// starting at the instance's fixed start position. A no-op if
	// the instance is already non-matching.
	TryAgain()

	// GetResult builds the result tree for the current alternative.
	// Only callable while matching; calling it on a non-matching
	// instance is a programmer error (§7) and panics.
	GetResult(flags Flags) Result
}

// node is the unexported capability every parser-tree variant
// implements: produce a fresh matcher instance at a given start
// position. Parser is the exported, immutable handle wrapping a node;
// users never implement node themselves, only compose the exported
// factory functions (Empty, TokenMatch, Seq, Branch, Quant, Lazy, the
// transform wrappers, and Fixed).
type node interface {
	createInstance(rc *runCtx, pos int) Instance
}

// Parser is an immutable node in the composed parser tree (§2 layer
// 2). Parser values hold no per-match state and are safe to share
// across many concurrent Parse calls.
type Parser struct {
	n node
}

// runCtx threads the borrowed token slice and optional trace logger
// down through every createInstance call of one match in progress. It
// is not part of the public Instance contract (§4.1 names only
// end/try_again/get_result) — it is plumbing private to this package
// that lets §6.5's observability hook reach every nested instance
// without widening that contract.
type runCtx struct {
	tokens []token.Token
	logger *slog.Logger
}

func (rc *runCtx) trace(kind string, id uuid.UUID, pos int, end int, matching bool) {
	if rc.logger == nil {
		return
	}
	rc.logger.Debug("try_again",
		"parser", kind,
		"instance", id.String(),
		"pos", pos,
		"end", end,
		"matching", matching,
	)
}

func newTraceID() uuid.UUID {
	id, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the global random source errors,
		// which never happens with crypto/rand backing it.
		return uuid.New()
	}
	return id
}

// CreateInstance builds a fresh matcher instance for p over tokens,
// starting at pos. tokens is borrowed for the lifetime of the returned
// instance and every sub-instance it owns; callers must not mutate it
// concurrently with use (§5).
func (p Parser) CreateInstance(tokens []token.Token, pos int) Instance {
	return guard(p.n.createInstance(&runCtx{tokens: tokens}, pos))
}

// Option configures a Parse call. The zero set of options reproduces
// spec.md's bare `parse(tokens, flags)` signature exactly; WithLogger
// is the §6.5 observability extension layered on top.
type Option func(*runCtx)

// WithLogger attaches a trace logger: every try_again call on every
// nested instance logs its parser kind, instance id, and position
// transition at slog.LevelDebug. A nil logger (the default) disables
// tracing entirely at zero cost.
func WithLogger(l *slog.Logger) Option {
	return func(rc *runCtx) { rc.logger = l }
}

// Parse is the full-input anchor entry point from §4.1: it creates the
// root instance at position 0 and repeatedly calls TryAgain looking
// for an alternative whose end equals len(tokens). It returns the
// built result tree and true on success, or a zero Result and false if
// no such alternative exists.
func Parse(p Parser, tokens []token.Token, flags Flags, opts ...Option) (Result, bool) {
	rc := &runCtx{tokens: tokens}
	for _, opt := range opts {
		opt(rc)
	}

	inst := guard(p.n.createInstance(rc, 0))
	for {
		end, matching := inst.End()
		if !matching {
			return Result{}, false
		}
		if end == len(tokens) {
			return inst.GetResult(flags), true
		}
		inst.TryAgain()
	}
}
