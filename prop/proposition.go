// Package prop abstracts atomic propositions and the evaluation
// context they are checked against. The core never looks past a
// proposition's identity; only the trace evaluator ever calls Evaluate.
package prop

import "fmt"

// PID is an opaque, hashable, totally-ordered proposition identifier.
// Two propositions with the same PID are interchangeable to the core.
type PID string

// ID implements Identifiable so a bare PID can stand in for a full
// Proposition wherever only identity (not evaluation) is required.
func (p PID) ID() PID { return p }

// EvalContext is the typed view a proposition evaluates against. The
// core threads contexts through unexamined; it never inspects one.
type EvalContext interface {
	// CurrentState returns the state data the caller wants propositions
	// to see. Evaluators type-assert it via StateAs.
	CurrentState() any
	// TraceIndex returns the position of this context within a trace,
	// if known.
	TraceIndex() (int, bool)
}

// StateAs fallibly views ctx's current state as T.
func StateAs[T any](ctx EvalContext) (T, error) {
	var zero T
	v := ctx.CurrentState()
	t, ok := v.(T)
	if !ok {
		return zero, fmt.Errorf("state type mismatch: want %T, got %T", zero, v)
	}
	return t, nil
}

// Proposition is the capability set the core requires of an atomic
// proposition: a stable identity and a deterministic evaluator.
type Proposition interface {
	ID() PID
	Evaluate(ctx EvalContext) (bool, error)
}

// Func packages an id, a human-readable name, and an evaluator closure
// into a Proposition. It covers the large majority of uses without
// requiring a bespoke type per proposition.
type Func struct {
	PID  PID
	Name string
	Eval func(ctx EvalContext) (bool, error)
}

func (f Func) ID() PID { return f.PID }

func (f Func) Evaluate(ctx EvalContext) (bool, error) {
	if f.Eval == nil {
		return false, fmt.Errorf("proposition %s (%s): no evaluator set", f.PID, f.Name)
	}
	return f.Eval(ctx)
}

func (f Func) String() string {
	if f.Name != "" {
		return f.Name
	}
	return string(f.PID)
}

// StaticContext is a trivial EvalContext wrapping a fixed value, useful
// for tests and for hosts whose state doesn't need a trace index.
type StaticContext struct {
	State any
	Index int
	HasIx bool
}

func (c StaticContext) CurrentState() any { return c.State }

func (c StaticContext) TraceIndex() (int, bool) { return c.Index, c.HasIx }

// NewContext builds a StaticContext carrying a trace index.
func NewContext(state any, index int) StaticContext {
	return StaticContext{State: state, Index: index, HasIx: true}
}
