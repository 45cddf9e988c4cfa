package trace_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfielding/kripke-ltl/ltl"
	"github.com/rfielding/kripke-ltl/prop"
	"github.com/rfielding/kripke-ltl/trace"
)

// labelCtx is an EvalContext wrapping a fixed set of true PIDs, one per
// trace position.
type labelCtx struct {
	labels map[prop.PID]bool
	index  int
}

func (c labelCtx) CurrentState() any       { return c.labels }
func (c labelCtx) TraceIndex() (int, bool) { return c.index, true }

func ctxOf(i int, pids ...prop.PID) labelCtx {
	m := make(map[prop.PID]bool, len(pids))
	for _, p := range pids {
		m[p] = true
	}
	return labelCtx{labels: m, index: i}
}

func propOf(id prop.PID) prop.Func {
	return prop.Func{
		PID: id,
		Eval: func(ctx prop.EvalContext) (bool, error) {
			labels, err := prop.StateAs[map[prop.PID]bool](ctx)
			if err != nil {
				return false, err
			}
			return labels[id], nil
		},
	}
}

func TestEvaluateEmptyTraceErrors(t *testing.T) {
	p := ltl.Atom[prop.Func](propOf("p"))
	_, err := trace.Evaluate(p, nil)
	require.True(t, errors.Is(err, trace.ErrEmptyTrace))
}

func TestEvaluatePendingNextIsInconclusive(t *testing.T) {
	p := propOf("p")
	f := ltl.Next[prop.Func](ltl.Atom[prop.Func](p))
	_, err := trace.Evaluate(f, []prop.EvalContext{ctxOf(0, "p")})
	var inconclusive *trace.ErrInconclusive
	require.True(t, errors.As(err, &inconclusive))
}

func TestEvaluateGloballyVacuousAtEndOfTrace(t *testing.T) {
	// S7: trace [{p},{p,q},{!p}], formula G(p -> F q), expected true.
	p, q := propOf("p"), propOf("q")
	f := ltl.Globally[prop.Func](ltl.Implies[prop.Func](
		ltl.Atom[prop.Func](p),
		ltl.Finally[prop.Func](ltl.Atom[prop.Func](q)),
	))
	trc := []prop.EvalContext{
		ctxOf(0, "p"),
		ctxOf(1, "p", "q"),
		ctxOf(2),
	}
	result, err := trace.Evaluate(f, trc)
	require.NoError(t, err)
	assert.True(t, result)
}

func TestEvaluateUntilFailsWithoutRight(t *testing.T) {
	p, r := propOf("p"), propOf("r")
	f := ltl.Until[prop.Func](ltl.Atom[prop.Func](p), ltl.Atom[prop.Func](r))
	trc := []prop.EvalContext{ctxOf(0, "p"), ctxOf(1, "p")}
	result, err := trace.Evaluate(f, trc)
	require.NoError(t, err)
	assert.False(t, result)
}

func TestEvaluateWeakUntilVacuousWhenLeftHolds(t *testing.T) {
	p, r := propOf("p"), propOf("r")
	f := ltl.WeakUntil[prop.Func](ltl.Atom[prop.Func](p), ltl.Atom[prop.Func](r))
	trc := []prop.EvalContext{ctxOf(0, "p"), ctxOf(1, "p")}
	result, err := trace.Evaluate(f, trc)
	require.NoError(t, err)
	assert.True(t, result)
}

func TestEvaluatePropositionErrorSurfaces(t *testing.T) {
	failing := prop.Func{PID: "broken", Eval: nil}
	f := ltl.Atom[prop.Func](failing)
	_, err := trace.Evaluate(f, []prop.EvalContext{ctxOf(0)})
	var propErr *trace.ErrPropositionEvaluation
	require.True(t, errors.As(err, &propErr))
	assert.Equal(t, prop.PID("broken"), propErr.PID)
}

func TestEvaluateDebugTrailHasOneEntryPerPosition(t *testing.T) {
	p := propOf("p")
	f := ltl.Globally[prop.Func](ltl.Atom[prop.Func](p))
	trc := []prop.EvalContext{ctxOf(0, "p"), ctxOf(1, "p")}
	result, trail, err := trace.EvaluateDebug(f, trc)
	require.NoError(t, err)
	assert.True(t, result)
	assert.Len(t, trail, 2)
}
