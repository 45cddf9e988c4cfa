// Package trace implements the finite-trace LTL evaluator: a
// residual/stepwise (formula-progression) semantics that rewrites a
// formula against one trace position at a time, per spec.md §4.4.
//
// The stepping loop itself is grounded on the token-consuming
// rewrite-and-match dispatch in
// _examples/other_examples/0a36a3ef_ilhamster-ltl__test-integration_test.go.go
// (`ltl.Match(op, tok) (Operator, Environment)`, one rune consumed per
// call, returning a rewritten residual operator): step here plays the
// same role over a Kripke evaluation context instead of a rune.
package trace

import (
	"github.com/rfielding/kripke-ltl/ltl"
	"github.com/rfielding/kripke-ltl/prop"
)

// Step records one position's contribution, for EvaluateDebug's trail.
type Step struct {
	Index    int
	Formula  string
	HoldsNow bool
	Residual string
}

// Evaluate decides whether trace satisfies f under the residual
// semantics of spec.md §4.4.
func Evaluate[P prop.Proposition](f ltl.Formula[P], trc []prop.EvalContext) (bool, error) {
	result, _, err := run(f, trc)
	return result, err
}

// EvaluateDebug behaves like Evaluate but also returns the per-step
// trail of (formula, holds_now, residual), useful for diagnosing
// mismatches against the nested-DFS decision procedure.
func EvaluateDebug[P prop.Proposition](f ltl.Formula[P], trc []prop.EvalContext) (bool, []Step, error) {
	return run(f, trc)
}

func run[P prop.Proposition](f ltl.Formula[P], trc []prop.EvalContext) (bool, []Step, error) {
	if len(trc) == 0 {
		return false, nil, ErrEmptyTrace
	}

	cur := f
	var trail []Step
	for i, ctx := range trc {
		holds, next, err := step(cur, ctx)
		if err != nil {
			return false, trail, err
		}
		trail = append(trail, Step{Index: i, Formula: cur.String(), HoldsNow: holds, Residual: next.String()})
		cur = next
		if b, ok := asLiteral(cur); ok {
			return b, trail, nil
		}
	}

	result, err := resolveEndOfTrace(cur)
	return result, trail, err
}

func asLiteral[P prop.Proposition](f ltl.Formula[P]) (bool, bool) {
	b, ok := f.(ltl.BoolF[P])
	return bool(b), ok
}

// step rewrites f by one trace position, returning whether f's
// immediate (non-temporal) content holds at ctx and the residual
// obligation for the remaining suffix. Residuals are built by full
// structural recursion — including into F/G/U/W/R's own subformulae —
// rather than by short-circuiting solely on a subformula's holds_now,
// since a nested temporal subformula's one-step holds_now alone loses
// information a compound residual needs to carry forward (e.g. G(p ->
// F q) must retain an undischarged "F q" obligation across steps where
// p is true but q hasn't appeared yet).
func step[P prop.Proposition](f ltl.Formula[P], ctx prop.EvalContext) (bool, ltl.Formula[P], error) {
	switch n := f.(type) {
	case ltl.BoolF[P]:
		return bool(n), n, nil

	case ltl.AtomF[P]:
		h, err := n.Prop.Evaluate(ctx)
		if err != nil {
			return false, nil, &ErrPropositionEvaluation{PID: n.Prop.ID(), Err: err}
		}
		return h, ltl.Bool[P](h), nil

	case ltl.NotF[P]:
		h, next, err := step[P](n.Sub, ctx)
		if err != nil {
			return false, nil, err
		}
		return !h, ltl.Simplify(ltl.Not[P](next)), nil

	case ltl.AndF[P]:
		hl, nl, err := step[P](n.Left, ctx)
		if err != nil {
			return false, nil, err
		}
		hr, nr, err := step[P](n.Right, ctx)
		if err != nil {
			return false, nil, err
		}
		return hl && hr, ltl.Simplify(ltl.And[P](nl, nr)), nil

	case ltl.OrF[P]:
		hl, nl, err := step[P](n.Left, ctx)
		if err != nil {
			return false, nil, err
		}
		hr, nr, err := step[P](n.Right, ctx)
		if err != nil {
			return false, nil, err
		}
		return hl || hr, ltl.Simplify(ltl.Or[P](nl, nr)), nil

	case ltl.ImpliesF[P]:
		hl, nl, err := step[P](n.Left, ctx)
		if err != nil {
			return false, nil, err
		}
		hr, nr, err := step[P](n.Right, ctx)
		if err != nil {
			return false, nil, err
		}
		return !hl || hr, ltl.Simplify(ltl.Or[P](ltl.Not[P](nl), nr)), nil

	case ltl.NextF[P]:
		// X psi holds_now vacuously; the whole obligation shifts: the
		// residual for the next position is psi itself, unchanged.
		return true, n.Sub, nil

	case ltl.FinallyF[P]:
		h, next, err := step[P](n.Sub, ctx)
		if err != nil {
			return false, nil, err
		}
		// Progress(F psi) = Progress(psi) or F psi.
		return h, ltl.Simplify(ltl.Or[P](next, n)), nil

	case ltl.GloballyF[P]:
		h, next, err := step[P](n.Sub, ctx)
		if err != nil {
			return false, nil, err
		}
		// Progress(G psi) = Progress(psi) and G psi.
		return h, ltl.Simplify(ltl.And[P](next, n)), nil

	case ltl.UntilF[P]:
		hl, nl, err := step[P](n.Left, ctx)
		if err != nil {
			return false, nil, err
		}
		hr, nr, err := step[P](n.Right, ctx)
		if err != nil {
			return false, nil, err
		}
		// Progress(l U r) = Progress(r) or (Progress(l) and l U r).
		next := ltl.Simplify(ltl.Or[P](nr, ltl.And[P](nl, n)))
		return hr || hl, next, nil

	case ltl.WeakUntilF[P]:
		hl, nl, err := step[P](n.Left, ctx)
		if err != nil {
			return false, nil, err
		}
		hr, nr, err := step[P](n.Right, ctx)
		if err != nil {
			return false, nil, err
		}
		// Same per-step progression as strong until; the two diverge
		// only in their end-of-trace resolution (see resolveEndOfTrace).
		next := ltl.Simplify(ltl.Or[P](nr, ltl.And[P](nl, n)))
		return hr || hl, next, nil

	case ltl.ReleaseF[P]:
		hl, nl, err := step[P](n.Left, ctx)
		if err != nil {
			return false, nil, err
		}
		hr, nr, err := step[P](n.Right, ctx)
		if err != nil {
			return false, nil, err
		}
		// Progress(l R r) = Progress(r) and (Progress(l) or l R r).
		next := ltl.Simplify(ltl.And[P](nr, ltl.Or[P](nl, n)))
		return hr && hl, next, nil

	default:
		return false, nil, &ErrInconclusive{Detail: "unhandled formula type in step"}
	}
}

// resolveEndOfTrace applies spec.md §4.4's end-of-trace rules to a
// residual formula once the trace is exhausted: F/U unmet obligations
// fail, G/W/R are vacuously satisfied, and a pending X is
// inconclusive. Compound residuals (And/Or/Not/Implies of several
// pending obligations, as progression can leave behind) are resolved
// recursively.
func resolveEndOfTrace[P prop.Proposition](f ltl.Formula[P]) (bool, error) {
	switch n := f.(type) {
	case ltl.BoolF[P]:
		return bool(n), nil
	case ltl.AtomF[P]:
		return false, &ErrInconclusive{Detail: "atom " + string(n.Prop.ID()) + " pending at end of trace"}
	case ltl.NotF[P]:
		h, err := resolveEndOfTrace[P](n.Sub)
		if err != nil {
			return false, err
		}
		return !h, nil
	case ltl.AndF[P]:
		hl, err := resolveEndOfTrace[P](n.Left)
		if err != nil {
			return false, err
		}
		hr, err := resolveEndOfTrace[P](n.Right)
		if err != nil {
			return false, err
		}
		return hl && hr, nil
	case ltl.OrF[P]:
		hl, err := resolveEndOfTrace[P](n.Left)
		if err != nil {
			return false, err
		}
		hr, err := resolveEndOfTrace[P](n.Right)
		if err != nil {
			return false, err
		}
		return hl || hr, nil
	case ltl.ImpliesF[P]:
		hl, err := resolveEndOfTrace[P](n.Left)
		if err != nil {
			return false, err
		}
		hr, err := resolveEndOfTrace[P](n.Right)
		if err != nil {
			return false, err
		}
		return !hl || hr, nil
	case ltl.NextF[P]:
		return false, &ErrInconclusive{Detail: "pending X " + n.Sub.String() + " at end of trace"}
	case ltl.FinallyF[P], ltl.UntilF[P]:
		return false, nil
	case ltl.GloballyF[P], ltl.WeakUntilF[P], ltl.ReleaseF[P]:
		return true, nil
	default:
		return false, &ErrInconclusive{Detail: "unhandled formula type at end of trace"}
	}
}
