// Package checker implements the orchestrator (spec.md §4.11): it
// sequences formula canonicalisation, tableau construction, GBA
// acceptance derivation, degeneralisation, model lifting, product
// construction, and the nested-DFS emptiness check into the single
// Check entry point, plus the error taxonomy and Lasso counterexample
// type those stages report through.
package checker

import (
	"github.com/rfielding/kripke-ltl/automaton"
	"github.com/rfielding/kripke-ltl/kripke"
	"github.com/rfielding/kripke-ltl/ltl"
	"github.com/rfielding/kripke-ltl/prop"
	"github.com/rfielding/kripke-ltl/tableau"
)

// productState is the state type of the product automaton: a model
// state paired with a (tableau-node, acceptance-index) pair.
type productState = automaton.Pair[kripke.StateID, automaton.Pair[string, int]]

// Result is the discriminated outcome of Check: either the property
// holds, or it fails with a witnessing Lasso counterexample. Go has no
// native sum type, so Result is a struct with a discriminant, in the
// same style as the teacher's map[State]bool check results.
type Result struct {
	holds bool
	cx    *Lasso[kripke.StateID]
}

// Holds reports whether the checked property holds of every infinite
// execution of the model.
func (r Result) Holds() bool { return r.holds }

// Counterexample returns the witnessing lasso when the property fails,
// or nil when it holds.
func (r Result) Counterexample() *Lasso[kripke.StateID] { return r.cx }

func holdsResult() Result { return Result{holds: true} }

func failsResult(lasso *Lasso[kripke.StateID]) Result { return Result{holds: false, cx: lasso} }

// Check decides whether every infinite execution of m satisfies phi.
func Check[P ltl.Identifiable](phi ltl.Formula[P], m kripke.Model, opts ...Option) (Result, error) {
	cfg := newConfig(opts)

	if err := kripke.ValidateModel(m); err != nil {
		return Result{}, err
	}

	if holds, lasso, handled, err := fastPath(phi, m); handled {
		if err != nil {
			return Result{}, err
		}
		if holds {
			return holdsResult(), nil
		}
		return failsResult(lasso), nil
	}

	canon := ltl.Canonicalize(phi)
	ap := atomSet(m, canon)

	psi := ltl.NNF[prop.PID](ltl.Not[prop.PID](canon))
	cfg.log("orchestrator: negated canonical formula %s", psi)

	tg := tableau.Build(psi, ap)
	cfg.log("tableau: %d nodes", len(tg.Nodes))

	gba := tableau.ToGBA(tg, psi)
	ba := automaton.Degeneralize(gba)
	cfg.log("degeneralise: %d states", len(ba.States))

	am, err := kripke.Lift(m, cfg.liftOptions()...)
	if err != nil {
		return Result{}, err
	}

	relevant := ltl.Atoms(psi)
	product := automaton.Product(am, ba, relevant)
	cfg.log("product: %d states", len(product.States))

	if cfg.maxStates > 0 && len(product.States) > cfg.maxStates {
		return Result{}, &ErrStateSpaceExhausted{Explored: len(product.States), Limit: cfg.maxStates}
	}

	run, nonEmpty := automaton.NestedDFS(product)
	if !nonEmpty {
		return holdsResult(), nil
	}

	lasso := &Lasso[kripke.StateID]{
		Prefix: projectFirst(run.Prefix),
		Cycle:  projectFirst(run.Cycle),
	}
	return failsResult(lasso), nil
}

// fastPath implements §4.11(1): atom(p) and ¬atom(p) are decided
// directly against every initial state's labels, without building any
// automaton. handled is false for every other formula shape.
func fastPath[P ltl.Identifiable](phi ltl.Formula[P], m kripke.Model) (holds bool, lasso *Lasso[kripke.StateID], handled bool, err error) {
	switch n := phi.(type) {
	case ltl.AtomF[P]:
		holds, lasso = checkAtomAgainstInitials(m, n.Prop.ID(), true)
		return holds, lasso, true, nil
	case ltl.NotF[P]:
		if a, ok := n.Sub.(ltl.AtomF[P]); ok {
			holds, lasso = checkAtomAgainstInitials(m, a.Prop.ID(), false)
			return holds, lasso, true, nil
		}
	}
	return false, nil, false, nil
}

// checkAtomAgainstInitials decides atom(pid) (or its negation, when
// wantPresent is false) against every initial state of m. With no
// initial states at all, the property is considered to hold
// vacuously — the convention chosen and documented in DESIGN.md for
// spec.md §8's "empty initial_states" boundary case.
func checkAtomAgainstInitials(m kripke.Model, pid prop.PID, wantPresent bool) (bool, *Lasso[kripke.StateID]) {
	initials := m.InitialStates()
	if len(initials) == 0 {
		return true, nil
	}
	for _, s := range initials {
		if hasLabel(m, s, pid) != wantPresent {
			return false, &Lasso[kripke.StateID]{
				Prefix: []kripke.StateID{s},
				Cycle:  []kripke.StateID{s},
			}
		}
	}
	return true, nil
}

func hasLabel(m kripke.Model, s kripke.StateID, pid prop.PID) bool {
	for _, p := range m.Labels(s) {
		if p == pid {
			return true
		}
	}
	return false
}

// atomSet computes AP = (union of every state's labels) ∪ atoms(psi),
// per spec.md §4.11(2).
func atomSet(m kripke.Model, psi ltl.Formula[prop.PID]) []prop.PID {
	seen := make(map[prop.PID]bool)
	var ap []prop.PID
	add := func(p prop.PID) {
		if !seen[p] {
			seen[p] = true
			ap = append(ap, p)
		}
	}
	for _, s := range m.States() {
		for _, p := range m.Labels(s) {
			add(p)
		}
	}
	for _, p := range ltl.Atoms(psi) {
		add(p)
	}
	return ap
}

func projectFirst(ps []productState) []kripke.StateID {
	out := make([]kripke.StateID, len(ps))
	for i, p := range ps {
		out[i] = p.First
	}
	return out
}
