package kripke

import (
	"sort"

	"github.com/rfielding/kripke-ltl/automaton"
)

// liftConfig carries the options Lift was called with.
type liftConfig struct {
	stutterFree bool
}

// LiftOption configures Lift.
type LiftOption func(*liftConfig)

// WithStutterFree resolves the open question of spec.md §4.8/§9 by
// offering an additive alternative to the default terminal-state
// self-loop: when enabled, Lift returns *ErrTerminalState instead of
// silently looping a successor-less state on itself. The default
// (false) preserves spec.md's documented self-loop behaviour exactly.
func WithStutterFree(on bool) LiftOption {
	return func(c *liftConfig) { c.stutterFree = on }
}

// Lift builds the Büchi automaton corresponding to model m, per
// spec.md §4.8: for every state s with label L(s), emit a transition
// (s, L(s), s') for every successor s'. Every model state is
// accepting, since the Kripke structure itself carries no acceptance
// condition — liveness is entirely the formula automaton's concern.
// A state with no successors is given a self-loop on itself, unless
// WithStutterFree(true) was passed, in which case Lift returns
// *ErrTerminalState for the first terminal state it encounters.
func Lift(m Model, opts ...LiftOption) (*automaton.BA[StateID], error) {
	cfg := &liftConfig{}
	for _, o := range opts {
		o(cfg)
	}

	ba := automaton.NewBA[StateID](func(s StateID) string { return string(s) })

	states := append([]StateID(nil), m.States()...)
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })

	for _, s := range states {
		ba.AddState(s)
		ba.SetAccepting(s)
	}
	for _, s := range m.InitialStates() {
		ba.SetInitial(s)
	}

	for _, s := range states {
		label := automaton.NewSymbol(m.Labels(s)...)
		succs := m.Successors(s)
		if len(succs) == 0 {
			if cfg.stutterFree {
				return nil, &ErrTerminalState{State: s}
			}
			ba.AddEdge(s, label, s)
			continue
		}
		for _, t := range succs {
			ba.AddEdge(s, label, t)
		}
	}
	return ba, nil
}
