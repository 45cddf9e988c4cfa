// Package kripke abstracts the system model being checked: a finite
// labelled state-transition graph (spec.md §4.3), plus the lifting of
// such a model into a Büchi automaton over the same alphabet as a
// formula automaton (spec.md §4.8).
//
// Graph, the concrete reference implementation below, generalises the
// teacher's single-initial-state, single-namespace kripke.Graph (see
// kripke/ctl.go in the original repo this module is adapted from) to
// the spec's set of initial states and prop.PID-keyed labels.
package kripke

import "github.com/rfielding/kripke-ltl/prop"

// StateID identifies a state within a Model. It is opaque to the
// core beyond equality and the total order of its string value, used
// for deterministic exploration.
type StateID string

// Model is the capability set the core requires of a Kripke structure:
// a finite state set, a non-empty-or-not initial state set, a
// successor relation, and a labelling by proposition identifiers.
type Model interface {
	States() []StateID
	InitialStates() []StateID
	Successors(s StateID) []StateID
	Labels(s StateID) []prop.PID
}
