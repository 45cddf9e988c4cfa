package kripke

import "github.com/rfielding/kripke-ltl/prop"

// Graph is a concrete, mutable Kripke structure builder: named states
// interned to StateIDs, successor edges, and prop.PID labels. It is
// adapted from the teacher's kripke.Graph in kripke/ctl.go, generalised
// from single-namespace string labels to prop.PID labels and from a
// single InitialState field to a set of initial states (spec.md §3
// requires InitialStates() to return a set).
type Graph struct {
	labels map[StateID]map[prop.PID]bool
	succ   map[StateID][]StateID
	order  []StateID
	known  map[StateID]bool
	init   map[StateID]bool
}

// NewGraph constructs an empty Graph.
func NewGraph() *Graph {
	return &Graph{
		labels: make(map[StateID]map[prop.PID]bool),
		succ:   make(map[StateID][]StateID),
		known:  make(map[StateID]bool),
		init:   make(map[StateID]bool),
	}
}

// AddState adds a named state, identified by its own name. Calling
// AddState twice with the same name is a no-op returning the existing
// id, matching the teacher's ensureState auto-creation idiom.
func (g *Graph) AddState(name string) StateID {
	id := StateID(name)
	if g.known[id] {
		return id
	}
	g.known[id] = true
	g.labels[id] = make(map[prop.PID]bool)
	g.order = append(g.order, id)
	return id
}

// Label marks proposition p as true at the named state, auto-creating
// the state if needed.
func (g *Graph) Label(name string, p prop.PID) {
	id := g.AddState(name)
	g.labels[id][p] = true
}

// AddEdge adds a transition from fromName to toName. States are
// auto-created if not already present, matching the teacher's
// auto-creating AddEdge.
func (g *Graph) AddEdge(fromName, toName string) {
	from := g.AddState(fromName)
	to := g.AddState(toName)
	g.succ[from] = append(g.succ[from], to)
}

// SetInitial marks a named state as initial. Multiple states may be
// marked initial.
func (g *Graph) SetInitial(name string) {
	g.init[g.AddState(name)] = true
}

// States returns every defined state, in insertion order.
func (g *Graph) States() []StateID {
	return append([]StateID(nil), g.order...)
}

// InitialStates returns the states marked initial, in insertion order.
func (g *Graph) InitialStates() []StateID {
	var out []StateID
	for _, id := range g.order {
		if g.init[id] {
			out = append(out, id)
		}
	}
	return out
}

// Successors returns the outgoing edges of s.
func (g *Graph) Successors(s StateID) []StateID {
	return append([]StateID(nil), g.succ[s]...)
}

// Labels returns the propositions true at s, in no particular order.
func (g *Graph) Labels(s StateID) []prop.PID {
	lbls := g.labels[s]
	out := make([]prop.PID, 0, len(lbls))
	for p := range lbls {
		out = append(out, p)
	}
	return out
}

// Validate reports the invariant violations this Graph must satisfy
// before it can be lifted or checked: every initial state must be a
// declared state, and every successor of a declared state must itself
// be declared. This is a supplement over spec.md's bare Model
// interface, surfacing structural mistakes as a typed error instead of
// an out-of-range panic deep in Lift or Product.
func (g *Graph) Validate() error {
	return ValidateModel(g)
}

// ValidateModel checks the same invariants as Graph.Validate against
// any Model, not just the concrete Graph builder — package checker
// calls this once, at the top of Check, per spec.md §7's requirement
// that invalid_kripke_structure be surfaced before any tableau or
// product is built.
func ValidateModel(m Model) error {
	known := make(map[StateID]bool)
	for _, s := range m.States() {
		known[s] = true
	}
	for _, s := range m.InitialStates() {
		if !known[s] {
			return &ErrInvalidStructure{Reason: "initial state " + string(s) + " is not a declared state"}
		}
	}
	for _, s := range m.States() {
		for _, succ := range m.Successors(s) {
			if !known[succ] {
				return &ErrInvalidStructure{Reason: "state " + string(s) + " has undeclared successor " + string(succ)}
			}
		}
	}
	return nil
}
