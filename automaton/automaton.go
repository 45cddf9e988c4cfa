// Package automaton implements generalised and plain Büchi automata,
// their degeneralisation, synchronous product, and Nested-DFS
// emptiness check. States are generic and comparable; callers supply a
// deterministic string key per state so exploration order (and hence
// counterexample shape) is reproducible.
package automaton

import (
	"sort"

	"github.com/rfielding/kripke-ltl/prop"
)

// Symbol is a transition label: the set of atomic propositions that
// are true along that edge. Absence of a PID means false, restricted
// to whatever set of atoms the two sides of a comparison agree to
// treat as relevant (see Product).
type Symbol map[prop.PID]struct{}

// NewSymbol builds a Symbol from the given true atoms.
func NewSymbol(pids ...prop.PID) Symbol {
	s := make(Symbol, len(pids))
	for _, p := range pids {
		s[p] = struct{}{}
	}
	return s
}

// Has reports whether p is true in s.
func (s Symbol) Has(p prop.PID) bool {
	_, ok := s[p]
	return ok
}

// AgreesOn reports whether s and other assign the same truth value to
// every atom in relevant. Atoms outside relevant are ignored — this is
// how a model's full state labelling is matched against a formula
// automaton's transition symbol, which only ever constrains the atoms
// that actually occur in the checked formula (see package checker).
func (s Symbol) AgreesOn(other Symbol, relevant []prop.PID) bool {
	for _, p := range relevant {
		if s.Has(p) != other.Has(p) {
			return false
		}
	}
	return true
}

// Edge is a labelled transition to state To.
type Edge[S comparable] struct {
	Label Symbol
	To    S
}

// BA is a Büchi automaton: states, a transition relation, the initial
// states, a single accepting set, and a deterministic key per state
// used to fix exploration order.
type BA[S comparable] struct {
	States  []S
	Initial []S
	Trans   map[S][]Edge[S]
	Accept  map[S]bool
	Key     func(S) string
}

// NewBA constructs an empty BA with the given state-key function.
func NewBA[S comparable](key func(S) string) *BA[S] {
	return &BA[S]{
		Trans:  make(map[S][]Edge[S]),
		Accept: make(map[S]bool),
		Key:    key,
	}
}

// AddState registers s if not already present.
func (b *BA[S]) AddState(s S) {
	if _, ok := b.Trans[s]; ok {
		return
	}
	b.States = append(b.States, s)
	b.Trans[s] = nil
}

// AddEdge adds a transition s --label--> t, registering both states.
func (b *BA[S]) AddEdge(s S, label Symbol, t S) {
	b.AddState(s)
	b.AddState(t)
	b.Trans[s] = append(b.Trans[s], Edge[S]{Label: label, To: t})
}

// SetInitial marks s as an initial state, registering it.
func (b *BA[S]) SetInitial(s S) {
	b.AddState(s)
	b.Initial = append(b.Initial, s)
}

// SetAccepting marks s as accepting, registering it.
func (b *BA[S]) SetAccepting(s S) {
	b.AddState(s)
	b.Accept[s] = true
}

// Successors returns s's outgoing edges sorted by destination key,
// giving deterministic exploration order per spec.md §4.10.
func (b *BA[S]) Successors(s S) []Edge[S] {
	edges := append([]Edge[S](nil), b.Trans[s]...)
	sort.Slice(edges, func(i, j int) bool {
		return b.Key(edges[i].To) < b.Key(edges[j].To)
	})
	return edges
}

// SortedInitial returns the initial states sorted by key.
func (b *BA[S]) SortedInitial() []S {
	init := append([]S(nil), b.Initial...)
	sort.Slice(init, func(i, j int) bool { return b.Key(init[i]) < b.Key(init[j]) })
	return init
}

// GBA is a generalised Büchi automaton: the same shape as BA but with
// k ≥ 1 acceptance sets, each to be visited infinitely often.
type GBA[S comparable] struct {
	States  []S
	Initial []S
	Trans   map[S][]Edge[S]
	Accept  []map[S]bool
	Key     func(S) string
}

// NewGBA constructs an empty GBA with the given state-key function.
func NewGBA[S comparable](key func(S) string) *GBA[S] {
	return &GBA[S]{
		Trans: make(map[S][]Edge[S]),
		Key:   key,
	}
}

func (g *GBA[S]) AddState(s S) {
	if _, ok := g.Trans[s]; ok {
		return
	}
	g.States = append(g.States, s)
	g.Trans[s] = nil
}

func (g *GBA[S]) AddEdge(s S, label Symbol, t S) {
	g.AddState(s)
	g.AddState(t)
	g.Trans[s] = append(g.Trans[s], Edge[S]{Label: label, To: t})
}

func (g *GBA[S]) SetInitial(s S) {
	g.AddState(s)
	g.Initial = append(g.Initial, s)
}

// AddAcceptanceSet appends a new acceptance set F_i, given as the
// subset of g's states that belong to it.
func (g *GBA[S]) AddAcceptanceSet(states map[S]bool) {
	g.Accept = append(g.Accept, states)
}
