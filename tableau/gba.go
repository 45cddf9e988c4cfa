package tableau

import "github.com/rfielding/kripke-ltl/automaton"

// ToGBA renders the tableau graph of psi as a generalised Büchi
// automaton whose states are the tableau's node keys.
func ToGBA(g *Graph, psi formula) *automaton.GBA[string] {
	gba := automaton.NewGBA[string](func(s string) string { return s })
	for _, k := range g.Keys() {
		gba.AddState(k)
	}
	for _, k := range g.Initial {
		gba.SetInitial(k)
	}
	for from, edges := range g.Trans {
		for _, e := range edges {
			gba.AddEdge(from, e.Label, e.To)
		}
	}
	for _, set := range AcceptanceSets(g, psi) {
		gba.AddAcceptanceSet(set)
	}
	return gba
}
