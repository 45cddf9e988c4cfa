package automaton

import (
	"fmt"

	"github.com/rfielding/kripke-ltl/prop"
)

// Product builds the synchronous intersection of a model automaton m
// (all states accepting) and a formula automaton a, on-the-fly via
// worklist BFS from the cross of their initial states, per spec.md
// §4.9. relevant is the set of atoms the product must agree on when
// matching a model transition's full label against a formula
// transition's label — see Symbol.AgreesOn. This is the tableau's own
// atom set (the atoms occurring in the checked formula), not the
// model's full label vocabulary: a model may label states with atoms
// the formula never mentions, and those are correctly treated as
// "don't care" rather than forced to a fixed truth value (see
// DESIGN.md, "product symbol matching").
func Product[SM, SA comparable](m *BA[SM], a *BA[SA], relevant []prop.PID) *BA[Pair[SM, SA]] {
	key := func(p Pair[SM, SA]) string { return fmt.Sprintf("%s|%s", m.Key(p.First), a.Key(p.Second)) }
	prod := NewBA[Pair[SM, SA]](key)

	type pair = Pair[SM, SA]
	var worklist []pair
	seen := make(map[string]bool)

	enqueue := func(p pair) {
		k := key(p)
		if seen[k] {
			return
		}
		seen[k] = true
		prod.AddState(p)
		if a.Accept[p.Second] {
			prod.SetAccepting(p)
		}
		worklist = append(worklist, p)
	}

	for _, sm := range m.SortedInitial() {
		for _, sa := range a.SortedInitial() {
			p := pair{First: sm, Second: sa}
			enqueue(p)
			prod.SetInitial(p)
		}
	}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]
		for _, me := range m.Successors(cur.First) {
			for _, ae := range a.Successors(cur.Second) {
				if !me.Label.AgreesOn(ae.Label, relevant) {
					continue
				}
				next := pair{First: me.To, Second: ae.To}
				enqueue(next)
				prod.AddEdge(cur, ae.Label, next)
			}
		}
	}
	return prod
}
